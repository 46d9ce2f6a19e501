package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"marketplace/internal/entities"
)

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Service issues and verifies HMAC-signed actor tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Service) Issue(actor entities.Actor) (*entities.AuthToken, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)

	tokenClaims := claims{
		Kind: actor.Kind.String(),
		Name: actor.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(actor.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &entities.AuthToken{
		Token:     signed,
		ExpiresAt: expiresAt,
		Actor:     actor,
	}, nil
}

func (s *Service) Verify(tokenString string) (entities.Actor, error) {
	var tokenClaims claims

	parsed, err := jwt.ParseWithClaims(tokenString, &tokenClaims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return entities.Actor{}, ErrInvalidToken
	}

	id, err := strconv.ParseInt(tokenClaims.Subject, 10, 64)
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: bad subject: %w", ErrInvalidToken, err)
	}

	kind := entities.ActorKind(tokenClaims.Kind)
	if kind != entities.ActorManufacturer && kind != entities.ActorBuyer {
		return entities.Actor{}, fmt.Errorf("%w: unknown actor kind %q", ErrInvalidToken, tokenClaims.Kind)
	}

	return entities.Actor{
		ID:   id,
		Kind: kind,
		Name: tokenClaims.Name,
	}, nil
}
