package account

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/entities"
)

type Account struct {
	repository Repository
	hasher     PasswordHasher
	tokens     TokenIssuer
	txManager  TxManager
}

func New(repository Repository, hasher PasswordHasher, tokens TokenIssuer, txManager TxManager) *Account {
	return &Account{
		repository: repository,
		hasher:     hasher,
		tokens:     tokens,
		txManager:  txManager,
	}
}

func (s *Account) RegisterManufacturer(ctx context.Context, registration entities.ManufacturerRegistration) (int64, error) {
	if registration.CompanyName == nil ||
		registration.OwnerName == nil ||
		registration.Username == nil ||
		registration.Email == nil ||
		registration.Phone == nil ||
		registration.Password == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*registration.CompanyName) || !isValidName(*registration.OwnerName) {
		return 0, ErrInvalidName
	}
	if !isValidUsername(*registration.Username) {
		return 0, ErrInvalidUsername
	}
	if !isValidEmail(*registration.Email) {
		return 0, ErrInvalidEmail
	}
	if !isValidPhone(*registration.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidPassword(*registration.Password) {
		return 0, ErrInvalidPassword
	}

	hash, err := s.hasher.Hash(*registration.Password)
	if err != nil {
		return 0, fmt.Errorf("hash manufacturer password: %w", err)
	}

	manufacturer := entities.Manufacturer{
		CompanyName:  *registration.CompanyName,
		OwnerName:    *registration.OwnerName,
		Username:     *registration.Username,
		Email:        *registration.Email,
		Phone:        *registration.Phone,
		PasswordHash: hash,
		Products:     []entities.Product{},
	}
	if registration.City != nil {
		manufacturer.City = *registration.City
	}
	if registration.State != nil {
		manufacturer.State = *registration.State
	}

	id, err := s.repository.CreateManufacturer(ctx, manufacturer)
	if err != nil {
		return 0, fmt.Errorf("register manufacturer: %w", err)
	}

	return id, nil
}

// LoginManufacturer accepts either a username or an email as the login.
// Unknown login and wrong password are indistinguishable to the caller.
func (s *Account) LoginManufacturer(ctx context.Context, login, secret string) (*entities.AuthToken, error) {
	if login == "" || secret == "" {
		return nil, ErrMissingRequiredFields
	}

	manufacturer, err := s.repository.GetManufacturerByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, ErrManufacturerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login manufacturer: %w", err)
	}

	if !s.hasher.Matches(secret, manufacturer.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(entities.Actor{
		ID:   manufacturer.ID,
		Kind: entities.ActorManufacturer,
		Name: manufacturer.CompanyName,
	})
	if err != nil {
		return nil, fmt.Errorf("issue manufacturer token: %w", err)
	}

	return token, nil
}

func (s *Account) RegisterBuyer(ctx context.Context, registration entities.BuyerRegistration) (int64, error) {
	if registration.Name == nil ||
		registration.Username == nil ||
		registration.Email == nil ||
		registration.Phone == nil ||
		registration.Password == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*registration.Name) {
		return 0, ErrInvalidName
	}
	if !isValidUsername(*registration.Username) {
		return 0, ErrInvalidUsername
	}
	if !isValidEmail(*registration.Email) {
		return 0, ErrInvalidEmail
	}
	if !isValidPhone(*registration.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidPassword(*registration.Password) {
		return 0, ErrInvalidPassword
	}

	hash, err := s.hasher.Hash(*registration.Password)
	if err != nil {
		return 0, fmt.Errorf("hash buyer password: %w", err)
	}

	id, err := s.repository.CreateBuyer(ctx, entities.Buyer{
		Name:         *registration.Name,
		Username:     *registration.Username,
		Email:        *registration.Email,
		Phone:        *registration.Phone,
		PasswordHash: hash,
	})
	if err != nil {
		return 0, fmt.Errorf("register buyer: %w", err)
	}

	return id, nil
}

func (s *Account) LoginBuyer(ctx context.Context, login, secret string) (*entities.AuthToken, error) {
	if login == "" || secret == "" {
		return nil, ErrMissingRequiredFields
	}

	buyer, err := s.repository.GetBuyerByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, ErrBuyerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login buyer: %w", err)
	}

	if !s.hasher.Matches(secret, buyer.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(entities.Actor{
		ID:   buyer.ID,
		Kind: entities.ActorBuyer,
		Name: buyer.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("issue buyer token: %w", err)
	}

	return token, nil
}

func (s *Account) GetManufacturer(ctx context.Context, id int64) (*entities.Manufacturer, error) {
	manufacturer, err := s.repository.GetManufacturerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get manufacturer: %w", err)
	}

	return manufacturer, nil
}

func (s *Account) GetManufacturers(ctx context.Context) ([]entities.Manufacturer, error) {
	manufacturers, err := s.repository.ListManufacturers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get manufacturers: %w", err)
	}

	return manufacturers, nil
}

func (s *Account) GetBuyer(ctx context.Context, id int64) (*entities.Buyer, error) {
	buyer, err := s.repository.GetBuyerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get buyer: %w", err)
	}

	return buyer, nil
}

// ReplaceCatalog swaps the manufacturer's product list wholesale. The
// existence check and the write run in one transaction so a concurrent
// delete cannot slip between them.
func (s *Account) ReplaceCatalog(ctx context.Context, manufacturerID int64, products []entities.Product) ([]entities.Product, error) {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if !isValidName(p.Name) {
			return nil, ErrEmptyProductName
		}
		if p.Price < 0 {
			return nil, ErrInvalidPrice
		}
		if _, ok := seen[p.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProductName, p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repository.GetManufacturerByID(ctx, manufacturerID); err != nil {
			return err
		}
		return s.repository.UpdateProducts(ctx, manufacturerID, products)
	})
	if err != nil {
		if errors.Is(err, ErrManufacturerNotFound) {
			return nil, ErrManufacturerNotFound
		}
		return nil, fmt.Errorf("replace catalog: %w", err)
	}

	return products, nil
}
