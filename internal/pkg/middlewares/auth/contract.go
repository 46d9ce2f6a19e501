package auth

import (
	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type TokenVerifier interface {
	Verify(token string) (entities.Actor, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
