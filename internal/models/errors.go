package models

import "errors"

// Erros de domínio. Use errors.Is para compará-los.
var (
	// diretório de usuários
	ErrDuplicateUser      = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameMismatch   = errors.New("username does not match")

	// operações da conta
	ErrFriendNotFound    = errors.New("friend not found")
	ErrTradeNotFound     = errors.New("trade not found")
	ErrInvalidSkillLevel = errors.New("invalid skill level")

	ErrMissingField = errors.New("missing required field")
)
