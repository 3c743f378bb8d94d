package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMissingToken   = errors.New("authorization token not provided")
	ErrMalformedToken = errors.New("invalid token format")
	ErrInvalidToken   = errors.New("invalid token")
)

// BearerToken extrai o token de um cabeçalho "Authorization: Bearer <token>".
// O esquema não diferencia maiúsculas e espaços extras são tolerados.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingToken
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrMalformedToken
	}
	return token, nil
}

// Authenticate resolve o cabeçalho Authorization no ID da conta dona do token.
// Erros de assinatura, validade ou 'sub' viram ErrInvalidToken.
func (s *TokenService) Authenticate(header string) (uuid.UUID, error) {
	raw, err := BearerToken(header)
	if err != nil {
		return uuid.Nil, err
	}

	token, err := s.ValidateToken(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := s.GetUserIDFromToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return userID, nil
}
