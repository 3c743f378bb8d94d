package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService emite e valida os tokens de sessão (o "handle" da conta logada)
type TokenService struct {
	jwtSecret []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewTokenService cria um novo serviço de token
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("segredo JWT não pode ser vazio")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("validade do token deve ser positiva, recebido %s", ttl)
	}
	return &TokenService{
		jwtSecret: []byte(secret),
		ttl:       ttl,
		now:       time.Now,
	}, nil
}

// NewToken cria um token para a conta. O 'sub' é o ID, que não muda quando
// o usuário troca de nome.
func (s *TokenService) NewToken(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken verifica a assinatura e a validade de um token
func (s *TokenService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("falha ao parsear token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token inválido")
	}

	return token, nil
}

// GetUserIDFromToken extrai o 'sub' (UserID) de um token validado
func (s *TokenService) GetUserIDFromToken(token *jwt.Token) (uuid.UUID, error) {
	sub, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("não foi possível obter 'sub' do token: %w", err)
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("'sub' do token não é um UUID válido: %w", err)
	}

	return userID, nil
}
