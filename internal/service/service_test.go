package service

import (
	"testing"
	"time"

	"skillswap-backend/internal/auth"
	"skillswap-backend/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *repository.InMemoryStore
	tokens   *auth.TokenService
	users    *UserService
	accounts *AccountService
	trades   *TradeService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tokens, err := auth.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	store := repository.NewInMemoryStore()
	log := zerolog.Nop()

	return &fixture{
		store:    store,
		tokens:   tokens,
		users:    NewUserService(store, tokens, log),
		accounts: NewAccountService(log),
		trades:   NewTradeService(store, log),
	}
}
