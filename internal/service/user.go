package service

import (
	"context"
	"errors"
	"fmt"

	"skillswap-backend/internal/auth"
	"skillswap-backend/internal/models"
	"skillswap-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UserService lida com o cadastro, a sessão e o perfil dos usuários
type UserService struct {
	store        repository.UserStore
	tokenService *auth.TokenService
	log          zerolog.Logger
}

// NewUserService cria um novo serviço de usuário
func NewUserService(store repository.UserStore, tokenService *auth.TokenService, log zerolog.Logger) *UserService {
	return &UserService{
		store:        store,
		tokenService: tokenService,
		log:          log.With().Str("component", "user_service").Logger(),
	}
}

// Session é o resultado de um login: a conta e o token que a representa
type Session struct {
	User  *models.User
	Token string
}

// Register cria uma nova conta com listas vazias
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username e password são obrigatórios", models.ErrMissingField)
	}

	user := models.NewUser(username, password)
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicateUser) {
			return nil, err
		}
		s.log.Error().Err(err).Str("username", username).Msg("erro ao salvar usuário no store")
		return nil, fmt.Errorf("erro interno ao salvar usuário: %w", err)
	}

	s.log.Info().Str("username", username).Str("user_id", user.ID.String()).Msg("usuário registrado")
	return user, nil
}

// Login confere usuário e senha (comparação exata) e emite um token de sessão
func (s *UserService) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		// Mesma resposta para usuário inexistente e senha errada
		return nil, models.ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.tokenService.NewToken(user.ID)
	if err != nil {
		s.log.Error().Err(err).Msg("erro ao gerar token JWT")
		return nil, fmt.Errorf("erro interno ao gerar token: %w", err)
	}

	s.log.Info().Str("username", username).Msg("login efetuado")
	return &Session{User: user, Token: token}, nil
}

// Lookup busca uma conta pelo nome. Nunca falha: ausência é ok == false.
func (s *UserService) Lookup(ctx context.Context, username string) (*models.User, bool) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, false
	}
	return user, true
}

// GetUserByID resolve a conta dona de um token
func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.store.GetUserByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.store.GetAllUsers(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("erro ao listar usuários")
		return nil, fmt.Errorf("erro interno ao listar usuários: %w", err)
	}
	return users, nil
}

// UserCount retorna o tamanho do diretório
func (s *UserService) UserCount(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// UpdateProfile troca o nome e/ou a senha. Campos vazios são ignorados.
// Se o novo nome já existir nada é alterado, nem a senha.
func (s *UserService) UpdateProfile(ctx context.Context, user *models.User, newUsername, newPassword string) error {
	if newUsername != "" {
		oldUsername := user.Username()
		if err := s.store.RenameUser(ctx, user, newUsername); err != nil {
			return err
		}
		s.log.Info().Str("from", oldUsername).Str("to", newUsername).Msg("usuário renomeado")
	}

	if newPassword != "" {
		user.SetPassword(newPassword)
		s.log.Info().Str("username", user.Username()).Msg("senha alterada")
	}

	return nil
}

// DeleteAccount remove a conta do diretório se a confirmação bater com o nome atual.
// Amigos e propostas que apontam para ela em outras contas não são tocados.
func (s *UserService) DeleteAccount(ctx context.Context, user *models.User, confirmUsername string) error {
	// A confirmação é comparada dentro do diretório, sob a mesma trava da remoção
	if err := s.store.DeleteUser(ctx, user, confirmUsername); err != nil {
		return err
	}

	s.log.Info().Str("username", confirmUsername).Str("user_id", user.ID.String()).Msg("conta removida")
	return nil
}
