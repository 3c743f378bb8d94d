package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"skillswap-backend/internal/models"

	"github.com/google/uuid"
)

// InMemoryStore é o diretório de usuários em memória.
//
// mu protege os dois mapas. Quando precisa do lock de uma conta
// (RenameUser), o lock do diretório é sempre adquirido antes.
type InMemoryStore struct {
	mu              sync.RWMutex
	usersByID       map[uuid.UUID]*models.User
	usersByUsername map[string]*models.User
}

// NewInMemoryStore cria um diretório vazio
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		usersByID:       make(map[uuid.UUID]*models.User),
		usersByUsername: make(map[string]*models.User),
	}
}

func (s *InMemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	username := user.Username()
	if _, exists := s.usersByUsername[username]; exists {
		return fmt.Errorf("%w: '%s'", models.ErrDuplicateUser, username)
	}

	s.usersByID[user.ID] = user
	s.usersByUsername[username] = user
	return nil
}

func (s *InMemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.usersByUsername[username]
	if !exists {
		return nil, fmt.Errorf("%w: '%s'", models.ErrUserNotFound, username)
	}
	return user, nil
}

func (s *InMemoryStore) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.usersByID[id]
	if !exists {
		return nil, fmt.Errorf("%w: ID '%s'", models.ErrUserNotFound, id)
	}
	return user, nil
}

// GetAllUsers retorna as contas ordenadas por nome de usuário
func (s *InMemoryStore) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.usersByUsername))
	for name := range s.usersByUsername {
		names = append(names, name)
	}
	sort.Strings(names)

	users := make([]*models.User, 0, len(names))
	for _, name := range names {
		users = append(users, s.usersByUsername[name])
	}
	return users, nil
}

// RenameUser move a conta para a nova chave numa única seção crítica:
// nenhum observador vê as duas chaves, nem nenhuma. A conta é identificada
// pelo ponteiro, não pelo nome, que pode ter mudado desde a leitura.
func (s *InMemoryStore) RenameUser(ctx context.Context, user *models.User, newUsername string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	oldUsername, err := s.ownedUsername(user)
	if err != nil {
		return err
	}
	if _, taken := s.usersByUsername[newUsername]; taken {
		return fmt.Errorf("%w: '%s'", models.ErrDuplicateUser, newUsername)
	}

	delete(s.usersByUsername, oldUsername)
	user.SetUsername(newUsername)
	s.usersByUsername[newUsername] = user
	return nil
}

// DeleteUser remove a conta do diretório se confirmUsername for o nome atual
// dela. Referências a ela em listas de amigos ou propostas de outros usuários
// continuam lá.
func (s *InMemoryStore) DeleteUser(ctx context.Context, user *models.User, confirmUsername string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	username, err := s.ownedUsername(user)
	if err != nil {
		return err
	}
	if confirmUsername != username {
		return models.ErrUsernameMismatch
	}

	delete(s.usersByUsername, username)
	delete(s.usersByID, user.ID)
	return nil
}

// ownedUsername retorna o nome atual da conta, garantindo que a chave no
// mapa aponta para ela mesma. Exige s.mu travado para escrita.
func (s *InMemoryStore) ownedUsername(user *models.User) (string, error) {
	if s.usersByID[user.ID] != user {
		return "", fmt.Errorf("%w: ID '%s'", models.ErrUserNotFound, user.ID)
	}
	username := user.Username()
	if s.usersByUsername[username] != user {
		return "", fmt.Errorf("%w: '%s'", models.ErrUserNotFound, username)
	}
	return username, nil
}

// Count retorna o número de contas registradas
func (s *InMemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.usersByUsername), nil
}
