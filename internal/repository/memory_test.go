package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"skillswap-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreate(t *testing.T, s *InMemoryStore, username, password string) *models.User {
	t.Helper()
	u := models.NewUser(username, password)
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func count(t *testing.T, s *InMemoryStore) int {
	t.Helper()
	n, err := s.Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestInMemoryStore_CreateUser(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	for i, name := range []string{"alice", "bob", "carol"} {
		mustCreate(t, s, name, "pw")
		assert.Equal(t, i+1, count(t, s))
	}

	err := s.CreateUser(ctx, models.NewUser("alice", "other"))
	require.ErrorIs(t, err, models.ErrDuplicateUser)
	assert.Equal(t, 3, count(t, s))

	got, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, got.CheckPassword("pw"), "original account must survive a duplicate register")
}

func TestInMemoryStore_Lookups(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	alice := mustCreate(t, s, "alice", "p1")

	byName, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Same(t, alice, byName)

	byID, err := s.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Same(t, alice, byID)

	_, err = s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	_, err = s.GetUserByID(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestInMemoryStore_GetAllUsersSorted(t *testing.T) {
	s := NewInMemoryStore()
	mustCreate(t, s, "carol", "x")
	mustCreate(t, s, "alice", "x")
	mustCreate(t, s, "bob", "x")

	users, err := s.GetAllUsers(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username())
	}
	assert.Equal(t, []string{"alice", "bob", "carol"}, names)
}

func TestInMemoryStore_RenameUser(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	alice := mustCreate(t, s, "alice", "p1")
	alice.AddSkill(models.NewSkill("Guitar", models.LevelBeginner, ""))

	require.NoError(t, s.RenameUser(ctx, alice, "alicia"))

	_, err := s.GetUserByUsername(ctx, "alice")
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	got, err := s.GetUserByUsername(ctx, "alicia")
	require.NoError(t, err)
	assert.Same(t, alice, got)
	assert.Equal(t, "alicia", got.Username())
	assert.Equal(t, []string{"Guitar"}, got.SkillNames())
	assert.Equal(t, 1, count(t, s))

	byID, err := s.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alicia", byID.Username())
}

func TestInMemoryStore_RenameUser_Conflict(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	alice := mustCreate(t, s, "alice", "p1")
	bob := mustCreate(t, s, "bob", "p2")
	bob.AddFriend("carol")

	err := s.RenameUser(ctx, alice, "bob")
	require.ErrorIs(t, err, models.ErrDuplicateUser)

	assert.Equal(t, "alice", alice.Username())
	assert.Equal(t, "bob", bob.Username())
	assert.Equal(t, []string{"carol"}, bob.Friends())

	got, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Same(t, alice, got)

	err = s.RenameUser(ctx, alice, "alice")
	assert.ErrorIs(t, err, models.ErrDuplicateUser)

	err = s.RenameUser(ctx, models.NewUser("nobody", "p"), "somebody")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestInMemoryStore_DeleteUser_LeavesDanglingReferences(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	alice := mustCreate(t, s, "alice", "p1")
	bob := mustCreate(t, s, "bob", "p2")
	alice.AddFriend("bob")
	alice.ReceiveTrade("Piano", "bob")

	err := s.DeleteUser(ctx, bob, "alice")
	require.ErrorIs(t, err, models.ErrUsernameMismatch)
	assert.Equal(t, 2, count(t, s))

	require.NoError(t, s.DeleteUser(ctx, bob, "bob"))

	_, err = s.GetUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	_, err = s.GetUserByID(ctx, bob.ID)
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	assert.Equal(t, []string{"bob"}, alice.Friends())
	assert.Len(t, alice.PendingTrades(), 1)

	err = s.DeleteUser(ctx, bob, "bob")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

// Um nome que mudou de dono depois de lido não pode ser usado para agir
// sobre a conta nova: o diretório só mexe na conta que recebeu.
func TestInMemoryStore_ActsOnAccountNotName(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	alice := mustCreate(t, s, "alice", "p1")

	// alice vira alice2 e um novo "alice" se registra no lugar
	require.NoError(t, s.RenameUser(ctx, alice, "alice2"))
	newcomer := mustCreate(t, s, "alice", "p2")

	// A confirmação com o nome antigo não remove a conta nova
	err := s.DeleteUser(ctx, alice, "alice")
	require.ErrorIs(t, err, models.ErrUsernameMismatch)
	got, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Same(t, newcomer, got)
	assert.Equal(t, 2, count(t, s))

	require.NoError(t, s.RenameUser(ctx, alice, "hijacked"))
	assert.Equal(t, "hijacked", alice.Username())
	assert.Equal(t, "alice", newcomer.Username())
	got, err = s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Same(t, newcomer, got)

	// Conta removida não pode ser renomeada nem removida de novo
	require.NoError(t, s.DeleteUser(ctx, alice, "hijacked"))
	err = s.RenameUser(ctx, alice, "ghost")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	err = s.DeleteUser(ctx, alice, "hijacked")
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	_, err = s.GetUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.Equal(t, 1, count(t, s))
}

func TestInMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewInMemoryStore()
	err := s.CreateUser(ctx, models.NewUser("alice", "p1"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, count(t, s))
}

func TestInMemoryStore_ConcurrentRegisterSameName(t *testing.T) {
	s := NewInMemoryStore()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.CreateUser(context.Background(), models.NewUser("alice", fmt.Sprint(i)))
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, 1, count(t, s))
}
