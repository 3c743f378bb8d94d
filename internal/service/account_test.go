package service

import (
	"context"
	"testing"

	"skillswap-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_AddSkill(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := models.NewUser("alice", "p1")

	skills, err := f.accounts.AddSkill(ctx, alice, "Guitar", "Beginner", "")
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, models.LevelBeginner, skills[0].Level)

	skills, err = f.accounts.AddSkill(ctx, alice, "Guitar", "Beginner", "")
	require.NoError(t, err)
	assert.Len(t, skills, 2, "identical skills are not deduplicated")

	_, err = f.accounts.AddSkill(ctx, alice, "Guitar", "Master", "")
	assert.ErrorIs(t, err, models.ErrInvalidSkillLevel)

	_, err = f.accounts.AddSkill(ctx, alice, "", "Expert", "")
	assert.ErrorIs(t, err, models.ErrMissingField)

	assert.Len(t, f.accounts.ListSkills(ctx, alice), 2)
}

func TestAccountService_AddFriend(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := models.NewUser("alice", "p1")

	friends, err := f.accounts.AddFriend(ctx, alice, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, friends)

	_, err = f.accounts.AddFriend(ctx, alice, "")
	assert.ErrorIs(t, err, models.ErrMissingField)

	assert.Equal(t, []string{"bob"}, f.accounts.ListFriends(ctx, alice))
}

func TestAccountService_Messages(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := models.NewUser("alice", "p1")

	_, err := f.accounts.SendMessage(ctx, alice, "bob", "hi")
	require.ErrorIs(t, err, models.ErrFriendNotFound)

	_, err = f.accounts.AddFriend(ctx, alice, "bob")
	require.NoError(t, err)

	log, err := f.accounts.SendMessage(ctx, alice, "bob", "hi")
	require.NoError(t, err)
	assert.Equal(t, []string{"hi"}, log)

	_, err = f.accounts.SendMessage(ctx, alice, "bob", "")
	assert.ErrorIs(t, err, models.ErrMissingField)

	log, err = f.accounts.Conversation(ctx, alice, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"hi"}, log)

	_, err = f.accounts.Conversation(ctx, alice, "carol")
	assert.ErrorIs(t, err, models.ErrFriendNotFound)
}
