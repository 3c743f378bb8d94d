package service

import (
	"context"
	"fmt"

	"skillswap-backend/internal/models"

	"github.com/rs/zerolog"
)

// AccountService concentra as operações que só tocam a própria conta:
// habilidades, amigos e mensagens
type AccountService struct {
	log zerolog.Logger
}

func NewAccountService(log zerolog.Logger) *AccountService {
	return &AccountService{
		log: log.With().Str("component", "account_service").Logger(),
	}
}

// AddSkill cria a habilidade e retorna a lista atualizada
func (s *AccountService) AddSkill(ctx context.Context, user *models.User, name, level, description string) ([]models.Skill, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: nome da habilidade", models.ErrMissingField)
	}

	lvl, err := models.ParseSkillLevel(level)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	skill := models.NewSkill(name, lvl, description)
	skills := user.AddSkill(skill)

	s.log.Debug().Str("username", user.Username()).Str("skill", skill.String()).Msg("habilidade adicionada")
	return skills, nil
}

func (s *AccountService) ListSkills(ctx context.Context, user *models.User) []models.Skill {
	return user.Skills()
}

// AddFriend não valida se o amigo existe no diretório
func (s *AccountService) AddFriend(ctx context.Context, user *models.User, friend string) ([]string, error) {
	if friend == "" {
		return nil, fmt.Errorf("%w: nome do amigo", models.ErrMissingField)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	friends := user.AddFriend(friend)

	s.log.Debug().Str("username", user.Username()).Str("friend", friend).Msg("amigo adicionado")
	return friends, nil
}

func (s *AccountService) ListFriends(ctx context.Context, user *models.User) []string {
	return user.Friends()
}

// SendMessage adiciona a mensagem ao histórico com o amigo
func (s *AccountService) SendMessage(ctx context.Context, user *models.User, friend, text string) ([]string, error) {
	if friend == "" || text == "" {
		return nil, fmt.Errorf("%w: amigo e mensagem são obrigatórios", models.ErrMissingField)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log, err := user.SendMessage(friend, text)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s'", err, friend)
	}

	s.log.Debug().Str("username", user.Username()).Str("friend", friend).Msg("mensagem enviada")
	return log, nil
}

// Conversation retorna o histórico com o amigo
func (s *AccountService) Conversation(ctx context.Context, user *models.User, friend string) ([]string, error) {
	log, err := user.Messages(friend)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s'", err, friend)
	}
	return log, nil
}
