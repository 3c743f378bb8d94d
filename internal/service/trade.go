package service

import (
	"context"
	"errors"
	"fmt"

	"skillswap-backend/internal/models"
	"skillswap-backend/internal/repository"

	"github.com/rs/zerolog"
)

// TradeService lida com propostas de troca entre usuários
type TradeService struct {
	store repository.UserStore
	log   zerolog.Logger
}

// NewTradeService cria um novo serviço de trocas
func NewTradeService(store repository.UserStore, log zerolog.Logger) *TradeService {
	return &TradeService{
		store: store,
		log:   log.With().Str("component", "trade_service").Logger(),
	}
}

// ProposeTrade entrega uma proposta na conta do destinatário. Não confere se
// a habilidade existe em nenhuma das duas contas.
func (s *TradeService) ProposeTrade(ctx context.Context, proposer *models.User, recipientUsername, skillName string) (models.TradeRequest, error) {
	if recipientUsername == "" || skillName == "" {
		return models.TradeRequest{}, fmt.Errorf("%w: destinatário e habilidade são obrigatórios", models.ErrMissingField)
	}

	recipient, err := s.store.GetUserByUsername(ctx, recipientUsername)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.TradeRequest{}, fmt.Errorf("%w: '%s'", models.ErrFriendNotFound, recipientUsername)
		}
		return models.TradeRequest{}, fmt.Errorf("erro interno ao buscar destinatário: %w", err)
	}

	req := recipient.ReceiveTrade(skillName, proposer.Username())

	s.log.Info().
		Str("from", req.From).
		Str("to", recipientUsername).
		Str("skill", skillName).
		Msg("proposta de troca enviada")
	return req, nil
}

func (s *TradeService) PendingTrades(ctx context.Context, user *models.User) []models.TradeRequest {
	return user.PendingTrades()
}

// AcceptTrade aceita a primeira proposta com esse nome de habilidade e
// retorna o resultado junto com a lista pendente atualizada
func (s *TradeService) AcceptTrade(ctx context.Context, user *models.User, skillName string) (models.TradeOutcome, []models.TradeRequest, error) {
	return s.resolve(ctx, user, skillName, user.AcceptTrade)
}

// DeclineTrade recusa a primeira proposta com esse nome de habilidade
func (s *TradeService) DeclineTrade(ctx context.Context, user *models.User, skillName string) (models.TradeOutcome, []models.TradeRequest, error) {
	return s.resolve(ctx, user, skillName, user.DeclineTrade)
}

func (s *TradeService) resolve(
	ctx context.Context,
	user *models.User,
	skillName string,
	apply func(string) (models.TradeOutcome, error),
) (models.TradeOutcome, []models.TradeRequest, error) {
	if skillName == "" {
		return models.TradeOutcome{}, nil, fmt.Errorf("%w: nome da habilidade", models.ErrMissingField)
	}
	if err := ctx.Err(); err != nil {
		return models.TradeOutcome{}, nil, err
	}

	outcome, err := apply(skillName)
	if err != nil {
		return models.TradeOutcome{}, user.PendingTrades(), fmt.Errorf("%w: '%s'", err, skillName)
	}

	s.log.Info().
		Str("username", user.Username()).
		Str("from", outcome.Request.From).
		Str("skill", skillName).
		Str("status", string(outcome.Status)).
		Msg("proposta de troca resolvida")
	return outcome, user.PendingTrades(), nil
}
