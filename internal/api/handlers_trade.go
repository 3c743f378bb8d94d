package api

import (
	"context"
	"net/http"

	"skillswap-backend/internal/models"
)

// === Handlers de Troca ===

// handleProposeTrade (POST /trades)
func (h *Handler) handleProposeTrade(w http.ResponseWriter, r *http.Request) {
	proposer := userFromContext(r.Context())

	var req struct {
		Recipient string `json:"recipient" validate:"required"`
		Skill     string `json:"skill" validate:"required"`
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	trade, err := h.tradeService.ProposeTrade(r.Context(), proposer, req.Recipient, req.Skill)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Trade proposed: " + trade.SkillName + " to " + req.Recipient,
		"trade":   trade,
	})
}

// handleGetTrades (GET /me/trades)
func (h *Handler) handleGetTrades(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"pending": newTradeViews(h.tradeService.PendingTrades(r.Context(), user)),
	})
}

// handleAcceptTrade (POST /me/trades/accept)
func (h *Handler) handleAcceptTrade(w http.ResponseWriter, r *http.Request) {
	h.resolveTrade(w, r, h.tradeService.AcceptTrade)
}

// handleDeclineTrade (POST /me/trades/decline)
func (h *Handler) handleDeclineTrade(w http.ResponseWriter, r *http.Request) {
	h.resolveTrade(w, r, h.tradeService.DeclineTrade)
}

type tradeResolver func(ctx context.Context, user *models.User, skillName string) (models.TradeOutcome, []models.TradeRequest, error)

func (h *Handler) resolveTrade(w http.ResponseWriter, r *http.Request, resolve tradeResolver) {
	user := userFromContext(r.Context())

	var req struct {
		Skill string `json:"skill" validate:"required"`
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	outcome, pending, err := resolve(r.Context(), user, req.Skill)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": outcome.Message,
		"outcome": outcome,
		"pending": newTradeViews(pending),
	})
}
