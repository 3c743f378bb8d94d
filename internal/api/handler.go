package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"skillswap-backend/internal/auth"
	"skillswap-backend/internal/models"
	"skillswap-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Handler gerencia as dependências para os handlers HTTP
type Handler struct {
	userService    *service.UserService
	accountService *service.AccountService
	tradeService   *service.TradeService
	tokenService   *auth.TokenService
	validate       *validator.Validate
	log            zerolog.Logger
	allowedOrigins []string
}

// NewHandler cria uma nova instância do Handler
func NewHandler(
	userSvc *service.UserService,
	accountSvc *service.AccountService,
	tradeSvc *service.TradeService,
	tokenSvc *auth.TokenService,
	log zerolog.Logger,
	allowedOrigins []string,
) *Handler {
	return &Handler{
		userService:    userSvc,
		accountService: accountSvc,
		tradeService:   tradeSvc,
		tokenService:   tokenSvc,
		validate:       validator.New(),
		log:            log.With().Str("component", "api").Logger(),
		allowedOrigins: allowedOrigins,
	}
}

// === Funções Auxiliares de Resposta ===

func (h *Handler) respondWithError(w http.ResponseWriter, code int, message string) {
	h.respondWithJSON(w, code, map[string]interface{}{
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	})
}

func (h *Handler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.log.Error().Err(err).Msg("erro ao serializar JSON")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":500,"message":"internal error while encoding response"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithServiceError traduz os erros de domínio para status HTTP.
// Qualquer erro desconhecido vira 500 e só aparece no log.
func (h *Handler) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrMissingField), errors.Is(err, models.ErrInvalidSkillLevel):
		h.respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		h.respondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrDuplicateUser), errors.Is(err, models.ErrUsernameMismatch):
		h.respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrFriendNotFound),
		errors.Is(err, models.ErrTradeNotFound),
		errors.Is(err, models.ErrUserNotFound):
		h.respondWithError(w, http.StatusNotFound, err.Error())
	default:
		h.log.Error().
			Err(err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("path", r.URL.Path).
			Msg("erro inesperado no serviço")
		h.respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeAndValidate lê o corpo JSON em dst e aplica as tags `validate`.
// Em caso de erro já responde ao cliente e retorna false.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid JSON payload")
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "invalid data: "+err.Error())
		return false
	}
	return true
}

// pathParam devolve o parâmetro de rota já decodificado. O chi casa a rota
// sobre r.URL.RawPath quando ele existe (caminho com %2F, por exemplo) e aí
// o valor ainda vem escapado; sem RawPath ele já vem de r.URL.Path decodificado.
func pathParam(r *http.Request, name string) (string, error) {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}

// === Schemas de Resposta da API ===

type (
	// UserSummary é a visão pública de uma conta
	UserSummary struct {
		Username string   `json:"username"`
		Skills   []string `json:"skills"`
	}

	// TradeView é uma proposta pendente pronta para exibição
	TradeView struct {
		Skill   string `json:"skill"`
		From    string `json:"from"`
		Summary string `json:"summary"`
	}

	// ConversationView é o histórico com um amigo
	ConversationView struct {
		Friend   string   `json:"friend"`
		Messages []string `json:"messages"`
		Lines    []string `json:"lines"`
	}
)

func newUserSummary(u *models.User) UserSummary {
	skills := u.Skills()
	labels := make([]string, 0, len(skills))
	for _, s := range skills {
		labels = append(labels, s.String())
	}
	return UserSummary{Username: u.Username(), Skills: labels}
}

func newTradeViews(reqs []models.TradeRequest) []TradeView {
	views := make([]TradeView, 0, len(reqs))
	for _, req := range reqs {
		views = append(views, TradeView{Skill: req.SkillName, From: req.From, Summary: req.String()})
	}
	return views
}

// As linhas seguem o formato "<amigo>: <mensagem>"
func newConversationView(friend string, messages []string) ConversationView {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, friend+": "+m)
	}
	return ConversationView{Friend: friend, Messages: messages, Lines: lines}
}
