package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Routes configura e retorna o roteador Chi
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	// Middlewares globais
	r.Use(middleware.RequestID)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300, // Tempo de cache da preflight
	}))

	r.Get("/healthz", h.handleHealth)

	// Rotas da API V1
	r.Route("/v1", func(r chi.Router) {
		// Endpoints públicos (sem autenticação)
		r.Post("/users/register", h.handleRegisterUser)
		r.Post("/users/login", h.handleLoginUser)

		// Endpoints protegidos (requerem autenticação)
		r.Group(func(r chi.Router) {
			r.Use(h.AuthMiddleware)

			r.Get("/users", h.handleGetAllUsers)
			r.Get("/users/{username}", h.handleGetUser)

			r.Route("/me", func(r chi.Router) {
				r.Get("/", h.handleGetMe)
				r.Patch("/", h.handleUpdateProfile)
				r.Delete("/", h.handleDeleteAccount)

				r.Get("/skills", h.handleGetSkills)
				r.Post("/skills", h.handleAddSkill)

				r.Get("/friends", h.handleGetFriends)
				r.Post("/friends", h.handleAddFriend)

				r.Get("/trades", h.handleGetTrades)
				r.Post("/trades/accept", h.handleAcceptTrade)
				r.Post("/trades/decline", h.handleDeclineTrade)

				r.Get("/messages/{friend}", h.handleGetConversation)
				r.Post("/messages/{friend}", h.handleSendMessage)
			})

			r.Post("/trades", h.handleProposeTrade)
		})
	})

	return r
}
