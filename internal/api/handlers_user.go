package api

import "net/http"

// === Handlers de Usuário ===

// handleRegisterUser (POST /users/register)
func (h *Handler) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.userService.Register(r.Context(), req.Username, req.Password); err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, map[string]string{"message": "Registration successful! Please log in."})
}

// handleLoginUser (POST /users/login)
func (h *Handler) handleLoginUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.userService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"token":   session.Token,
		"message": "Welcome, " + session.User.Username() + "!",
		"user":    session.User.Snapshot(),
	})
}

// handleGetAllUsers (GET /users)
func (h *Handler) handleGetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	response := make([]UserSummary, 0, len(users))
	for _, u := range users {
		response = append(response, newUserSummary(u))
	}
	h.respondWithJSON(w, http.StatusOK, response)
}

// handleGetUser (GET /users/{username})
func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	username, err := pathParam(r, "username")
	if err != nil || username == "" {
		h.respondWithError(w, http.StatusBadRequest, "username not provided")
		return
	}

	user, ok := h.userService.Lookup(r.Context(), username)
	if !ok {
		h.respondWithError(w, http.StatusNotFound, "user not found")
		return
	}
	h.respondWithJSON(w, http.StatusOK, newUserSummary(user))
}

// === Handlers de Perfil ===

// handleGetMe (GET /me)
func (h *Handler) handleGetMe(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	h.respondWithJSON(w, http.StatusOK, user.Snapshot())
}

// handleUpdateProfile (PATCH /me)
func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.userService.UpdateProfile(r.Context(), user, req.Username, req.Password); err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully!",
		"user":    user.Snapshot(),
	})
}

// handleDeleteAccount (DELETE /me)
func (h *Handler) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req struct {
		ConfirmUsername string `json:"confirmUsername" validate:"required"`
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.userService.DeleteAccount(r.Context(), user, req.ConfirmUsername); err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]string{"message": "Account deleted."})
}

// handleHealth (GET /healthz)
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	n, err := h.userService.UserCount(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "users": n})
}
