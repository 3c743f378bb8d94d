package api

import "net/http"

// === Handlers de Habilidades e Amigos ===

// handleAddSkill (POST /me/skills)
func (h *Handler) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req struct {
		Name        string `json:"name" validate:"required"`
		Level       string `json:"level" validate:"required,oneof=Beginner Intermediate Expert"`
		Description string `json:"description"`
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	skills, err := h.accountService.AddSkill(r.Context(), user, req.Name, req.Level, req.Description)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Added skill: " + req.Name,
		"skills":     skills,
		"skillNames": user.SkillNames(),
	})
}

// handleGetSkills (GET /me/skills)
func (h *Handler) handleGetSkills(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"skills":     h.accountService.ListSkills(r.Context(), user),
		"skillNames": user.SkillNames(),
	})
}

// handleAddFriend (POST /me/friends)
func (h *Handler) handleAddFriend(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req struct {
		Username string `json:"username" validate:"required"`
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	friends, err := h.accountService.AddFriend(r.Context(), user, req.Username)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Friend added: " + req.Username,
		"friends": friends,
	})
}

// handleGetFriends (GET /me/friends)
func (h *Handler) handleGetFriends(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"friends": h.accountService.ListFriends(r.Context(), user),
	})
}

// === Handlers de Mensagens ===

// handleSendMessage (POST /me/messages/{friend})
func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	friend, ok := h.friendParam(w, r)
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text" validate:"required"`
	}
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	messages, err := h.accountService.SendMessage(r.Context(), user, friend, req.Text)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message":      "Message sent to " + friend + ": " + req.Text,
		"conversation": newConversationView(friend, messages),
	})
}

// handleGetConversation (GET /me/messages/{friend})
func (h *Handler) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	friend, ok := h.friendParam(w, r)
	if !ok {
		return
	}

	messages, err := h.accountService.Conversation(r.Context(), user, friend)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, newConversationView(friend, messages))
}

func (h *Handler) friendParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	friend, err := pathParam(r, "friend")
	if err != nil || friend == "" {
		h.respondWithError(w, http.StatusBadRequest, "friend username not provided")
		return "", false
	}
	return friend, true
}
