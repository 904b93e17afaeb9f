package handler

import (
	"errors"
	"net/http"

	userdomain "household-hub-go/internal/domain/user"
	"household-hub-go/internal/transport/httpserver/middleware"
)

type updateProfileRequest struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	profile, err := h.Users.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			h.log.BusinessError("profile.get: user not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
			return
		}
		h.log.InternalError("profile.get: load failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(profile))
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	updated, err := h.Users.UpdateProfile(r.Context(), userdomain.UpdateProfileInput{
		ID:        userID,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrInvalidInput):
			h.log.BusinessError("profile.update: rejected input", err, "user_id", userID)
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid profile input")
		case errors.Is(err, userdomain.ErrUserNotFound):
			h.log.BusinessError("profile.update: user not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		default:
			h.log.InternalError("profile.update: update failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(updated))
}
