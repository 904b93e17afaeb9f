package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	familydomain "household-hub-go/internal/domain/family"
	"household-hub-go/internal/transport/httpserver/middleware"
)

type createFamilyRequest struct {
	Name string `json:"name"`
}

type inviteMemberRequest struct {
	Email    string `json:"email"`
	FamilyID string `json:"family_id"`
}

type familyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type memberResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

func toFamilyResponse(f *familydomain.Family) familyResponse {
	return familyResponse{
		ID:        f.ID,
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
	}
}

func (h *Handlers) GetFamilyMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Families.GetFamilyByUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, familydomain.ErrFamilyNotFound), errors.Is(err, familydomain.ErrMemberNotFound):
			h.log.BusinessError("families.get_me: family not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "family_not_found", "family not found")
		default:
			h.log.InternalError("families.get_me: get family failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toFamilyResponse(result))
}

func (h *Handlers) CreateFamily(w http.ResponseWriter, r *http.Request) {
	var req createFamilyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	result, err := h.Families.CreateFamily(r.Context(), userID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, familydomain.ErrInvalidInput):
			h.log.BusinessError("families.create: rejected input", err, "user_id", userID)
			writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		case errors.Is(err, familydomain.ErrMemberNotFound):
			h.log.BusinessError("families.create: creator not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		default:
			h.log.InternalError("families.create: create family failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toFamilyResponse(result))
}

func (h *Handlers) InviteMember(w http.ResponseWriter, r *http.Request) {
	var req inviteMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.FamilyID) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "email and family_id are required")
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	err := h.Families.InviteMember(r.Context(), userID, req.Email, req.FamilyID)
	if err != nil {
		switch {
		case errors.Is(err, familydomain.ErrInvalidInput):
			h.log.BusinessError("families.invite: rejected input", err, "user_id", userID)
			writeError(w, http.StatusBadRequest, "invalid_request", "email and family_id are required")
		case errors.Is(err, familydomain.ErrMemberNotFound):
			h.log.BusinessError("families.invite: target not found", err, "user_id", userID, "email", req.Email)
			writeError(w, http.StatusNotFound, "user_not_found", "no user registered under that email")
		case errors.Is(err, familydomain.ErrFamilyNotFound):
			h.log.BusinessError("families.invite: family not found", err, "user_id", userID, "family_id", req.FamilyID)
			writeError(w, http.StatusNotFound, "family_not_found", "family not found")
		case errors.Is(err, familydomain.ErrNotMember):
			h.log.BusinessError("families.invite: inviter not a member", err, "user_id", userID, "family_id", req.FamilyID)
			writeError(w, http.StatusForbidden, "not_member", "not a member of this family")
		case errors.Is(err, familydomain.ErrAlreadyMember):
			h.log.BusinessError("families.invite: already a member", err, "user_id", userID, "email", req.Email)
			writeError(w, http.StatusConflict, "already_member", "user is already a member of this family")
		default:
			h.log.InternalError("families.invite: invite failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "invitation accepted"})
}

func (h *Handlers) ListFamilyMembers(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	members, err := h.Families.ListMembers(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, familydomain.ErrMemberNotFound):
			h.log.BusinessError("families.list_members: caller not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		default:
			h.log.InternalError("families.list_members: list failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	response := make([]memberResponse, 0, len(members))
	for _, member := range members {
		response = append(response, memberResponse{
			ID:        member.ID,
			Name:      member.Name,
			AvatarURL: member.AvatarURL,
		})
	}

	writeJSON(w, http.StatusOK, response)
}
