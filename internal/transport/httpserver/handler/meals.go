package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	mealsdomain "household-hub-go/internal/domain/meals"
	"household-hub-go/internal/transport/httpserver/middleware"
)

type createMealRequest struct {
	Date        string   `json:"date"`
	MainDish    string   `json:"main_dish"`
	SideDish    *string  `json:"side_dish"`
	Soup        *string  `json:"soup"`
	Ingredients []string `json:"ingredients"`
	Status      string   `json:"status"`
}

type generatePlanRequest struct {
	Days         int      `json:"days"`
	Preferences  []string `json:"preferences"`
	Restrictions []string `json:"restrictions"`
}

type updateMealStatusRequest struct {
	Status string `json:"status"`
}

type mealResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	MainDish    string    `json:"main_dish"`
	SideDish    *string   `json:"side_dish"`
	Soup        *string   `json:"soup"`
	Ingredients []string  `json:"ingredients"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func toMealResponse(m *mealsdomain.Meal) mealResponse {
	ingredients := m.Ingredients
	if ingredients == nil {
		ingredients = mealsdomain.StringList{}
	}
	return mealResponse{
		ID:          m.ID,
		Date:        m.Date.Format("2006-01-02"),
		MainDish:    m.MainDish,
		SideDish:    m.SideDish,
		Soup:        m.Soup,
		Ingredients: ingredients,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}

func toMealResponses(meals []mealsdomain.Meal) []mealResponse {
	response := make([]mealResponse, 0, len(meals))
	for i := range meals {
		response = append(response, toMealResponse(&meals[i]))
	}
	return response
}

func (h *Handlers) ListMeals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	from, err := parseDateParam(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "from must be YYYY-MM-DD")
		return
	}
	to, err := parseDateParam(r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "to must be YYYY-MM-DD")
		return
	}

	result, err := h.Meals.ListMeals(r.Context(), userID, from, to)
	if err != nil {
		h.log.InternalError("meals.list: list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toMealResponses(result))
}

func (h *Handlers) CreateMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req createMealRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.MainDish) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "date and main_dish are required")
		return
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(req.Date))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
		return
	}

	created, err := h.Meals.CreateMeal(r.Context(), mealsdomain.CreateMealInput{
		UserID:      userID,
		Date:        date,
		MainDish:    req.MainDish,
		SideDish:    req.SideDish,
		Soup:        req.Soup,
		Ingredients: req.Ingredients,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, mealsdomain.ErrInvalidInput) {
			h.log.BusinessError("meals.create: rejected input", err, "user_id", userID)
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid meal input")
			return
		}
		h.log.InternalError("meals.create: create failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toMealResponse(created))
}

func (h *Handlers) GenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req generatePlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	saved, err := h.Meals.GeneratePlan(r.Context(), userID, req.Days, req.Preferences, req.Restrictions)
	if err != nil {
		var planErr *mealsdomain.PlanError
		switch {
		case errors.Is(err, mealsdomain.ErrInvalidInput):
			h.log.BusinessError("meals.generate: rejected input", err, "user_id", userID, "days", req.Days)
			writeError(w, http.StatusBadRequest, "invalid_request", "days must be between 1 and 14")
		case errors.Is(err, mealsdomain.ErrGenerationFailed):
			h.log.InternalError("meals.generate: generation failed", err, "user_id", userID)
			writeError(w, http.StatusBadGateway, "external_service_error", "meal plan generation failed")
		case errors.As(err, &planErr):
			h.log.InternalError("meals.generate: partial save", err, "user_id", userID, "saved", len(planErr.Saved))
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error": map[string]string{
					"code":    "partial_save",
					"message": "meal plan was only partially saved",
				},
				"saved_days": planErr.Saved,
				"meals":      toMealResponses(saved),
			})
		default:
			h.log.InternalError("meals.generate: generate failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toMealResponses(saved))
}

func (h *Handlers) UpdateMealStatus(w http.ResponseWriter, r *http.Request) {
	mealID := chi.URLParam(r, "id")

	var req updateMealStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "status is required")
		return
	}

	updated, err := h.Meals.UpdateStatus(r.Context(), mealID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, mealsdomain.ErrInvalidInput):
			h.log.BusinessError("meals.update_status: rejected input", err, "meal_id", mealID)
			writeError(w, http.StatusBadRequest, "invalid_request", "unknown meal status")
		case errors.Is(err, mealsdomain.ErrMealNotFound):
			h.log.BusinessError("meals.update_status: meal not found", err, "meal_id", mealID)
			writeError(w, http.StatusNotFound, "meal_not_found", "meal not found")
		default:
			h.log.InternalError("meals.update_status: update failed", err, "meal_id", mealID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toMealResponse(updated))
}

func (h *Handlers) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	mealID := chi.URLParam(r, "id")

	if err := h.Meals.DeleteMeal(r.Context(), mealID); err != nil {
		if errors.Is(err, mealsdomain.ErrMealNotFound) {
			h.log.BusinessError("meals.delete: meal not found", err, "meal_id", mealID)
			writeError(w, http.StatusNotFound, "meal_not_found", "meal not found")
			return
		}
		h.log.InternalError("meals.delete: delete failed", err, "meal_id", mealID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
