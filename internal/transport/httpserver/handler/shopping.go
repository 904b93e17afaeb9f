package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	shoppingdomain "household-hub-go/internal/domain/shopping"
)

type addItemRequest struct {
	Name     string  `json:"name"`
	Quantity *string `json:"quantity"`
	Category string  `json:"category"`
}

type updateItemRequest struct {
	Name      *string `json:"name"`
	Quantity  *string `json:"quantity"`
	Category  *string `json:"category"`
	Purchased *bool   `json:"purchased"`
}

type itemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  *string   `json:"quantity"`
	Category  string    `json:"category"`
	Purchased bool      `json:"purchased"`
	CreatedAt time.Time `json:"created_at"`
}

func toItemResponse(i *shoppingdomain.Item) itemResponse {
	return itemResponse{
		ID:        i.ID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Category:  i.Category,
		Purchased: i.Purchased,
		CreatedAt: i.CreatedAt,
	}
}

func (h *Handlers) ListShoppingItems(w http.ResponseWriter, r *http.Request) {
	purchased, err := parseBoolParam(r.URL.Query().Get("purchased"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "purchased must be true or false")
		return
	}

	filter := shoppingdomain.ListFilter{
		Category:  strings.TrimSpace(r.URL.Query().Get("category")),
		Purchased: purchased,
	}

	result, err := h.Shopping.ListItems(r.Context(), filter)
	if err != nil {
		if errors.Is(err, shoppingdomain.ErrInvalidInput) {
			h.log.BusinessError("shopping.list: rejected filter", err)
			writeError(w, http.StatusBadRequest, "invalid_request", "unknown category")
			return
		}
		h.log.InternalError("shopping.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]itemResponse, 0, len(result))
	for i := range result {
		response = append(response, toItemResponse(&result[i]))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) AddShoppingItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	created, err := h.Shopping.AddItem(r.Context(), shoppingdomain.AddItemInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, shoppingdomain.ErrInvalidInput) {
			h.log.BusinessError("shopping.add: rejected input", err)
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid item input")
			return
		}
		h.log.InternalError("shopping.add: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(created))
}

func (h *Handlers) UpdateShoppingItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	updated, err := h.Shopping.UpdateItem(r.Context(), shoppingdomain.UpdateItemInput{
		ID:        itemID,
		Name:      req.Name,
		Quantity:  req.Quantity,
		Category:  req.Category,
		Purchased: req.Purchased,
	})
	if err != nil {
		switch {
		case errors.Is(err, shoppingdomain.ErrInvalidInput):
			h.log.BusinessError("shopping.update: rejected input", err, "item_id", itemID)
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid item input")
		case errors.Is(err, shoppingdomain.ErrItemNotFound):
			h.log.BusinessError("shopping.update: item not found", err, "item_id", itemID)
			writeError(w, http.StatusNotFound, "item_not_found", "item not found")
		default:
			h.log.InternalError("shopping.update: update failed", err, "item_id", itemID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(updated))
}

func (h *Handlers) ToggleShoppingItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")

	toggled, err := h.Shopping.TogglePurchased(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, shoppingdomain.ErrItemNotFound) {
			h.log.BusinessError("shopping.toggle: item not found", err, "item_id", itemID)
			writeError(w, http.StatusNotFound, "item_not_found", "item not found")
			return
		}
		h.log.InternalError("shopping.toggle: toggle failed", err, "item_id", itemID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(toggled))
}

func (h *Handlers) DeleteShoppingItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")

	if err := h.Shopping.DeleteItem(r.Context(), itemID); err != nil {
		if errors.Is(err, shoppingdomain.ErrItemNotFound) {
			h.log.BusinessError("shopping.delete: item not found", err, "item_id", itemID)
			writeError(w, http.StatusNotFound, "item_not_found", "item not found")
			return
		}
		h.log.InternalError("shopping.delete: delete failed", err, "item_id", itemID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
