package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	tasksdomain "household-hub-go/internal/domain/tasks"
)

type createTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	AssigneeID  *string    `json:"assignee_id"`
	Priority    string     `json:"priority"`
	DueAt       *time.Time `json:"due_at"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	AssigneeID  *string    `json:"assignee_id"`
	Priority    *string    `json:"priority"`
	DueAt       *time.Time `json:"due_at"`
	Completed   *bool      `json:"completed"`
}

type taskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	AssigneeID  *string    `json:"assignee_id"`
	Priority    string     `json:"priority"`
	DueAt       *time.Time `json:"due_at"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toTaskResponse(t *tasksdomain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		AssigneeID:  t.AssigneeID,
		Priority:    t.Priority,
		DueAt:       t.DueAt,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
	}
}

func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	completed, err := parseCompletedState(r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "status must be completed or pending")
		return
	}

	filter := tasksdomain.ListFilter{
		AssigneeID: strings.TrimSpace(r.URL.Query().Get("assignee_id")),
		Completed:  completed,
	}

	result, err := h.Tasks.ListTasks(r.Context(), filter)
	if err != nil {
		h.log.InternalError("tasks.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]taskResponse, 0, len(result))
	for i := range result {
		response = append(response, toTaskResponse(&result[i]))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
		return
	}

	created, err := h.Tasks.CreateTask(r.Context(), tasksdomain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Priority:    req.Priority,
		DueAt:       req.DueAt,
	})
	if err != nil {
		if errors.Is(err, tasksdomain.ErrInvalidInput) {
			h.log.BusinessError("tasks.create: rejected input", err)
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid task input")
			return
		}
		h.log.InternalError("tasks.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(created))
}

func (h *Handlers) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	result, err := h.Tasks.GetTask(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, tasksdomain.ErrTaskNotFound) {
			h.log.BusinessError("tasks.get: task not found", err, "task_id", taskID)
			writeError(w, http.StatusNotFound, "task_not_found", "task not found")
			return
		}
		h.log.InternalError("tasks.get: load failed", err, "task_id", taskID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(result))
}

func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	updated, err := h.Tasks.UpdateTask(r.Context(), tasksdomain.UpdateTaskInput{
		ID:          taskID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Priority:    req.Priority,
		DueAt:       req.DueAt,
		Completed:   req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, tasksdomain.ErrInvalidInput):
			h.log.BusinessError("tasks.update: rejected input", err, "task_id", taskID)
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid task input")
		case errors.Is(err, tasksdomain.ErrTaskNotFound):
			h.log.BusinessError("tasks.update: task not found", err, "task_id", taskID)
			writeError(w, http.StatusNotFound, "task_not_found", "task not found")
		default:
			h.log.InternalError("tasks.update: update failed", err, "task_id", taskID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(updated))
}

func (h *Handlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	toggled, err := h.Tasks.ToggleCompletion(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, tasksdomain.ErrTaskNotFound) {
			h.log.BusinessError("tasks.toggle: task not found", err, "task_id", taskID)
			writeError(w, http.StatusNotFound, "task_not_found", "task not found")
			return
		}
		h.log.InternalError("tasks.toggle: toggle failed", err, "task_id", taskID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(toggled))
}

func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	if err := h.Tasks.DeleteTask(r.Context(), taskID); err != nil {
		if errors.Is(err, tasksdomain.ErrTaskNotFound) {
			h.log.BusinessError("tasks.delete: task not found", err, "task_id", taskID)
			writeError(w, http.StatusNotFound, "task_not_found", "task not found")
			return
		}
		h.log.InternalError("tasks.delete: delete failed", err, "task_id", taskID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
