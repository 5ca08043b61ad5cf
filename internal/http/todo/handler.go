package todo

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/dailyhub/internal/todo"
)

type Handler struct {
	svc *todo.Service
}

func NewHandler(svc *todo.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/stats", h.stats)
	r.Delete("/completed", h.clearCompleted)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Post("/{id}/toggle", h.toggle)
	r.Delete("/{id}", h.delete)
}

type createTodoRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Priority    todo.Priority `json:"priority"`
	Category    string        `json:"category"`
	DueDate     string        `json:"dueDate"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Add(todo.CreateParams{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Category:    req.Category,
		DueDate:     req.DueDate,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(t); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type listResponse struct {
	Active    []todo.Todo `json:"active"`
	Completed []todo.Todo `json:"completed"`
}

// list returns the active/completed partition; ?all=true returns the
// flat newest-first list instead.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.URL.Query().Get("all") == "true" {
		if err := json.NewEncoder(w).Encode(h.svc.List()); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	active, completed := h.svc.Partition()
	if err := json.NewEncoder(w).Encode(listResponse{Active: active, Completed: completed}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type statsResponse struct {
	Total             int            `json:"total"`
	Completed         int            `json:"completed"`
	Pending           int            `json:"pending"`
	PendingByCategory map[string]int `json:"pendingByCategory"`
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	total, completed, pending := h.svc.Counts()
	resp := statsResponse{
		Total:             total,
		Completed:         completed,
		Pending:           pending,
		PendingByCategory: h.svc.PendingByCategory(),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, todo.ErrNotFound) {
			http.Error(w, "todo not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(t); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateTodoRequest struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Priority    *todo.Priority `json:"priority,omitempty"`
	Category    *string        `json:"category,omitempty"`
	DueDate     *string        `json:"dueDate,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.svc.Update(id, todo.Patch{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Category:    req.Category,
		DueDate:     req.DueDate,
	})
	if err != nil {
		if errors.Is(err, todo.ErrNotFound) {
			http.Error(w, "todo not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	t, err := h.svc.Get(id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(t); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Toggle(id); err != nil {
		if errors.Is(err, todo.ErrNotFound) {
			http.Error(w, "todo not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	t, err := h.svc.Get(id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(t); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type clearCompletedResponse struct {
	Removed int `json:"removed"`
}

func (h *Handler) clearCompleted(w http.ResponseWriter, r *http.Request) {
	removed := h.svc.ClearCompleted()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(clearCompletedResponse{Removed: removed}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	h.svc.Delete(chi.URLParam(r, "id"))

	w.WriteHeader(http.StatusNoContent)
}
