package reminder

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/dailyhub/internal/reminder"
)

type Handler struct {
	svc *reminder.Service
	now func() time.Time
}

func NewHandler(svc *reminder.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/due", h.due)
	r.Get("/due-soon", h.dueSoon)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Post("/{id}/toggle", h.toggle)
	r.Delete("/{id}", h.delete)
}

type createReminderRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DueDateTime time.Time         `json:"dueDateTime"`
	Priority    reminder.Priority `json:"priority"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rem, err := h.svc.Add(reminder.CreateParams{
		Title:       req.Title,
		Description: req.Description,
		DueDateTime: req.DueDateTime,
		Priority:    req.Priority,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(rem); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type listResponse struct {
	Active    []reminder.Reminder `json:"active"`
	Completed []reminder.Reminder `json:"completed"`
}

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

func (h *Handler) due(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.svc.Due(h.now())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) dueSoon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.svc.DueSoon(h.now())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	rem, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, reminder.ErrNotFound) {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(rem); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateReminderRequest struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	DueDateTime *time.Time         `json:"dueDateTime,omitempty"`
	Priority    *reminder.Priority `json:"priority,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.svc.Update(id, reminder.Patch{
		Title:       req.Title,
		Description: req.Description,
		DueDateTime: req.DueDateTime,
		Priority:    req.Priority,
	})
	if err != nil {
		if errors.Is(err, reminder.ErrNotFound) {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	rem, err := h.svc.Get(id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(rem); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Toggle(id); err != nil {
		if errors.Is(err, reminder.ErrNotFound) {
			http.Error(w, "reminder not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	rem, err := h.svc.Get(id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(rem); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	h.svc.Delete(chi.URLParam(r, "id"))

	w.WriteHeader(http.StatusNoContent)
}
