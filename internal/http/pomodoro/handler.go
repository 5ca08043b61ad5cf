package pomodoro

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/dailyhub/internal/pomodoro"
)

type Handler struct {
	svc   *pomodoro.Service
	timer *pomodoro.Timer
}

func NewHandler(svc *pomodoro.Service, timer *pomodoro.Timer) *Handler {
	return &Handler{svc: svc, timer: timer}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/sessions", h.createSession)
	r.Get("/sessions", h.listSessions)
	r.Delete("/sessions", h.resetSessions)
	r.Delete("/sessions/{id}", h.deleteSession)
	r.Get("/stats", h.stats)
	r.Get("/timer", h.timerState)
	r.Post("/timer/start", h.timerStart)
	r.Post("/timer/pause", h.timerPause)
	r.Post("/timer/resume", h.timerResume)
	r.Post("/timer/reset", h.timerReset)
}

type createSessionRequest struct {
	Start     int64                `json:"start"`
	End       int64                `json:"end"`
	Type      pomodoro.SessionType `json:"type"`
	Completed bool                 `json:"completed"`
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s, err := h.svc.Add(pomodoro.Session{
		Start:     req.Start,
		End:       req.End,
		Type:      req.Type,
		Completed: req.Completed,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(s); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.svc.List()); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	h.svc.Remove(chi.URLParam(r, "id"))

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resetSessions(w http.ResponseWriter, r *http.Request) {
	h.svc.Reset()

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.svc.Stats()); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) timerState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.timer.State()); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type startTimerRequest struct {
	Type    pomodoro.SessionType `json:"type"`
	Seconds int                  `json:"seconds"`
}

// timerStart starts a countdown; zero or missing seconds means the
// configured length for the session type.
func (h *Handler) timerStart(w http.ResponseWriter, r *http.Request) {
	var req startTimerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.timer.Start(req.Type, req.Seconds)

	h.timerState(w, r)
}

func (h *Handler) timerPause(w http.ResponseWriter, r *http.Request) {
	h.timer.Pause()

	h.timerState(w, r)
}

func (h *Handler) timerResume(w http.ResponseWriter, r *http.Request) {
	h.timer.Resume()

	h.timerState(w, r)
}

func (h *Handler) timerReset(w http.ResponseWriter, r *http.Request) {
	h.timer.Reset()

	h.timerState(w, r)
}
