package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/dailyhub/internal/http/activity"
	"github.com/MrJamesThe3rd/dailyhub/internal/http/budget"
	"github.com/MrJamesThe3rd/dailyhub/internal/http/expense"
	"github.com/MrJamesThe3rd/dailyhub/internal/http/income"
	"github.com/MrJamesThe3rd/dailyhub/internal/http/note"
	"github.com/MrJamesThe3rd/dailyhub/internal/http/pomodoro"
	"github.com/MrJamesThe3rd/dailyhub/internal/http/profile"
	"github.com/MrJamesThe3rd/dailyhub/internal/http/quotes"
	"github.com/MrJamesThe3rd/dailyhub/internal/http/reminder"
	"github.com/MrJamesThe3rd/dailyhub/internal/http/todo"
)

type Handlers struct {
	Expenses  *expense.Handler
	Incomes   *income.Handler
	Budgets   *budget.Handler
	Todos     *todo.Handler
	Reminders *reminder.Handler
	Notes     *note.Handler
	Pomodoro  *pomodoro.Handler
	Activity  *activity.Handler
	Profile   *profile.Handler
	Quotes    *quotes.Handler
}

func New(h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/expenses", func(r chi.Router) {
			// the CSV import endpoint takes a raw csv body
			r.Use(middleware.AllowContentType("application/json", "text/csv"))
			h.Expenses.Routes(r)
		})

		r.Route("/incomes", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Incomes.Routes(r)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Budgets.Routes(r)
		})

		r.Route("/todos", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Todos.Routes(r)
		})

		r.Route("/reminders", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Reminders.Routes(r)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Notes.Routes(r)
		})

		r.Route("/pomodoro", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Pomodoro.Routes(r)
		})

		r.Route("/activity", h.Activity.Routes)

		r.Route("/profile", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Profile.Routes(r)
		})

		r.Route("/quotes", h.Quotes.Routes)
	})

	return router
}
