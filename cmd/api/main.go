package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/dailyhub/internal/activity"
	"github.com/MrJamesThe3rd/dailyhub/internal/budget"
	"github.com/MrJamesThe3rd/dailyhub/internal/config"
	"github.com/MrJamesThe3rd/dailyhub/internal/expense"
	hubHttp "github.com/MrJamesThe3rd/dailyhub/internal/http"
	activityHandler "github.com/MrJamesThe3rd/dailyhub/internal/http/activity"
	budgetHandler "github.com/MrJamesThe3rd/dailyhub/internal/http/budget"
	expenseHandler "github.com/MrJamesThe3rd/dailyhub/internal/http/expense"
	incomeHandler "github.com/MrJamesThe3rd/dailyhub/internal/http/income"
	noteHandler "github.com/MrJamesThe3rd/dailyhub/internal/http/note"
	pomodoroHandler "github.com/MrJamesThe3rd/dailyhub/internal/http/pomodoro"
	profileHandler "github.com/MrJamesThe3rd/dailyhub/internal/http/profile"
	quotesHandler "github.com/MrJamesThe3rd/dailyhub/internal/http/quotes"
	reminderHandler "github.com/MrJamesThe3rd/dailyhub/internal/http/reminder"
	todoHandler "github.com/MrJamesThe3rd/dailyhub/internal/http/todo"
	"github.com/MrJamesThe3rd/dailyhub/internal/importer"
	"github.com/MrJamesThe3rd/dailyhub/internal/income"
	"github.com/MrJamesThe3rd/dailyhub/internal/note"
	"github.com/MrJamesThe3rd/dailyhub/internal/pomodoro"
	"github.com/MrJamesThe3rd/dailyhub/internal/profile"
	"github.com/MrJamesThe3rd/dailyhub/internal/quotes"
	"github.com/MrJamesThe3rd/dailyhub/internal/reminder"
	"github.com/MrJamesThe3rd/dailyhub/internal/storage"
	"github.com/MrJamesThe3rd/dailyhub/internal/todo"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPath, err := cfg.StoragePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer store.Close()

	expenseSvc, err := expense.NewService(ctx, store)
	if err != nil {
		return err
	}
	defer expenseSvc.Close()

	incomeSvc, err := income.NewService(ctx, store)
	if err != nil {
		return err
	}
	defer incomeSvc.Close()

	budgetSvc, err := budget.NewService(ctx, store, expenseSvc)
	if err != nil {
		return err
	}
	defer budgetSvc.Close()

	todoSvc, err := todo.NewService(ctx, store)
	if err != nil {
		return err
	}
	defer todoSvc.Close()

	reminderSvc, err := reminder.NewService(ctx, store)
	if err != nil {
		return err
	}
	defer reminderSvc.Close()

	noteSvc, err := note.NewService(ctx, store)
	if err != nil {
		return err
	}
	defer noteSvc.Close()

	pomodoroSvc, err := pomodoro.NewService(ctx, store, cfg.Pomodoro.WorkSeconds)
	if err != nil {
		return err
	}
	defer pomodoroSvc.Close()

	timer := pomodoro.NewTimer(pomodoroSvc, pomodoro.Durations{
		Work:       cfg.Pomodoro.WorkSeconds,
		ShortBreak: cfg.Pomodoro.ShortBreakSeconds,
		LongBreak:  cfg.Pomodoro.LongBreakSeconds,
	})
	go timer.Run(ctx)

	checker := reminder.NewChecker(reminderSvc, func(due []reminder.Reminder) {
		for _, r := range due {
			slog.Info("reminder due", "id", r.ID, "title", r.Title, "due", r.DueDateTime)
		}
	})
	go checker.Run(ctx)

	profileSvc := profile.NewService(store)

	quoteClient := quotes.NewClient(quotes.Config{
		PrimaryBaseURL:  cfg.Quotes.PrimaryURL,
		FallbackBaseURL: cfg.Quotes.FallbackURL,
		APIKey:          cfg.Quotes.APIKey,
		Timeout:         cfg.Quotes.Timeout,
	})

	feed := activity.NewFeed(
		activity.Expenses(expenseSvc),
		activity.Incomes(incomeSvc),
		activity.Todos(todoSvc),
		activity.Notes(noteSvc),
		activity.Pomodoro(pomodoroSvc),
	)

	wipe := func(ctx context.Context) error {
		expenseSvc.Clear()
		incomeSvc.Clear()
		pomodoroSvc.Reset()

		for _, t := range todoSvc.List() {
			todoSvc.Delete(t.ID)
		}
		for _, r := range reminderSvc.List() {
			reminderSvc.Delete(r.ID)
		}
		for _, n := range noteSvc.List() {
			noteSvc.Delete(n.ID)
		}
		for _, b := range budgetSvc.List() {
			budgetSvc.Delete(b.ID)
		}

		return profileSvc.Reset(ctx)
	}

	router := hubHttp.New(hubHttp.Handlers{
		Expenses:  expenseHandler.NewHandler(expenseSvc, importer.NewService()),
		Incomes:   incomeHandler.NewHandler(incomeSvc),
		Budgets:   budgetHandler.NewHandler(budgetSvc),
		Todos:     todoHandler.NewHandler(todoSvc),
		Reminders: reminderHandler.NewHandler(reminderSvc),
		Notes:     noteHandler.NewHandler(noteSvc),
		Pomodoro:  pomodoroHandler.NewHandler(pomodoroSvc, timer),
		Activity:  activityHandler.NewHandler(feed),
		Profile:   profileHandler.NewHandler(profileSvc, wipe),
		Quotes:    quotesHandler.NewHandler(quoteClient),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr, "db", dbPath)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
