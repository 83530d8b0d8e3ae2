package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
	"github.com/rocketscienceinc/tictactoe-classic/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type sessionUseCase interface {
	CreateSession(ctx context.Context, opts usecase.CreateOptions) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	DeleteSession(ctx context.Context, id string) error

	MakeTurn(ctx context.Context, id string, cell int) (*entity.Session, error)
	Restart(ctx context.Context, id string) (*entity.Session, error)
	ResetScores(ctx context.Context, id string) (*entity.Session, error)
	SwitchPlayers(ctx context.Context, id string) (*entity.Session, error)
	SetMode(ctx context.Context, id string, mode entity.Mode) (*entity.Session, error)
	RenamePlayer(ctx context.Context, id string, slot int, name string) (*entity.Session, error)
}

type Server struct {
	logger   *slog.Logger
	uSession sessionUseCase
}

func New(logger *slog.Logger, uSession sessionUseCase) *Server {
	return &Server{
		logger:   logger.With("component", "rest"),
		uSession: uSession,
	}
}

// Router - builds the HTTP routes.
func (that *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(10 * time.Second))

	router.Get("/ping", that.ping)

	router.Post("/sessions", that.createSession)
	router.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", that.getSession)
		r.Delete("/", that.deleteSession)

		r.Post("/turn", that.makeTurn)
		r.Post("/restart", that.restart)
		r.Post("/scores/reset", that.resetScores)
		r.Post("/players/switch", that.switchPlayers)

		r.Put("/mode", that.setMode)
		r.Put("/players/{slot}", that.renamePlayer)
	})

	return router
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
