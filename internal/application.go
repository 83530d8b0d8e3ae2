package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-classic/internal/config"
	"github.com/rocketscienceinc/tictactoe-classic/internal/repository"
	"github.com/rocketscienceinc/tictactoe-classic/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-classic/internal/service"
	"github.com/rocketscienceinc/tictactoe-classic/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-classic/transport/rest"
	"github.com/rocketscienceinc/tictactoe-classic/transport/websocket"
)

const janitorInterval = time.Minute

var ErrAddrNotFound = errors.New("redis address is not configured")

// RunApp - wires the session stack and serves REST and WebSocket until a signal arrives
// or one of the servers fails.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessionRepo, closeStorage, err := openSessionStorage(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	sessionUseCase := usecase.NewSessionUseCase(
		logger,
		service.NewSessionService(sessionRepo),
		service.NewGamePlayService(logger, service.NewBotService(nil), conf.AI.Difficulty),
		usecase.TimeScheduler{},
		conf.AI.MoveDelay,
	)

	servers := []server{
		{name: "HTTP", port: conf.HTTPPort, start: rest.New(logger, sessionUseCase).Start},
		{name: "WebSocket", port: conf.SocketPort, start: websocket.New(logger, sessionUseCase).Start},
	}

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		srv := srv
		go func() {
			log.Info("starting server", "server", srv.name, "port", srv.port)
			if err := srv.start(ctx, srv.port); err != nil {
				errCh <- fmt.Errorf("%s server error: %w", srv.name, err)
			}
		}()
	}

	select {
	case err = <-errCh:
		log.Error("server failed", "error", err)
		return err
	case <-ctx.Done():
		log.Info("shutting down", "cause", context.Cause(ctx))
		return nil
	}
}

type server struct {
	name  string
	port  string
	start func(ctx context.Context, port string) error
}

// openSessionStorage - picks the session store from config. The returned func releases it.
func openSessionStorage(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.SessionRepository, func(), error) {
	log := logger.With("component", "storage")

	switch conf.Storage.Driver {
	case config.StorageRedis:
		addr := conf.Redis.GetRedisAddr()
		if addr == "" {
			return nil, nil, ErrAddrNotFound
		}

		client, err := storage.New(ctx, addr)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}

		log.Info("using redis session storage", "addr", addr, "ttl", conf.Storage.SessionTTL)

		release := func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close redis client", "error", err)
			}
		}

		return repository.NewSessionRepository(client, conf.Storage.SessionTTL), release, nil

	default:
		sessions := repository.NewMemorySessionRepository(conf.Storage.SessionTTL)
		go sessions.RunJanitor(ctx, janitorInterval, logger)

		log.Info("using in-memory session storage", "ttl", conf.Storage.SessionTTL)

		return sessions, func() {}, nil
	}
}
