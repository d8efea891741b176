package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mikheil23/FinalProject/internal/config"
	"github.com/Mikheil23/FinalProject/internal/events"
	"github.com/Mikheil23/FinalProject/internal/logger"
	"github.com/Mikheil23/FinalProject/internal/network/router"
	"github.com/Mikheil23/FinalProject/internal/services"
	"github.com/Mikheil23/FinalProject/internal/storage"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func Run(config config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()
	if err = db.Initialize(ctx); err != nil {
		return err
	}
	store := storage.NewStorage(db)

	// сессии и события опциональны
	var sessions storage.SessionsStorage
	if config.Broker.RedisURL != "" {
		redisSessions, err := storage.NewSessionsStorage(config.Broker.RedisURL)
		if err != nil {
			return err
		}
		defer redisSessions.Close()
		if err = redisSessions.Ping(ctx); err != nil {
			return fmt.Errorf("error connect redis: %w", err)
		}
		sessions = redisSessions
	}

	var publisher events.Publisher = events.NopPublisher{}
	if config.Broker.RabbitMQURL != "" {
		amqpPublisher := events.NewAMQPPublisher(config.Broker.RabbitMQURL)
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	}

	router := router.NewRouter(config,
		services.NewIdentity(config, store.Users, store.Accountants, sessions),
		services.NewLoans(store.Users, store.Loans, publisher),
		services.NewAccountant(store.Users, store.Loans, publisher),
		sessions,
	)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server on", config.Server.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error listen server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutdown server: %w", err)
		}
		return nil
	})

	err = g.Wait()
	logger.Info("Server stopped")
	return err
}
