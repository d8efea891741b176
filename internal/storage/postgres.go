package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/Mikheil23/FinalProject/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"
)

type Database struct {
	Pool   *pgxpool.Pool
	Config *pgx.ConnConfig
	DSN    string

	// повторы подключения при старте
	ConnectAttempts uint64
	ConnectBackoff  time.Duration
}

const (
	CheckExist     = `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname =$1)`
	CreateDatabase = `CREATE DATABASE %s`

	connectAttempts = 5
	connectBackoff  = 500 * time.Millisecond
)

// Создание хранилища
func NewDatabase(dsn string) (*Database, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return &Database{
		Pool:            pool,
		Config:          cfg.ConnConfig,
		DSN:             dsn,
		ConnectAttempts: connectAttempts,
		ConnectBackoff:  connectBackoff,
	}, nil
}

// Инициализация хранилища (создание БД, ожидание готовности, миграция)
func (s *Database) Initialize(ctx context.Context) error {

	if err := s.Connect(ctx); err != nil {
		return fmt.Errorf("error connect database: %w", err)
	}
	if err := Migration(s.DSN); err != nil {
		return fmt.Errorf("error migrate database: %w", err)
	}

	return nil
}

// Connect - создание БД и проверка пула с повторами, БД может подниматься дольше сервиса
func (s *Database) Connect(ctx context.Context) error {
	backoff := retry.WithMaxRetries(s.ConnectAttempts, retry.NewExponential(s.ConnectBackoff))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := s.CreateDatabase(ctx); err != nil {
			logger.FromContext(ctx).Warnw("Database is not ready", "error", err)
			return retry.RetryableError(err)
		}
		if err := s.Pool.Ping(ctx); err != nil {
			logger.FromContext(ctx).Warnw("Database is not ready", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}

//go:embed migrations/*.sql
var embedMigrations embed.FS

func Migration(DatabaseDSN string) error {

	db, err := sql.Open("pgx", DatabaseDSN)
	if err != nil {
		return fmt.Errorf("open db error: %w ", err)
	}
	defer db.Close()
	// используется для внутренней файловой системы (загруженные ресурсы)
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect error: %w ", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose run migrations error:  %w ", err)
	}
	return nil
}

func (s *Database) Close() error {
	s.Pool.Close()
	return nil
}

func (s *Database) CreateDatabase(ctx context.Context) error {
	// goose не умеет создавать БД
	conn, err := pgx.ConnectConfig(ctx, s.Config)
	if err != nil {
		// если не получилось соединиться с БД из строки подключения
		// пробуем использовать дефолтную БД
		cfg := s.Config.Copy()
		cfg.Database = `postgres`
		conn, err = pgx.ConnectConfig(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect database: %w", err)
		}
		var exist bool
		err = conn.QueryRow(ctx, CheckExist, s.Config.Database).Scan(&exist)
		if err != nil {
			conn.Close(ctx)
			return fmt.Errorf("failed to check database exists: %w", err)
		}
		if !exist {
			_, err = conn.Exec(ctx, fmt.Sprintf(CreateDatabase, pgx.Identifier{s.Config.Database}.Sanitize()))
			if err != nil {
				conn.Close(ctx)
				return fmt.Errorf("failed to create database: %w", err)
			}
		}
	}
	defer conn.Close(ctx)
	return nil
}
