package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mikheil23/FinalProject/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	GetAccountantByUsername = `SELECT ACCOUNTANTS.id, ACCOUNTANTS.first_name, ACCOUNTANTS.last_name,
								      ACCOUNTANT_CREDENTIALS.username, ACCOUNTANT_CREDENTIALS.password
							   FROM ACCOUNTANTS
							   JOIN ACCOUNTANT_CREDENTIALS ON ACCOUNTANT_CREDENTIALS.accountant_id = ACCOUNTANTS.id
							   WHERE ACCOUNTANT_CREDENTIALS.username=$1;`
	InsertAccountant = `INSERT INTO ACCOUNTANTS (first_name, last_name)
						VALUES ($1, $2)
						RETURNING id;`
	InsertAccountantCredentials = `INSERT INTO ACCOUNTANT_CREDENTIALS (accountant_id, username, password)
						VALUES ($1, $2, $3);`
)

type AccountantDatabase struct {
	DB *Database
}

// Создание хранилища
func NewAccountantsStorage(db *Database) AccountantsStorage {
	return &AccountantDatabase{DB: db}
}

func (s *AccountantDatabase) GetAccountantByUsername(ctx context.Context, username string) (*models.Accountant, error) {
	var accountant models.Accountant
	err := s.DB.Pool.QueryRow(ctx, GetAccountantByUsername, username).Scan(
		&accountant.ID,
		&accountant.FirstName,
		&accountant.LastName,
		&accountant.Username,
		&accountant.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountantNotFound
		}
		return nil, fmt.Errorf("failed to get accountant: %w", err)
	}
	return &accountant, nil
}

func (s *AccountantDatabase) AddAccountant(ctx context.Context, accountant models.Accountant, passwordHash string) (int64, error) {
	tx, err := s.DB.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	if err = tx.QueryRow(ctx, InsertAccountant, accountant.FirstName, accountant.LastName).Scan(&id); err != nil {
		return 0, wrapInsertError("accountant", err)
	}
	if _, err = tx.Exec(ctx, InsertAccountantCredentials, id, accountant.Username, passwordHash); err != nil {
		return 0, wrapInsertError("accountant credentials", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}
