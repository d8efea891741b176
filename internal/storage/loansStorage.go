package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mikheil23/FinalProject/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	selectLoan = `SELECT id, loan_type, amount, currency, period, status, user_id FROM LOANS`

	GetLoan      = selectLoan + ` WHERE id=$1;`
	GetUserLoan  = selectLoan + ` WHERE id=$1 AND user_id=$2;`
	GetUserLoans = selectLoan + ` WHERE user_id=$1 ORDER BY id;`
	GetLoans     = selectLoan + ` ORDER BY id;`

	InsertLoan = `INSERT INTO LOANS (loan_type, amount, currency, period, status, user_id)
					VALUES ($1, $2, $3, $4, $5, $6)
					RETURNING id;`
	UpdateLoanTerms = `UPDATE LOANS
					   SET loan_type = $1,
					       amount = $2,
					       currency = $3,
					       period = $4
					   WHERE id = $5 AND status = $6;`
	UpdateLoanStatus = `UPDATE LOANS SET status = $1 WHERE id = $2;`
	LoanExists       = `SELECT EXISTS(SELECT 1 FROM LOANS WHERE id=$1);`
	DeleteLoan       = `DELETE FROM LOANS WHERE id=$1;`
)

type LoanDatabase struct {
	DB *Database
}

// Создание хранилища
func NewLoansStorage(db *Database) LoansStorage {
	return &LoanDatabase{DB: db}
}

func scanLoan(row pgx.Row) (*models.Loan, error) {
	var loan models.Loan
	err := row.Scan(
		&loan.ID,
		&loan.Type,
		&loan.Amount,
		&loan.Currency,
		&loan.Period,
		&loan.Status,
		&loan.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

func (s *LoanDatabase) getLoan(ctx context.Context, query string, args ...any) (*models.Loan, error) {
	loan, err := scanLoan(s.DB.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}
	return loan, nil
}

func (s *LoanDatabase) getLoans(ctx context.Context, query string, args ...any) ([]models.Loan, error) {
	rows, err := s.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get loans: %w", err)
	}
	defer rows.Close()

	var loans []models.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, *loan)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return loans, nil
}

func (s *LoanDatabase) GetLoan(ctx context.Context, id int64) (*models.Loan, error) {
	return s.getLoan(ctx, GetLoan, id)
}

func (s *LoanDatabase) GetUserLoan(ctx context.Context, id int64, userID int64) (*models.Loan, error) {
	return s.getLoan(ctx, GetUserLoan, id, userID)
}

func (s *LoanDatabase) GetUserLoans(ctx context.Context, userID int64) ([]models.Loan, error) {
	return s.getLoans(ctx, GetUserLoans, userID)
}

func (s *LoanDatabase) GetLoans(ctx context.Context) ([]models.Loan, error) {
	return s.getLoans(ctx, GetLoans)
}

func (s *LoanDatabase) AddLoan(ctx context.Context, loan models.Loan) (int64, error) {
	var id int64
	err := s.DB.Pool.QueryRow(ctx, InsertLoan,
		loan.Type,
		loan.Amount,
		loan.Currency,
		loan.Period,
		loan.Status,
		loan.UserID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to add loan: %w", err)
	}
	return id, nil
}

// UpdateLoanTerms - условие на статус в самом UPDATE: решение бухгалтера между чтением и записью не затирается
func (s *LoanDatabase) UpdateLoanTerms(ctx context.Context, loan models.Loan) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateLoanTerms,
		loan.Type,
		loan.Amount,
		loan.Currency,
		loan.Period,
		loan.ID,
		models.LoanStatusInProgress,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan terms: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return s.missingLoan(ctx, loan.ID)
	}
	return nil
}

func (s *LoanDatabase) UpdateLoanStatus(ctx context.Context, id int64, status models.LoanStatus) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateLoanStatus, status, id)
	if err != nil {
		return fmt.Errorf("failed to update loan status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLoanNotFound
	}
	return nil
}

// missingLoan - почему UPDATE не затронул строк: заявки нет или она уже не на рассмотрении
func (s *LoanDatabase) missingLoan(ctx context.Context, id int64) error {
	var exists bool
	if err := s.DB.Pool.QueryRow(ctx, LoanExists, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check loan: %w", err)
	}
	if !exists {
		return ErrLoanNotFound
	}
	return ErrLoanNotInProgress
}

func (s *LoanDatabase) DeleteLoan(ctx context.Context, id int64) error {
	tag, err := s.DB.Pool.Exec(ctx, DeleteLoan, id)
	if err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLoanNotFound
	}
	return nil
}
