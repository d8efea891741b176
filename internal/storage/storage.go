package storage

//go:generate mockgen -source=storage.go -destination=mocks/storage_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/Mikheil23/FinalProject/internal/models"
)

type UsersStorage interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	AddUser(ctx context.Context, user models.User, passwordHash string) (int64, error)
	SaveUser(ctx context.Context, user models.User) error
}

type LoansStorage interface {
	GetLoan(ctx context.Context, id int64) (*models.Loan, error)
	GetUserLoan(ctx context.Context, id int64, userID int64) (*models.Loan, error)
	GetUserLoans(ctx context.Context, userID int64) ([]models.Loan, error)
	GetLoans(ctx context.Context) ([]models.Loan, error)
	AddLoan(ctx context.Context, loan models.Loan) (int64, error)
	// UpdateLoanTerms - меняет условия только заявки в статусе InProgress, статус не трогает
	UpdateLoanTerms(ctx context.Context, loan models.Loan) error
	UpdateLoanStatus(ctx context.Context, id int64, status models.LoanStatus) error
	DeleteLoan(ctx context.Context, id int64) error
}

type AccountantsStorage interface {
	GetAccountantByUsername(ctx context.Context, username string) (*models.Accountant, error)
	AddAccountant(ctx context.Context, accountant models.Accountant, passwordHash string) (int64, error)
}

type SessionsStorage interface {
	AddSession(ctx context.Context, tokenID string, userID string, ttl time.Duration) error
	HasSession(ctx context.Context, tokenID string) (bool, error)
	DeleteSession(ctx context.Context, tokenID string) error
}

type Storage struct {
	Users       UsersStorage
	Loans       LoansStorage
	Accountants AccountantsStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{Users: NewUsersStorage(db), Loans: NewLoansStorage(db), Accountants: NewAccountantsStorage(db)}
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrLoanNotFound       = errors.New("loan not found")
	ErrAccountantNotFound = errors.New("accountant not found")

	ErrLoanNotInProgress = errors.New("loan is not in progress")

	ErrAlreadyExists = errors.New("already exists")
)
