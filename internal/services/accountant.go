package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Mikheil23/FinalProject/internal/events"
	"github.com/Mikheil23/FinalProject/internal/logger"
	"github.com/Mikheil23/FinalProject/internal/models"
	"github.com/Mikheil23/FinalProject/internal/storage"
)

type AccountantService interface {
	ViewAllUsers(ctx context.Context) ([]models.UserResponse, error)
	GetAllLoanRequests(ctx context.Context) ([]models.LoanResponse, error)
	BlockOrUnblockUser(ctx context.Context, userID int64, isBlocked bool) (bool, error)
	ChangeLoanStatus(ctx context.Context, userID int64, loanID int64, newStatus models.LoanStatus) (bool, error)
	DeleteLoan(ctx context.Context, loanID int64) (bool, error)
}

// Accountant - операции бухгалтера, роль проверяется на уровне маршрутов
type Accountant struct {
	Users     storage.UsersStorage
	Loans     storage.LoansStorage
	Publisher events.Publisher
}

// Создание сервиса
func NewAccountant(users storage.UsersStorage, loans storage.LoansStorage, publisher events.Publisher) *Accountant {
	return &Accountant{Users: users, Loans: loans, Publisher: publisher}
}

func (s *Accountant) ViewAllUsers(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.Users.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, models.NewUserResponse(user))
	}
	return result, nil
}

// GetAllLoanRequests - все заявки без фильтрации и повторной валидации
func (s *Accountant) GetAllLoanRequests(ctx context.Context) ([]models.LoanResponse, error) {
	loans, err := s.Loans.GetLoans(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		result = append(result, models.NewLoanResponse(loan))
	}
	return result, nil
}

func (s *Accountant) BlockOrUnblockUser(ctx context.Context, userID int64, isBlocked bool) (bool, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return false, err
	}
	state, eventType := "unblocked", events.UserUnblocked
	if isBlocked {
		state, eventType = "blocked", events.UserBlocked
	}
	if user.IsBlocked == isBlocked {
		return false, InvalidOperation("User is already %s.", state)
	}

	user.IsBlocked = isBlocked
	if err = s.Users.SaveUser(ctx, *user); err != nil {
		return false, err
	}

	logger.FromContext(ctx).Infow("User block state changed", "user_id", userID, "state", state)
	events.Emit(ctx, s.Publisher, events.NewEvent(eventType, userID, 0))
	return true, nil
}

// ChangeLoanStatus - решение по заявке; заявка чужого пользователя считается не найденной
func (s *Accountant) ChangeLoanStatus(ctx context.Context, userID int64, loanID int64, newStatus models.LoanStatus) (bool, error) {
	if !newStatus.Valid() {
		return false, ValidationFailed(errors.New("Loan status must be a valid enum value. Use 0 for InProgress, 1 for Approved, or 2 for Denied."))
	}
	user, err := s.user(ctx, userID)
	if err != nil {
		return false, err
	}
	if user.IsBlocked {
		return false, Unauthorized("User is blocked.")
	}
	loan, err := s.Loans.GetUserLoan(ctx, loanID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrLoanNotFound) {
			return false, NotFound("Loan not found for the specified user.")
		}
		return false, err
	}
	if loan.Status == newStatus {
		return false, InvalidOperation("Loan is already %s.", strings.ToLower(newStatus.String()))
	}

	if err = s.Loans.UpdateLoanStatus(ctx, loan.ID, newStatus); err != nil {
		if errors.Is(err, storage.ErrLoanNotFound) {
			return false, NotFound("Loan not found for the specified user.")
		}
		return false, err
	}

	logger.FromContext(ctx).Infow("Loan status changed", "user_id", userID, "loan_id", loanID, "status", newStatus.String())
	event := events.NewEvent(events.LoanStatusChanged, userID, loanID)
	event.Status = newStatus.String()
	events.Emit(ctx, s.Publisher, event)
	return true, nil
}

func (s *Accountant) DeleteLoan(ctx context.Context, loanID int64) (bool, error) {
	loan, err := s.Loans.GetLoan(ctx, loanID)
	if err != nil {
		if errors.Is(err, storage.ErrLoanNotFound) {
			return false, NotFound("Loan not found.")
		}
		return false, err
	}
	if err = s.Loans.DeleteLoan(ctx, loanID); err != nil {
		return false, err
	}

	logger.FromContext(ctx).Infow("Loan deleted by accountant", "loan_id", loanID)
	events.Emit(ctx, s.Publisher, events.NewEvent(events.LoanDeleted, loan.UserID, loanID))
	return true, nil
}

func (s *Accountant) user(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.Users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, NotFound("User not found.")
		}
		return nil, err
	}
	return user, nil
}
