package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mikheil23/FinalProject/internal/events"
	"github.com/Mikheil23/FinalProject/internal/logger"
	"github.com/Mikheil23/FinalProject/internal/models"
	"github.com/Mikheil23/FinalProject/internal/storage"
)

type LoansService interface {
	AddLoanRequest(ctx context.Context, req models.LoanRequest, userID int64, caller models.Caller) (*models.LoanResponse, error)
	UpdateLoan(ctx context.Context, loanID int64, req models.LoanRequest, userID int64, caller models.Caller) (*models.LoanResponse, error)
	DeleteLoan(ctx context.Context, userID int64, loanID int64, caller models.Caller) (bool, error)
	ViewLoans(ctx context.Context, userID int64, caller models.Caller) ([]models.LoanResponse, error)
	ViewUserCabinet(ctx context.Context, userID int64, caller models.Caller) (*models.UserResponse, error)
}

type Loans struct {
	Users     storage.UsersStorage
	Loans     storage.LoansStorage
	Publisher events.Publisher
}

// Создание сервиса
func NewLoans(users storage.UsersStorage, loans storage.LoansStorage, publisher events.Publisher) *Loans {
	return &Loans{Users: users, Loans: loans, Publisher: publisher}
}

// AddLoanRequest - новая заявка владельца, всегда в статусе InProgress
func (s *Loans) AddLoanRequest(ctx context.Context, req models.LoanRequest, userID int64, caller models.Caller) (*models.LoanResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if err := AuthorizeSelfAction(caller, userID, models.RoleUser, AddLoanAction); err != nil {
		return nil, err
	}
	if _, err := s.activeUser(ctx, userID); err != nil {
		return nil, err
	}

	loan := models.Loan{
		Type:     req.LoanType,
		Amount:   req.Amount,
		Currency: req.Currency,
		Period:   req.Period,
		Status:   models.LoanStatusInProgress,
		UserID:   userID,
	}
	id, err := s.Loans.AddLoan(ctx, loan)
	if err != nil {
		return nil, err
	}
	loan.ID = id

	logger.FromContext(ctx).Infow("Loan request added", "user_id", userID, "loan_id", id)
	events.Emit(ctx, s.Publisher, events.NewEvent(events.LoanCreated, userID, id))

	resp := models.NewLoanResponse(loan)
	return &resp, nil
}

// UpdateLoan - владелец меняет условия заявки, пока она на рассмотрении
func (s *Loans) UpdateLoan(ctx context.Context, loanID int64, req models.LoanRequest, userID int64, caller models.Caller) (*models.LoanResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if err := AuthorizeSelfAction(caller, userID, models.RoleUser, UpdateLoanAction); err != nil {
		return nil, err
	}
	if _, err := s.activeUser(ctx, userID); err != nil {
		return nil, err
	}
	loan, err := s.ownedLoan(ctx, loanID, userID)
	if err != nil {
		return nil, err
	}
	if loan.Status != models.LoanStatusInProgress {
		return nil, InvalidOperation("You can only update loans that are in progress.")
	}

	loan.Type = req.LoanType
	loan.Amount = req.Amount
	loan.Currency = req.Currency
	loan.Period = req.Period
	// статус мог смениться после чтения, тогда UPDATE не применяется
	if err = s.Loans.UpdateLoanTerms(ctx, *loan); err != nil {
		switch {
		case errors.Is(err, storage.ErrLoanNotInProgress):
			return nil, InvalidOperation("You can only update loans that are in progress.")
		case errors.Is(err, storage.ErrLoanNotFound):
			return nil, NotFound("Loan not found.")
		}
		return nil, err
	}

	logger.FromContext(ctx).Infow("Loan updated", "user_id", userID, "loan_id", loanID)
	events.Emit(ctx, s.Publisher, events.NewEvent(events.LoanUpdated, userID, loanID))

	resp := models.NewLoanResponse(*loan)
	return &resp, nil
}

// DeleteLoan - владелец отзывает заявку, пока она на рассмотрении
func (s *Loans) DeleteLoan(ctx context.Context, userID int64, loanID int64, caller models.Caller) (bool, error) {
	if err := AuthorizeSelfAction(caller, userID, models.RoleUser, DeleteLoanAction); err != nil {
		return false, err
	}
	if _, err := s.activeUser(ctx, userID); err != nil {
		return false, err
	}
	loan, err := s.ownedLoan(ctx, loanID, userID)
	if err != nil {
		return false, err
	}
	if loan.Status != models.LoanStatusInProgress {
		return false, InvalidOperation("You can only delete loans that are in progress.")
	}
	if err = s.Loans.DeleteLoan(ctx, loan.ID); err != nil {
		return false, err
	}

	logger.FromContext(ctx).Infow("Loan deleted by owner", "user_id", userID, "loan_id", loanID)
	events.Emit(ctx, s.Publisher, events.NewEvent(events.LoanDeleted, userID, loanID))
	return true, nil
}

// ViewLoans - история заявок владельца
func (s *Loans) ViewLoans(ctx context.Context, userID int64, caller models.Caller) ([]models.LoanResponse, error) {
	if err := AuthorizeOwner(caller, userID, ViewLoansDenied); err != nil {
		return nil, err
	}
	loans, err := s.Loans.GetUserLoans(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(loans) == 0 {
		return nil, NotFound("No loans found for this user.")
	}
	result := make([]models.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		result = append(result, models.NewLoanResponse(loan))
	}
	return result, nil
}

// ViewUserCabinet - профиль владельца
func (s *Loans) ViewUserCabinet(ctx context.Context, userID int64, caller models.Caller) (*models.UserResponse, error) {
	if err := AuthorizeOwner(caller, userID, ViewCabinetDenied); err != nil {
		return nil, err
	}
	user, err := s.Users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, NotFound("User not found.")
		}
		return nil, err
	}
	resp := models.NewUserResponse(*user)
	return &resp, nil
}

func (s *Loans) activeUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.Users.GetUser(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if err := CheckUserActive(user); err != nil {
		logger.FromContext(ctx).Warnw("Inactive user", "user_id", userID)
		return nil, err
	}
	return user, nil
}

func (s *Loans) ownedLoan(ctx context.Context, loanID int64, userID int64) (*models.Loan, error) {
	loan, err := s.Loans.GetUserLoan(ctx, loanID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrLoanNotFound) {
			return nil, NotFound("Loan not found.")
		}
		return nil, err
	}
	return loan, nil
}
