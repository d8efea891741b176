package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Mikheil23/FinalProject/internal/events"
	evmocks "github.com/Mikheil23/FinalProject/internal/events/mocks"
	"github.com/Mikheil23/FinalProject/internal/models"
	"github.com/Mikheil23/FinalProject/internal/storage"
	"github.com/Mikheil23/FinalProject/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestAccountant_ViewAllUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mocks.NewMockUsersStorage(ctrl)
	loans := mocks.NewMockLoansStorage(ctrl)
	initLogger(t)

	service := NewAccountant(users, loans, events.NopPublisher{})

	t.Run("Success. Username only when credentials exist #1", func(t *testing.T) {
		users.EXPECT().GetUsers(gomock.Any()).Return([]models.User{
			{ID: 1, FirstName: "John", LastName: "Doe", Email: "john@example.com", Age: 30, Username: "john123"},
			{ID: 2, FirstName: "Jane", LastName: "Roe", Email: "jane@example.com", Age: 25, Salary: 900},
		}, nil)

		resp, err := service.ViewAllUsers(context.Background())
		checkError(t, err, "", nil)
		username := "john123"
		expected := []models.UserResponse{
			{UserID: 1, Email: "john@example.com", FirstName: "John", LastName: "Doe", Username: &username, Age: 30},
			{UserID: 2, Email: "jane@example.com", FirstName: "Jane", LastName: "Roe", Age: 25, Salary: 900},
		}
		if diff := cmp.Diff(expected, resp); diff != "" {
			t.Errorf("Response mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("Success. Empty list is not an error #2", func(t *testing.T) {
		users.EXPECT().GetUsers(gomock.Any()).Return(nil, nil)

		resp, err := service.ViewAllUsers(context.Background())
		checkError(t, err, "", nil)
		if resp == nil || len(resp) != 0 {
			t.Errorf("Expected empty list, got %v", resp)
		}
	})
}

func TestAccountant_GetAllLoanRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mocks.NewMockUsersStorage(ctrl)
	loans := mocks.NewMockLoansStorage(ctrl)
	initLogger(t)

	service := NewAccountant(users, loans, events.NopPublisher{})

	// сохранённые суммы не проверяются повторно
	loans.EXPECT().GetLoans(gomock.Any()).Return([]models.Loan{
		{ID: 1, Amount: decimal.NewFromInt(-10), UserID: 1},
		{ID: 2, Amount: decimal.Zero, Status: models.LoanStatusApproved, UserID: 2},
	}, nil)

	resp, err := service.GetAllLoanRequests(context.Background())
	checkError(t, err, "", nil)
	expected := []models.LoanResponse{
		{LoanID: 1, Amount: decimal.NewFromInt(-10)},
		{LoanID: 2, Amount: decimal.Zero, LoanStatus: models.LoanStatusApproved},
	}
	if diff := cmp.Diff(expected, resp, decimalComparer); diff != "" {
		t.Errorf("Response mismatch (-want +got):\n%s", diff)
	}
}

func TestAccountant_BlockOrUnblockUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mocks.NewMockUsersStorage(ctrl)
	loans := mocks.NewMockLoansStorage(ctrl)
	publisher := evmocks.NewMockPublisher(ctrl)
	initLogger(t)

	service := NewAccountant(users, loans, publisher)

	testCases := []struct {
		TestName      string
		IsBlocked     bool
		SetupMocks    func()
		Expected      bool
		ExpectedError string
		ExpectedKind  error
	}{
		{
			TestName:  "Success. Block active user #1",
			IsBlocked: true,
			SetupMocks: func() {
				users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
				users.EXPECT().SaveUser(gomock.Any(), models.User{ID: 1, IsBlocked: true}).Return(nil)
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e events.Event) error {
					if e.Type != events.UserBlocked {
						t.Errorf("unexpected event type %s", e.Type)
					}
					return nil
				})
			},
			Expected: true,
		},
		{
			TestName:  "Success. Unblock blocked user #2",
			IsBlocked: false,
			SetupMocks: func() {
				users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1, IsBlocked: true}, nil)
				users.EXPECT().SaveUser(gomock.Any(), models.User{ID: 1}).Return(nil)
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			Expected: true,
		},
		{
			TestName:  "Error. Already blocked #3",
			IsBlocked: true,
			SetupMocks: func() {
				users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1, IsBlocked: true}, nil)
			},
			ExpectedError: "User is already blocked.",
			ExpectedKind:  ErrInvalidOperation,
		},
		{
			TestName:  "Error. Already unblocked #4",
			IsBlocked: false,
			SetupMocks: func() {
				users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
			},
			ExpectedError: "User is already unblocked.",
			ExpectedKind:  ErrInvalidOperation,
		},
		{
			TestName:  "Error. User not found #5",
			IsBlocked: true,
			SetupMocks: func() {
				users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError: "User not found.",
			ExpectedKind:  ErrNotFound,
		},
		{
			TestName:  "Error. Save failure #6",
			IsBlocked: true,
			SetupMocks: func() {
				users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
				users.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(errors.New("failed to save user"))
			},
			ExpectedError: "failed to save user",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.TestName, func(t *testing.T) {
			tt.SetupMocks()

			ok, err := service.BlockOrUnblockUser(context.Background(), 1, tt.IsBlocked)
			checkError(t, err, tt.ExpectedError, tt.ExpectedKind)
			if ok != tt.Expected {
				t.Errorf("Expected result %v, got %v", tt.Expected, ok)
			}
		})
	}
}

func TestAccountant_ChangeLoanStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mocks.NewMockUsersStorage(ctrl)
	loans := mocks.NewMockLoansStorage(ctrl)
	initLogger(t)

	service := NewAccountant(users, loans, events.NopPublisher{})

	testCases := []struct {
		TestName      string
		NewStatus     models.LoanStatus
		SetupMocks    func()
		Expected      bool
		ExpectedError string
		ExpectedKind  error
	}{
		{
			TestName:  "Success. Approve loan #1",
			NewStatus: models.LoanStatusApproved,
			SetupMocks: func() {
				users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
				loans.EXPECT().GetUserLoan(gomock.Any(), int64(1), int64(1)).Return(&models.Loan{ID: 1, UserID: 1, Amount: decimal.NewFromInt(500)}, nil)
				// пишется только статус, условия заявки не перезаписываются
				loans.EXPECT().UpdateLoanStatus(gomock.Any(), int64(1), models.LoanStatusApproved).Return(nil)
			},
			Expected: true,
		},
		{
			TestName:  "Success. Approved back to in progress #2",
			NewStatus: models.LoanStatusInProgress,
			SetupMocks: func() {
				users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
				loans.EXPECT().GetUserLoan(gomock.Any(), int64(1), int64(1)).Return(&models.Loan{ID: 1, UserID: 1, Status: models.LoanStatusApproved}, nil)
				loans.EXPECT().UpdateLoanStatus(gomock.Any(), int64(1), models.LoanStatusInProgress).Return(nil)
			},
			Expected: true,
		},
		{
			TestName:  "Error. Blocked user #3",
			NewStatus: models.LoanStatusApproved,
			SetupMocks: func() {
				users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1, IsBlocked: true}, nil)
			},
			ExpectedError: "User is blocked.",
			ExpectedKind:  ErrUnauthorized,
		},
		{
			TestName:  "Error. Same status #4",
			NewStatus: models.LoanStatusDenied,
			SetupMocks: func() {
				users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
				loans.EXPECT().GetUserLoan(gomock.Any(), int64(1), int64(1)).Return(&models.Loan{ID: 1, UserID: 1, Status: models.LoanStatusDenied}, nil)
			},
			ExpectedError: "Loan is already denied.",
			ExpectedKind:  ErrInvalidOperation,
		},
		{
			TestName:  "Error. Loan of another user #5",
			NewStatus: models.LoanStatusApproved,
			SetupMocks: func() {
				users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
				loans.EXPECT().GetUserLoan(gomock.Any(), int64(1), int64(1)).Return(nil, storage.ErrLoanNotFound)
			},
			ExpectedError: "Loan not found for the specified user.",
			ExpectedKind:  ErrNotFound,
		},
		{
			TestName:  "Error. User not found #6",
			NewStatus: models.LoanStatusApproved,
			SetupMocks: func() {
				users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError: "User not found.",
			ExpectedKind:  ErrNotFound,
		},
		{
			TestName:  "Error. Loan removed after read #8",
			NewStatus: models.LoanStatusDenied,
			SetupMocks: func() {
				users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
				loans.EXPECT().GetUserLoan(gomock.Any(), int64(1), int64(1)).Return(&models.Loan{ID: 1, UserID: 1}, nil)
				loans.EXPECT().UpdateLoanStatus(gomock.Any(), int64(1), models.LoanStatusDenied).Return(storage.ErrLoanNotFound)
			},
			ExpectedError: "Loan not found for the specified user.",
			ExpectedKind:  ErrNotFound,
		},
		{
			TestName:      "Error. Unknown status #7",
			NewStatus:     models.LoanStatus(9),
			SetupMocks:    func() {},
			ExpectedError: "Loan status must be a valid enum value. Use 0 for InProgress, 1 for Approved, or 2 for Denied.",
			ExpectedKind:  ErrValidation,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.TestName, func(t *testing.T) {
			tt.SetupMocks()

			ok, err := service.ChangeLoanStatus(context.Background(), 1, 1, tt.NewStatus)
			checkError(t, err, tt.ExpectedError, tt.ExpectedKind)
			if ok != tt.Expected {
				t.Errorf("Expected result %v, got %v", tt.Expected, ok)
			}
		})
	}
}

func TestAccountant_DeleteLoan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mocks.NewMockUsersStorage(ctrl)
	loans := mocks.NewMockLoansStorage(ctrl)
	publisher := evmocks.NewMockPublisher(ctrl)
	initLogger(t)

	service := NewAccountant(users, loans, publisher)

	t.Run("Success. Any status removed #1", func(t *testing.T) {
		loans.EXPECT().GetLoan(gomock.Any(), int64(4)).Return(&models.Loan{ID: 4, UserID: 2, Status: models.LoanStatusApproved}, nil)
		loans.EXPECT().DeleteLoan(gomock.Any(), int64(4)).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		ok, err := service.DeleteLoan(context.Background(), 4)
		checkError(t, err, "", nil)
		if !ok {
			t.Errorf("Expected true")
		}
	})
	t.Run("Error. Loan not found #2", func(t *testing.T) {
		loans.EXPECT().GetLoan(gomock.Any(), int64(999)).Return(nil, storage.ErrLoanNotFound)

		ok, err := service.DeleteLoan(context.Background(), 999)
		checkError(t, err, "Loan not found.", ErrNotFound)
		if ok {
			t.Errorf("Expected false")
		}
	})
}
