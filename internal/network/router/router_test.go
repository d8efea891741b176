package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mikheil23/FinalProject/internal/config"
	"github.com/Mikheil23/FinalProject/internal/events"
	"github.com/Mikheil23/FinalProject/internal/logger"
	"github.com/Mikheil23/FinalProject/internal/models"
	"github.com/Mikheil23/FinalProject/internal/services"
	"github.com/Mikheil23/FinalProject/internal/storage"
	"github.com/Mikheil23/FinalProject/internal/storage/mocks"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type testServer struct {
	handler     http.Handler
	identity    *services.Identity
	users       *mocks.MockUsersStorage
	loans       *mocks.MockLoansStorage
	accountants *mocks.MockAccountantsStorage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	if err := logger.Initialize("error"); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}
	ctrl := gomock.NewController(t)
	cfg := config.DefaultConfig()
	cfg.Auth.RateLimit = 0

	ts := &testServer{
		users:       mocks.NewMockUsersStorage(ctrl),
		loans:       mocks.NewMockLoansStorage(ctrl),
		accountants: mocks.NewMockAccountantsStorage(ctrl),
	}
	identity := services.NewIdentity(cfg, ts.users, ts.accountants, nil)
	ts.identity = identity.(*services.Identity)
	router := NewRouter(cfg, identity,
		services.NewLoans(ts.users, ts.loans, events.NopPublisher{}),
		services.NewAccountant(ts.users, ts.loans, events.NopPublisher{}),
		nil,
	)
	ts.handler = router.HandleRouter()
	return ts
}

func (ts *testServer) token(t *testing.T, id string, role models.Role) string {
	t.Helper()
	token, err := ts.identity.GenerateJWT(id, "tester1", role, uuid.New().String())
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func (ts *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	r := httptest.NewRequest(method, path, &buf)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, r)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body.Message
}

func TestRouter_Guards(t *testing.T) {
	ts := newTestServer(t)

	if w := ts.do(http.MethodGet, "/api/accountant/view-users", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", w.Code)
	}
	if w := ts.do(http.MethodGet, "/api/accountant/view-users", ts.token(t, "1", models.RoleUser), nil); w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for user on accountant route, got %d", w.Code)
	}
	if w := ts.do(http.MethodGet, "/api/user/1/view-loans-history", ts.token(t, "1", models.RoleAccountant), nil); w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for accountant on user route, got %d", w.Code)
	}
}

func TestRouter_UserFlow(t *testing.T) {
	ts := newTestServer(t)
	userToken := ts.token(t, "1", models.RoleUser)
	request := models.LoanRequest{
		LoanType: models.LoanTypeAuto,
		Amount:   decimal.NewFromInt(1000),
		Currency: models.CurrencyGEL,
		Period:   models.PeriodThreeMonth,
	}

	t.Run("Add loan", func(t *testing.T) {
		ts.users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
		ts.loans.EXPECT().AddLoan(gomock.Any(), gomock.Any()).Return(int64(10), nil)

		w := ts.do(http.MethodPost, "/api/user/loan-request", userToken, request)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp models.LoanResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.LoanID != 10 || resp.LoanStatus != models.LoanStatusInProgress || !resp.Amount.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("unexpected loan %+v", resp)
		}
	})
	t.Run("Validation failed", func(t *testing.T) {
		bad := request
		bad.Amount = decimal.Zero
		w := ts.do(http.MethodPost, "/api/user/loan-request", userToken, bad)
		if w.Code != http.StatusBadRequest || message(t, w) != "Validation failed." {
			t.Errorf("Expected 400 validation, got %d: %s", w.Code, w.Body.String())
		}
	})
	t.Run("Foreign history", func(t *testing.T) {
		w := ts.do(http.MethodGet, "/api/user/2/view-loans-history", userToken, nil)
		if w.Code != http.StatusForbidden || message(t, w) != "You can only view your own loans." {
			t.Errorf("Expected 403, got %d: %s", w.Code, w.Body.String())
		}
	})
	t.Run("Update approved loan", func(t *testing.T) {
		ts.users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
		ts.loans.EXPECT().GetUserLoan(gomock.Any(), int64(1), int64(1)).Return(&models.Loan{ID: 1, UserID: 1, Status: models.LoanStatusApproved}, nil)

		w := ts.do(http.MethodPut, "/api/user/users/1/loans/1/update-loan", userToken, request)
		if w.Code != http.StatusConflict || message(t, w) != "You can only update loans that are in progress." {
			t.Errorf("Expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})
	t.Run("Bad path id", func(t *testing.T) {
		w := ts.do(http.MethodDelete, "/api/user/users/1/loans/abc/delete-loan", userToken, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestRouter_AccountantFlow(t *testing.T) {
	ts := newTestServer(t)
	accountantToken := ts.token(t, "3", models.RoleAccountant)

	t.Run("Block already blocked", func(t *testing.T) {
		ts.users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1, IsBlocked: true}, nil)

		w := ts.do(http.MethodPatch, "/api/accountant/block-or-unblock-user/1?isBlocked=true", accountantToken, nil)
		if w.Code != http.StatusConflict || message(t, w) != "User is already blocked." {
			t.Errorf("Expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})
	t.Run("Change status by name", func(t *testing.T) {
		ts.users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
		ts.loans.EXPECT().GetUserLoan(gomock.Any(), int64(2), int64(1)).Return(&models.Loan{ID: 2, UserID: 1}, nil)
		ts.loans.EXPECT().UpdateLoanStatus(gomock.Any(), int64(2), models.LoanStatusApproved).Return(nil)

		w := ts.do(http.MethodPatch, "/api/accountant/change-loan-status/1/2?newStatus=Approved", accountantToken, nil)
		if w.Code != http.StatusOK || message(t, w) != "Loan status successfully changed to Approved." {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
	t.Run("Change status invalid", func(t *testing.T) {
		w := ts.do(http.MethodPatch, "/api/accountant/change-loan-status/1/2?newStatus=Pending", accountantToken, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
	t.Run("Delete missing loan", func(t *testing.T) {
		ts.loans.EXPECT().GetLoan(gomock.Any(), int64(999)).Return(nil, storage.ErrLoanNotFound)

		w := ts.do(http.MethodDelete, "/api/accountant/delete-loan/999", accountantToken, nil)
		if w.Code != http.StatusNotFound || message(t, w) != "Loan not found." {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestRouter_Login(t *testing.T) {
	ts := newTestServer(t)
	ts.users.EXPECT().GetUserByUsername(gomock.Any(), "nobody1").Return(nil, storage.ErrUserNotFound)
	ts.accountants.EXPECT().GetAccountantByUsername(gomock.Any(), "nobody1").Return(nil, storage.ErrAccountantNotFound)

	w := ts.do(http.MethodPost, "/api/auth/login", "", models.LoginRequest{Username: "nobody1", Password: "Passw0rd!"})
	if w.Code != http.StatusUnauthorized || message(t, w) != "Invalid username or password." {
		t.Errorf("Expected 401, got %d: %s", w.Code, w.Body.String())
	}

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, r)
	if rec.Code != http.StatusBadRequest || message(t, rec) != "Invalid request data." {
		t.Errorf("Expected 400 for malformed body, got %d: %s", rec.Code, rec.Body.String())
	}
}
