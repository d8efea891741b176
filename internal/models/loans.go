package models

import "github.com/shopspring/decimal"

// Loan - модель кредита из хранилища
type Loan struct {
	ID       int64
	Type     LoanType
	Amount   decimal.Decimal
	Currency Currency
	Period   Period
	Status   LoanStatus
	UserID   int64
}

// LoanRequest - заявка на кредит, приходит извне
type LoanRequest struct {
	LoanType LoanType        `json:"loanType" validate:"enum"`
	Amount   decimal.Decimal `json:"amount" validate:"gt=0"`
	Currency Currency        `json:"currency" validate:"enum"`
	Period   Period          `json:"period" validate:"enum"`
}

// LoanResponse - кредит для выдачи
type LoanResponse struct {
	LoanID     int64           `json:"loanId"`
	LoanType   LoanType        `json:"loanType"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   Currency        `json:"currency"`
	Period     Period          `json:"period"`
	LoanStatus LoanStatus      `json:"loanStatus"`
}

// NewLoanResponse - преобразует кредит в DTO
func NewLoanResponse(l Loan) LoanResponse {
	return LoanResponse{
		LoanID:     l.ID,
		LoanType:   l.Type,
		Amount:     l.Amount,
		Currency:   l.Currency,
		Period:     l.Period,
		LoanStatus: l.Status,
	}
}
