package models

import (
	"strconv"
	"strings"
)

// Role - роль участника системы
type Role int

const (
	RoleUnknown Role = iota
	RoleUser
	RoleAccountant
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "User"
	case RoleAccountant:
		return "Accountant"
	default:
		return "Unknown"
	}
}

// ParseRole - преобразует значение claim'а токена в роль
func ParseRole(value string) Role {
	switch strings.TrimSpace(value) {
	case "User":
		return RoleUser
	case "Accountant":
		return RoleAccountant
	default:
		return RoleUnknown
	}
}

// LoanType - вид кредита
type LoanType int

const (
	LoanTypeFast LoanType = iota
	LoanTypeAuto
	LoanTypeInstallement
)

func (t LoanType) Valid() bool {
	return t >= LoanTypeFast && t <= LoanTypeInstallement
}

func (t LoanType) String() string {
	switch t {
	case LoanTypeFast:
		return "Fast"
	case LoanTypeAuto:
		return "Auto"
	case LoanTypeInstallement:
		return "Installement"
	default:
		return "Unknown"
	}
}

// Currency - валюта кредита
type Currency int

const (
	CurrencyUSD Currency = iota
	CurrencyEUR
	CurrencyGEL
)

func (c Currency) Valid() bool {
	return c >= CurrencyUSD && c <= CurrencyGEL
}

func (c Currency) String() string {
	switch c {
	case CurrencyUSD:
		return "USD"
	case CurrencyEUR:
		return "EUR"
	case CurrencyGEL:
		return "GEL"
	default:
		return "Unknown"
	}
}

// Period - срок кредита
type Period int

const (
	PeriodOneMonth Period = iota
	PeriodThreeMonth
	PeriodSixMonth
)

func (p Period) Valid() bool {
	return p >= PeriodOneMonth && p <= PeriodSixMonth
}

func (p Period) String() string {
	switch p {
	case PeriodOneMonth:
		return "OneMonth"
	case PeriodThreeMonth:
		return "ThreeMonth"
	case PeriodSixMonth:
		return "SixMonth"
	default:
		return "Unknown"
	}
}

// LoanStatus - статус заявки на кредит
type LoanStatus int

const (
	LoanStatusInProgress LoanStatus = iota
	LoanStatusApproved
	LoanStatusDenied
)

func (s LoanStatus) Valid() bool {
	return s >= LoanStatusInProgress && s <= LoanStatusDenied
}

func (s LoanStatus) String() string {
	switch s {
	case LoanStatusInProgress:
		return "InProgress"
	case LoanStatusApproved:
		return "Approved"
	case LoanStatusDenied:
		return "Denied"
	default:
		return "Unknown"
	}
}

// ParseLoanStatus - статус по имени (без учёта регистра) или номеру; иначе невалидное значение
func ParseLoanStatus(value string) LoanStatus {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		return LoanStatus(n)
	}
	for s := LoanStatusInProgress; s <= LoanStatusDenied; s++ {
		if strings.EqualFold(s.String(), value) {
			return s
		}
	}
	return LoanStatus(-1)
}
