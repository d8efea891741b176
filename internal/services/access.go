package services

import (
	"strconv"

	"github.com/Mikheil23/FinalProject/internal/models"
)

// SelfAction - тексты отказов для действия владельца над своими данными
type SelfAction struct {
	RoleDenied  string
	OwnerDenied string
}

var (
	AddLoanAction = SelfAction{
		RoleDenied:  "User does not have sufficient permissions.",
		OwnerDenied: "You can only add loans for your own account.",
	}
	UpdateLoanAction = SelfAction{
		RoleDenied:  "Only users can update loans.",
		OwnerDenied: "You can only update your own loans.",
	}
	DeleteLoanAction = SelfAction{
		RoleDenied:  "Only users can delete loans.",
		OwnerDenied: "You can only delete your own loans.",
	}
)

const (
	ViewLoansDenied   = "You can only view your own loans."
	ViewCabinetDenied = "You can only view your own cabinet."
	InactiveUser      = "Invalid user or user is blocked."
)

// AuthorizeSelfAction - сначала роль, затем владелец
func AuthorizeSelfAction(caller models.Caller, targetUserID int64, required models.Role, action SelfAction) error {
	if caller.Role != required {
		return Unauthorized(action.RoleDenied)
	}
	return AuthorizeOwner(caller, targetUserID, action.OwnerDenied)
}

// AuthorizeOwner - вызывающий должен совпадать с владельцем
func AuthorizeOwner(caller models.Caller, targetUserID int64, message string) error {
	if caller.ID != strconv.FormatInt(targetUserID, 10) {
		return Unauthorized(message)
	}
	return nil
}

func CheckUserActive(user *models.User) error {
	if user == nil || user.IsBlocked {
		return Unauthorized(InactiveUser)
	}
	return nil
}
