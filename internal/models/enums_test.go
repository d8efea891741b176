package models

import "testing"

func TestParseRole(t *testing.T) {
	cases := map[string]Role{"User": RoleUser, "Accountant": RoleAccountant, "user": RoleUnknown, "": RoleUnknown}
	for in, want := range cases {
		if got := ParseRole(in); got != want {
			t.Errorf("ParseRole(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseLoanStatus(t *testing.T) {
	cases := map[string]LoanStatus{
		"Approved":   LoanStatusApproved,
		"denied":     LoanStatusDenied,
		"0":          LoanStatusInProgress,
		"2":          LoanStatusDenied,
		"InProgress": LoanStatusInProgress,
	}
	for in, want := range cases {
		if got := ParseLoanStatus(in); got != want {
			t.Errorf("ParseLoanStatus(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"", "Pending", "7"} {
		if ParseLoanStatus(in).Valid() {
			t.Errorf("ParseLoanStatus(%q) expected invalid status", in)
		}
	}
}

func TestNewUserResponse_NoCredentials(t *testing.T) {
	resp := NewUserResponse(User{ID: 1, Email: "a@b.c"})
	if resp.Username != nil {
		t.Errorf("expected nil username, got %q", *resp.Username)
	}
}
