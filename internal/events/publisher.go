package events

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

import (
	"context"
	"time"
)

const (
	LoanCreated       = "loan.created"
	LoanUpdated       = "loan.updated"
	LoanDeleted       = "loan.deleted"
	LoanStatusChanged = "loan.status_changed"
	UserBlocked       = "user.blocked"
	UserUnblocked     = "user.unblocked"
)

// Event - доменное событие, уходит в очередь с именем Type
type Event struct {
	Type       string    `json:"type"`
	UserID     int64     `json:"userId"`
	LoanID     int64     `json:"loanId,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewEvent - событие с текущим временем
func NewEvent(eventType string, userID int64, loanID int64) Event {
	return Event{Type: eventType, UserID: userID, LoanID: loanID, OccurredAt: time.Now().UTC()}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher - используется, когда брокер не настроен
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error {
	return nil
}
