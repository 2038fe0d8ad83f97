package events

import (
	"time"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/google/uuid"
)

const (
	TopicDispenseRequested = "vending.dispense.requested"
	TopicDispenseFinalized = "vending.dispense.finalized"
)

// Envelope is the JSON record written to the event log. Key selects the
// partition and is not part of the payload.
type Envelope struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Key        string    `json:"-"`
	Payload    any       `json:"payload"`
}

type DispenseRequested struct {
	OrderID     string                     `json:"order_id"`
	UserID      string                     `json:"user_id"`
	ProductID   string                     `json:"product_id"`
	Price       int64                      `json:"price"`
	Instruction domain.DispenseInstruction `json:"device_instructions"`
}

type DispenseFinalized struct {
	OrderID     string               `json:"order_id"`
	UserID      string               `json:"user_id"`
	ProductID   string               `json:"product_id"`
	Status      domain.OrderStatus   `json:"status"`
	Outcome     domain.DeviceOutcome `json:"device_response"`
	Refunded    int64                `json:"refunded"`
	DispensedAt *time.Time           `json:"dispensed_at,omitempty"`
}

func NewDispenseRequested(d *domain.Dispense, at time.Time) Envelope {
	return Envelope{
		EventID:    uuid.NewString(),
		Type:       TopicDispenseRequested,
		OccurredAt: at,
		Key:        d.Order.ID,
		Payload: DispenseRequested{
			OrderID:     d.Order.ID,
			UserID:      d.Order.UserID,
			ProductID:   d.Order.ProductID,
			Price:       d.Order.Price,
			Instruction: d.Instruction,
		},
	}
}

func NewDispenseFinalized(o *domain.Order, at time.Time) Envelope {
	var refunded int64
	if o.Status == domain.StatusFailed {
		refunded = o.Price
	}
	return Envelope{
		EventID:    uuid.NewString(),
		Type:       TopicDispenseFinalized,
		OccurredAt: at,
		Key:        o.ID,
		Payload: DispenseFinalized{
			OrderID:     o.ID,
			UserID:      o.UserID,
			ProductID:   o.ProductID,
			Status:      o.Status,
			Outcome:     o.Outcome,
			Refunded:    refunded,
			DispensedAt: o.DispensedAt,
		},
	}
}
