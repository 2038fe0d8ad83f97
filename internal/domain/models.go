package domain

import "time"

// OrderQuantity is the number of items dispensed per order. The machine never
// dispenses more than one item per transaction.
const OrderQuantity = 1

// Slots lists the physical dispensing positions of the machine.
var Slots = []int{1, 2}

func ValidSlot(slot int) bool {
	for _, s := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}

type User struct {
	ID        string    `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	RFIDTag   string    `db:"rfid_tag"   json:"rfid_tag"`
	Credits   int64     `db:"credits"    json:"credits"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Product struct {
	ID         string    `db:"id"          json:"id"`
	Name       string    `db:"name"        json:"name"`
	Price      int64     `db:"price"       json:"price"`
	SlotNumber int       `db:"slot_number" json:"slot_number"`
	Stock      int64     `db:"stock"       json:"stock"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"  json:"updated_at"`
}

// Order is one dispense transaction. Price is the unit price charged at
// reservation time; compensation refunds exactly this amount.
type Order struct {
	ID          string        `db:"id"              json:"id"`
	UserID      string        `db:"user_id"         json:"user_id"`
	ProductID   string        `db:"product_id"      json:"product_id"`
	Price       int64         `db:"price"           json:"price"`
	Status      OrderStatus   `db:"status"          json:"status"`
	Outcome     DeviceOutcome `db:"device_response" json:"device_response"`
	CreatedAt   time.Time     `db:"created_at"      json:"created_at"`
	DispensedAt *time.Time    `db:"dispensed_at"    json:"dispensed_at,omitempty"`
}

// NewOrder builds an order in processing state for one unit of product.
func NewOrder(id string, user *User, product *Product, createdAt time.Time) *Order {
	return &Order{
		ID:        id,
		UserID:    user.ID,
		ProductID: product.ID,
		Price:     product.Price,
		Status:    StatusProcessing,
		CreatedAt: createdAt,
	}
}

func (o *Order) Quantity() int {
	return OrderQuantity
}

// Finalize moves a processing order into its terminal state for the given
// device outcome. It reports whether the reservation has to be compensated.
func (o *Order) Finalize(outcome DeviceOutcome, at time.Time) (compensate bool, err error) {
	if outcome.IsZero() {
		return false, InvalidInput("device_response", "device outcome is required")
	}
	if o.Status != StatusProcessing {
		return false, InvalidTransition(o.ID, o.Status, outcome.Status())
	}

	o.Status = outcome.Status()
	o.Outcome = outcome
	if o.Status == StatusDispensed {
		t := at
		o.DispensedAt = &t
		return false, nil
	}
	return true, nil
}

// DispenseInstruction is handed to the device after a reservation succeeds.
type DispenseInstruction struct {
	Action     string `json:"action"`
	SlotNumber int    `json:"slot_number"`
	OrderID    string `json:"order_id"`
}

// TransactionSnapshot records balances around a reservation for audit.
type TransactionSnapshot struct {
	UserCreditsBefore  int64 `json:"user_credits_before"`
	UserCreditsAfter   int64 `json:"user_credits_after"`
	ProductStockBefore int64 `json:"product_stock_before"`
	ProductStockAfter  int64 `json:"product_stock_after"`
	AmountDeducted     int64 `json:"amount_deducted"`
}

type Dispense struct {
	Order       *Order              `json:"order"`
	Instruction DispenseInstruction `json:"device_instructions"`
	Snapshot    TransactionSnapshot `json:"transaction_details"`
}
