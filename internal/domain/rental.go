package domain

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

type Rental struct {
	ID        int32  `json:"id"`
	ScooterID int32  `json:"scooter_id"`
	ClientID  int32  `json:"client_id"`
	StartDate string `json:"start_date"` // calendar date, yyyy-mm-dd
	EndDate   string `json:"end_date"`   // calendar date, inclusive
	// TotalPrice is derived from the scooter's daily rate and the inclusive
	// day count at create/update time, never taken from the caller.
	TotalPrice    float64       `json:"total_price"`
	AmountPaid    float64       `json:"amount_paid"`
	Status        RentalStatus  `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	HasGuarantee  bool          `json:"has_guarantee"`
	DepositAmount float64       `json:"deposit_amount"`
	Notes         string        `json:"notes"`
	CreatedOn     string        `json:"created_on"`
	UpdatedOn     string        `json:"updated_on"`
}

// RentalWithDetails joins the referenced scooter and client display fields
// onto the rental for list and detail views.
type RentalWithDetails struct {
	Rental
	ScooterName      string `json:"scooter_name"`
	ScooterPlate     string `json:"scooter_plate"`
	ClientName       string `json:"client_name"`
	ClientPhone      string `json:"client_phone"`
	ClientDocumentID string `json:"client_document_id,omitempty"`
}
