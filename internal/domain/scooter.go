package domain

type ScooterStatus string

const (
	ScooterStatusAvailable   ScooterStatus = "available"
	ScooterStatusRented      ScooterStatus = "rented"
	ScooterStatusMaintenance ScooterStatus = "maintenance"
)

type Scooter struct {
	ID               int32         `json:"id"`
	Slug             string        `json:"slug"`
	Name             string        `json:"name"`
	Image            string        `json:"image"`
	Engine           string        `json:"engine"`
	Speed            string        `json:"speed"`
	Price            float64       `json:"price"` // per-day rate
	Status           ScooterStatus `json:"status"`
	Plate            string        `json:"plate"`
	Quantity         int32         `json:"quantity"`
	MaintenanceCount int32         `json:"maintenance_count"`
	// AvailableCount is derived: quantity - active rentals - maintenance_count.
	AvailableCount  int32  `json:"available_count"`
	LastMaintenance string `json:"last_maintenance"`
	CreatedOn       string `json:"created_on"`
	UpdatedOn       string `json:"updated_on"`
}
