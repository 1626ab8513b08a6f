package domain

type Client struct {
	ID         int32  `json:"id"`
	FullName   string `json:"full_name"`
	DocumentID string `json:"document_id"`
	Phone      string `json:"phone"`
	// CurrentScooter is the name of the scooter on the client's most recent
	// active rental, empty when the client has no active rental.
	CurrentScooter string `json:"current_scooter,omitempty"`
	CreatedOn      string `json:"created_on"`
	UpdatedOn      string `json:"updated_on"`
}
