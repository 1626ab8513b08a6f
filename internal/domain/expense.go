package domain

type Expense struct {
	ID          int32   `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"` // calendar date, yyyy-mm-dd
	Description string  `json:"description"`
	CreatedOn   string  `json:"created_on"`
	UpdatedOn   string  `json:"updated_on"`
}
