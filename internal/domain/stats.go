package domain

type DashboardStats struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalExpenses     float64 `json:"total_expenses"`
	NetProfit         float64 `json:"net_profit"`
	ActiveRentals     int32   `json:"active_rentals"`
	OverdueRentals    int32   `json:"overdue_rentals"`
	AvailableScooters int32   `json:"available_scooters"`
	TotalScooters     int32   `json:"total_scooters"`
}

// MonthlyStat is one month bucket of the trailing revenue/expense rollup.
type MonthlyStat struct {
	Month    string  `json:"month"` // short month label, e.g. "Jan"
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// TopScooter ranks a scooter by accumulated rental revenue.
type TopScooter struct {
	ID      int32   `json:"id"`
	Name    string  `json:"name"`
	Plate   string  `json:"plate"`
	Trips   int32   `json:"trips"`
	Revenue float64 `json:"revenue"`
}

type AnalyticsData struct {
	MonthlyStats []MonthlyStat `json:"monthly_stats"`
	TopScooters  []TopScooter  `json:"top_scooters"`
	Tips         []string      `json:"tips"`
}
