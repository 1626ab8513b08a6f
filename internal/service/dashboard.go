package service

import (
	"context"
	"fmt"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/repository"
)

type dashboardService struct {
	statsRepo repository.StatsRepository
}

func NewDashboardService(statsRepo repository.StatsRepository) DashboardService {
	return &dashboardService{statsRepo: statsRepo}
}

func (s *dashboardService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	return s.statsRepo.GetDashboardStats(ctx)
}

func (s *dashboardService) GetAnalytics(ctx context.Context) (*domain.AnalyticsData, error) {
	monthly, err := s.statsRepo.GetMonthlyStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("monthly stats: %w", err)
	}

	top, err := s.statsRepo.GetTopScooters(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("top scooters: %w", err)
	}

	stats, err := s.statsRepo.GetDashboardStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	return &domain.AnalyticsData{
		MonthlyStats: monthly,
		TopScooters:  top,
		Tips:         buildTips(stats, monthly),
	}, nil
}

// buildTips produces the rule-based advice strip shown on the dashboard.
func buildTips(stats *domain.DashboardStats, monthly []domain.MonthlyStat) []string {
	var tips []string

	total := stats.TotalScooters
	if total == 0 {
		total = 1
	}
	utilization := float64(stats.ActiveRentals) / float64(total)

	if utilization < 0.3 {
		tips = append(tips, "Utilization is low (< 30%). Consider creating a weekend discount promo.")
	} else if utilization > 0.8 {
		tips = append(tips, "High demand! Your fleet is over 80% rented. Consider acquiring more scooters.")
	}

	var currentRevenue, lastRevenue, currentExpenses float64
	if n := len(monthly); n > 0 {
		currentRevenue = monthly[n-1].Revenue
		currentExpenses = monthly[n-1].Expenses
		if n > 1 {
			lastRevenue = monthly[n-2].Revenue
		}
	}

	if lastRevenue > 0 {
		if currentRevenue > lastRevenue*1.2 {
			tips = append(tips, "Great job! Revenue is up 20% compared to last month.")
		} else if currentRevenue < lastRevenue*0.8 {
			tips = append(tips, "Revenue is down 20%. Check if you need to increase marketing.")
		}
	}

	if currentExpenses > currentRevenue*0.5 {
		tips = append(tips, "Warning: Expenses are eating up more than 50% of your revenue this month.")
	}

	if len(tips) == 0 {
		tips = append(tips, "Operations are running smoothly. Keep up the good work!")
	}

	return tips
}
