package jobs

import (
	"context"

	"scooter-backoffice/internal/logger"
)

// SendOverdueSummary emails the admin a digest of active rentals whose end
// date has passed. Overdue is a derived view of active rentals, so the job
// never mutates rental status.
func (jr *JobRunner) SendOverdueSummary() {
	jr.runWithRecovery("SendOverdueSummary", func() {
		ctx := context.Background()

		overdue, err := jr.services.Rental.ListOverdueRentals(ctx)
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		if len(overdue) == 0 {
			logger.Info("No overdue rentals")
			return
		}

		for _, rental := range overdue {
			logger.Debug("Rental is overdue",
				"rental_id", rental.ID,
				"scooter", rental.ScooterName,
				"client", rental.ClientName,
				"end_date", rental.EndDate)
		}

		if err := jr.services.Email.SendOverdueSummary(ctx, overdue); err != nil {
			logger.Error("Failed to send overdue summary email", "error", err, "count", len(overdue))
			return
		}

		logger.Info("Overdue summary sent", "count", len(overdue))
	})
}
