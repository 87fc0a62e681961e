package jobs

import (
	"context"

	"carshowroom-backend/internal/logger"
)

const expiryRejectionReason = "Booking expired without a response from the showroom."

// ExpireStaleBookings rejects pending bookings whose expiry date has passed
func (jr *JobRunner) ExpireStaleBookings() {
	jr.runWithRecovery("ExpireStaleBookings", func() {
		ctx := context.Background()

		count, err := jr.store.ExpirePending(ctx, expiryRejectionReason)
		if err != nil {
			logger.Error("Failed to expire stale bookings", "error", err)
			return
		}

		logger.Info("Expired stale bookings", "count", count)
	})
}
