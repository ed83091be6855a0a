package jobs

import (
	"context"
	"time"

	"rentez-backend/internal/logger"
)

// MarkReturnDue flags delivered rentals whose end date has passed and notifies
// the suppliers. Moving to Returned stays a supplier action; the job only
// surfaces what is overdue.
func (jr *JobRunner) MarkReturnDue() {
	jr.runWithRecovery("MarkReturnDue", func() {
		ctx := context.Background()

		query := `
			SELECT r.id, r.order_id, r.end_date, p.name, u.email
			FROM rental_requests r
			JOIN products p ON p.id = r.product_id
			JOIN users u ON u.id = r.supplier_id
			WHERE r.status = 'Delivered'
			  AND r.end_date < $1
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now())
		if err != nil {
			logger.Error("Failed to query overdue returns", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id            int32
				orderID       string
				endDate       time.Time
				productName   string
				supplierEmail string
			)
			if err := rows.Scan(&id, &orderID, &endDate, &productName, &supplierEmail); err != nil {
				logger.Error("Failed to scan overdue return", "error", err)
				continue
			}
			count++

			if err := jr.email.SendReturnReminder(ctx, supplierEmail, productName, endDate); err != nil {
				logger.Error("Failed to notify supplier of overdue return",
					"order_id", orderID, "error", err)
				continue
			}
			logger.Debug("Notified supplier of overdue return",
				"request_id", id, "order_id", orderID, "end_date", endDate)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue returns", "error", err)
			return
		}

		logger.Info("Overdue return notifications processed", "count", count)
	})
}

// SendReturnReminders emails customers whose delivered rentals end within the
// next 24 hours.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()

		query := `
			SELECT r.order_id, r.end_date, p.name, u.email
			FROM rental_requests r
			JOIN products p ON p.id = r.product_id
			JOIN users u ON u.id = r.customer_id
			WHERE r.status = 'Delivered'
			  AND r.end_date >= $1
			  AND r.end_date < $2
		`

		now := time.Now()
		rows, err := jr.db.QueryContext(ctx, query, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to query upcoming returns", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				orderID       string
				endDate       time.Time
				productName   string
				customerEmail string
			)
			if err := rows.Scan(&orderID, &endDate, &productName, &customerEmail); err != nil {
				logger.Error("Failed to scan upcoming return", "error", err)
				continue
			}

			if err := jr.email.SendReturnReminder(ctx, customerEmail, productName, endDate); err != nil {
				logger.Error("Failed to send return reminder", "order_id", orderID, "error", err)
				continue
			}
			count++
			logger.Debug("Sent return reminder", "order_id", orderID, "end_date", endDate)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating upcoming returns", "error", err)
			return
		}

		logger.Info("Return reminders sent", "count", count)
	})
}
