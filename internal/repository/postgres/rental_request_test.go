package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rentez-backend/internal/domain"
)

func TestRentalRequestRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE rental_requests SET status").
			WithArgs(domain.RequestStatusOrdered, sqlmock.AnyArg(), int32(7), domain.RequestStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 7, domain.RequestStatusPending, domain.RequestStatusOrdered)
		assert.NoError(t, err)
	})

	t.Run("Concurrent Writer Wins", func(t *testing.T) {
		// Another writer already moved the request; zero rows match.
		mock.ExpectExec("UPDATE rental_requests SET status").
			WithArgs(domain.RequestStatusOrdered, sqlmock.AnyArg(), int32(7), domain.RequestStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, 7, domain.RequestStatusPending, domain.RequestStatusOrdered)
		assert.ErrorIs(t, err, domain.ErrStatusConflict)
	})
}

func TestRentalRequestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRequestRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM rental_requests WHERE id").
		WithArgs(int32(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRentalRequestRepository_ListBySupplier(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRequestRepository(db)
	ctx := context.Background()
	now := time.Now()

	requestRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"id", "order_id", "product_id", "customer_id", "supplier_id", "from_date",
			"end_date", "status", "order_date", "address", "created_on", "updated_on",
		}).AddRow(1, "ORD-AAAA1111", 2, 3, 4, now, now.Add(48*time.Hour), "Pending", now, "12 Main St", now, now)
	}

	t.Run("All Statuses", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rental_requests WHERE supplier_id").
			WithArgs(int32(4)).
			WillReturnRows(requestRows())

		requests, err := repo.ListBySupplier(ctx, 4, "")
		assert.NoError(t, err)
		assert.Len(t, requests, 1)
		assert.Equal(t, "ORD-AAAA1111", requests[0].OrderID)
		assert.Equal(t, domain.RequestStatusPending, requests[0].Status)
	})

	t.Run("Filtered By Status", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rental_requests WHERE supplier_id = (.+) AND status").
			WithArgs(int32(4), domain.RequestStatusPending).
			WillReturnRows(requestRows())

		requests, err := repo.ListBySupplier(ctx, 4, domain.RequestStatusPending)
		assert.NoError(t, err)
		assert.Len(t, requests, 1)
	})
}

func TestRentalRequestRepository_ActiveRanges(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRequestRepository(db)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT from_date, end_date FROM rental_requests").
		WithArgs(int32(9)).
		WillReturnRows(sqlmock.NewRows([]string{"from_date", "end_date"}).AddRow(from, end))

	ranges, err := repo.ActiveRanges(context.Background(), 9)
	assert.NoError(t, err)
	assert.Len(t, ranges, 1)
	assert.Equal(t, from, ranges[0].FromDate)
	assert.Equal(t, end, ranges[0].EndDate)
}
