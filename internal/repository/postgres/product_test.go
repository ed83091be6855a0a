package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"rentez-backend/internal/domain"
)

var productTestColumns = []string{
	"id", "supplier_id", "name", "description", "category", "sub_category", "rental_days", "price",
	"compare_at_price", "location", "district", "city", "pincode", "available", "quantity", "images",
	"specification", "supplier_contact", "rental_count", "created_on", "updated_on",
}

func productTestRow(rows *sqlmock.Rows, id int32, name string, rentalCount int32) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, 10, name, "description", "Earthmoving", "", 2, "500",
		nil, "Yard 3", "Chennai", "Chennai", "600001", true, 1, "{img/1.jpg,img/2.jpg}",
		[]byte(`[{"key":"Weight","value":"20t"}]`), "9876543210", rentalCount, now, now)
}

func TestProductRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProductRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products WHERE id").
			WithArgs(int32(2)).
			WillReturnRows(productTestRow(sqlmock.NewRows(productTestColumns), 2, "Excavator", 4))

		p, err := repo.GetByID(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, "Excavator", p.Name)
		assert.Equal(t, []string{"img/1.jpg", "img/2.jpg"}, p.Images)
		assert.Len(t, p.Specification, 1)
		assert.Equal(t, "Weight", p.Specification[0].Key)
		assert.True(t, p.Price.Equal(decimal.NewFromInt(500)), "got %s", p.Price)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products WHERE id").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows(productTestColumns))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestProductRepository_ListPopular(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProductRepository(db)

	rows := sqlmock.NewRows(productTestColumns)
	productTestRow(rows, 3, "Crane", 9)
	productTestRow(rows, 1, "Excavator", 2)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE available = TRUE ORDER BY rental_count DESC").
		WithArgs(int32(8)).
		WillReturnRows(rows)

	products, err := repo.ListPopular(context.Background(), 8)
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "Crane", products[0].Name)
}

func TestProductRepository_IncrementRentalCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProductRepository(db)

	mock.ExpectExec("UPDATE products SET rental_count = rental_count \\+ 1").
		WithArgs(sqlmock.AnyArg(), int32(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.IncrementRentalCount(context.Background(), 2))
}
