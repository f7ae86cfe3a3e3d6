package repository

import (
	"context"
	"testing"
	"time"

	"paridhan/internal/domain/model"
	repo "paridhan/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// sqlmockを繋いだ*gorm.DBを作る
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	})

	gdb, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("gorm.Open failed: %v", err)
	}
	return gdb, mock
}

// Test: idと所有者で1件引ける
func TestOrderGorm_FindByIDAndUserID(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewOrderGormRepository(gdb)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "status", "total_amount", "created_at", "updated_at"}).
		AddRow(10, 1, "Pending", 20, now, now)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 AND user_id = \$2 .*FOR UPDATE`).
		WillReturnRows(rows)

	o, err := r.FindByIDAndUserID(context.Background(), 10, 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), o.ID)
	assert.Equal(t, model.OrderStatusPending, o.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Test: 行が無ければErrNotFound
func TestOrderGorm_FindByIDAndUserID_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewOrderGormRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 AND user_id = \$2 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := r.FindByIDAndUserID(context.Background(), 10, 2)

	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Test: statusの更新。0件更新はErrNotFound。
func TestOrderGorm_UpdateStatus(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewOrderGormRepository(gdb)

	mock.ExpectExec(`UPDATE "orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.UpdateStatus(context.Background(), 10, model.OrderStatusCanceled)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderGorm_UpdateStatus_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewOrderGormRepository(gdb)

	mock.ExpectExec(`UPDATE "orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.UpdateStatus(context.Background(), 99, model.OrderStatusCanceled)

	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Test: 注文と明細が同一トランザクションで入る
func TestOrderGorm_Create(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewOrderGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectQuery(`INSERT INTO "order_products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	now := time.Now()
	id, err := r.Create(context.Background(), model.Order{
		UserID:      1,
		Status:      model.OrderStatusPending,
		TotalAmount: 50,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, []model.OrderProduct{
		{ProductID: 101, Quantity: 2},
		{ProductID: 102, Quantity: 1},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Test: 一覧は作成順（id asc）で引く
func TestOrderGorm_ListByUserID(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewOrderGormRepository(gdb)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "status", "total_amount", "created_at", "updated_at"}).
		AddRow(1, 3, "Pending", 20, now, now).
		AddRow(2, 3, "Canceled", 30, now, now)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE user_id = \$1 ORDER BY id asc`).
		WillReturnRows(rows)

	items, err := r.ListByUserID(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, model.OrderStatusCanceled, items[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
