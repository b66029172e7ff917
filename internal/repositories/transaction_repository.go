package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vitalis/internal/models/db_models"
)

// TransactionRepository is append-only from the lifecycle flows; there is
// deliberately no update or delete.
type TransactionRepository interface {
	Insert(ctx context.Context, txn *db_models.Transaction) error
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]db_models.Transaction, error)
	ListRecent(ctx context.Context, limit int) ([]db_models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Insert(ctx context.Context, txn *db_models.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *transactionRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}

func (r *transactionRepository) ListRecent(ctx context.Context, limit int) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Member").
		Order("created_at DESC").
		Limit(limit).
		Find(&txns).Error
	return txns, err
}
