package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single income or expense record.
//
// Date holds the business date of the transaction as provided by the user.
// It is stored as a string and compared lexicographically for range filters,
// which is equivalent to chronological order for ISO-8601 timestamps.
// CreatedAt and UpdatedAt are audit timestamps, distinct from Date.
type Transaction struct {
	ID          uint            `json:"id" gorm:"primaryKey" example:"42"`
	UserID      string          `json:"userId" gorm:"index" example:"user-1"` // Owner of the transaction
	Type        string          `json:"type" example:"expense"`               // One of "income", "expense"
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"42.5"`
	Category    string          `json:"category" example:"Food & Dining"` // Category name, not a foreign key
	Description *string         `json:"description" example:"Lunch"`
	Date        string          `json:"date" example:"2024-01-15T00:00:00.000Z"`
	CreatedAt   time.Time       `json:"createdAt" example:"2024-01-15T10:04:05.000000Z"`
	UpdatedAt   time.Time       `json:"updatedAt" example:"2024-01-15T10:04:05.000000Z"`
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.CreatedAt = t.CreatedAt.In(time.UTC)
	t.UpdatedAt = t.UpdatedAt.In(time.UTC)
	return nil
}

// TransactionFilter restricts the transactions returned by Transactions.
type TransactionFilter struct {
	Type     string // Restrict to one transaction type
	Category string // Exact category name
	DateFrom string // Inclusive lower bound on the date field
	DateTo   string // Inclusive upper bound on the date field
	Limit    int
	Offset   int
}

// GetTransaction returns the transaction with this ID owned by userID.
func GetTransaction(id uint64, userID string) (Transaction, error) {
	return first[Transaction](id, userID, ErrTransactionNotFound)
}

// Transactions returns the transactions owned by userID, newest date first.
func Transactions(userID string, filter TransactionFilter) ([]Transaction, error) {
	q := DB.Where("user_id = ?", userID).Order("date DESC")

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if filter.DateFrom != "" {
		q = q.Where("date >= ?", filter.DateFrom)
	}

	if filter.DateTo != "" {
		q = q.Where("date <= ?", filter.DateTo)
	}

	q = q.Limit(filter.Limit).Offset(filter.Offset)

	transactions := make([]Transaction, 0)
	err := q.Find(&transactions).Error
	if err != nil {
		return nil, general(err)
	}

	return transactions, nil
}

// CreateTransaction inserts the transaction and assigns its ID. Both audit
// timestamps are set to the same instant.
func CreateTransaction(transaction *Transaction) error {
	err := DB.Create(transaction).Error
	if err != nil {
		return general(err)
	}

	return nil
}

// UpdateTransaction applies the column updates to the transaction with this
// ID owned by userID and returns the updated record.
//
// Only the columns present in updates change; updated_at is always
// refreshed, even when updates is otherwise empty.
func UpdateTransaction(id uint64, userID string, updates map[string]any) (Transaction, error) {
	transaction, err := GetTransaction(id, userID)
	if err != nil {
		return Transaction{}, err
	}

	updates["updated_at"] = time.Now().In(time.UTC)

	err = DB.Model(&transaction).Updates(updates).Error
	if err != nil {
		return Transaction{}, general(err)
	}

	// Re-read so that the caller gets the record exactly as persisted
	return GetTransaction(id, userID)
}

// DeleteTransaction removes the transaction with this ID owned by userID and
// returns the deleted record.
func DeleteTransaction(id uint64, userID string) (Transaction, error) {
	transaction, err := GetTransaction(id, userID)
	if err != nil {
		return Transaction{}, err
	}

	err = DB.Delete(&transaction).Error
	if err != nil {
		return Transaction{}, general(err)
	}

	return transaction, nil
}
