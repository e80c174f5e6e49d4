package models

import (
	"time"

	"github.com/ryanuber/go-glob"
)

// Transaction and category types. A category only groups transactions of
// matching type; the two are associated by name, not by foreign key.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Types contains all valid values for the type enum.
var Types = []string{TypeIncome, TypeExpense}

// Category represents a user-defined grouping for transactions.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey" example:"7"`
	UserID    string    `json:"userId" gorm:"index" example:"user-1"` // Owner of the category
	Name      string    `json:"name" example:"Groceries"`
	Type      string    `json:"type" example:"expense"`              // One of "income", "expense"
	Color     *string   `json:"color" example:"#10B981"`             // Hex color for display, optional
	Icon      *string   `json:"icon" example:"shopping-cart"`        // Icon identifier, optional
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:04:05.000000Z"`
}

// CategoryFilter restricts the categories returned by Categories.
type CategoryFilter struct {
	Type   string // Restrict to one transaction type
	Name   string // Glob pattern matched against the name
	Limit  int
	Offset int
}

// GetCategory returns the category with this ID owned by userID.
func GetCategory(id uint64, userID string) (Category, error) {
	return first[Category](id, userID, ErrCategoryNotFound)
}

// Categories returns the categories owned by userID, ordered by name.
func Categories(userID string, filter CategoryFilter) ([]Category, error) {
	q := DB.Where("user_id = ?", userID).Order("name ASC")

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	q = q.Limit(filter.Limit).Offset(filter.Offset)

	categories := make([]Category, 0)
	err := q.Find(&categories).Error
	if err != nil {
		return nil, general(err)
	}

	// The name pattern is matched in Go since SQLite knows no glob
	// syntax with "*" wildcards
	if filter.Name != "" {
		matched := make([]Category, 0, len(categories))
		for _, category := range categories {
			if glob.Glob(filter.Name, category.Name) {
				matched = append(matched, category)
			}
		}
		categories = matched
	}

	return categories, nil
}

// CreateCategory inserts the category and assigns its ID.
func CreateCategory(category *Category) error {
	err := DB.Create(category).Error
	if err != nil {
		return general(err)
	}

	return nil
}

// DeleteCategory removes the category with this ID owned by userID and
// returns the deleted record.
//
// Transactions referencing the category by name are left untouched.
func DeleteCategory(id uint64, userID string) (Category, error) {
	category, err := GetCategory(id, userID)
	if err != nil {
		return Category{}, err
	}

	err = DB.Delete(&category).Error
	if err != nil {
		return Category{}, general(err)
	}

	return category, nil
}
