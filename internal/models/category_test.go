package models_test

import (
	"errors"
	"testing"

	"github.com/pocketledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryCreateGet() {
	category := suite.createTestCategory(models.Category{Name: "Rent"})
	assert.NotZero(suite.T(), category.ID)
	assert.NotZero(suite.T(), category.CreatedAt)

	fetched, err := models.GetCategory(uint64(category.ID), "user-1")
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Rent", fetched.Name)
}

func (suite *TestSuiteStandard) TestCategoryGetNotFound() {
	_, err := models.GetCategory(9999, "user-1")
	assert.True(suite.T(), errors.Is(err, models.ErrCategoryNotFound))
}

// Records of other users are indistinguishable from missing records.
func (suite *TestSuiteStandard) TestCategoryOwnerScoping() {
	category := suite.createTestCategory(models.Category{UserID: "user-1"})

	_, err := models.GetCategory(uint64(category.ID), "user-2")
	assert.True(suite.T(), errors.Is(err, models.ErrCategoryNotFound))

	_, err = models.DeleteCategory(uint64(category.ID), "user-2")
	assert.True(suite.T(), errors.Is(err, models.ErrCategoryNotFound))
}

func (suite *TestSuiteStandard) TestCategoriesOrderAndFilter() {
	_ = suite.createTestCategory(models.Category{Name: "Utilities", Type: "expense"})
	_ = suite.createTestCategory(models.Category{Name: "Salary", Type: "income"})
	_ = suite.createTestCategory(models.Category{Name: "Side gig", Type: "income"})
	_ = suite.createTestCategory(models.Category{Name: "Other", UserID: "user-2"})

	tests := []struct {
		name   string
		filter models.CategoryFilter
		names  []string
	}{
		{"All, ordered by name", models.CategoryFilter{Limit: 100}, []string{"Salary", "Side gig", "Utilities"}},
		{"Income only", models.CategoryFilter{Type: "income", Limit: 100}, []string{"Salary", "Side gig"}},
		{"Name glob", models.CategoryFilter{Name: "S*", Limit: 100}, []string{"Salary", "Side gig"}},
		{"Exact name", models.CategoryFilter{Name: "Utilities", Limit: 100}, []string{"Utilities"}},
		{"Limit", models.CategoryFilter{Limit: 1}, []string{"Salary"}},
		{"Offset", models.CategoryFilter{Limit: 100, Offset: 2}, []string{"Utilities"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			categories, err := models.Categories("user-1", tt.filter)
			assert.Nil(t, err)

			names := make([]string, 0, len(categories))
			for _, category := range categories {
				names = append(names, category.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryDelete() {
	category := suite.createTestCategory(models.Category{Name: "Short lived"})

	deleted, err := models.DeleteCategory(uint64(category.ID), "user-1")
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Short lived", deleted.Name)

	_, err = models.GetCategory(uint64(category.ID), "user-1")
	assert.True(suite.T(), errors.Is(err, models.ErrCategoryNotFound))
}

// Deleting a category does not touch transactions that reference it by name.
func (suite *TestSuiteStandard) TestCategoryDeleteKeepsTransactions() {
	category := suite.createTestCategory(models.Category{Name: "Groceries"})
	transaction := suite.createTestTransaction(models.Transaction{Category: "Groceries"})

	_, err := models.DeleteCategory(uint64(category.ID), "user-1")
	assert.Nil(suite.T(), err)

	fetched, err := models.GetTransaction(uint64(transaction.ID), "user-1")
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Groceries", fetched.Category)
}

func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	suite.CloseDB()

	_, err := models.Categories("user-1", models.CategoryFilter{Limit: 100})
	assert.True(suite.T(), errors.Is(err, models.ErrGeneral))
}
