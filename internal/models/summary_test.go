package models_test

import (
	"errors"

	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSummarize() {
	for i := 0; i < 3; i++ {
		_ = suite.createTestTransaction(models.Transaction{
			Type:     models.TypeIncome,
			Amount:   decimal.NewFromInt(100),
			Category: "Salary",
			Date:     "2024-01-10T00:00:00.000Z",
		})
	}

	for i := 0; i < 2; i++ {
		_ = suite.createTestTransaction(models.Transaction{
			Type:     models.TypeExpense,
			Amount:   decimal.NewFromInt(50),
			Category: "Groceries",
			Date:     "2024-01-20T00:00:00.000Z",
		})
	}

	// Another user's transaction never shows up
	_ = suite.createTestTransaction(models.Transaction{
		UserID: "user-2",
		Type:   models.TypeIncome,
		Amount: decimal.NewFromInt(1000),
	})

	summary, err := models.Summarize("user-1", "", "")
	assert.Nil(suite.T(), err)

	assert.True(suite.T(), summary.TotalIncome.Equal(decimal.NewFromInt(300)), "total income is %s", summary.TotalIncome)
	assert.True(suite.T(), summary.TotalExpenses.Equal(decimal.NewFromInt(100)), "total expenses is %s", summary.TotalExpenses)
	assert.True(suite.T(), summary.Balance.Equal(decimal.NewFromInt(200)), "balance is %s", summary.Balance)
	assert.Equal(suite.T(), int64(5), summary.TransactionCount)

	if assert.Len(suite.T(), summary.CategoryBreakdown, 2) {
		assert.Equal(suite.T(), "Groceries", summary.CategoryBreakdown[0].Category)
		assert.Equal(suite.T(), "Salary", summary.CategoryBreakdown[1].Category)
	}
}

// A category used for both incomes and expenses gets one breakdown entry
// per type.
func (suite *TestSuiteStandard) TestSummarizeMixedCategory() {
	_ = suite.createTestTransaction(models.Transaction{Type: models.TypeExpense, Amount: decimal.NewFromInt(30), Category: "Household"})
	_ = suite.createTestTransaction(models.Transaction{Type: models.TypeIncome, Amount: decimal.NewFromInt(20), Category: "Household"})

	summary, err := models.Summarize("user-1", "", "")
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), summary.CategoryBreakdown, 2) {
		// Within a category, expense sorts before income
		assert.Equal(suite.T(), models.TypeExpense, summary.CategoryBreakdown[0].Type)
		assert.True(suite.T(), summary.CategoryBreakdown[0].Total.Equal(decimal.NewFromInt(30)))

		assert.Equal(suite.T(), models.TypeIncome, summary.CategoryBreakdown[1].Type)
		assert.True(suite.T(), summary.CategoryBreakdown[1].Total.Equal(decimal.NewFromInt(20)))
	}
}

func (suite *TestSuiteStandard) TestSummarizeDateWindow() {
	_ = suite.createTestTransaction(models.Transaction{Type: models.TypeIncome, Amount: decimal.NewFromInt(100), Category: "Salary", Date: "2024-01-10T00:00:00.000Z"})
	_ = suite.createTestTransaction(models.Transaction{Type: models.TypeIncome, Amount: decimal.NewFromInt(100), Category: "Salary", Date: "2024-02-10T00:00:00.000Z"})

	summary, err := models.Summarize("user-1", "2024-02-01", "")
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), summary.TransactionCount)
	assert.True(suite.T(), summary.TotalIncome.Equal(decimal.NewFromInt(100)))

	summary, err = models.Summarize("user-1", "", "2024-01-31")
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), summary.TransactionCount)
}

func (suite *TestSuiteStandard) TestSummarizeEmpty() {
	summary, err := models.Summarize("user-1", "", "")
	assert.Nil(suite.T(), err)

	assert.True(suite.T(), summary.TotalIncome.IsZero())
	assert.True(suite.T(), summary.TotalExpenses.IsZero())
	assert.True(suite.T(), summary.Balance.IsZero())
	assert.Equal(suite.T(), int64(0), summary.TransactionCount)
	assert.Len(suite.T(), summary.CategoryBreakdown, 0)
}

func (suite *TestSuiteStandard) TestSummarizeDBClosed() {
	suite.CloseDB()

	_, err := models.Summarize("user-1", "", "")
	assert.True(suite.T(), errors.Is(err, models.ErrGeneral))
}
