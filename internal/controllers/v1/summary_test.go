package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/httperror"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSummary() {
	for i := 0; i < 3; i++ {
		_ = createTestTransaction(suite.T(), v1.TransactionEditable{
			Type:     "income",
			Amount:   decimal.NewFromInt(100),
			Category: "Salary",
			Date:     "2024-01-10T00:00:00.000Z",
		})
	}

	for i := 0; i < 2; i++ {
		_ = createTestTransaction(suite.T(), v1.TransactionEditable{
			Type:     "expense",
			Amount:   decimal.NewFromInt(50),
			Category: "Groceries",
			Date:     "2024-01-20T00:00:00.000Z",
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/transactions/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary models.Summary
	test.DecodeResponse(suite.T(), &r, &summary)

	assert.True(suite.T(), summary.TotalIncome.Equal(decimal.NewFromInt(300)), "total income is %s", summary.TotalIncome)
	assert.True(suite.T(), summary.TotalExpenses.Equal(decimal.NewFromInt(100)), "total expenses is %s", summary.TotalExpenses)
	assert.True(suite.T(), summary.Balance.Equal(decimal.NewFromInt(200)), "balance is %s", summary.Balance)
	assert.Equal(suite.T(), int64(5), summary.TransactionCount)

	// Breakdown is ordered by category name
	if assert.Len(suite.T(), summary.CategoryBreakdown, 2) {
		assert.Equal(suite.T(), "Groceries", summary.CategoryBreakdown[0].Category)
		assert.Equal(suite.T(), "expense", summary.CategoryBreakdown[0].Type)
		assert.True(suite.T(), summary.CategoryBreakdown[0].Total.Equal(decimal.NewFromInt(100)))
		assert.Equal(suite.T(), int64(2), summary.CategoryBreakdown[0].Count)

		assert.Equal(suite.T(), "Salary", summary.CategoryBreakdown[1].Category)
		assert.Equal(suite.T(), "income", summary.CategoryBreakdown[1].Type)
		assert.True(suite.T(), summary.CategoryBreakdown[1].Total.Equal(decimal.NewFromInt(300)))
		assert.Equal(suite.T(), int64(3), summary.CategoryBreakdown[1].Count)
	}
}

func (suite *TestSuiteStandard) TestSummaryEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/transactions/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary models.Summary
	test.DecodeResponse(suite.T(), &r, &summary)

	assert.True(suite.T(), summary.TotalIncome.IsZero())
	assert.True(suite.T(), summary.TotalExpenses.IsZero())
	assert.True(suite.T(), summary.Balance.IsZero())
	assert.Equal(suite.T(), int64(0), summary.TransactionCount)
	assert.Len(suite.T(), summary.CategoryBreakdown, 0)
}

// TestSummaryRounding verifies that amounts are summed exactly and only
// rounded to two decimal places for the response.
func (suite *TestSuiteStandard) TestSummaryRounding() {
	for i := 0; i < 3; i++ {
		_ = createTestTransaction(suite.T(), v1.TransactionEditable{
			Type:     "expense",
			Amount:   decimal.RequireFromString("0.105"),
			Category: "Fees",
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/transactions/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary models.Summary
	test.DecodeResponse(suite.T(), &r, &summary)

	// 3 * 0.105 = 0.315, rounded once at the end
	assert.True(suite.T(), summary.TotalExpenses.Equal(decimal.RequireFromString("0.32")), "total expenses is %s", summary.TotalExpenses)
}

func (suite *TestSuiteStandard) TestSummaryDateWindow() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Type: "income", Amount: decimal.NewFromInt(100), Category: "Salary", Date: "2024-01-10T00:00:00.000Z"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Type: "income", Amount: decimal.NewFromInt(100), Category: "Salary", Date: "2024-02-10T00:00:00.000Z"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Type: "income", Amount: decimal.NewFromInt(100), Category: "Salary", Date: "2024-03-10T00:00:00.000Z"})

	tests := []struct {
		name  string
		query string
		count int64
	}{
		{"No bounds", "", 3},
		{"From only", "?dateFrom=2024-02-01", 2},
		{"To only", "?dateTo=2024-01-31", 1},
		{"Window", "?dateFrom=2024-02-01&dateTo=2024-02-28", 1},
		{"Empty window", "?dateFrom=2024-06-01", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/transactions/summary"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var summary models.Summary
			test.DecodeResponse(t, &r, &summary)
			assert.Equal(t, tt.count, summary.TransactionCount)
		})
	}
}

func (suite *TestSuiteStandard) TestSummaryInvalidDates() {
	tests := []struct {
		name  string
		query string
	}{
		{"Garbage dateFrom", "?dateFrom=someday"},
		{"Garbage dateTo", "?dateTo=lastweek"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/transactions/summary"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response httperror.Error
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, "INVALID_DATE_FORMAT", response.Code)
		})
	}
}

func (suite *TestSuiteStandard) TestSummaryOwnerScoping() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Type: "income", Amount: decimal.NewFromInt(100), Category: "Salary"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/transactions/summary", "", map[string]string{"X-User-ID": "user-2"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary models.Summary
	test.DecodeResponse(suite.T(), &r, &summary)
	assert.Equal(suite.T(), int64(0), summary.TransactionCount)
}

func (suite *TestSuiteStandard) TestSummaryOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/transactions/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSummaryDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/transactions/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
