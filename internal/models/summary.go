package models

import (
	"github.com/shopspring/decimal"
)

// CategorySum is the aggregate for one (category, type) pair.
type CategorySum struct {
	Category string          `json:"category" example:"Food & Dining"`
	Type     string          `json:"type" example:"expense"`
	Total    decimal.Decimal `json:"total" example:"85"`
	Count    int64           `json:"count" example:"2"`
}

// Summary holds the aggregates over a filtered transaction set.
type Summary struct {
	TotalIncome       decimal.Decimal `json:"totalIncome" example:"300"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses" example:"100"`
	Balance           decimal.Decimal `json:"balance" example:"200"`
	TransactionCount  int64           `json:"transactionCount" example:"5"`
	CategoryBreakdown []CategorySum   `json:"categoryBreakdown"`
}

// Summarize computes the summary for all transactions owned by userID whose
// date falls into the inclusive window [dateFrom, dateTo]. Empty bounds leave
// the window open on that side.
//
// A single GROUP BY query produces the per-category sums; the totals and the
// transaction count are derived from the same result set so that they always
// agree with the breakdown. Summation is done on the unrounded values,
// rounding to two decimal places happens only for presentation.
func Summarize(userID, dateFrom, dateTo string) (Summary, error) {
	q := DB.Table("transactions").Where("user_id = ?", userID)

	if dateFrom != "" {
		q = q.Where("date >= ?", dateFrom)
	}

	if dateTo != "" {
		q = q.Where("date <= ?", dateTo)
	}

	var sums []CategorySum
	err := q.
		Select("category, type, SUM(amount) AS total, COUNT(*) AS count").
		Group("category").
		Group("type").
		Order("category ASC").
		Order("type ASC").
		Scan(&sums).Error
	if err != nil {
		return Summary{}, general(err)
	}

	summary := Summary{
		CategoryBreakdown: make([]CategorySum, 0, len(sums)),
	}

	var income, expenses decimal.Decimal
	for _, sum := range sums {
		switch sum.Type {
		case TypeIncome:
			income = income.Add(sum.Total)
		case TypeExpense:
			expenses = expenses.Add(sum.Total)
		}

		summary.TransactionCount += sum.Count

		sum.Total = sum.Total.Round(2)
		summary.CategoryBreakdown = append(summary.CategoryBreakdown, sum)
	}

	summary.TotalIncome = income.Round(2)
	summary.TotalExpenses = expenses.Round(2)
	summary.Balance = income.Sub(expenses).Round(2)

	return summary, nil
}
