package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httperror"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/validate"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Transactions are paginated with a default of 100 and a hard cap of 1000.
const (
	transactionDefaultLimit = 100
	transactionMaxLimit     = 1000
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTransactions)
	r.GET("", GetTransactions)
	r.POST("", CreateTransaction)
	r.PUT("", UpdateTransaction)
	r.DELETE("", DeleteTransaction)

	r.OPTIONS("/summary", OptionsSummary)
	r.GET("/summary", GetSummary)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPostPutDelete(c)
}

// @Summary		Get transactions
// @Description	Returns a single transaction when the id parameter is set, otherwise the caller's transactions ordered by date descending
// @Tags			Transactions
// @Produce		json
// @Success		200	{array}		models.Transaction
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id			query	string	false	"Return only the transaction with this ID"
// @Param			type		query	string	false	"Filter by type (income or expense)"
// @Param			category	query	string	false	"Filter by category name (exact match)"
// @Param			dateFrom	query	string	false	"Transactions at and after this date"
// @Param			dateTo		query	string	false	"Transactions before and at this date"
// @Param			limit		query	int		false	"Maximum number of transactions to return. Defaults to 100, capped at 1000."
// @Param			offset		query	int		false	"The offset of the first transaction returned. Defaults to 0."
// @Router			/transactions [get]
func GetTransactions(c *gin.Context) {
	if idParam := c.Query("id"); idParam != "" {
		id, err := validate.ID(idParam)
		if err != nil {
			httperror.New(c, status(err), err)
			return
		}

		transaction, err := models.GetTransaction(id, owner(c))
		if err != nil {
			httperror.New(c, status(err), err)
			return
		}

		c.JSON(http.StatusOK, transaction)
		return
	}

	filter := models.TransactionFilter{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		DateFrom: c.Query("dateFrom"),
		DateTo:   c.Query("dateTo"),
	}

	filter.Limit, filter.Offset = httputil.Pagination(c, transactionDefaultLimit, transactionMaxLimit)

	transactions, err := models.Transactions(owner(c), filter)
	if err != nil {
		httperror.New(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// TransactionEditable represents all user configurable parameters of a
// transaction. It doubles as the patch structure for partial updates, where
// field presence is determined from the request body's top-level keys.
type TransactionEditable struct {
	Type        string          `json:"type" example:"expense"`
	Amount      decimal.Decimal `json:"amount" example:"42.5"`
	Category    string          `json:"category" example:"Food & Dining"`
	Description *string         `json:"description" example:"Lunch"`
	Date        string          `json:"date" example:"2024-01-15T00:00:00.000Z"`
}

// @Summary		Create transaction
// @Description	Creates a new transaction for the caller
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	models.Transaction
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	fields, err := httputil.BindData(c, &editable)
	if err != nil {
		httperror.New(c, status(err), err)
		return
	}

	if err := validate.NoOwnerOverride(fields); err != nil {
		httperror.New(c, status(err), err)
		return
	}

	if err := validate.Type(editable.Type); err != nil {
		httperror.New(c, status(err), err)
		return
	}

	if err := validate.Amount(editable.Amount); err != nil {
		httperror.New(c, status(err), err)
		return
	}

	category, err := validate.Category(editable.Category)
	if err != nil {
		httperror.New(c, status(err), err)
		return
	}

	if err := validate.Date(editable.Date); err != nil {
		httperror.New(c, status(err), err)
		return
	}

	transaction := models.Transaction{
		UserID:      owner(c),
		Type:        editable.Type,
		Amount:      editable.Amount,
		Category:    category,
		Description: normalizeDescription(editable.Description),
		Date:        editable.Date,
	}

	if err := models.CreateTransaction(&transaction); err != nil {
		httperror.New(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// @Summary		Update transaction
// @Description	Partially updates the transaction with the ID given in the id parameter. Only fields present in the body change; updatedAt is always refreshed.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	models.Transaction
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			id			query		string				true	"ID of the transaction to update"
// @Param			transaction	body		TransactionEditable	true	"Fields to update"
// @Router			/transactions [put]
func UpdateTransaction(c *gin.Context) {
	id, err := validate.ID(c.Query("id"))
	if err != nil {
		httperror.New(c, status(err), err)
		return
	}

	var patch TransactionEditable

	fields, err := httputil.BindData(c, &patch)
	if err != nil {
		httperror.New(c, status(err), err)
		return
	}

	if err := validate.NoOwnerOverride(fields); err != nil {
		httperror.New(c, status(err), err)
		return
	}

	// The ownership check runs before field validation so that callers
	// always get a 404 for records that are not theirs
	if _, err := models.GetTransaction(id, owner(c)); err != nil {
		httperror.New(c, status(err), err)
		return
	}

	updates := make(map[string]any)

	if slices.Contains(fields, "type") {
		if err := validate.Type(patch.Type); err != nil {
			httperror.New(c, status(err), err)
			return
		}
		updates["type"] = patch.Type
	}

	if slices.Contains(fields, "amount") {
		if err := validate.Amount(patch.Amount); err != nil {
			httperror.New(c, status(err), err)
			return
		}
		updates["amount"] = patch.Amount
	}

	if slices.Contains(fields, "category") {
		category, err := validate.Category(patch.Category)
		if err != nil {
			httperror.New(c, status(err), err)
			return
		}
		updates["category"] = category
	}

	if slices.Contains(fields, "description") {
		// Present but null clears the description
		updates["description"] = normalizeDescription(patch.Description)
	}

	if slices.Contains(fields, "date") {
		if err := validate.Date(patch.Date); err != nil {
			httperror.New(c, status(err), err)
			return
		}
		updates["date"] = patch.Date
	}

	transaction, err := models.UpdateTransaction(id, owner(c), updates)
	if err != nil {
		httperror.New(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// TransactionDeleteResponse wraps the deleted transaction.
type TransactionDeleteResponse struct {
	Message     string             `json:"message" example:"Transaction deleted successfully"`
	Transaction models.Transaction `json:"transaction"`
}

// @Summary		Delete transaction
// @Description	Deletes the transaction with the ID given in the id parameter and returns the deleted record
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionDeleteResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	query		string	true	"ID of the transaction to delete"
// @Router			/transactions [delete]
func DeleteTransaction(c *gin.Context) {
	id, err := validate.ID(c.Query("id"))
	if err != nil {
		httperror.New(c, status(err), err)
		return
	}

	transaction, err := models.DeleteTransaction(id, owner(c))
	if err != nil {
		httperror.New(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, TransactionDeleteResponse{
		Message:     "Transaction deleted successfully",
		Transaction: transaction,
	})
}
