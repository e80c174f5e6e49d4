package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httperror"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/validate"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/transactions/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns totals, balance, transaction count and the per-category breakdown for the caller's transactions in the date window
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	models.Summary
// @Failure		400	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			dateFrom	query	string	false	"Include transactions at and after this date"
// @Param			dateTo		query	string	false	"Include transactions before and at this date"
// @Router			/transactions/summary [get]
func GetSummary(c *gin.Context) {
	dateFrom := c.Query("dateFrom")
	dateTo := c.Query("dateTo")

	for _, date := range []string{dateFrom, dateTo} {
		if date == "" {
			continue
		}

		if err := validate.DateFilter(date); err != nil {
			httperror.New(c, status(err), err)
			return
		}
	}

	summary, err := models.Summarize(owner(c), dateFrom, dateTo)
	if err != nil {
		httperror.New(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
