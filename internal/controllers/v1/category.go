package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httperror"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/validate"
)

// Categories are paginated with a default of 100 and a hard cap of 500.
const (
	categoryDefaultLimit = 100
	categoryMaxLimit     = 500
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", GetCategories)
	r.POST("", CreateCategory)
	r.DELETE("", DeleteCategory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Get categories
// @Description	Returns a single category when the id parameter is set, otherwise the caller's categories ordered by name
// @Tags			Categories
// @Produce		json
// @Success		200	{array}		models.Category
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id		query	string	false	"Return only the category with this ID"
// @Param			type	query	string	false	"Filter by type (income or expense)"
// @Param			name	query	string	false	"Filter by name, glob patterns are supported"
// @Param			limit	query	int		false	"Maximum number of categories to return. Defaults to 100, capped at 500."
// @Param			offset	query	int		false	"The offset of the first category returned. Defaults to 0."
// @Router			/categories [get]
func GetCategories(c *gin.Context) {
	if idParam := c.Query("id"); idParam != "" {
		id, err := validate.ID(idParam)
		if err != nil {
			httperror.New(c, status(err), err)
			return
		}

		category, err := models.GetCategory(id, owner(c))
		if err != nil {
			httperror.New(c, status(err), err)
			return
		}

		c.JSON(http.StatusOK, category)
		return
	}

	filter := models.CategoryFilter{
		Type: c.Query("type"),
		Name: c.Query("name"),
	}

	if filter.Type != "" {
		if err := validate.Type(filter.Type); err != nil {
			httperror.New(c, status(err), err)
			return
		}
	}

	filter.Limit, filter.Offset = httputil.Pagination(c, categoryDefaultLimit, categoryMaxLimit)

	categories, err := models.Categories(owner(c), filter)
	if err != nil {
		httperror.New(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CategoryEditable represents all user configurable parameters of a category.
type CategoryEditable struct {
	Name  string  `json:"name" example:"Groceries"`
	Type  string  `json:"type" example:"expense"`
	Color *string `json:"color" example:"#10B981"`
	Icon  *string `json:"icon" example:"shopping-cart"`
}

// @Summary		Create category
// @Description	Creates a new category for the caller
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	models.Category
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	fields, err := httputil.BindData(c, &editable)
	if err != nil {
		httperror.New(c, status(err), err)
		return
	}

	if err := validate.NoOwnerOverride(fields); err != nil {
		httperror.New(c, status(err), err)
		return
	}

	name, err := validate.Name(editable.Name)
	if err != nil {
		httperror.New(c, status(err), err)
		return
	}

	if err := validate.Type(editable.Type); err != nil {
		httperror.New(c, status(err), err)
		return
	}

	if editable.Color != nil {
		if err := validate.Color(*editable.Color); err != nil {
			httperror.New(c, status(err), err)
			return
		}
	}

	category := models.Category{
		UserID: owner(c),
		Name:   name,
		Type:   editable.Type,
		Color:  editable.Color,
		Icon:   editable.Icon,
	}

	if err := models.CreateCategory(&category); err != nil {
		httperror.New(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// CategoryDeleteResponse wraps the deleted category.
type CategoryDeleteResponse struct {
	Message  string          `json:"message" example:"Category deleted successfully"`
	Category models.Category `json:"category"`
}

// @Summary		Delete category
// @Description	Deletes the category with the ID given in the id parameter and returns the deleted record
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryDeleteResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	query		string	true	"ID of the category to delete"
// @Router			/categories [delete]
func DeleteCategory(c *gin.Context) {
	id, err := validate.ID(c.Query("id"))
	if err != nil {
		httperror.New(c, status(err), err)
		return
	}

	category, err := models.DeleteCategory(id, owner(c))
	if err != nil {
		httperror.New(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, CategoryDeleteResponse{
		Message:  "Category deleted successfully",
		Category: category,
	})
}
