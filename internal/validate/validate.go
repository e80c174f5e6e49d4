// Package validate contains the stateless request validators. Every check
// returns an Error carrying a machine-readable code so that the HTTP layer
// can map failures to responses without re-deriving the reason.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/norm"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeInvalidID         Code = "INVALID_ID"
	CodeInvalidType       Code = "INVALID_TYPE"
	CodeInvalidName       Code = "INVALID_NAME"
	CodeInvalidColor      Code = "INVALID_COLOR"
	CodeInvalidIcon       Code = "INVALID_ICON"
	CodeInvalidAmount     Code = "INVALID_AMOUNT"
	CodeInvalidCategory   Code = "INVALID_CATEGORY"
	CodeInvalidDate       Code = "INVALID_DATE"
	CodeInvalidDateFormat Code = "INVALID_DATE_FORMAT"
	CodeUserIDNotAllowed  Code = "USER_ID_NOT_ALLOWED"
)

// Error is a failed validation.
type Error struct {
	Code    Code
	Message string
}

func (e Error) Error() string {
	return e.Message
}

// ErrorCode returns the machine-readable code for the response body.
func (e Error) ErrorCode() string {
	return string(e.Code)
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Timestamp layouts accepted for the date field and the date window filters.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Type checks that s is one of the two transaction types.
func Type(s string) error {
	if !slices.Contains(models.Types, s) {
		return Error{
			Code:    CodeInvalidType,
			Message: "Type is required and must be 'income' or 'expense'",
		}
	}

	return nil
}

// Name trims and NFC-normalizes a category name and checks that it is not empty.
func Name(s string) (string, error) {
	name := norm.NFC.String(strings.TrimSpace(s))
	if name == "" {
		return "", Error{
			Code:    CodeInvalidName,
			Message: "Name is required and must be a non-empty string",
		}
	}

	return name, nil
}

// Category trims and NFC-normalizes a transaction's category name and checks
// that it is not empty.
func Category(s string) (string, error) {
	category := norm.NFC.String(strings.TrimSpace(s))
	if category == "" {
		return "", Error{
			Code:    CodeInvalidCategory,
			Message: "Category is required and must be a non-empty string",
		}
	}

	return category, nil
}

// Color checks the 6-digit hex color syntax, e.g. "#FF5733".
func Color(s string) error {
	if !hexColor.MatchString(s) {
		return Error{
			Code:    CodeInvalidColor,
			Message: "Color must be a valid hex color code (e.g. #FF5733)",
		}
	}

	return nil
}

// Amount checks that the amount is strictly positive.
func Amount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return Error{
			Code:    CodeInvalidAmount,
			Message: "Amount is required and must be a positive number",
		}
	}

	return nil
}

// Date checks that s holds a parseable timestamp. A missing date and an
// unparseable one fail with distinct codes.
func Date(s string) error {
	if s == "" {
		return Error{
			Code:    CodeInvalidDate,
			Message: "Date is required and must be a valid ISO timestamp",
		}
	}

	return DateFilter(s)
}

// DateFilter checks an optional date window bound for parseability.
func DateFilter(s string) error {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return nil
		}
	}

	return Error{
		Code:    CodeInvalidDateFormat,
		Message: "Date must be a valid ISO timestamp",
	}
}

// ID parses a numeric resource ID from its query parameter.
func ID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, Error{
			Code:    CodeInvalidID,
			Message: "Valid ID is required",
		}
	}

	return id, nil
}

// NoOwnerOverride rejects request bodies that try to set the owner. The
// owner is always taken from the resolved caller identity.
func NoOwnerOverride(fields []string) error {
	if slices.Contains(fields, "userId") || slices.Contains(fields, "user_id") {
		return Error{
			Code:    CodeUserIDNotAllowed,
			Message: "User ID cannot be provided in request body",
		}
	}

	return nil
}

// FieldError maps a JSON type mismatch on a known top-level field to the
// field's validation error.
func FieldError(field string) error {
	switch field {
	case "name":
		return Error{Code: CodeInvalidName, Message: "Name is required and must be a non-empty string"}
	case "type":
		return Error{Code: CodeInvalidType, Message: "Type is required and must be 'income' or 'expense'"}
	case "color":
		return Error{Code: CodeInvalidColor, Message: "Color must be a valid hex color code (e.g. #FF5733)"}
	case "icon":
		return Error{Code: CodeInvalidIcon, Message: "Icon must be a string"}
	case "category":
		return Error{Code: CodeInvalidCategory, Message: "Category is required and must be a non-empty string"}
	case "date":
		return Error{Code: CodeInvalidDate, Message: "Date is required and must be a valid ISO timestamp"}
	}

	return Error{Code: "", Message: "The body of your request contains invalid or un-parseable data"}
}
