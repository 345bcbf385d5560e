package console

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMessage is shown instead of calling the API when a required
// field is missing or malformed.
const ValidationMessage = "Please fill in all required fields with valid values."

var validate = validator.New()

type orderKey struct {
	OrderId string `validate:"required,number"`
}

type orderInput struct {
	CustomerId string `validate:"required,number"`
	Status     string
}

type orderUpdate struct {
	OrderId    string `validate:"required,number"`
	CustomerId string `validate:"required,number"`
	Status     string
}

// searchInput carries no rules: only the filter that gets sent is parsed.
type searchInput struct {
	CustomerId string
	Status     string
	ProductId  string
}

type itemKey struct {
	OrderId string `validate:"required,number"`
	ItemId  string `validate:"required,number"`
}

type itemInput struct {
	OrderId   string `validate:"required,number"`
	ProductId string `validate:"required,number"`
	Quantity  string `validate:"required,number"`
	Price     string `validate:"required"`
}

type itemUpdate struct {
	itemInput
	ItemId string `validate:"required,number"`
}

// check validates v and reports whether the request may go out.
func check(v interface{}) bool {
	return validate.Struct(v) == nil
}

// ids parses integer fields. Negative values and overflows fail.
func ids(values ...string) ([]int64, bool) {
	out := make([]int64, 0, len(values))
	for _, s := range values {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 0 {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

// price accepts anything strconv.ParseFloat does, as long as it is a finite
// value not below zero.
func price(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	if validate.Var(f, "gte=0") != nil {
		return 0, false
	}
	return f, true
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
