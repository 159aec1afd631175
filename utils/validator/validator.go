package validatorx

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	cerr "github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/shopspring/decimal"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// MaxAmount is the largest value a DECIMAL(15,2) money column holds.
var MaxAmount = decimal.RequireFromString("9999999999999.99")

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	// report json names so messages line up with request payload keys
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("amount", validateAmount)
}

// validateAmount backs the "amount" tag: a decimal string between zero and
// MaxAmount.
func validateAmount(fl gpvalidator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative() && d.LessThanOrEqual(MaxAmount)
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// ValidateForm validates s and converts field failures into a validation
// CustomError carrying one localized message per field.
func ValidateForm(s interface{}) error {
	err := ValidateStruct(s)
	if err == nil {
		return nil
	}
	fields := Messages(err)
	if len(fields) == 0 {
		return err
	}
	return cerr.SetValidationError(fields)
}

// Messages maps every failed field of err to its user-facing message.
func Messages(err error) map[string]string {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, exists := out[fe.Field()]; exists {
			continue
		}
		out[fe.Field()] = message(fe.Field(), fe.Tag())
	}
	return out
}

// FieldError builds a validation error for a single field failing tag, for
// checks done outside struct tags.
func FieldError(field, tag string) error {
	return cerr.SetValidationError(map[string]string{field: message(field, tag)})
}
