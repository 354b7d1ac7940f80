package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	ErrRequired       = "is required"
	ErrMinLength      = "must be at least %s characters long"
	ErrMaxLength      = "must be at most %s characters long"
	ErrMinValue       = "must be at least %s"
	ErrMaxValue       = "must be at most %s"
	ErrMinItems       = "must contain at least %s item(s)"
	ErrMaxItems       = "must contain at most %s item(s)"
	ErrGte            = "must be greater than or equal to %s"
	ErrOneOf          = "must be one of: %s"
	ErrUnique         = "must not contain duplicate values"
	ErrSeatID         = "must be a seat identifier in the form <row>-<seat>"
	ErrSeatType       = "must be one of: standard vip disabled"
	ErrTimeOfDay      = "must be a time in HH:MM format"
	ErrMoney          = "must be at most 99999999.99 with no more than 2 decimal places"
	ErrDefaultInvalid = "is invalid"
)

var timeOfDayRgx = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)
	validator.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	validator.RegisterValidation("seat_id", validateSeatID)
	validator.RegisterValidation("seat_type", validateSeatType)
	validator.RegisterValidation("time_of_day", validateTimeOfDay)
	validator.RegisterValidation("money", validateMoney)

	return validator
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func decimalValue(field reflect.Value) any {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	f, _ := d.Float64()
	return f
}

func validateSeatID(fl validator.FieldLevel) bool {
	_, err := domain.ParseSeatID(fl.Field().String())
	return err == nil
}

func validateSeatType(fl validator.FieldLevel) bool {
	return domain.SeatType(fl.Field().String()).Valid()
}

// validateMoney receives decimals already converted to float64 by decimalValue.
func validateMoney(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return domain.ValidPrice(decimal.NewFromFloat(field.Float()))
	case reflect.Int, reflect.Int32, reflect.Int64:
		return domain.ValidPrice(decimal.NewFromInt(field.Int()))
	case reflect.String:
		d, err := decimal.NewFromString(field.String())
		return err == nil && domain.ValidPrice(d)
	default:
		return false
	}
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	return timeOfDayRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		switch err.Kind() {
		case reflect.String:
			return fmt.Sprintf(ErrMinLength, err.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf(ErrMinItems, err.Param())
		default:
			return fmt.Sprintf(ErrMinValue, err.Param())
		}
	case "max":
		switch err.Kind() {
		case reflect.String:
			return fmt.Sprintf(ErrMaxLength, err.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf(ErrMaxItems, err.Param())
		default:
			return fmt.Sprintf(ErrMaxValue, err.Param())
		}
	case "gte":
		return fmt.Sprintf(ErrGte, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "unique":
		return ErrUnique
	case "seat_id":
		return ErrSeatID
	case "seat_type":
		return ErrSeatType
	case "time_of_day":
		return ErrTimeOfDay
	case "money":
		return ErrMoney
	default:
		return ErrDefaultInvalid
	}
}
