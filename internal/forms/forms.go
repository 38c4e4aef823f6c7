// Package forms declares the site's HTML form schemas and runs them
// through go-playground/validator, collecting failures as an ordered set
// of per-field messages for sticky re-rendering.
package forms

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single validation failure tied to a form field.
type FieldError struct {
	Field   string
	Message string
}

// ErrorSet collects field errors in form-declaration order. Fields are
// never short-circuited against each other: every failed field
// contributes one message.
type ErrorSet []FieldError

func (e ErrorSet) Any() bool {
	return len(e) > 0
}

func (e *ErrorSet) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Messages flattens the set for templates that render a plain list.
func (e ErrorSet) Messages() []string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return msgs
}

// New returns a validator with the site's custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("strongpw", strongPassword); err != nil {
		panic(fmt.Sprintf("forms: register strongpw: %v", err))
	}
	if err := v.RegisterValidation("modelyear", modelYear); err != nil {
		panic(fmt.Sprintf("forms: register modelyear: %v", err))
	}
	return v
}

// Check validates a form struct and converts failures into an ErrorSet.
// validator reports fields in declaration order, which is the order the
// form renders them.
func Check(v *validator.Validate, form any) ErrorSet {
	err := v.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return ErrorSet{{Message: "The submitted form could not be processed."}}
	}

	set := make(ErrorSet, 0, len(ve))
	for _, fe := range ve {
		set.Add(strings.ToLower(fe.Field()), fieldMessage(fe))
	}
	return set
}

// strongPassword enforces the registration password policy: at least 12
// characters with one upper, one lower, one digit and one symbol. The
// minimum counts characters, not bytes.
func strongPassword(fl validator.FieldLevel) bool {
	pw := fl.Field().String()
	if utf8.RuneCountInString(pw) < 12 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// modelYear accepts 1900 through next year, so dealers can list upcoming
// model years.
func modelYear(fl validator.FieldLevel) bool {
	year := int(fl.Field().Int())
	return year >= 1900 && year <= time.Now().Year()+1
}

// fieldMessage converts a single validation failure into the message shown
// to the visitor.
func fieldMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "email":
		return "A valid email is required."
	case "strongpw":
		return "Password does not meet requirements: at least 12 characters with an uppercase letter, a lowercase letter, a number and a symbol."
	case "modelyear":
		return "Please enter a valid year."
	case "alphanum":
		return label + " must contain only letters and numbers."
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters.", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater.", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less.", label, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s).", label, fe.Tag())
	}
}

var fieldLabels = map[string]string{
	"FirstName":        "First name",
	"LastName":         "Last name",
	"Email":            "Email",
	"Password":         "Password",
	"Name":             "Classification name",
	"ClassificationID": "Classification",
	"Make":             "Make",
	"Model":            "Model",
	"Year":             "Year",
	"Description":      "Description",
	"Image":            "Image path",
	"Thumbnail":        "Thumbnail path",
	"Price":            "Price",
	"Miles":            "Mileage",
	"Color":            "Color",
	"VehicleID":        "Vehicle",
	"Rating":           "Rating",
	"Comment":          "Comment",
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}
