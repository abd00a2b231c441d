// Package form defines the typed form structs behind every write endpoint.
// Each form knows how to parse itself out of a posted url.Values and how to
// validate itself into a model value or a list of field-level failures.
package form

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator"

	"github.com/okalik/bandstand/internal/model"
)

// go-playground/validator suggests using a single instance of the validator,
// so the package shares one and registers the custom rules once at init.
var validate = validator.New()

// phoneRe accepts 3-3-4 digit groups with optional parentheses around the
// area code and optional -, . or space separators.
var phoneRe = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)

func init() {
	_ = validate.RegisterValidation("us_state", func(fl validator.FieldLevel) bool {
		return model.ValidState(fl.Field().String())
	})
	_ = validate.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return model.ValidGenre(fl.Field().String())
	})
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
}

// FieldError records a single field that failed a single rule. The rule name
// is the validator tag that rejected the value.
type FieldError struct {
	Field string
	Rule  string
}

// Errors is the structured result of a failed validation. Handlers collapse
// it to one generic user-facing message; tests inspect individual entries.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Rule
	}
	return "invalid form: " + strings.Join(parts, ", ")
}

// checkStruct runs the shared validator over a form struct and converts the
// library's error type into Errors. Field names are reported in the form's
// wire naming (snake_case via the form tag) when available.
func checkStruct(s interface{}) Errors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{{Field: "form", Rule: "invalid"}}
	}
	out := make(Errors, 0, len(verrs))
	for _, ve := range verrs {
		out = append(out, FieldError{Field: ve.Field(), Rule: ve.Tag()})
	}
	return out
}

// checkbox interprets an HTML checkbox value. Absent or anything not in the
// accepted set means false.
func checkbox(values url.Values, key string) bool {
	switch strings.ToLower(values.Get(key)) {
	case "y", "yes", "true", "on", "1":
		return true
	}
	return false
}
