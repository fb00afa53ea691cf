package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

var (
	personNamePattern = regexp.MustCompile(`^[\p{L}\s'.\-]+$`)
	// 05XX XXX XX XX with optional +90 / 0 prefix and separators
	trPhonePattern = regexp.MustCompile(`^(\+90|0)?\s?5\d{2}[\s\-]?\d{3}[\s\-]?\d{2}[\s\-]?\d{2}$`)
)

var (
	workTypes       = map[string]bool{"remote": true, "hybrid": true, "onsite": true}
	employmentTypes = map[string]bool{"full_time": true, "part_time": true, "contract": true, "internship": true}
	educationLevels = map[string]bool{
		"primary": true, "high_school": true, "associate": true,
		"bachelor": true, "master": true, "doctorate": true,
	}
	militaryStatuses = map[string]bool{"completed": true, "exempt": true, "postponed": true, "not_applicable": true}
)

// New creates a new validator instance
func New() *Validator {
	v := validator.New()

	// Register custom tag name function to use JSON tags
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("personname", validatePersonName)
	v.RegisterValidation("trphone", validateTRPhone)
	v.RegisterValidation("worktype", oneOfSet(workTypes))
	v.RegisterValidation("employmenttype", oneOfSet(employmentTypes))
	v.RegisterValidation("educationlevel", oneOfSet(educationLevels))
	v.RegisterValidation("militarystatus", oneOfSet(militaryStatuses))

	return &Validator{validate: v}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var validationErrs ValidationErrors
	for _, fe := range fieldErrs {
		validationErrs = append(validationErrs, ValidationError{
			Field:   fe.Field(),
			Message: msgForTag(fe),
			Tag:     fe.Tag(),
			Value:   fmt.Sprintf("%v", fe.Value()),
		})
	}

	return validationErrs
}

// msgForTag returns a human-readable error message for a validation tag
func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "personname":
		return fmt.Sprintf("%s may only contain letters, spaces, apostrophes, dots and hyphens", field)
	case "trphone":
		return fmt.Sprintf("%s must be a Turkish mobile number (05XX XXX XX XX)", field)
	case "worktype":
		return fmt.Sprintf("%s must be one of: remote, hybrid, onsite", field)
	case "employmenttype":
		return fmt.Sprintf("%s must be one of: full_time, part_time, contract, internship", field)
	case "educationlevel":
		return fmt.Sprintf("%s must be one of: primary, high_school, associate, bachelor, master, doctorate", field)
	case "militarystatus":
		return fmt.Sprintf("%s must be one of: completed, exempt, postponed, not_applicable", field)
	case "gtefield":
		return fmt.Sprintf("%s must not be lower than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Custom validators

func validatePersonName(fl validator.FieldLevel) bool {
	return personNamePattern.MatchString(fl.Field().String())
}

func validateTRPhone(fl validator.FieldLevel) bool {
	return trPhonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

func oneOfSet(allowed map[string]bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return allowed[fl.Field().String()]
	}
}
