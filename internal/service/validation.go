package service

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/simak-go-api/internal/models"
)

// ValidationError describes a rejected form submission with a stable,
// user-facing reason.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var (
	nimPattern  = regexp.MustCompile(`^\d{12}$`)
	namePattern = regexp.MustCompile(`^[A-Za-z ]+$`)
)

// RegisterStudentValidations attaches the custom field validations used by
// the student form to the shared validator instance.
func RegisterStudentValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("studentid", func(fl validator.FieldLevel) bool {
		return nimPattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("alpha_space", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("gpa_range", func(fl validator.FieldLevel) bool {
		gpa, err := strconv.ParseFloat(fl.Field().String(), 64)
		if err != nil {
			return false
		}
		return gpa >= 0.0 && gpa <= 4.0
	}); err != nil {
		return err
	}

	return v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return models.ValidDepartment(fl.Field().String())
	})
}

// studentFormReason translates the first field failure into the stable
// rejection reason shown to the user. Fields are declared in checking order,
// so the first reported error decides.
func studentFormReason(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	first := fieldErrors[0]
	switch first.StructField() {
	case "NIM":
		return &ValidationError{Reason: "id must be 12 digits"}
	case "Name":
		return &ValidationError{Reason: "name must be letters and spaces only"}
	case "Class":
		return &ValidationError{Reason: "class must be alphanumeric, no spaces"}
	case "GPA":
		if first.Tag() == "gpa_range" {
			return &ValidationError{Reason: "gpa out of range"}
		}
		return &ValidationError{Reason: "gpa must be numeric"}
	case "Department":
		return &ValidationError{Reason: "invalid department"}
	}

	return &ValidationError{Reason: first.Error()}
}
