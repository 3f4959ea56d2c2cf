// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/holonet/internal/models"
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Issue types reported in the 422 body.
const (
	TypeMissing = "value_error.missing"
	TypeJSON    = "value_error.jsondecode"
	TypeInteger = "type_error.integer"
	TypeString  = "type_error.str"
	TypeList    = "type_error.list"
	TypeGeneric = "value_error"
)

// ValidationError represents a single field validation error with structured information.
type ValidationError struct {
	field   string
	tag     string
	message string
	kind    string
}

// Field returns the JSON name of the field that failed validation.
func (e *ValidationError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string {
	return e.tag
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	return e.field + ": " + e.message
}

// RequestValidationError represents a collection of validation errors.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the slice of validation errors.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

// Error implements the error interface, returning a combined error message.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.errors))
	for i := range ve.errors {
		messages = append(messages, ve.errors[i].Error())
	}
	return strings.Join(messages, "; ")
}

// ToIssues converts validation errors to the 422 issue list. Each issue is
// located under the request body, e.g. ["body", "crew_capacity"]; an error
// with no field (a malformed body) is located at ["body"].
func (ve *RequestValidationError) ToIssues() []models.ValidationIssue {
	issues := make([]models.ValidationIssue, 0, len(ve.errors))
	for _, err := range ve.errors {
		loc := []string{"body"}
		if err.field != "" {
			loc = append(loc, err.field)
		}
		issues = append(issues, models.ValidationIssue{
			Loc:  loc,
			Msg:  err.message,
			Type: err.kind,
		})
	}
	return issues
}

// ToResponse wraps ToIssues in the 422 response body.
func (ve *RequestValidationError) ToResponse() models.ValidationErrorResponse {
	return models.ValidationErrorResponse{Detail: ve.ToIssues()}
}

// GetValidator returns the singleton validator instance.
// Field names in errors are taken from json tags so they match the request body.
// This function is thread-safe.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
	})

	return validate
}

// jsonFieldName reports the json key for a struct field.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

// ValidateStruct validates a struct using the singleton validator.
// Returns nil if validation passes, or *RequestValidationError if validation fails.
//
// Example:
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    respondJSON(w, http.StatusUnprocessableEntity, verr.ToResponse())
//	    return
//	}
func ValidateStruct(s interface{}) *RequestValidationError {
	v := GetValidator()

	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// Unexpected error type - wrap it
		return &RequestValidationError{
			errors: []ValidationError{
				{
					field:   "unknown",
					tag:     "unknown",
					message: err.Error(),
					kind:    TypeGeneric,
				},
			},
		}
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		msg, kind := translateError(fieldErr)
		fieldErrors[i] = ValidationError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			message: msg,
			kind:    kind,
		}
	}

	return &RequestValidationError{errors: fieldErrors}
}

// NewFieldError builds a single-issue error for failures detected before
// struct validation, such as a body field of the wrong JSON type. An empty
// field refers to the body as a whole.
func NewFieldError(field, message, kind string) *RequestValidationError {
	return &RequestValidationError{
		errors: []ValidationError{{field: field, tag: "type", message: message, kind: kind}},
	}
}

// Merge combines errors into one, skipping nils. A field is reported once:
// the first error naming it wins. It returns nil when there is nothing to
// report.
func Merge(errs ...*RequestValidationError) *RequestValidationError {
	var merged []ValidationError
	seen := make(map[string]bool)
	for _, e := range errs {
		if e == nil {
			continue
		}
		for _, fe := range e.errors {
			if fe.field != "" && seen[fe.field] {
				continue
			}
			seen[fe.field] = true
			merged = append(merged, fe)
		}
	}
	if len(merged) == 0 {
		return nil
	}
	return &RequestValidationError{errors: merged}
}

// errorMessageTemplates maps validation tags to message and issue type.
var errorMessageTemplates = map[string][2]string{
	"required": {"field required", TypeMissing},
}

// translateError converts a validator.FieldError to a message and issue type.
func translateError(fe validator.FieldError) (string, string) {
	if tmpl, ok := errorMessageTemplates[fe.Tag()]; ok {
		return tmpl[0], tmpl[1]
	}
	return fmt.Sprintf("failed %s validation", fe.Tag()), TypeGeneric
}
