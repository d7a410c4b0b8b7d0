package http

import (
	"fmt"
	"log"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"ashgrove-backend/internal/adapter/middleware"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	eircodePattern = regexp.MustCompile(`^[A-Za-z][0-9][0-9A-Za-z][ ]?[0-9A-Za-z]{4}$`)
)

// CustomValidator adapts go-playground/validator to echo and adds the
// domain tags used by the request DTOs.
type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("eircode", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		return eircodePattern.MatchString(s)
	})
	return &CustomValidator{validate: v}
}

func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// FieldError is one entry of a validation failure response.
type FieldError struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Code     string `json:"code"`
	Received string `json:"received,omitempty"`
}

type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

func fieldErrors(err error) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:    fieldPath(fe),
			Message:  fieldMessage(fe),
			Code:     fe.Tag(),
			Received: receivedValue(fe),
		})
	}
	return out
}

// fieldPath turns "CreateEnquiryRequest.payload.email" into
// "payload.email". A field with no resolvable name reports as "root".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	if ns == "" {
		return "root"
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "slug":
		return "must be lowercase letters, digits and hyphens"
	case "eircode":
		return "must be a valid eircode"
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// receivedValue only echoes short scalar values back; anything else
// stays out of the response.
func receivedValue(fe validator.FieldError) string {
	v, ok := fe.Value().(string)
	if !ok || len(v) > 64 {
		return ""
	}
	if fe.Tag() == "email" || strings.Contains(fe.Field(), "email") {
		return ""
	}
	return v
}

// bindAndValidate decodes the body into req and validates it, writing
// the 400 itself on failure. Logged field names and the client address
// are enough for debugging; raw values stay out of the logs.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body could not be parsed",
		})
	}
	if err := c.Validate(req); err != nil {
		details := fieldErrors(err)
		fields := make([]string, 0, len(details))
		for _, d := range details {
			fields = append(fields, d.Field)
		}
		log.Printf("[HTTP] validation failed on %s %s from %s: fields=%v",
			c.Request().Method, c.Path(), middleware.ClientIP(c.Request()), fields)
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: "One or more fields are invalid",
			Details: details,
		})
	}
	return true, nil
}
