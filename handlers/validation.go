package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"

	"salary_ledger/models"
	"salary_ledger/types"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names rather than Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("whole", wholeNumber)
	return v
}

// maxWholeNumber is the largest magnitude a float64 holds as an exact integer.
const maxWholeNumber = 1 << 53

// wholeNumber accepts 3 and 3.0 alike for counters sent as JSON numbers.
func wholeNumber(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return f == math.Trunc(f) && math.Abs(f) <= maxWholeNumber
}

// parseBody decodes and validates the request body into out. When it
// returns false the 422 response has been written and the error must be
// returned from the handler as is.
func (h *Handler) parseBody(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, validationError(c, bodyFieldErrors(err)...)
	}
	if err := h.validate.Struct(out); err != nil {
		return false, validationError(c, structFieldErrors(err)...)
	}
	return true, nil
}

func validationError(c *fiber.Ctx, fields ...types.FieldError) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ValidationErrorResponse{
		Detail: fields,
	})
}

func bodyFieldErrors(err error) []types.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []types.FieldError{{
			Field:   typeErr.Field,
			Message: "must be of type " + typeErr.Type.String(),
		}}
	}
	if errors.Is(err, models.ErrInvalidDate) {
		return []types.FieldError{{Field: "date", Message: err.Error()}}
	}
	if errors.Is(err, fiber.ErrUnprocessableEntity) {
		return []types.FieldError{{Field: "body", Message: "unsupported content type"}}
	}
	return []types.FieldError{{Field: "body", Message: err.Error()}}
}

func structFieldErrors(err error) []types.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []types.FieldError{{Field: "body", Message: types.DetailInvalidBody}}
	}

	fields := make([]types.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := "failed on " + fe.Tag()
		switch fe.Tag() {
		case "required":
			msg = "field required"
		case "whole":
			msg = "must be a whole number"
		}
		fields = append(fields, types.FieldError{Field: fe.Field(), Message: msg})
	}
	return fields
}
