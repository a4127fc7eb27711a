package utils

import (
	"errors"
	"reflect"
	"strings"

	"SmartServe-Backend/domain"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	// Report fields by their JSON name so error codes line up with the
	// wire format (donorId, not DonorID).
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// RequestErrorFromValidation converts the first struct-validation failure
// into the API's (status, code, message) triple.
func RequestErrorFromValidation(err error) *domain.RequestError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.BadRequest("INVALID_REQUEST_BODY", "Invalid request body")
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return domain.MissingField(field)
	case "oneof":
		options := strings.Join(strings.Fields(fe.Param()), ", ")
		return domain.BadRequest("INVALID_"+domain.UpperSnake(field), field+" must be one of: "+options)
	case "email":
		return domain.ErrInvalidEmailFormat
	default:
		return domain.BadRequest("INVALID_"+domain.UpperSnake(field), field+" is invalid")
	}
}
