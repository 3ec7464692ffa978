package validator

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks a request struct against its `validate` tags and
// returns field -> failed tag, or nil when everything passes. The map
// feeds the details block of a VALIDATION_ERROR response.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	failed := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		failed[fe.Field()] = fe.Tag()
	}
	return failed
}
