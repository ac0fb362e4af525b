package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a request DTO and returns a
// caller-friendly error naming the first failing field.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fmt.Errorf("field %s failed on '%s' rule", errs[0].Field(), errs[0].Tag())
		}
		return err
	}
	return nil
}
