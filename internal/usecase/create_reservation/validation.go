package create_reservation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate общий инстанс go-playground валидатора; потокобезопасен после создания
var validate = validator.New()

// validateRequest валидирует входные данные запроса по validate-тегам модели
func validateRequest(req *Request) error {
	if err := validate.Struct(req); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return fmt.Errorf("%w: field %s failed on %q", ErrInvalidInput, first.Field(), first.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	return nil
}
