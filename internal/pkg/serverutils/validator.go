package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs tag-based validation on a request dto and folds the
// first failure into a 400 ApiError.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return NewValidationError(fmt.Sprintf("リクエストの形式が正しくありません: %s", errs[0].Field()))
	}
	return NewValidationError("リクエストの形式が正しくありません")
}
