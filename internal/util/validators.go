package util

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidateStateCode 验证州代码是否为两个字母
func ValidateStateCode(fl validator.FieldLevel) bool {
	state, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	if len(state) != 2 {
		return false
	}
	for _, r := range state {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
