package i18n

import "fmt"

const (
	KeyEmptyField       = "errorBoundary.common.emptyField"
	KeyInvalidEmail     = "errorBoundary.common.invalidEmail"
	KeyPasswordMismatch = "errorBoundary.common.passwordMismatch"
	KeyNotNumber        = "errorBoundary.common.notNumber"
	KeyInvalidChoice    = "errorBoundary.common.invalidChoice"
	KeyInvalidField     = "errorBoundary.common.invalidField"
	KeyUnexpectedError  = "errorBoundary.common.unexpectedError"
	KeyRequestAborted   = "errorBoundary.common.requestAborted"
)

var catalog = map[string]map[string]string{
	"ru": {
		KeyEmptyField:       "Заполните поле",
		KeyInvalidEmail:     "Неверный адрес электронной почты",
		KeyPasswordMismatch: "Пароли не совпадают",
		KeyNotNumber:        "Введите число",
		KeyInvalidChoice:    "Недопустимое значение",
		KeyInvalidField:     "Неверное значение поля",
		KeyUnexpectedError:  "Непредвиденная ошибка",
		KeyRequestAborted:   "Запрос был прерван",
	},
	"en": {
		KeyEmptyField:       "Fill in the field",
		KeyInvalidEmail:     "Invalid email address",
		KeyPasswordMismatch: "Passwords do not match",
		KeyNotNumber:        "Enter a number",
		KeyInvalidChoice:    "Invalid value",
		KeyInvalidField:     "Invalid field value",
		KeyUnexpectedError:  "Unexpected error",
		KeyRequestAborted:   "The request was aborted",
	},
}

// T translates key into lng, falling back to the default language and then
// to the key itself. Args are applied with fmt.Sprintf.
func T(lng, key string, args ...any) string {
	msg, ok := catalog[lng][key]
	if !ok {
		msg, ok = catalog[FallbackLng][key]
	}
	if !ok {
		msg = key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
