package validators

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidationError - набор нарушений правил валидации модели
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

var (
	once     sync.Once
	instance *validator.Validate

	trimmedPattern = regexp.MustCompile(`^\S.*\S$`)
)

// Тексты ошибок по ключу "поле.правило"
var messages = map[string]string{
	"LoanType.enum": "LoanType must be a valid enum value. Use 0 for Fast, 1 for Auto, or 2 for Installement.",
	"Currency.enum": "Currency must be a valid enum value. Use 0 for USD, 1 for EUR, or 2 for GEL.",
	"Period.enum":   "Period must be a valid enum value. Use 0 for OneMonth, 1 for ThreeMonth, or 2 for SixMonth.",
	"Amount.gt":     "Amount must be a positive value greater than 0.",

	"FirstName.required": "First name is required.",
	"FirstName.trimmed":  "First name must not have leading or trailing spaces.",
	"FirstName.min":      "First name must be at least 2 characters long.",
	"LastName.required":  "Last name is required.",
	"LastName.trimmed":   "Last name must not have leading or trailing spaces.",
	"LastName.min":       "Last name must be at least 2 characters long.",
	"Age.gte":            "Age must be 18 or older.",
	"Email.email":        "Invalid email format.",
	"Salary.gte":         "Salary cannot be negative.",

	"Username.required":  "Username is required.",
	"Username.min":       "Username must be at least 6 characters long.",
	"Username.has_digit": "Username must contain at least one number.",
	"Username.trimmed":   "Username must not have leading or trailing spaces.",

	"Password.required":   "Password is required.",
	"Password.has_upper":  "Password must contain at least one uppercase letter.",
	"Password.has_lower":  "Password must contain at least one lowercase letter.",
	"Password.has_digit":  "Password must contain at least one number.",
	"Password.has_symbol": "Password must contain at least one symbol.",
	"Password.min":        "Password must be at least 8 characters long.",
	"Password.trimmed":    "Password must not have leading or trailing spaces.",
}

// Get - возвращает настроенный экземпляр валидатора
func Get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// decimal сравнивается как число
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
		mustRegister(v, "enum", func(fl validator.FieldLevel) bool {
			e, ok := fl.Field().Interface().(interface{ Valid() bool })
			return ok && e.Valid()
		})
		mustRegister(v, "trimmed", func(fl validator.FieldLevel) bool {
			return trimmedPattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "has_upper", hasRune(unicode.IsUpper))
		mustRegister(v, "has_lower", hasRune(unicode.IsLower))
		mustRegister(v, "has_digit", hasRune(unicode.IsDigit))
		mustRegister(v, "has_symbol", hasRune(func(r rune) bool {
			return r == '_' || !(unicode.IsLetter(r) || unicode.IsDigit(r))
		}))
		instance = v
	})
	return instance
}

// Validate - проверяет модель по тегам validate и возвращает *ValidationError
func Validate(model interface{}) error {
	err := Get().Struct(model)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	result := &ValidationError{}
	for _, fe := range fieldErrors {
		result.Messages = append(result.Messages, message(fe))
	}
	return result
}

func message(fe validator.FieldError) string {
	if text, ok := messages[fe.StructField()+"."+fe.Tag()]; ok {
		return text
	}
	return fe.Error()
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func hasRune(match func(rune) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), match) >= 0
	}
}
