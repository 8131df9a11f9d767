package validator

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"stayrooted/data"
	"stayrooted/errors"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// instance trả về validator dùng chung, đã đăng ký các rule của catalog
func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("city", oneOfList(data.Cities))
		validate.RegisterValidation("category", oneOfList(data.Categories))
		validate.RegisterValidation("state", oneOfList(data.States))
		validate.RegisterValidation("property_type", oneOfList(data.PropertyTypes))
	})
	return validate
}

func oneOfList(list []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return data.Contains(list, fl.Field().String())
	}
}

// ValidateStruct chạy các tag validate và gom lỗi thành AppError dễ đọc
func ValidateStruct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid input", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fieldMessage(fe))
	}
	return errors.NewAppError(errors.ErrCodeValidation, strings.Join(messages, "; "), err)
}

func fieldMessage(fe validator.FieldError) string {
	field := toSnake(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "city":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(data.Cities, ", "))
	case "category":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(data.Categories, ", "))
	case "state":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(data.States, ", "))
	case "property_type":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(data.PropertyTypes, ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

func toSnake(s string) string {
	return strings.ToLower(camelBoundary.ReplaceAllString(s, "${1}_${2}"))
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email address", nil)
	}
	return nil
}

// ValidateRole kiểm tra role traveler|host
func ValidateRole(role string) error {
	if role != "traveler" && role != "host" {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role must be traveler or host", nil)
	}
	return nil
}
