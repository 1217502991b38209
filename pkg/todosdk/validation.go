package todosdk

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/go-playground/validator/v10"
)

// Messages for the rules clients most often trip over.
const (
	MsgInvalidEmail    = "invalid email"
	MsgInvalidPassword = "password must contain one digit, one special character and must be at least 8 characters long"
	MsgPasswordTooLong = "password must be at most 72 bytes"
	MsgFullnameLength  = "fullname must be between 2 and 30 characters"
	MsgFullnameMissing = "fullname is null"
	MsgNothingToUpdate = "at least one of title, description or statusCode is required"
)

var (
	reDigit   = regexp.MustCompile(`[0-9]`)
	reSpecial = regexp.MustCompile(`[^0-9a-zA-Z]`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return ValidPassword(fl.Field().String())
	})
	return v
}

// ValidPassword requires at least 8 characters including a digit and a
// character that is neither a letter nor a digit. bcrypt cannot hash more than
// cryptox.MaxPasswordBytes bytes, so longer passwords are refused.
func ValidPassword(pw string) bool {
	return len(pw) >= 8 && len(pw) <= cryptox.MaxPasswordBytes &&
		reDigit.MatchString(pw) && reSpecial.MatchString(pw)
}

// ValidationError lists every failed rule of a request.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " or ")
}

func (r CreateUserRequest) Validate() error { return validateStruct(r) }
func (r LoginRequest) Validate() error      { return validateStruct(r) }
func (r CreateTodoRequest) Validate() error { return validateStruct(r) }
func (r UpsertTodoRequest) Validate() error { return validateStruct(r) }

func (r UpdateTodoRequest) Validate() error {
	if r.Title == nil && r.Description == nil && r.StatusCode == nil {
		return &ValidationError{Messages: []string{MsgNothingToUpdate}}
	}
	return validateStruct(r)
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return &ValidationError{Messages: msgs}
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch {
	case fe.Tag() == "email":
		return MsgInvalidEmail
	case fe.Tag() == "password" && len(fmt.Sprint(fe.Value())) > cryptox.MaxPasswordBytes:
		return MsgPasswordTooLong
	case fe.Tag() == "password":
		return MsgInvalidPassword
	case field == "fullname" && fe.Tag() == "required":
		return MsgFullnameMissing
	case field == "fullname":
		return MsgFullnameLength
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
