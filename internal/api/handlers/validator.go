package handlers

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Validator проверяет тела запросов по тегам validate.
// Дополнительные теги: date (YYYY-MM-DD) и clock (HH:mm).
type Validator struct {
	v *validator.Validate
}

// NewValidator создает валидатор с зарегистрированными тегами date и clock.
// Паникует, если тег не удалось зарегистрировать: это ошибка программы.
func NewValidator() *Validator {
	v := validator.New()

	mustRegister(v, "date", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := time.Parse(domain.DateFormat, value)
		return err == nil
	})

	mustRegister(v, "clock", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := types.NewTimeStringFromString(value)
		return err == nil
	})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Struct проверяет структуру, nil указатели пропускаются тегом omitempty
func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

// FirstField имя первого поля, не прошедшего проверку
func FirstField(err error) string {
	if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
		return ve[0].Field()
	}
	return ""
}
