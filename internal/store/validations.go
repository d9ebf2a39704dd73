package store

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/habithero/habitctl/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("frequency", func(fl validator.FieldLevel) bool {
			_, err := entity.ParseFrequency(fl.Field().String())
			return err == nil
		})
		validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			_, err := entity.ParseCategory(fl.Field().String())
			return err == nil
		})
		validate.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(time.DateOnly, fl.Field().String())
			return err == nil
		})
	})
}
