package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// VINs are 17 characters and never contain I, O or Q.
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// registerCustomValidators installs the custom binding tags used by the DTOs.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("vin", func(fl validator.FieldLevel) bool {
			return vinPattern.MatchString(fl.Field().String())
		})
	}
}
