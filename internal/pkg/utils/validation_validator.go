package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// ICD-10 code shape: letter, two digits, optional dotted subcategory.
var icd10Pattern = regexp.MustCompile(`^[A-TV-Z][0-9]{2}(\.[0-9A-Z]{1,4})?$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("icd10", validateICD10)
	validate.RegisterValidation("not_blank", validateNotBlank)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateICD10(fl validator.FieldLevel) bool {
	return icd10Pattern.MatchString(fl.Field().String())
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
