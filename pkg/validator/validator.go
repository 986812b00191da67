package validator

import (
	"github.com/go-playground/validator/v10"
)

// ErrorDetail describe un campo que falló la validación.
type ErrorDetail struct {
	FailedField string
	Tag         string
	Param       string
}

var validate = validator.New()

// ValidateStruct valida los tags `validate` de un struct y devuelve el detalle
// de cada campo fallido (vacío si todo pasa).
func ValidateStruct(data interface{}) []ErrorDetail {
	var details []ErrorDetail
	if err := validate.Struct(data); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			details = append(details, ErrorDetail{
				FailedField: fieldErr.StructNamespace(),
				Tag:         fieldErr.Tag(),
				Param:       fieldErr.Param(),
			})
		}
	}
	return details
}
