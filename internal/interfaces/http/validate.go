package http

import (
	"github.com/go-playground/validator/v10"
)

// validate instancia compartida; las reglas viven en los tags `validate` de los
// DTOs de request.
var validate = validator.New()

func validarBody(in any) error {
	return validate.Struct(in)
}
