package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Instancia compartida de validator para todos los DTO.
var Validate = validator.New()

// ValidationError responde 400 con el detalle campo→regla.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Entrada inválida")
	}
	detalles := make(map[string]string, len(ve))
	for _, fe := range ve {
		switch fe.Tag() {
		case "required":
			detalles[fe.Field()] = "es requerido"
		case "email":
			detalles[fe.Field()] = "formato de email inválido"
		case "min":
			detalles[fe.Field()] = "mínimo " + fe.Param() + " caracteres"
		case "max":
			detalles[fe.Field()] = "máximo " + fe.Param() + " caracteres"
		case "oneof":
			detalles[fe.Field()] = "debe ser uno de: " + fe.Param()
		default:
			detalles[fe.Field()] = "formato inválido"
		}
	}
	return JsonErrorDetalle(c, fiber.StatusBadRequest, "Validación fallida", detalles)
}
