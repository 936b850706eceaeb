package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Respuesta de éxito (200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Respuesta de éxito con código custom (201 para created, etc.)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusCreated, message, data)
}

func JsonUpdated(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

func JsonDeleted(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Respuesta de error simple
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// ✅ Error con detalle por campo
func JsonErrorWithDetails(c *fiber.Ctx, code int, message string, errors interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errors,
	})
}

// ✅ Error de validación (validator.v10) → mapa campo → regla
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Entrada inválida")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		switch fieldErr.Tag() {
		case "required":
			errorsMap[fieldErr.Field()] = "Este campo es obligatorio."
		case "email":
			errorsMap[fieldErr.Field()] = "Formato de correo inválido."
		case "min":
			errorsMap[fieldErr.Field()] = "Debe tener al menos " + fieldErr.Param() + " caracteres."
		case "max":
			errorsMap[fieldErr.Field()] = "No puede superar " + fieldErr.Param() + " caracteres."
		case "oneof":
			errorsMap[fieldErr.Field()] = "Debe ser uno de: " + fieldErr.Param() + "."
		case "gte", "lte":
			errorsMap[fieldErr.Field()] = "Valor fuera de rango."
		default:
			errorsMap[fieldErr.Field()] = "Formato inválido."
		}
	}

	return JsonErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validación fallida", errorsMap)
}
