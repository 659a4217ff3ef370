package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Sobre uniforme de respuesta
   Éxito:  { success: true,  message, data, pagination? }
   Error:  { success: false, message, error }
=================================*/

// JsonOK: respuesta exitosa genérica (GET detalle, etc.)
func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	if strings.TrimSpace(message) == "" {
		message = "Operación exitosa"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonCreated: respuesta de creación (POST, 201)
func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	if strings.TrimSpace(message) == "" {
		message = "Creado"
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonList: listado con paginación
func JsonList(c *fiber.Ctx, message string, data interface{}, pagination Pagination) error {
	if strings.TrimSpace(message) == "" {
		message = "Datos obtenidos exitosamente"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    message,
		"data":       data,
		"pagination": pagination,
	})
}

// JsonError: error genérico sin detalle
func JsonError(c *fiber.Ctx, status int, message string) error {
	return JsonErrorDetalle(c, status, message, nil)
}

// JsonErrorDetalle: error con detalle opcional (detalle crudo sólo fuera de producción)
func JsonErrorDetalle(c *fiber.Ctx, status int, message string, detalle interface{}) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = "Error interno"
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   detalle,
	})
}
