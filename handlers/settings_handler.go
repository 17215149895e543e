package handlers

import (
	"github.com/Vinish1987/2pcinvestorbook/models"
	"github.com/Vinish1987/2pcinvestorbook/services"
	"github.com/gofiber/fiber/v2"
)

type SettingsRequest struct {
	DefaultReturnPercentage *float64 `json:"default_return_percentage" validate:"omitempty,gte=0,lte=100"`
	AdminEmail              *string  `json:"admin_email" validate:"omitempty,email"`
	AdminContactInfo        *string  `json:"admin_contact_info"`
}

// GetSettings returns the stored configuration, or the defaults when no row
// exists yet. Reading never creates the row.
func GetSettings(c *fiber.Ctx) error {
	settings, err := services.GetSettings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if settings == nil {
		return c.JSON(models.Settings{DefaultReturnPercentage: models.DefaultReturnPercentage})
	}
	return c.JSON(settings)
}

func UpdateSettings(c *fiber.Ctx) error {
	var req SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	settings, err := services.UpsertSettings(services.SettingsUpdate{
		DefaultReturnPercentage: req.DefaultReturnPercentage,
		AdminEmail:              req.AdminEmail,
		AdminContactInfo:        req.AdminContactInfo,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update settings"})
	}
	return c.JSON(settings)
}
