package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gigworkers/gigworkers_be/internal/catalog"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) GetCities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    catalog.Cities,
	})
}

func (h *CatalogHandler) GetSkills(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    catalog.Skills,
	})
}

func (h *CatalogHandler) GetServiceTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    catalog.ServiceTemplates,
	})
}
