package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lucy1234dev/server/internal/server/models"
)

type productHandler struct {
	svc ProductService
}

func (h *productHandler) list(c *fiber.Ctx) error {
	products, err := h.svc.List(c.UserContext())
	if err != nil {
		return err
	}
	if products == nil {
		products = models.Products{}
	}
	return c.JSON(products)
}

func (h *productHandler) add(c *fiber.Ctx) error {
	var in models.ProductCreate
	if err := decode(c, &in); err != nil {
		return err
	}
	p, err := h.svc.Add(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(p)
}
