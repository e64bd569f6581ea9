package handlers

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"voicepos/store"
)

// HandleListInventory returns the full inventory ordered by product name.
func (h *Handlers) HandleListInventory(c *fiber.Ctx) error {
	ctx := context.Background()

	items, err := h.store.ListItems(ctx)
	if err != nil {
		log.Printf("Error listing inventory: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve inventory"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": items})
}

// HandleGetInventory looks up one item by canonical name or spoken alias.
func (h *Handlers) HandleGetInventory(c *fiber.Ctx) error {
	ctx := context.Background()

	raw := c.Params("name")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Product name is required"})
	}

	lookup := raw
	if canonical := h.lex.FindProduct(strings.ToLower(raw)); canonical != "" {
		lookup = canonical
	}

	item, err := h.store.GetItemByName(ctx, lookup)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Inventory item not found"})
		}
		log.Printf("Error getting inventory item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve inventory item"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": item})
}
