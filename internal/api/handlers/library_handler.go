package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// LibraryHandler serves the media library through the user's composer so
// library failures surface as composer notifications.
type LibraryHandler struct {
	sessions Sessions
}

func NewLibraryHandler(sessions Sessions) *LibraryHandler {
	return &LibraryHandler{sessions: sessions}
}

func (h *LibraryHandler) ListMedia(c *fiber.Ctx) error {
	comp := h.sessions.Get(GetUserID(c))

	assets, err := comp.Library(c.UserContext())
	if err != nil {
		return composerError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(assets)
}

func (h *LibraryHandler) RemoveMedia(c *fiber.Ctx) error {
	assetID := c.QueryInt("id", 0)
	if assetID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing media id",
		})
	}

	comp := h.sessions.Get(GetUserID(c))
	if err := comp.DeleteLibraryItem(c.UserContext(), int64(assetID)); err != nil {
		return composerError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
