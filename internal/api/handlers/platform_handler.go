package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postflow-composer/internal/service"
)

type PlatformHandler struct {
	ps service.PlatformService
	pf service.ProfileService
}

func NewPlatformHandler(ps service.PlatformService, pf service.ProfileService) *PlatformHandler {
	return &PlatformHandler{
		ps: ps,
		pf: pf,
	}
}

func (h *PlatformHandler) ListSocialAccounts(c *fiber.Ctx) error {
	userID := GetUserID(c)

	accountList, err := h.ps.List(c.UserContext(), userID)
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch social accounts",
		})
	}

	return c.Status(fiber.StatusOK).JSON(accountList)
}

func (h *PlatformHandler) DeleteSocialAccount(c *fiber.Ctx) error {
	userID := GetUserID(c)
	accountID := c.QueryInt("id", 0)

	err := h.ps.Delete(c.UserContext(), userID, int64(accountID))
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to delete social account",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

// ListProfiles returns every profile with the accounts grouped under it.
func (h *PlatformHandler) ListProfiles(c *fiber.Ctx) error {
	userID := GetUserID(c)

	profiles, err := h.pf.List(c.UserContext(), userID)
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch profiles",
		})
	}

	return c.Status(fiber.StatusOK).JSON(profiles)
}
