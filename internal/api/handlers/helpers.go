package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postflow-composer/internal/composer"
)

func GetUserID(c *fiber.Ctx) int64 {
	raw, _ := c.Locals("user_id").(string)
	userID, _ := strconv.ParseInt(raw, 10, 64)
	return userID
}

// bindBody decodes the request body into dst and runs its validate tags.
// It returns the response body to send when the request is rejected.
func bindBody(c *fiber.Ctx, v *validator.Validate, dst interface{}) fiber.Map {
	if err := c.BodyParser(dst); err != nil {
		return fiber.Map{"error": "Invalid request body"}
	}
	if err := v.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fiber.Map{
				"error": "Invalid " + verrs[0].Field(),
				"field": verrs[0].Field(),
			}
		}
		return fiber.Map{"error": err.Error()}
	}
	return nil
}

// composerError maps composer and backend failures to a status code.
func composerError(c *fiber.Ctx, err error) error {
	var ve *composer.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": ve.Message,
			"field": ve.Field,
		})
	}

	if errors.Is(err, composer.ErrDispatchInFlight) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var re *composer.RemoteError
	if errors.As(err, &re) {
		msg := re.Message
		if msg == "" {
			msg = "Request failed"
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": msg,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Something went wrong",
	})
}
