package api

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type themeInput struct {
	DarkMode string `json:"dark_mode" form:"dark_mode"`
	Next     string `json:"next" form:"next"`
}

func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	language := handler.i18n.NormalizeLanguage(c.Params("lang"))
	stored, err := handler.settings.SetLocale(language)
	if err != nil {
		log.Printf("settings: save locale failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to save language")
	}

	nextPath := sanitizeRedirectPath(c.Query("next"), "/")
	return redirectOrJSON(c, nextPath, fiber.Map{"locale": stored})
}

// SetTheme stores the dark mode flag. A missing field toggles the current value.
func (handler *Handler) SetTheme(c *fiber.Ctx) error {
	input := themeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid theme input")
	}

	darkMode := !currentDarkMode(c)
	if raw := strings.TrimSpace(input.DarkMode); raw != "" {
		parsed, err := parseCheckbox(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid theme input")
		}
		darkMode = parsed
	}

	if err := handler.settings.SetDarkMode(darkMode); err != nil {
		log.Printf("settings: save theme failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to save theme")
	}

	nextPath := sanitizeRedirectPath(input.Next, "/")
	return redirectOrJSON(c, nextPath, fiber.Map{"dark_mode": darkMode})
}

func (handler *Handler) GetPreferences(c *fiber.Ctx) error {
	preferences, err := handler.settings.Preferences()
	if err != nil {
		log.Printf("settings: load preferences failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load preferences")
	}
	return c.JSON(preferences)
}

func parseCheckbox(raw string) (bool, error) {
	if strings.EqualFold(raw, "on") {
		return true, nil
	}
	if strings.EqualFold(raw, "off") {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
