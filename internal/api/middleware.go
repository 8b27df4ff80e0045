package api

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
	contextDarkModeKey = "dark_mode"
)

// PreferencesMiddleware exposes the stored locale and theme to every request.
func (handler *Handler) PreferencesMiddleware(c *fiber.Ctx) error {
	preferences, err := handler.settings.Preferences()
	if err != nil {
		log.Printf("preferences: load failed, using defaults: %v", err)
	}

	language := handler.i18n.NormalizeLanguage(preferences.Locale)
	c.Locals(contextLanguageKey, language)
	c.Locals(contextMessagesKey, handler.i18n.Messages(language))
	c.Locals(contextDarkModeKey, preferences.DarkMode)
	return c.Next()
}

func currentLanguage(c *fiber.Ctx) string {
	language, ok := c.Locals(contextLanguageKey).(string)
	if !ok || strings.TrimSpace(language) == "" {
		return ""
	}
	return language
}

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, ok := c.Locals(contextMessagesKey).(map[string]string)
	if !ok || messages == nil {
		return map[string]string{}
	}
	return messages
}

func currentDarkMode(c *fiber.Ctx) bool {
	darkMode, _ := c.Locals(contextDarkModeKey).(bool)
	return darkMode
}
