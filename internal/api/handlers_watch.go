package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aajkakhana/internal/models"
	"github.com/terraincognita07/aajkakhana/internal/services"
)

// Watch sends the browser to the recipe video for one slot of the rotation.
func (handler *Handler) Watch(c *fiber.Ctx) error {
	index, ok := parseDayIndex(c.Params("day"))
	if !ok {
		return handler.NotFound(c)
	}

	day := handler.cycle.DayMenuAt(index)
	var recipe models.Recipe
	switch models.MealType(c.Params("meal")) {
	case models.MealBreakfast:
		recipe = day.Breakfast
	case models.MealLunch:
		recipe = day.Lunch
	case models.MealDinner:
		if day.Dinner == nil {
			return handler.NotFound(c)
		}
		recipe = *day.Dinner
	default:
		return handler.NotFound(c)
	}

	return c.Redirect(services.WatchURL(recipe.YouTubeID), fiber.StatusSeeOther)
}
