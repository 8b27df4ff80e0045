package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aajkakhana/internal/services"
)

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	snapshot := handler.refresher.Current()
	data := buildDashboardData(currentMessages(c), currentLanguage(c), snapshot, c.Query("view") == "all")
	data["RefreshSeconds"] = int(handler.refresher.Interval().Seconds())
	return handler.render(c, "dashboard", data)
}

func buildDashboardData(messages map[string]string, language string, snapshot services.Snapshot, showAll bool) fiber.Map {
	served := servedMeal(snapshot.Today, snapshot.MealType)

	return fiber.Map{
		"Title":       translateMessage(messages, "app.title"),
		"ShowAll":     showAll,
		"DayNumber":   snapshot.DayIndex + 1,
		"MealType":    snapshot.MealType,
		"MealLabel":   mealLabel(messages, snapshot.MealType),
		"TimeLabel":   snapshot.TimeLabel,
		"CookArrival": snapshot.CookArrival,
		"Current":     buildRecipeCard(messages, language, snapshot.DayIndex, served, snapshot.CurrentRecipe),
		"OtherMeals":  buildMealCards(messages, language, snapshot.DayIndex, snapshot.Today, served),
		"AllMeals":    buildMealCards(messages, language, snapshot.DayIndex, snapshot.Today, ""),
		"HasDinner":   snapshot.Today.HasDinner(),
		"PrepAlerts":  buildPrepAlerts(messages, language, snapshot.PrepAlerts),
		"Totals":      snapshot.Totals,
	}
}
