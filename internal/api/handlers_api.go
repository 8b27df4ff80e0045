package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aajkakhana/internal/models"
	"github.com/terraincognita07/aajkakhana/internal/services"
)

type recipeResponse struct {
	models.Recipe
	WatchURL     string `json:"watchUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

type prepAlertResponse struct {
	Recipe      recipeResponse    `json:"recipe"`
	Meal        models.MealType   `json:"meal"`
	MealLabel   string            `json:"meal_label"`
	When        models.PrepTiming `json:"when"`
	TimingLabel string            `json:"timing_label"`
}

type nowResponse struct {
	Language      string               `json:"language"`
	DayIndex      int                  `json:"day_index"`
	DayNumber     int                  `json:"day_number"`
	MealType      models.MealType      `json:"meal_type"`
	MealLabel     string               `json:"meal_label"`
	TimeLabel     string               `json:"time_label"`
	IsSunday      bool                 `json:"is_sunday"`
	CookArrival   services.CookArrival `json:"cook_arrival"`
	CurrentRecipe recipeResponse       `json:"current_recipe"`
	PrepAlerts    []prepAlertResponse  `json:"prep_alerts"`
	Totals        services.Totals      `json:"totals"`
	GeneratedAt   time.Time            `json:"generated_at"`
}

type dayResponse struct {
	Index     int             `json:"index"`
	DayNumber int             `json:"day_number"`
	Weekday   string          `json:"weekday"`
	Week      int             `json:"week"`
	IsToday   bool            `json:"is_today"`
	IsSunday  bool            `json:"is_sunday"`
	Breakfast recipeResponse  `json:"breakfast"`
	Lunch     recipeResponse  `json:"lunch"`
	Dinner    *recipeResponse `json:"dinner"`
	Totals    services.Totals `json:"totals"`
}

func (handler *Handler) GetNow(c *fiber.Ctx) error {
	messages := currentMessages(c)
	snapshot := handler.refresher.Current()

	alerts := make([]prepAlertResponse, 0, len(snapshot.PrepAlerts))
	for _, alert := range snapshot.PrepAlerts {
		alerts = append(alerts, prepAlertResponse{
			Recipe:      newRecipeResponse(alert.Recipe),
			Meal:        alert.Meal,
			MealLabel:   mealLabel(messages, alert.Meal),
			When:        alert.When,
			TimingLabel: timingLabel(messages, alert.When),
		})
	}

	return c.JSON(nowResponse{
		Language:      currentLanguage(c),
		DayIndex:      snapshot.DayIndex,
		DayNumber:     snapshot.DayIndex + 1,
		MealType:      snapshot.MealType,
		MealLabel:     mealLabel(messages, snapshot.MealType),
		TimeLabel:     snapshot.TimeLabel,
		IsSunday:      snapshot.IsSunday,
		CookArrival:   snapshot.CookArrival,
		CurrentRecipe: newRecipeResponse(snapshot.CurrentRecipe),
		PrepAlerts:    alerts,
		Totals:        snapshot.Totals,
		GeneratedAt:   snapshot.GeneratedAt,
	})
}

func (handler *Handler) GetDays(c *fiber.Ctx) error {
	messages := currentMessages(c)
	days := services.BuildPlanDays(handler.cycle, handler.refresher.Current().DayIndex)

	response := make([]dayResponse, 0, len(days))
	for _, day := range days {
		response = append(response, newDayResponse(messages, day))
	}
	return c.JSON(response)
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	index, ok := parseDayIndex(c.Params("index"))
	if !ok {
		return apiError(c, fiber.StatusNotFound, "day not found")
	}

	days := services.BuildPlanDays(handler.cycle, handler.refresher.Current().DayIndex)
	return c.JSON(newDayResponse(currentMessages(c), days[index]))
}

func newRecipeResponse(recipe models.Recipe) recipeResponse {
	return recipeResponse{
		Recipe:       recipe,
		WatchURL:     services.WatchURL(recipe.YouTubeID),
		ThumbnailURL: services.ThumbnailURL(recipe.YouTubeID),
	}
}

func newDayResponse(messages map[string]string, day services.PlanDay) dayResponse {
	response := dayResponse{
		Index:     day.Index,
		DayNumber: day.Index + 1,
		Weekday:   translateMessage(messages, "weekday."+strconv.Itoa(day.Weekday)),
		Week:      day.Week,
		IsToday:   day.IsToday,
		IsSunday:  day.IsSunday,
		Breakfast: newRecipeResponse(day.Menu.Breakfast),
		Lunch:     newRecipeResponse(day.Menu.Lunch),
		Totals:    day.Totals,
	}
	if day.Menu.Dinner != nil {
		dinner := newRecipeResponse(*day.Menu.Dinner)
		response.Dinner = &dinner
	}
	return response
}

// parseDayIndex accepts only canonical rotation positions 0..13.
func parseDayIndex(raw string) (int, bool) {
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || index < 0 || index >= models.CycleLength {
		return 0, false
	}
	return index, true
}
