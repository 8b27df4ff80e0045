package services

import (
	"fmt"

	"github.com/terraincognita07/aajkakhana/internal/models"
)

type PrepAlert struct {
	Recipe models.Recipe
	Meal   models.MealType
	When   models.PrepTiming
}

type Totals struct {
	Protein  int `json:"protein"`
	Calories int `json:"calories"`
}

type PlanDay struct {
	Index    int
	Weekday  int
	Week     int
	IsToday  bool
	IsSunday bool
	Menu     models.DayMenu
	Totals   Totals
}

// CurrentRecipe picks the recipe for meal. Days without dinner show lunch
// again in the evening.
func CurrentRecipe(day models.DayMenu, meal models.MealType) models.Recipe {
	switch meal {
	case models.MealLunch:
		return day.Lunch
	case models.MealDinner:
		if day.Dinner == nil {
			return day.Lunch
		}
		return *day.Dinner
	default:
		return day.Breakfast
	}
}

// PrepAlerts lists work that has to happen now: tonight's dinner if it needs
// morning prep, then tomorrow's meals that need prep the night before.
// Order follows the checks, not the clock.
func PrepAlerts(today models.DayMenu, tomorrow models.DayMenu) []PrepAlert {
	alerts := make([]PrepAlert, 0, 4)

	if today.Dinner != nil && prepTimingIs(*today.Dinner, models.PrepMorning) {
		alerts = append(alerts, PrepAlert{Recipe: *today.Dinner, Meal: models.MealDinner, When: models.PrepMorning})
	}
	if prepTimingIs(tomorrow.Breakfast, models.PrepNightBefore) {
		alerts = append(alerts, PrepAlert{Recipe: tomorrow.Breakfast, Meal: models.MealBreakfast, When: models.PrepNightBefore})
	}
	if prepTimingIs(tomorrow.Lunch, models.PrepNightBefore) {
		alerts = append(alerts, PrepAlert{Recipe: tomorrow.Lunch, Meal: models.MealLunch, When: models.PrepNightBefore})
	}
	if tomorrow.Dinner != nil && prepTimingIs(*tomorrow.Dinner, models.PrepNightBefore) {
		alerts = append(alerts, PrepAlert{Recipe: *tomorrow.Dinner, Meal: models.MealDinner, When: models.PrepNightBefore})
	}

	return alerts
}

func prepTimingIs(recipe models.Recipe, timing models.PrepTiming) bool {
	return recipe.Prep != nil && recipe.Prep.When == timing
}

func DailyTotals(day models.DayMenu) Totals {
	totals := Totals{
		Protein:  day.Breakfast.Protein + day.Lunch.Protein,
		Calories: day.Breakfast.Calories + day.Lunch.Calories,
	}
	if day.Dinner != nil {
		totals.Protein += day.Dinner.Protein
		totals.Calories += day.Dinner.Calories
	}
	return totals
}

// BuildPlanDays lays the rotation out as two Monday-first weeks.
func BuildPlanDays(cycle *MenuCycle, todayIndex int) []PlanDay {
	days := cycle.Days()
	today := normalizeDayIndex(todayIndex)

	plan := make([]PlanDay, 0, len(days))
	for index, menu := range days {
		weekday := index % 7
		plan = append(plan, PlanDay{
			Index:    index,
			Weekday:  weekday,
			Week:     index/7 + 1,
			IsToday:  index == today,
			IsSunday: weekday == 6,
			Menu:     menu,
			Totals:   DailyTotals(menu),
		})
	}
	return plan
}

func WatchURL(youtubeID string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", youtubeID)
}

func ThumbnailURL(youtubeID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", youtubeID)
}
