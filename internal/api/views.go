package api

import (
	"fmt"

	"github.com/terraincognita07/aajkakhana/internal/models"
	"github.com/terraincognita07/aajkakhana/internal/services"
)

type recipeCardView struct {
	DayIndex       int
	Meal           models.MealType
	MealLabel      string
	Name           string
	AltName        string
	Emoji          string
	Protein        int
	Calories       int
	PrepTime       int
	Equipment      models.Equipment
	EquipmentLabel string
	HasPrep        bool
	PrepWhen       models.PrepTiming
	PrepLabel      string
	PrepTask       string
	WatchPath      string
	ThumbnailURL   string
}

type prepAlertView struct {
	Name        string
	Emoji       string
	Meal        models.MealType
	MealLabel   string
	When        models.PrepTiming
	TimingLabel string
	Task        string
}

type planDayView struct {
	Index        int
	Number       int
	WeekdayLabel string
	Week         int
	IsToday      bool
	IsSunday     bool
	Breakfast    recipeCardView
	Lunch        recipeCardView
	Dinner       *recipeCardView
	Totals       services.Totals
}

// servedMeal is the slot whose recipe is actually shown for meal on day.
func servedMeal(day models.DayMenu, meal models.MealType) models.MealType {
	if meal == models.MealDinner && !day.HasDinner() {
		return models.MealLunch
	}
	return meal
}

func mealLabel(messages map[string]string, meal models.MealType) string {
	return translateMessage(messages, "meal."+string(meal))
}

func timingLabel(messages map[string]string, timing models.PrepTiming) string {
	return translateMessage(messages, "prep."+string(timing))
}

func watchPath(dayIndex int, meal models.MealType) string {
	return fmt.Sprintf("/watch/%d/%s", dayIndex, meal)
}

func buildRecipeCard(messages map[string]string, language string, dayIndex int, meal models.MealType, recipe models.Recipe) recipeCardView {
	card := recipeCardView{
		DayIndex:       dayIndex,
		Meal:           meal,
		MealLabel:      mealLabel(messages, meal),
		Name:           recipe.LocalizedName(language),
		AltName:        recipe.AlternateName(language),
		Emoji:          recipe.Emoji,
		Protein:        recipe.Protein,
		Calories:       recipe.Calories,
		PrepTime:       recipe.PrepTime,
		Equipment:      recipe.Equipment,
		EquipmentLabel: translateMessage(messages, "equipment."+string(recipe.Equipment)),
		WatchPath:      watchPath(dayIndex, meal),
		ThumbnailURL:   services.ThumbnailURL(recipe.YouTubeID),
	}
	if recipe.Prep != nil {
		card.HasPrep = true
		card.PrepWhen = recipe.Prep.When
		card.PrepLabel = timingLabel(messages, recipe.Prep.When)
		card.PrepTask = recipe.Prep.LocalizedTask(language)
	}
	return card
}

func buildPrepAlerts(messages map[string]string, language string, alerts []services.PrepAlert) []prepAlertView {
	views := make([]prepAlertView, 0, len(alerts))
	for _, alert := range alerts {
		view := prepAlertView{
			Name:        alert.Recipe.LocalizedName(language),
			Emoji:       alert.Recipe.Emoji,
			Meal:        alert.Meal,
			MealLabel:   mealLabel(messages, alert.Meal),
			When:        alert.When,
			TimingLabel: timingLabel(messages, alert.When),
		}
		if alert.Recipe.Prep != nil {
			view.Task = alert.Recipe.Prep.LocalizedTask(language)
		}
		views = append(views, view)
	}
	return views
}

// buildMealCards returns the day's cards in serving order, skipping the
// excluded slot and any missing dinner.
func buildMealCards(messages map[string]string, language string, dayIndex int, day models.DayMenu, exclude models.MealType) []recipeCardView {
	cards := make([]recipeCardView, 0, 3)
	if exclude != models.MealBreakfast {
		cards = append(cards, buildRecipeCard(messages, language, dayIndex, models.MealBreakfast, day.Breakfast))
	}
	if exclude != models.MealLunch {
		cards = append(cards, buildRecipeCard(messages, language, dayIndex, models.MealLunch, day.Lunch))
	}
	if exclude != models.MealDinner && day.Dinner != nil {
		cards = append(cards, buildRecipeCard(messages, language, dayIndex, models.MealDinner, *day.Dinner))
	}
	return cards
}

func buildPlanDays(messages map[string]string, language string, days []services.PlanDay) []planDayView {
	views := make([]planDayView, 0, len(days))
	for _, day := range days {
		view := planDayView{
			Index:        day.Index,
			Number:       day.Index + 1,
			WeekdayLabel: translateMessage(messages, fmt.Sprintf("weekday.%d", day.Weekday)),
			Week:         day.Week,
			IsToday:      day.IsToday,
			IsSunday:     day.IsSunday,
			Breakfast:    buildRecipeCard(messages, language, day.Index, models.MealBreakfast, day.Menu.Breakfast),
			Lunch:        buildRecipeCard(messages, language, day.Index, models.MealLunch, day.Menu.Lunch),
			Totals:       day.Totals,
		}
		if day.Menu.Dinner != nil {
			dinner := buildRecipeCard(messages, language, day.Index, models.MealDinner, *day.Menu.Dinner)
			view.Dinner = &dinner
		}
		views = append(views, view)
	}
	return views
}
