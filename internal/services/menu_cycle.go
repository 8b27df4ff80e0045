package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/aajkakhana/internal/models"
)

var ErrInvalidMenu = errors.New("invalid menu")

// MenuCycle is the read-only fourteen-day rotation.
type MenuCycle struct {
	days []models.DayMenu
}

func NewMenuCycle(days []models.DayMenu) (*MenuCycle, error) {
	if err := validateDayMenus(days); err != nil {
		return nil, err
	}

	cloned := make([]models.DayMenu, 0, len(days))
	for _, day := range days {
		cloned = append(cloned, cloneDayMenu(day))
	}
	return &MenuCycle{days: cloned}, nil
}

func (cycle *MenuCycle) Len() int {
	return len(cycle.days)
}

// DayMenuAt returns a copy of the menu for index. Callers pass indices
// produced by modulo arithmetic; anything else is reduced into range.
func (cycle *MenuCycle) DayMenuAt(index int) models.DayMenu {
	return cloneDayMenu(cycle.days[normalizeDayIndex(index)])
}

func (cycle *MenuCycle) Days() []models.DayMenu {
	result := make([]models.DayMenu, 0, len(cycle.days))
	for _, day := range cycle.days {
		result = append(result, cloneDayMenu(day))
	}
	return result
}

func normalizeDayIndex(index int) int {
	normalized := index % models.CycleLength
	if normalized < 0 {
		normalized += models.CycleLength
	}
	return normalized
}

func cloneDayMenu(day models.DayMenu) models.DayMenu {
	cloned := models.DayMenu{
		Breakfast: cloneRecipe(day.Breakfast),
		Lunch:     cloneRecipe(day.Lunch),
	}
	if day.Dinner != nil {
		dinner := cloneRecipe(*day.Dinner)
		cloned.Dinner = &dinner
	}
	return cloned
}

func cloneRecipe(recipe models.Recipe) models.Recipe {
	if recipe.Prep != nil {
		prep := *recipe.Prep
		recipe.Prep = &prep
	}
	return recipe
}

func validateDayMenus(days []models.DayMenu) error {
	if len(days) != models.CycleLength {
		return fmt.Errorf("%w: expected %d days, got %d", ErrInvalidMenu, models.CycleLength, len(days))
	}

	for index, day := range days {
		if err := validateRecipe(day.Breakfast); err != nil {
			return fmt.Errorf("%w: day %d breakfast: %v", ErrInvalidMenu, index+1, err)
		}
		if err := validateRecipe(day.Lunch); err != nil {
			return fmt.Errorf("%w: day %d lunch: %v", ErrInvalidMenu, index+1, err)
		}
		if day.Dinner != nil {
			if err := validateRecipe(*day.Dinner); err != nil {
				return fmt.Errorf("%w: day %d dinner: %v", ErrInvalidMenu, index+1, err)
			}
		}
	}
	return nil
}

func validateRecipe(recipe models.Recipe) error {
	switch {
	case strings.TrimSpace(recipe.Name) == "":
		return errors.New("name is required")
	case strings.TrimSpace(recipe.NameHi) == "":
		return errors.New("hindi name is required")
	case strings.TrimSpace(recipe.YouTubeID) == "":
		return errors.New("video id is required")
	case recipe.Protein < 0:
		return fmt.Errorf("negative protein %d", recipe.Protein)
	case recipe.Calories < 0:
		return fmt.Errorf("negative calories %d", recipe.Calories)
	case recipe.PrepTime < 0:
		return fmt.Errorf("negative prep time %d", recipe.PrepTime)
	case !recipe.Equipment.Valid():
		return fmt.Errorf("unknown equipment %q", recipe.Equipment)
	}

	if recipe.Prep == nil {
		return nil
	}
	if !recipe.Prep.When.Valid() {
		return fmt.Errorf("unknown prep timing %q", recipe.Prep.When)
	}
	if strings.TrimSpace(recipe.Prep.TaskEn) == "" || strings.TrimSpace(recipe.Prep.TaskHi) == "" {
		return errors.New("prep task is required in both languages")
	}
	return nil
}
