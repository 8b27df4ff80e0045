package services

import (
	"fmt"
	"testing"

	"github.com/terraincognita07/aajkakhana/internal/models"
)

func testRecipe(name string, protein int, calories int, prep *models.PrepInstruction) models.Recipe {
	return models.Recipe{
		Name:      name,
		NameHi:    name + " (hi)",
		Emoji:     "🍲",
		YouTubeID: "vid-" + name,
		Protein:   protein,
		Calories:  calories,
		PrepTime:  20,
		Equipment: models.EquipmentStove,
		Prep:      prep,
	}
}

func testPrep(when models.PrepTiming) *models.PrepInstruction {
	return &models.PrepInstruction{When: when, TaskEn: "soak", TaskHi: "भिगोएं"}
}

func testDays() []models.DayMenu {
	days := make([]models.DayMenu, 0, models.CycleLength)
	for index := 0; index < models.CycleLength; index++ {
		dinner := testRecipe(fmt.Sprintf("dinner-%d", index), 30, 400, nil)
		day := models.DayMenu{
			Breakfast: testRecipe(fmt.Sprintf("breakfast-%d", index), 20, 300, nil),
			Lunch:     testRecipe(fmt.Sprintf("lunch-%d", index), 40, 500, nil),
			Dinner:    &dinner,
		}
		if index%7 == 6 {
			day.Dinner = nil
		}
		days = append(days, day)
	}
	return days
}

func mustTestCycle(t *testing.T) *MenuCycle {
	t.Helper()

	cycle, err := NewMenuCycle(testDays())
	if err != nil {
		t.Fatalf("NewMenuCycle() unexpected error: %v", err)
	}
	return cycle
}

func mustDefaultCycle(t *testing.T) *MenuCycle {
	t.Helper()

	cycle, err := LoadMenuCycle("")
	if err != nil {
		t.Fatalf("LoadMenuCycle(default) unexpected error: %v", err)
	}
	return cycle
}
