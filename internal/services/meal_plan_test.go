package services

import (
	"testing"

	"github.com/terraincognita07/aajkakhana/internal/models"
)

func TestCurrentRecipeFallsBackToLunchWithoutDinner(t *testing.T) {
	dinner := testRecipe("dinner", 32, 350, nil)
	withDinner := models.DayMenu{
		Breakfast: testRecipe("breakfast", 28, 380, nil),
		Lunch:     testRecipe("lunch", 45, 520, nil),
		Dinner:    &dinner,
	}
	withoutDinner := withDinner
	withoutDinner.Dinner = nil

	tests := []struct {
		name string
		day  models.DayMenu
		meal models.MealType
		want string
	}{
		{name: "breakfast", day: withDinner, meal: models.MealBreakfast, want: "breakfast"},
		{name: "lunch", day: withDinner, meal: models.MealLunch, want: "lunch"},
		{name: "dinner", day: withDinner, meal: models.MealDinner, want: "dinner"},
		{name: "dinner falls back", day: withoutDinner, meal: models.MealDinner, want: "lunch"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CurrentRecipe(tc.day, tc.meal).Name; got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestPrepAlertsFollowCheckOrder(t *testing.T) {
	todayDinner := testRecipe("today-dinner", 30, 300, testPrep(models.PrepMorning))
	tomorrowDinner := testRecipe("tomorrow-dinner", 30, 300, testPrep(models.PrepNightBefore))
	today := models.DayMenu{
		Breakfast: testRecipe("today-breakfast", 20, 200, testPrep(models.PrepNightBefore)),
		Lunch:     testRecipe("today-lunch", 40, 400, testPrep(models.PrepMorning)),
		Dinner:    &todayDinner,
	}
	tomorrow := models.DayMenu{
		Breakfast: testRecipe("tomorrow-breakfast", 20, 200, testPrep(models.PrepNightBefore)),
		Lunch:     testRecipe("tomorrow-lunch", 40, 400, nil),
		Dinner:    &tomorrowDinner,
	}

	alerts := PrepAlerts(today, tomorrow)
	want := []struct {
		name string
		meal models.MealType
		when models.PrepTiming
	}{
		{name: "today-dinner", meal: models.MealDinner, when: models.PrepMorning},
		{name: "tomorrow-breakfast", meal: models.MealBreakfast, when: models.PrepNightBefore},
		{name: "tomorrow-dinner", meal: models.MealDinner, when: models.PrepNightBefore},
	}
	if len(alerts) != len(want) {
		t.Fatalf("expected %d alerts, got %d: %+v", len(want), len(alerts), alerts)
	}
	for index, expected := range want {
		alert := alerts[index]
		if alert.Recipe.Name != expected.name || alert.Meal != expected.meal || alert.When != expected.when {
			t.Fatalf("alert %d: expected %+v, got %s/%s/%s", index, expected, alert.Recipe.Name, alert.Meal, alert.When)
		}
	}
}

func TestPrepAlertsIgnoresOtherTimings(t *testing.T) {
	todayDinner := testRecipe("today-dinner", 30, 300, testPrep(models.PrepNightBefore))
	today := models.DayMenu{
		Breakfast: testRecipe("b", 20, 200, nil),
		Lunch:     testRecipe("l", 40, 400, nil),
		Dinner:    &todayDinner,
	}
	tomorrow := models.DayMenu{
		Breakfast: testRecipe("b", 20, 200, testPrep(models.PrepMorning)),
		Lunch:     testRecipe("l", 40, 400, testPrep(models.PrepAdvance)),
	}

	if alerts := PrepAlerts(today, tomorrow); len(alerts) != 0 {
		t.Fatalf("expected no alerts, got %+v", alerts)
	}
}

func TestPrepAlertsDefaultDataset(t *testing.T) {
	cycle := mustDefaultCycle(t)

	tests := []struct {
		today int
		want  []models.MealType
	}{
		{today: 0, want: []models.MealType{models.MealDinner}},
		{today: 2, want: []models.MealType{models.MealBreakfast, models.MealLunch}},
		{today: 5, want: []models.MealType{models.MealDinner, models.MealLunch}},
		{today: 13, want: nil},
	}

	for _, tc := range tests {
		alerts := PrepAlerts(cycle.DayMenuAt(tc.today), cycle.DayMenuAt(NextDayIndex(tc.today)))
		if len(alerts) != len(tc.want) {
			t.Fatalf("day %d: expected %d alerts, got %+v", tc.today, len(tc.want), alerts)
		}
		for index, meal := range tc.want {
			if alerts[index].Meal != meal {
				t.Fatalf("day %d alert %d: expected %s, got %s", tc.today, index, meal, alerts[index].Meal)
			}
		}
	}
}

func TestDailyTotals(t *testing.T) {
	cycle := mustDefaultCycle(t)

	if got := DailyTotals(cycle.DayMenuAt(0)); got != (Totals{Protein: 105, Calories: 1250}) {
		t.Fatalf("day 1: unexpected totals %+v", got)
	}
	if got := DailyTotals(cycle.DayMenuAt(6)); got != (Totals{Protein: 80, Calories: 1000}) {
		t.Fatalf("day 7: unexpected totals %+v", got)
	}

	day := cycle.DayMenuAt(0)
	day.Dinner = nil
	if got := DailyTotals(day); got != (Totals{Protein: 73, Calories: 900}) {
		t.Fatalf("without dinner: unexpected totals %+v", got)
	}
}

func TestBuildPlanDays(t *testing.T) {
	plan := BuildPlanDays(mustTestCycle(t), 16)

	if len(plan) != models.CycleLength {
		t.Fatalf("expected %d plan days, got %d", models.CycleLength, len(plan))
	}
	for index, day := range plan {
		if day.Index != index || day.Weekday != index%7 || day.Week != index/7+1 {
			t.Fatalf("day %d: unexpected layout %+v", index, day)
		}
		if day.IsToday != (index == 2) {
			t.Fatalf("day %d: unexpected IsToday %t", index, day.IsToday)
		}
		if day.IsSunday != (index == 6 || index == 13) {
			t.Fatalf("day %d: unexpected IsSunday %t", index, day.IsSunday)
		}
	}
	if plan[6].Totals != (Totals{Protein: 60, Calories: 800}) {
		t.Fatalf("unexpected sunday totals %+v", plan[6].Totals)
	}
	if plan[0].Totals != (Totals{Protein: 90, Calories: 1200}) {
		t.Fatalf("unexpected monday totals %+v", plan[0].Totals)
	}
}

func TestVideoURLs(t *testing.T) {
	if got := WatchURL("dPAPY2Jl0mE"); got != "https://www.youtube.com/watch?v=dPAPY2Jl0mE" {
		t.Fatalf("unexpected watch url %q", got)
	}
	if got := ThumbnailURL("dPAPY2Jl0mE"); got != "https://img.youtube.com/vi/dPAPY2Jl0mE/maxresdefault.jpg" {
		t.Fatalf("unexpected thumbnail url %q", got)
	}
}
