package cli

import (
	"fmt"
	"io"

	"github.com/terraincognita07/aajkakhana/internal/i18n"
	"github.com/terraincognita07/aajkakhana/internal/models"
	"github.com/terraincognita07/aajkakhana/internal/services"
)

// RunTodayCommand prints the current meal slot the way the dashboard shows it.
func RunTodayCommand(out io.Writer, snapshot services.Snapshot, manager *i18n.Manager, language string) error {
	language = manager.NormalizeLanguage(language)
	tr := func(key string) string {
		return manager.Translate(language, key)
	}

	recipe := snapshot.CurrentRecipe
	lines := []string{
		fmt.Sprintf("%s %s · 🕐 %s · %s %d/%d",
			services.MealEmoji(snapshot.MealType), tr("meal."+string(snapshot.MealType)),
			snapshot.TimeLabel, tr("common.day"), snapshot.DayIndex+1, models.CycleLength),
		fmt.Sprintf("%s %s (%s)", recipe.Emoji, recipe.LocalizedName(language), recipe.AlternateName(language)),
		fmt.Sprintf("   💪 %dg · 🔥 %d · ⏱️ %d %s · %s %s",
			recipe.Protein, recipe.Calories, recipe.PrepTime, tr("stats.mins"),
			services.EquipmentEmoji(recipe.Equipment), tr("equipment."+string(recipe.Equipment))),
		fmt.Sprintf("   ▶️ %s", services.WatchURL(recipe.YouTubeID)),
	}

	cook := fmt.Sprintf("👩‍🍳 %s %s", tr("cook.arrives_at"), snapshot.CookArrival.Label)
	if snapshot.CookArrival.IsSpecialSunday {
		cook += " (" + tr("cook.sunday_special") + ")"
	}
	lines = append(lines, cook)

	if len(snapshot.PrepAlerts) > 0 {
		lines = append(lines, "⚠️ "+tr("prep.required"))
		for _, alert := range snapshot.PrepAlerts {
			line := fmt.Sprintf("   %s %s · %s: %s",
				services.PrepTimingEmoji(alert.When), tr("prep."+string(alert.When)),
				tr("meal."+string(alert.Meal)), alert.Recipe.LocalizedName(language))
			if alert.Recipe.Prep != nil {
				line += " 📝 " + alert.Recipe.Prep.LocalizedTask(language)
			}
			lines = append(lines, line)
		}
	}

	lines = append(lines, fmt.Sprintf("📊 %s: %dg %s · %d %s",
		tr("totals.today"), snapshot.Totals.Protein, tr("stats.protein"), snapshot.Totals.Calories, tr("stats.calories")))

	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
