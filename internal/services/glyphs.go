package services

import "github.com/terraincognita07/aajkakhana/internal/models"

func MealEmoji(meal models.MealType) string {
	switch meal {
	case models.MealBreakfast:
		return "🌅"
	case models.MealLunch:
		return "☀️"
	case models.MealDinner:
		return "🌙"
	default:
		return "🍽️"
	}
}

func EquipmentEmoji(equipment models.Equipment) string {
	switch equipment {
	case models.EquipmentStove:
		return "🔥"
	case models.EquipmentAirFryer:
		return "🌀"
	case models.EquipmentMicrowave:
		return "📻"
	case models.EquipmentNoCook:
		return "❄️"
	default:
		return "🍳"
	}
}

func PrepTimingEmoji(timing models.PrepTiming) string {
	if timing == models.PrepNightBefore {
		return "🌙"
	}
	return "☀️"
}
