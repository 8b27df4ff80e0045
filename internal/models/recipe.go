package models

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

const (
	EquipmentStove     Equipment = "stove"
	EquipmentAirFryer  Equipment = "airfryer"
	EquipmentMicrowave Equipment = "microwave"
	EquipmentNoCook    Equipment = "no-cook"
)

const (
	PrepNightBefore PrepTiming = "night-before"
	PrepMorning     PrepTiming = "morning"
	PrepAdvance     PrepTiming = "advance"
)

// CycleLength is the number of days in the menu rotation.
const CycleLength = 14

type MealType string

type Equipment string

type PrepTiming string

func (equipment Equipment) Valid() bool {
	switch equipment {
	case EquipmentStove, EquipmentAirFryer, EquipmentMicrowave, EquipmentNoCook:
		return true
	default:
		return false
	}
}

func (timing PrepTiming) Valid() bool {
	switch timing {
	case PrepNightBefore, PrepMorning, PrepAdvance:
		return true
	default:
		return false
	}
}

// PrepInstruction is only present on recipes that need work ahead of cooking.
type PrepInstruction struct {
	When   PrepTiming `json:"when" yaml:"when"`
	TaskEn string     `json:"taskEn" yaml:"taskEn"`
	TaskHi string     `json:"taskHi" yaml:"taskHi"`
}

type Recipe struct {
	Name      string           `json:"name" yaml:"name"`
	NameHi    string           `json:"nameHi" yaml:"nameHi"`
	Emoji     string           `json:"emoji" yaml:"emoji"`
	YouTubeID string           `json:"youtubeId" yaml:"youtubeId"`
	Protein   int              `json:"protein" yaml:"protein"`
	Calories  int              `json:"calories" yaml:"calories"`
	PrepTime  int              `json:"prepTime" yaml:"prepTime"`
	Equipment Equipment        `json:"equipment" yaml:"equipment"`
	Prep      *PrepInstruction `json:"prep,omitempty" yaml:"prep,omitempty"`
}

func (recipe Recipe) LocalizedName(language string) string {
	if language == "hi" && recipe.NameHi != "" {
		return recipe.NameHi
	}
	return recipe.Name
}

func (recipe Recipe) AlternateName(language string) string {
	if language == "hi" {
		return recipe.Name
	}
	return recipe.NameHi
}

func (prep PrepInstruction) LocalizedTask(language string) string {
	if language == "hi" && prep.TaskHi != "" {
		return prep.TaskHi
	}
	return prep.TaskEn
}

// DayMenu has no dinner on the Sunday slots of the rotation.
type DayMenu struct {
	Breakfast Recipe  `json:"breakfast" yaml:"breakfast"`
	Lunch     Recipe  `json:"lunch" yaml:"lunch"`
	Dinner    *Recipe `json:"dinner,omitempty" yaml:"dinner,omitempty"`
}

func (day DayMenu) HasDinner() bool {
	return day.Dinner != nil
}
