package services

import (
	"time"

	"github.com/terraincognita07/aajkakhana/internal/models"
)

// ISTLocation is a fixed UTC+5:30 zone independent of the host tz database.
var ISTLocation = time.FixedZone("IST", 5*60*60+30*60)

const (
	breakfastStartHour = 5
	lunchStartHour     = 11
	dinnerStartHour    = 17

	cookMorningHour        = 7
	cookSundayMorningHour  = 10
	cookEveningHour        = 19
	cookMorningLabel       = "7:00 AM"
	cookSundayMorningLabel = "10:00 AM"
	cookEveningLabel       = "7:00 PM"

	timeLabelLayout = "03:04 PM"
)

type CookArrival struct {
	Label           string `json:"label"`
	IsSpecialSunday bool   `json:"is_special_sunday"`
}

// MenuEpoch is the first day of the rotation, midnight in the given zone.
func MenuEpoch(location *time.Location) time.Time {
	if location == nil {
		location = time.Local
	}
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, location)
}

// DayIndexAt counts whole days between epoch and now and reduces them modulo
// the cycle length. The distance is absolute, so instants before the epoch
// walk the rotation backwards.
func DayIndexAt(now time.Time, epoch time.Time) int {
	elapsed := now.Sub(epoch)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	days := int64(elapsed / (24 * time.Hour))
	return int(days % models.CycleLength)
}

func NextDayIndex(index int) int {
	return normalizeDayIndex(index + 1)
}

func MealTypeForHour(hour int) models.MealType {
	switch {
	case hour >= breakfastStartHour && hour < lunchStartHour:
		return models.MealBreakfast
	case hour >= lunchStartHour && hour < dinnerStartHour:
		return models.MealLunch
	default:
		return models.MealDinner
	}
}

func MealTypeAt(now time.Time) models.MealType {
	return MealTypeForHour(now.In(ISTLocation).Hour())
}

func LocalTimeLabelAt(now time.Time) string {
	return now.In(ISTLocation).Format(timeLabelLayout)
}

func IsSundayAt(now time.Time) bool {
	return now.In(ISTLocation).Weekday() == time.Sunday
}

func CookArrivalFor(isSunday bool, hour int) CookArrival {
	if isSunday {
		switch {
		case hour < cookSundayMorningHour:
			return CookArrival{Label: cookSundayMorningLabel, IsSpecialSunday: true}
		case hour < cookEveningHour:
			return CookArrival{Label: cookEveningLabel}
		default:
			return CookArrival{Label: cookMorningLabel}
		}
	}

	switch {
	case hour < cookMorningHour:
		return CookArrival{Label: cookMorningLabel}
	case hour < cookEveningHour:
		return CookArrival{Label: cookEveningLabel}
	default:
		return CookArrival{Label: cookMorningLabel}
	}
}

func NextCookArrivalAt(now time.Time) CookArrival {
	return CookArrivalFor(IsSundayAt(now), now.In(ISTLocation).Hour())
}

// Schedule answers scheduling questions about the current instant.
type Schedule struct {
	now   func() time.Time
	epoch time.Time
}

func NewSchedule(now func() time.Time, epoch time.Time) *Schedule {
	if now == nil {
		now = time.Now
	}
	if epoch.IsZero() {
		epoch = MenuEpoch(time.Local)
	}
	return &Schedule{now: now, epoch: epoch}
}

func (schedule *Schedule) Now() time.Time {
	return schedule.now()
}

func (schedule *Schedule) Epoch() time.Time {
	return schedule.epoch
}

func (schedule *Schedule) CurrentDayIndex() int {
	return DayIndexAt(schedule.now(), schedule.epoch)
}

func (schedule *Schedule) CurrentMealType() models.MealType {
	return MealTypeAt(schedule.now())
}

func (schedule *Schedule) CurrentLocalTimeLabel() string {
	return LocalTimeLabelAt(schedule.now())
}

func (schedule *Schedule) IsSundaySlot() bool {
	return IsSundayAt(schedule.now())
}

func (schedule *Schedule) NextCookArrival() CookArrival {
	return NextCookArrivalAt(schedule.now())
}
