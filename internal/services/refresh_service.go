package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/terraincognita07/aajkakhana/internal/models"
)

const DefaultRefreshInterval = 60 * time.Second

// Snapshot is everything the display needs for one instant.
type Snapshot struct {
	DayIndex      int
	MealType      models.MealType
	TimeLabel     string
	IsSunday      bool
	CookArrival   CookArrival
	Today         models.DayMenu
	Tomorrow      models.DayMenu
	CurrentRecipe models.Recipe
	PrepAlerts    []PrepAlert
	Totals        Totals
	GeneratedAt   time.Time
}

type RefreshObserver interface {
	ObserveRefresh(snapshot Snapshot)
}

type RefreshService struct {
	schedule *Schedule
	cycle    *MenuCycle
	interval time.Duration
	observer RefreshObserver

	mu      sync.RWMutex
	current Snapshot
	ready   bool
}

func NewRefreshService(schedule *Schedule, cycle *MenuCycle, interval time.Duration, observer RefreshObserver) *RefreshService {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &RefreshService{
		schedule: schedule,
		cycle:    cycle,
		interval: interval,
		observer: observer,
	}
}

func (service *RefreshService) Interval() time.Duration {
	return service.interval
}

// Start computes a snapshot right away and then once per interval until ctx is done.
func (service *RefreshService) Start(ctx context.Context) {
	service.Refresh()

	ticker := time.NewTicker(service.interval)
	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if ctx.Err() != nil {
					return
				}
				service.Refresh()
			}
		}
	}()
}

func (service *RefreshService) Refresh() Snapshot {
	snapshot := BuildSnapshot(service.schedule, service.cycle)

	service.mu.Lock()
	previous, hadPrevious := service.current, service.ready
	service.current = snapshot
	service.ready = true
	service.mu.Unlock()

	switch {
	case !hadPrevious:
		log.Printf("refresh: day %d %s", snapshot.DayIndex+1, snapshot.MealType)
	case previous.DayIndex != snapshot.DayIndex:
		log.Printf("refresh: day changed %d -> %d", previous.DayIndex+1, snapshot.DayIndex+1)
	case previous.MealType != snapshot.MealType:
		log.Printf("refresh: meal changed %s -> %s", previous.MealType, snapshot.MealType)
	}

	if service.observer != nil {
		service.observer.ObserveRefresh(snapshot)
	}
	return snapshot
}

// Current returns the latest snapshot, computing one if Start has not run yet.
func (service *RefreshService) Current() Snapshot {
	service.mu.RLock()
	snapshot, ready := service.current, service.ready
	service.mu.RUnlock()

	if !ready {
		return service.Refresh()
	}
	return snapshot
}

func BuildSnapshot(schedule *Schedule, cycle *MenuCycle) Snapshot {
	now := schedule.Now()
	dayIndex := DayIndexAt(now, schedule.Epoch())
	meal := MealTypeAt(now)
	today := cycle.DayMenuAt(dayIndex)
	tomorrow := cycle.DayMenuAt(NextDayIndex(dayIndex))

	return Snapshot{
		DayIndex:      dayIndex,
		MealType:      meal,
		TimeLabel:     LocalTimeLabelAt(now),
		IsSunday:      IsSundayAt(now),
		CookArrival:   NextCookArrivalAt(now),
		Today:         today,
		Tomorrow:      tomorrow,
		CurrentRecipe: CurrentRecipe(today, meal),
		PrepAlerts:    PrepAlerts(today, tomorrow),
		Totals:        DailyTotals(today),
		GeneratedAt:   now,
	}
}
