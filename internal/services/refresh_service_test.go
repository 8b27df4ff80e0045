package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/terraincognita07/aajkakhana/internal/models"
)

type countingRefreshObserver struct {
	mu        sync.Mutex
	snapshots []Snapshot
}

func (observer *countingRefreshObserver) ObserveRefresh(snapshot Snapshot) {
	observer.mu.Lock()
	defer observer.mu.Unlock()
	observer.snapshots = append(observer.snapshots, snapshot)
}

func (observer *countingRefreshObserver) count() int {
	observer.mu.Lock()
	defer observer.mu.Unlock()
	return len(observer.snapshots)
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (clock *manualClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *manualClock) Set(now time.Time) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = now
}

func TestBuildSnapshot(t *testing.T) {
	epoch := MenuEpoch(time.UTC)
	// Wednesday 2024-01-03, 08:30 at +5:30.
	now := epoch.AddDate(0, 0, 2).Add(3 * time.Hour)
	schedule := NewSchedule(func() time.Time { return now }, epoch)

	snapshot := BuildSnapshot(schedule, mustTestCycle(t))

	if snapshot.DayIndex != 2 || snapshot.MealType != models.MealBreakfast {
		t.Fatalf("unexpected slot %d/%s", snapshot.DayIndex, snapshot.MealType)
	}
	if snapshot.CurrentRecipe.Name != "breakfast-2" || snapshot.Tomorrow.Breakfast.Name != "breakfast-3" {
		t.Fatalf("unexpected recipes %q / %q", snapshot.CurrentRecipe.Name, snapshot.Tomorrow.Breakfast.Name)
	}
	if snapshot.TimeLabel != "08:30 AM" || snapshot.IsSunday {
		t.Fatalf("unexpected time fields %q sunday=%t", snapshot.TimeLabel, snapshot.IsSunday)
	}
	if snapshot.CookArrival != (CookArrival{Label: "7:00 PM"}) {
		t.Fatalf("unexpected cook arrival %+v", snapshot.CookArrival)
	}
	if snapshot.Totals != (Totals{Protein: 90, Calories: 1200}) {
		t.Fatalf("unexpected totals %+v", snapshot.Totals)
	}
	if !snapshot.GeneratedAt.Equal(now) {
		t.Fatalf("expected GeneratedAt %v, got %v", now, snapshot.GeneratedAt)
	}
}

func TestRefreshServiceTracksClock(t *testing.T) {
	epoch := MenuEpoch(time.UTC)
	clock := &manualClock{now: epoch.AddDate(0, 0, 2).Add(3 * time.Hour)}
	observer := &countingRefreshObserver{}
	service := NewRefreshService(NewSchedule(clock.Now, epoch), mustTestCycle(t), 0, observer)

	if service.Interval() != DefaultRefreshInterval {
		t.Fatalf("expected default interval, got %v", service.Interval())
	}

	first := service.Current()
	if first.DayIndex != 2 || observer.count() != 1 {
		t.Fatalf("expected lazy first refresh on day 2, got day %d with %d refreshes", first.DayIndex, observer.count())
	}

	// Thursday 17:30 at +5:30.
	clock.Set(epoch.AddDate(0, 0, 3).Add(12 * time.Hour))
	if stale := service.Current(); stale.DayIndex != 2 {
		t.Fatalf("expected cached snapshot until refresh, got day %d", stale.DayIndex)
	}

	next := service.Refresh()
	if next.DayIndex != 3 || next.MealType != models.MealDinner || next.CurrentRecipe.Name != "dinner-3" {
		t.Fatalf("unexpected refreshed snapshot %d/%s/%q", next.DayIndex, next.MealType, next.CurrentRecipe.Name)
	}
	if service.Current().DayIndex != 3 {
		t.Fatal("expected Current to return refreshed snapshot")
	}
}

func TestRefreshServiceStartTicksUntilCancelled(t *testing.T) {
	observer := &countingRefreshObserver{}
	service := NewRefreshService(NewSchedule(nil, time.Time{}), mustTestCycle(t), 5*time.Millisecond, observer)

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)
	if observer.count() < 1 {
		t.Fatal("expected Start to refresh immediately")
	}

	deadline := time.Now().Add(2 * time.Second)
	for observer.count() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("expected ticker refreshes, got %d", observer.count())
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	time.Sleep(20 * time.Millisecond)
	stopped := observer.count()
	time.Sleep(30 * time.Millisecond)
	if observer.count() != stopped {
		t.Fatalf("expected no refreshes after cancel, got %d -> %d", stopped, observer.count())
	}
}
