package core

import (
	"testing"
	"time"
)

func TestFixedStepPacesTicks(t *testing.T) {
	base := time.Unix(0, 0)
	now := base
	fs := newFixedStepWithClock(10, func() time.Time { return now })

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	now = now.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick elapsed, should not step")
	}
	now = now.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("full tick elapsed, should step")
	}
	if fs.TPS() != 10 || fs.Interval() != 100*time.Millisecond {
		t.Fatalf("unexpected rate %d / %s", fs.TPS(), fs.Interval())
	}
}

func TestFixedStepCapsBacklog(t *testing.T) {
	now := time.Unix(0, 0)
	fs := newFixedStepWithClock(10, func() time.Time { return now })
	fs.ShouldStep()

	now = now.Add(time.Second)
	steps := 0
	for i := 0; i < 20; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 2 {
		t.Fatalf("expected backlog capped to 2 ticks, got %d", steps)
	}
}
