package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/xvierd/dusk/internal/domain"
)

// fakeClock is a virtual clock. Sleep advances it instantly.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock(hour, minute int) *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 14, hour, minute, 0, 0, time.Local)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

type fakeNotifier struct {
	summaries []string
	err       error
}

func (n *fakeNotifier) Notify(summary, body string) error {
	n.summaries = append(n.summaries, summary)
	return n.err
}

type fakeScreen struct {
	kelvins []int
	err     error
}

func (s *fakeScreen) Set(kelvin int) error {
	s.kelvins = append(s.kelvins, kelvin)
	return s.err
}

type fakeConsole struct {
	events []domain.Event
	infos  []string
}

func (c *fakeConsole) Event(e domain.Event) { c.events = append(c.events, e) }
func (c *fakeConsole) Info(message string)  { c.infos = append(c.infos, message) }

// lines reduces events to "type: summary" for comparison.
func lines(events []domain.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, fmt.Sprintf("%s: %s", e.Type, e.Summary))
	}
	return out
}

func at(s string) domain.TimeOfDay {
	t, err := domain.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func newPlan(bedtime string, tasks ...domain.Task) domain.Plan {
	return domain.NewPlan(at(bedtime), tasks)
}

func task(name, start, end string) domain.Task {
	t, err := domain.NewTask(name, at(start), at(end))
	if err != nil {
		panic(err)
	}
	return t
}
