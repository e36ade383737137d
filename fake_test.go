package stakeflow_test

import (
	"context"
	"sync"

	"github.com/lstlabs/stakeflow/types"
)

type recordedEvent struct {
	Name    string
	Payload map[string]any
}

// fakeAnalytics records every event it receives.
type fakeAnalytics struct {
	mu     sync.Mutex
	events []recordedEvent
}

func newFakeAnalytics() *fakeAnalytics {
	return &fakeAnalytics{}
}

func (f *fakeAnalytics) Record(_ context.Context, event string, payload map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.events = append(f.events, recordedEvent{Name: event, Payload: payload})
}

// Count returns how many times event was recorded.
func (f *fakeAnalytics) Count(event string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, e := range f.events {
		if e.Name == event {
			n++
		}
	}

	return n
}

// Names returns the recorded event names in order.
func (f *fakeAnalytics) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Name)
	}

	return out
}

// Last returns the most recent event named event.
func (f *fakeAnalytics) Last(event string) (recordedEvent, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := len(f.events) - 1; i >= 0; i-- {
		if f.events[i].Name == event {
			return f.events[i], true
		}
	}

	return recordedEvent{}, false
}

// fakeNotifier records shown and dismissed notifications.
type fakeNotifier struct {
	mu        sync.Mutex
	shown     []types.Notification
	dismissed []string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{}
}

func (f *fakeNotifier) Show(_ context.Context, n types.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.shown = append(f.shown, n)
}

func (f *fakeNotifier) Dismiss(_ context.Context, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.dismissed = append(f.dismissed, id)
}

// Shown returns how many notifications of variant were shown.
func (f *fakeNotifier) Shown(variant types.NotificationVariant) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, s := range f.shown {
		if s.Variant == variant {
			n++
		}
	}

	return n
}

// Dismissed returns the dismissed notification ids.
func (f *fakeNotifier) Dismissed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.dismissed...)
}

// Notifications returns a copy of every shown notification.
func (f *fakeNotifier) Notifications() []types.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]types.Notification(nil), f.shown...)
}
