package remind

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/tick/pkg/model"
)

func TestRunStopsOnCancel(t *testing.T) {
	n := &fakeNotifier{}
	s := NewScanner(func() ([]model.Task, []model.Habit) { return nil, nil }, n, nil)
	s.Interval = 5 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := s.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected the context error, got %v", err)
	}
}
