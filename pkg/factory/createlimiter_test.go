package factory

import (
	"context"
	"runtime"
	"testing"
)

// TestCreateLimiterDefaults verifies the permit count defaults to the CPU
// core count.
func TestCreateLimiterDefaults(t *testing.T) {
	l, err := CreateLimiter()
	if err != nil {
		t.Fatalf("unexpected error creating limiter: %v", err)
	}
	defer l.Close()

	if got := l.TotalPermits(); got != int64(runtime.NumCPU()) {
		t.Fatalf("expected %d permits, got %d", runtime.NumCPU(), got)
	}
}

// TestCreateLimiterWithPermits verifies the permit option is applied and
// the limiter is usable.
func TestCreateLimiterWithPermits(t *testing.T) {
	l, err := CreateLimiter(WithPermits(2))
	if err != nil {
		t.Fatalf("unexpected error creating limiter: %v", err)
	}
	defer l.Close()

	if got := l.TotalPermits(); got != 2 {
		t.Fatalf("expected 2 permits, got %d", got)
	}

	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("unexpected acquire error: %v", err)
	}
	if err := l.Release(); err != nil {
		t.Fatalf("unexpected release error: %v", err)
	}
}

// TestCreateLimiterRejectsZeroPermits verifies a permitless limiter is a
// construction error.
func TestCreateLimiterRejectsZeroPermits(t *testing.T) {
	if _, err := CreateLimiter(WithPermits(0)); err == nil {
		t.Fatal("expected error for 0 permits")
	}
}
