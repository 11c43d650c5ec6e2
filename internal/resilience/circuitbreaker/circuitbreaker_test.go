package circuitbreaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"pagewatch/internal/resilience/circuitbreaker"
)

func TestCircuitBreaker_TripsOnFailureRatio(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             "test",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 0.5,
		MinRequests:      4,
	})

	failing := func() (interface{}, error) { return nil, errors.New("refused") }
	for i := 0; i < 4; i++ {
		_, _ = cb.Execute(failing)
	}

	if !cb.IsOpen() {
		t.Fatalf("breaker state = %v, want open after sustained failures", cb.State())
	}
	if _, err := cb.Execute(failing); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("open breaker must reject immediately, got %v", err)
	}
}

func TestCircuitBreaker_StaysClosedBelowMinRequests(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             "test",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 0.5,
		MinRequests:      10,
	})

	for i := 0; i < 5; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, errors.New("refused") })
	}

	if cb.IsOpen() {
		t.Error("breaker must not trip before the minimum request count")
	}
}

func TestCircuitBreaker_PassesThroughSuccess(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig("test"))

	got, err := cb.Execute(func() (interface{}, error) { return "ok", nil })
	if err != nil || got != "ok" {
		t.Fatalf("Execute = %v, %v", got, err)
	}
	if cb.Name() != "test" {
		t.Errorf("Name() = %q", cb.Name())
	}
}
