package person

import (
	"errors"
	"testing"
)

func TestCollector(t *testing.T) {
	c := &Collector{}
	if err := c.Add(nil); err != nil {
		t.Errorf("Add(nil) = %v, want nil", err)
	}
	if err := c.Err(); err != nil {
		t.Errorf("Err() on clean collector = %v, want nil", err)
	}

	first := errors.New("first")
	second := errors.New("second")
	if err := c.Add(first); err != nil {
		t.Errorf("Add = %v, want nil in collecting mode", err)
	}
	c.Add(second)

	var batch *BatchError
	if !errors.As(c.Err(), &batch) {
		t.Fatalf("Err() is %T, want *BatchError", c.Err())
	}
	if len(batch.Errors) != 2 {
		t.Errorf("len(batch.Errors) = %d, want 2", len(batch.Errors))
	}
	if !errors.Is(c.Err(), first) || !errors.Is(c.Err(), second) {
		t.Error("BatchError does not unwrap to its collected errors")
	}
}

func TestCollectorFailFast(t *testing.T) {
	c := &Collector{FailFast: true}
	first := errors.New("first")
	if err := c.Add(first); err != first {
		t.Errorf("Add = %v, want the error itself in fail-fast mode", err)
	}
	if err := c.Err(); err != nil {
		t.Errorf("Err() after fail-fast Add = %v, want nil", err)
	}
}
