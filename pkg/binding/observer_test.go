package binding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObserve_FullSnapshotPerChange(t *testing.T) {
	record := personModel(t)

	var calls []map[string]any
	sub, err := Observe(record, func(values map[string]any) {
		calls = append(calls, values)
	})
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	defer sub.Cancel()

	if err := record.Set("name", "Jack"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := record.Set("age", 9); err != nil {
		t.Fatalf("set: %v", err)
	}

	want := []map[string]any{
		{"name": "Jack", "age": 0},
		{"name": "Jack", "age": 9},
	}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Fatalf("callback snapshots mismatch (-want +got):\n%s", diff)
	}
}

func TestObserve_SubsetOfNames(t *testing.T) {
	record := personModel(t)

	calls := 0
	sub, err := Observe(record, func(values map[string]any) {
		calls++
		if _, ok := values["name"]; ok {
			t.Fatal("snapshot leaked an unobserved attribute")
		}
	}, "age")
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	defer sub.Cancel()

	if err := record.Set("name", "Jack"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if calls != 0 {
		t.Fatalf("callback fired for unobserved attribute")
	}
	if err := record.Set("age", 3); err != nil {
		t.Fatalf("set: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestObserve_UnknownNameFails(t *testing.T) {
	record := personModel(t)

	if _, err := Observe(record, func(map[string]any) {}, "ghost"); err == nil {
		t.Fatal("expected unknown attribute error")
	}
}

func TestObserve_CancelStopsDelivery(t *testing.T) {
	record := personModel(t)

	calls := 0
	sub, err := Observe(record, func(map[string]any) { calls++ })
	if err != nil {
		t.Fatalf("observe: %v", err)
	}

	if err := record.Set("age", 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	sub.Cancel()
	sub.Cancel() // idempotent
	if err := record.Set("age", 2); err != nil {
		t.Fatalf("set: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}
