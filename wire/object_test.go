package wire

import (
	"errors"
	"testing"
)

type testObject struct {
	id uint32
}

func (o *testObject) ID() uint32 { return o.id }

func TestLeaseExclusive(t *testing.T) {
	table := NewTable()
	if err := table.Register(5, "widget", 2); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := table.Fill(5, &testObject{id: 5}); err != nil {
		t.Fatalf("fill: %v", err)
	}

	lease, err := table.Acquire(5)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if lease.Interface != "widget" || lease.Version != 2 {
		t.Fatalf("expected widget v2, got %s v%d", lease.Interface, lease.Version)
	}

	if _, err := table.Acquire(5); !errors.Is(err, ErrLeaseHeld) {
		t.Fatalf("expected ErrLeaseHeld, got %v", err)
	}

	lease.Release()
	second, err := table.Acquire(5)
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	second.Release()
}

func TestLeaseReleaseIdempotent(t *testing.T) {
	table := NewTable()
	if err := table.Register(3, "widget", 1); err != nil {
		t.Fatalf("register: %v", err)
	}

	first, err := table.Acquire(3)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	first.Release()

	second, err := table.Acquire(3)
	if err != nil {
		t.Fatalf("reacquire: %v", err)
	}
	first.Release()
	if _, err := table.Acquire(3); !errors.Is(err, ErrLeaseHeld) {
		t.Fatalf("stale release freed a held lease: %v", err)
	}
	second.Release()
}

func TestAcquireUnknownObject(t *testing.T) {
	table := NewTable()
	_, err := table.Acquire(99)
	var unknown *UnknownObjectError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownObjectError, got %v", err)
	}
	if unknown.ID != 99 {
		t.Fatalf("expected id 99, got %d", unknown.ID)
	}
}

func TestAcquireTypedMismatch(t *testing.T) {
	table := NewTable()
	if err := table.Register(6, "widget", 2); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := table.Fill(6, &testObject{id: 6}); err != nil {
		t.Fatalf("fill: %v", err)
	}

	_, err := table.AcquireTyped(6, "surface")
	var invalid *InvalidObjectError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidObjectError, got %v", err)
	}
	if invalid.ID != 6 || invalid.Want != "surface" || invalid.Got != "widget" {
		t.Fatalf("expected {6 surface widget}, got %+v", invalid)
	}
}

func TestAcquireTypedUnfilled(t *testing.T) {
	table := NewTable()
	if err := table.Register(4, "widget", 2); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := table.AcquireTyped(4, "widget")
	var unknown *UnknownObjectError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownObjectError for unfilled slot, got %v", err)
	}
}

func TestRegisterTakenID(t *testing.T) {
	table := NewTable()
	if err := table.Register(2, "widget", 1); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := table.Register(2, "surface", 1); !errors.Is(err, ErrObjectExists) {
		t.Fatalf("expected ErrObjectExists, got %v", err)
	}
}

func TestFillVisibleThroughLease(t *testing.T) {
	table := NewTable()
	if err := table.Register(8, "widget", 2); err != nil {
		t.Fatalf("register: %v", err)
	}
	lease, err := table.Acquire(8)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if lease.Object() != nil {
		t.Fatalf("expected empty slot")
	}

	obj := &testObject{id: 8}
	if err := table.Fill(8, obj); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if lease.Object() != Object(obj) {
		t.Fatalf("expected fill visible through outstanding lease")
	}
	lease.Release()
}

func TestUnregisterWithOutstandingLease(t *testing.T) {
	table := NewTable()
	if err := table.Register(9, "widget", 2); err != nil {
		t.Fatalf("register: %v", err)
	}
	lease, err := table.Acquire(9)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	table.Unregister(9)

	if err := table.Register(9, "surface", 1); err != nil {
		t.Fatalf("register after unregister: %v", err)
	}
	fresh, err := table.Acquire(9)
	if err != nil {
		t.Fatalf("acquire fresh entry: %v", err)
	}
	lease.Release()
	if _, err := table.Acquire(9); !errors.Is(err, ErrLeaseHeld) {
		t.Fatalf("stale release freed the fresh lease: %v", err)
	}
	fresh.Release()

	if _, err := table.Acquire(10); err == nil {
		t.Fatalf("expected unknown object")
	}
}
