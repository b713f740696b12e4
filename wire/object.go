package wire

import (
	"fmt"
	"sync"
)

// DisplayID is the conventional id of the bootstrap object every connection
// starts with.
const DisplayID uint32 = 1

// Object is implemented by every bound protocol object.
type Object interface {
	ID() uint32
}

type entry struct {
	iface   string
	version uint32
	obj     Object
	held    bool
}

// Table maps connection-scoped object ids to registered objects and hands
// out exclusive leases on them.
type Table struct {
	mu      sync.Mutex
	entries map[uint32]*entry
}

// NewTable returns an empty object table.
func NewTable() *Table {
	return &Table{entries: make(map[uint32]*entry)}
}

// Register reserves id under the given interface name and version. The slot
// stays unfilled until Fill supplies the object.
func (t *Table) Register(id uint32, iface string, version uint32) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[id]; ok {
		return fmt.Errorf("%w: object %d", ErrObjectExists, id)
	}
	t.entries[id] = &entry{iface: iface, version: version}
	return nil
}

// Fill places obj into a registered slot. Outstanding leases on the slot
// observe the object immediately.
func (t *Table) Fill(id uint32, obj Object) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	ent, ok := t.entries[id]
	if !ok {
		return &UnknownObjectError{ID: id}
	}
	ent.obj = obj
	return nil
}

// Unregister removes id from the table. Outstanding leases on the removed
// entry release as no-ops.
func (t *Table) Unregister(id uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, id)
}

// Acquire takes an exclusive lease on id regardless of its interface.
func (t *Table) Acquire(id uint32) (*Lease, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ent, ok := t.entries[id]
	if !ok {
		return nil, &UnknownObjectError{ID: id}
	}
	return t.lease(id, ent)
}

// AcquireTyped takes an exclusive lease on id, requiring a filled slot
// registered under the given interface name.
func (t *Table) AcquireTyped(id uint32, iface string) (*Lease, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ent, ok := t.entries[id]
	if !ok || ent.obj == nil {
		return nil, &UnknownObjectError{ID: id}
	}
	if ent.iface != iface {
		return nil, &InvalidObjectError{ID: id, Want: iface, Got: ent.iface}
	}
	return t.lease(id, ent)
}

// lease marks ent held; callers hold t.mu.
func (t *Table) lease(id uint32, ent *entry) (*Lease, error) {
	if ent.held {
		return nil, fmt.Errorf("%w: object %d", ErrLeaseHeld, id)
	}
	ent.held = true
	return &Lease{ID: id, Interface: ent.iface, Version: ent.version, table: t, ent: ent}, nil
}

// Lease is an exclusive handle on one table entry. ID, Interface, and
// Version are fixed at registration; Object reads the live slot so a Fill
// after acquisition is visible.
type Lease struct {
	ID        uint32
	Interface string
	Version   uint32

	table *Table
	ent   *entry
}

// Object returns the object currently filling the slot, or nil.
func (l *Lease) Object() Object {
	if l == nil || l.table == nil {
		return nil
	}
	l.table.mu.Lock()
	defer l.table.mu.Unlock()
	if l.ent == nil {
		return nil
	}
	return l.ent.obj
}

// Release returns the lease. Releasing twice, or releasing after the entry
// was unregistered, is a no-op.
func (l *Lease) Release() {
	if l == nil || l.table == nil {
		return
	}
	l.table.mu.Lock()
	if l.ent != nil {
		l.ent.held = false
		l.ent = nil
	}
	l.table.mu.Unlock()
}
