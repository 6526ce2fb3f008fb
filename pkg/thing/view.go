package thing

import (
	"context"
	"sync"
)

// Member is a callable member of an interface view: a getter, setter,
// or method. Getters are invoked with no arguments, setters with the
// value to assign, methods with their positional arguments. A Member
// may return a Pending when the result is not yet settled.
type Member func(ctx context.Context, args ...any) (any, error)

// View is the resolved interface view of a device: the member table
// dispatch operations are performed against. A member slot holds
// either a current value or a callable, addressed by exact name.
//
// Optional capabilities (Notifier, InterfaceProvider) are discovered
// by type assertion on the concrete view.
type View interface {
	// Value returns the current value stored at name. The second
	// result reports whether the slot is defined; a defined slot may
	// hold nil.
	Value(name string) (any, bool)

	// SetValue assigns value to the slot at name, defining it if
	// necessary.
	SetValue(name string, value any)

	// Method returns the callable stored at name.
	Method(name string) (Member, bool)
}

// MemberTable is the standard View implementation: a named table of
// value and callable slots, safe for concurrent use. Device
// implementations embed it and populate it with whatever member
// conventions suit them.
type MemberTable struct {
	mu      sync.RWMutex
	name    string
	values  map[string]any
	methods map[string]Member
}

// NewMemberTable creates an empty member table for the named
// interface. The name is informational only.
func NewMemberTable(name string) *MemberTable {
	return &MemberTable{
		name:    name,
		values:  make(map[string]any),
		methods: make(map[string]Member),
	}
}

// Name returns the interface name the table was created for.
func (t *MemberTable) Name() string {
	return t.name
}

// Value returns the value slot at name.
func (t *MemberTable) Value(name string) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.values[name]
	return v, ok
}

// SetValue assigns value to the slot at name.
func (t *MemberTable) SetValue(name string, value any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.values[name] = value
}

// Method returns the callable slot at name.
func (t *MemberTable) Method(name string) (Member, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := t.methods[name]
	return m, ok
}

// Define sets the callable slot at name.
func (t *MemberTable) Define(name string, m Member) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.methods[name] = m
}

// Members returns the names of all defined slots, values and
// callables alike.
func (t *MemberTable) Members() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.values)+len(t.methods))
	for name := range t.values {
		names = append(names, name)
	}
	for name := range t.methods {
		names = append(names, name)
	}
	return names
}

// Compile-time interface satisfaction check.
var _ View = (*MemberTable)(nil)

// InterfaceProvider is the optional capability a device implements to
// produce a view of itself for a named interface. AsInterface returns
// nil when the device does not implement the named interface.
type InterfaceProvider interface {
	AsInterface(name string) View
}
