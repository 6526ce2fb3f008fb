package examples

import (
	"context"
	"fmt"
	"sync"

	"github.com/sanjaiganesh/opent2t/pkg/thing"
)

// LampInterface is the interface name the lamp's view is resolved under.
const LampInterface = "org.opent2t.sample.lamp"

// Lamp is an in-memory dimmable lamp. Its view deliberately mixes member
// conventions: "name" is a direct value slot, power has sync getter and
// setter methods, dim level is async on both sides, and turnOn/turnOff
// are plain methods. Power changes are emitted to property listeners.
type Lamp struct {
	mu       sync.RWMutex
	name     string
	power    bool
	dimLevel int64

	emitter thing.Emitter
}

// NewLamp creates a lamp that is off at full brightness.
func NewLamp(name string) *Lamp {
	return &Lamp{name: name, dimLevel: 100}
}

// AsInterface returns the lamp's view for the given interface name, or
// nil when the lamp does not implement it.
func (l *Lamp) AsInterface(name string) thing.View {
	if name != LampInterface {
		return nil
	}
	return &lampView{lamp: l}
}

// Power reports whether the lamp is on.
func (l *Lamp) Power() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.power
}

// DimLevel returns the current dim level in percent.
func (l *Lamp) DimLevel() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.dimLevel
}

func (l *Lamp) setPower(on bool) {
	l.mu.Lock()
	changed := l.power != on
	l.power = on
	l.mu.Unlock()

	if changed {
		l.emitter.Emit("power", on)
	}
}

func (l *Lamp) setDimLevel(level int64) error {
	if level < 0 || level > 100 {
		return fmt.Errorf("dim level %d out of range [0,100]", level)
	}

	l.mu.Lock()
	changed := l.dimLevel != level
	l.dimLevel = level
	l.mu.Unlock()

	if changed {
		l.emitter.Emit("dimLevel", level)
	}
	return nil
}

// lampView adapts a Lamp to the view contract. A fresh view is handed
// out per resolution; all state lives on the lamp itself.
type lampView struct {
	lamp *Lamp
}

// Compile-time interface satisfaction checks
var (
	_ thing.View     = (*lampView)(nil)
	_ thing.Notifier = (*lampView)(nil)
)

func (v *lampView) Value(name string) (any, bool) {
	if name == "name" {
		v.lamp.mu.RLock()
		defer v.lamp.mu.RUnlock()
		return v.lamp.name, true
	}
	return nil, false
}

func (v *lampView) SetValue(name string, value any) {
	if name != "name" {
		return
	}
	if s, ok := value.(string); ok {
		v.lamp.mu.Lock()
		v.lamp.name = s
		v.lamp.mu.Unlock()
	}
}

func (v *lampView) Method(name string) (thing.Member, bool) {
	switch name {
	case "getPower":
		return func(ctx context.Context, args ...any) (any, error) {
			return v.lamp.Power(), nil
		}, true

	case "setPower":
		return func(ctx context.Context, args ...any) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("setPower takes 1 argument, got %d", len(args))
			}
			on, ok := args[0].(bool)
			if !ok {
				return nil, fmt.Errorf("power value must be a bool, got %T", args[0])
			}
			v.lamp.setPower(on)
			return nil, nil
		}, true

	case "getDimLevelAsync":
		return func(ctx context.Context, args ...any) (any, error) {
			f := thing.NewFuture()
			go f.Resolve(v.lamp.DimLevel())
			return f, nil
		}, true

	case "setDimLevelAsync":
		return func(ctx context.Context, args ...any) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("setDimLevel takes 1 argument, got %d", len(args))
			}
			level, ok := toInt64(args[0])
			if !ok {
				return nil, fmt.Errorf("dim level must be an integer, got %T", args[0])
			}
			f := thing.NewFuture()
			go func() {
				if err := v.lamp.setDimLevel(level); err != nil {
					f.Reject(err)
					return
				}
				f.Resolve(nil)
			}()
			return f, nil
		}, true

	case "turnOn":
		return func(ctx context.Context, args ...any) (any, error) {
			v.lamp.setPower(true)
			return nil, nil
		}, true

	case "turnOff":
		return func(ctx context.Context, args ...any) (any, error) {
			v.lamp.setPower(false)
			return nil, nil
		}, true
	}
	return nil, false
}

func (v *lampView) On(event string, listener thing.Listener) {
	v.lamp.emitter.On(event, listener)
}

func (v *lampView) RemoveListener(event string, listener thing.Listener) {
	v.lamp.emitter.RemoveListener(event, listener)
}

func toInt64(value any) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}
