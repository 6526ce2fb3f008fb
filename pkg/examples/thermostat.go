package examples

import (
	"context"
	"fmt"
	"sync"

	"github.com/sanjaiganesh/opent2t/pkg/thing"
)

// ThermostatInterface is the interface name the thermostat's view is
// resolved under.
const ThermostatInterface = "org.opent2t.sample.thermostat"

// Thermostat is an in-memory thermostat. The target temperature is
// readable and writable through sync methods. The ambient temperature
// is push-only: the view has no getter for it, so reads fail, but
// listeners are notified whenever the sensor reports a new reading.
type Thermostat struct {
	mu      sync.RWMutex
	target  float64
	ambient float64

	emitter thing.Emitter
}

// NewThermostat creates a thermostat with the given target temperature.
func NewThermostat(target float64) *Thermostat {
	return &Thermostat{target: target}
}

// AsInterface returns the thermostat's view for the given interface
// name, or nil when the thermostat does not implement it.
func (t *Thermostat) AsInterface(name string) thing.View {
	if name != ThermostatInterface {
		return nil
	}
	return &thermostatView{thermostat: t}
}

// TargetTemperature returns the configured target temperature.
func (t *Thermostat) TargetTemperature() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.target
}

// ReportAmbient records a new ambient temperature reading and notifies
// listeners. This stands in for the hardware sensor loop.
func (t *Thermostat) ReportAmbient(value float64) {
	t.mu.Lock()
	t.ambient = value
	t.mu.Unlock()

	t.emitter.Emit("ambientTemperature", value)
}

func (t *Thermostat) setTarget(value float64) {
	t.mu.Lock()
	changed := t.target != value
	t.target = value
	t.mu.Unlock()

	if changed {
		t.emitter.Emit("targetTemperature", value)
	}
}

type thermostatView struct {
	thermostat *Thermostat
}

// Compile-time interface satisfaction checks
var (
	_ thing.View     = (*thermostatView)(nil)
	_ thing.Notifier = (*thermostatView)(nil)
)

func (v *thermostatView) Value(name string) (any, bool) {
	return nil, false
}

func (v *thermostatView) SetValue(name string, value any) {}

func (v *thermostatView) Method(name string) (thing.Member, bool) {
	switch name {
	case "getTargetTemperature":
		return func(ctx context.Context, args ...any) (any, error) {
			return v.thermostat.TargetTemperature(), nil
		}, true

	case "setTargetTemperature":
		return func(ctx context.Context, args ...any) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("setTargetTemperature takes 1 argument, got %d", len(args))
			}
			value, ok := toFloat64(args[0])
			if !ok {
				return nil, fmt.Errorf("target temperature must be a number, got %T", args[0])
			}
			v.thermostat.setTarget(value)
			return nil, nil
		}, true
	}
	return nil, false
}

func (v *thermostatView) On(event string, listener thing.Listener) {
	v.thermostat.emitter.On(event, listener)
}

func (v *thermostatView) RemoveListener(event string, listener thing.Listener) {
	v.thermostat.emitter.RemoveListener(event, listener)
}

func toFloat64(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
