package examples

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sanjaiganesh/opent2t/pkg/access"
	"github.com/sanjaiganesh/opent2t/pkg/thing"
)

func ctxb() context.Context { return context.Background() }

func TestLampDirectValueSlot(t *testing.T) {
	lamp := NewLamp("Desk Lamp")

	name, err := access.GetProperty(ctxb(), lamp, LampInterface, "name")
	if err != nil {
		t.Fatalf("get name: %v", err)
	}
	if name != "Desk Lamp" {
		t.Errorf("expected Desk Lamp, got %v", name)
	}

	if err := access.SetProperty(ctxb(), lamp, LampInterface, "name", "Bedside Lamp"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	name, err = access.GetProperty(ctxb(), lamp, LampInterface, "name")
	if err != nil {
		t.Fatalf("get name after set: %v", err)
	}
	if name != "Bedside Lamp" {
		t.Errorf("expected Bedside Lamp, got %v", name)
	}
}

func TestLampSyncPowerRoundTrip(t *testing.T) {
	lamp := NewLamp("Desk Lamp")

	power, err := access.GetProperty(ctxb(), lamp, LampInterface, "power")
	if err != nil {
		t.Fatalf("get power: %v", err)
	}
	if power != false {
		t.Errorf("expected lamp to start off, got %v", power)
	}

	if err := access.SetProperty(ctxb(), lamp, LampInterface, "power", true); err != nil {
		t.Fatalf("set power: %v", err)
	}
	power, err = access.GetProperty(ctxb(), lamp, LampInterface, "power")
	if err != nil {
		t.Fatalf("get power after set: %v", err)
	}
	if power != true {
		t.Errorf("expected lamp on, got %v", power)
	}
}

func TestLampAsyncDimLevel(t *testing.T) {
	lamp := NewLamp("Desk Lamp")

	level, err := access.GetProperty(ctxb(), lamp, LampInterface, "dimLevel")
	if err != nil {
		t.Fatalf("get dimLevel: %v", err)
	}
	if level != int64(100) {
		t.Errorf("expected dim level 100, got %v", level)
	}

	if err := access.SetProperty(ctxb(), lamp, LampInterface, "dimLevel", int64(40)); err != nil {
		t.Fatalf("set dimLevel: %v", err)
	}
	level, err = access.GetProperty(ctxb(), lamp, LampInterface, "dimLevel")
	if err != nil {
		t.Fatalf("get dimLevel after set: %v", err)
	}
	if level != int64(40) {
		t.Errorf("expected dim level 40, got %v", level)
	}
}

func TestLampDimLevelOutOfRange(t *testing.T) {
	lamp := NewLamp("Desk Lamp")

	err := access.SetProperty(ctxb(), lamp, LampInterface, "dimLevel", int64(150))
	if err == nil {
		t.Fatal("expected out-of-range dim level to fail")
	}
	if lamp.DimLevel() != 100 {
		t.Errorf("dim level changed despite error: %d", lamp.DimLevel())
	}
}

func TestLampTurnOnOff(t *testing.T) {
	lamp := NewLamp("Desk Lamp")

	if _, err := access.Invoke(ctxb(), lamp, LampInterface, "turnOn", []any{}); err != nil {
		t.Fatalf("turnOn: %v", err)
	}
	if !lamp.Power() {
		t.Error("expected lamp on after turnOn")
	}

	if _, err := access.Invoke(ctxb(), lamp, LampInterface, "turnOff", []any{}); err != nil {
		t.Fatalf("turnOff: %v", err)
	}
	if lamp.Power() {
		t.Error("expected lamp off after turnOff")
	}
}

func TestLampPowerNotification(t *testing.T) {
	lamp := NewLamp("Desk Lamp")

	var mu sync.Mutex
	var got []any
	listener := thing.ListenerFunc(func(name string, value any) {
		mu.Lock()
		got = append(got, value)
		mu.Unlock()
	})

	if err := access.AddPropertyListener(lamp, LampInterface, "power", listener); err != nil {
		t.Fatalf("add listener: %v", err)
	}

	if _, err := access.Invoke(ctxb(), lamp, LampInterface, "turnOn", []any{}); err != nil {
		t.Fatalf("turnOn: %v", err)
	}

	mu.Lock()
	first := len(got)
	mu.Unlock()
	if first != 1 || got[0] != true {
		t.Fatalf("expected one notification with true, got %v", got)
	}

	if err := access.RemovePropertyListener(lamp, LampInterface, "power", listener); err != nil {
		t.Fatalf("remove listener: %v", err)
	}

	if _, err := access.Invoke(ctxb(), lamp, LampInterface, "turnOff", []any{}); err != nil {
		t.Fatalf("turnOff: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 {
		t.Errorf("listener fired after removal: %v", got)
	}
}

func TestLampUnknownInterface(t *testing.T) {
	lamp := NewLamp("Desk Lamp")

	_, err := access.GetProperty(ctxb(), lamp, "org.opent2t.sample.toaster", "power")
	if !errors.Is(err, access.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestThermostatTargetTemperature(t *testing.T) {
	th := NewThermostat(21.0)

	target, err := access.GetProperty(ctxb(), th, ThermostatInterface, "targetTemperature")
	if err != nil {
		t.Fatalf("get targetTemperature: %v", err)
	}
	if target != 21.0 {
		t.Errorf("expected 21.0, got %v", target)
	}

	if err := access.SetProperty(ctxb(), th, ThermostatInterface, "targetTemperature", 23.5); err != nil {
		t.Fatalf("set targetTemperature: %v", err)
	}
	if th.TargetTemperature() != 23.5 {
		t.Errorf("expected 23.5, got %v", th.TargetTemperature())
	}
}

// The ambient temperature cannot be read on demand, only observed.
func TestThermostatAmbientPushOnly(t *testing.T) {
	th := NewThermostat(21.0)

	_, err := access.GetProperty(ctxb(), th, ThermostatInterface, "ambientTemperature")
	if !errors.Is(err, access.ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}

	done := make(chan any, 1)
	listener := thing.ListenerFunc(func(name string, value any) {
		done <- value
	})
	if err := access.AddPropertyListener(th, ThermostatInterface, "ambientTemperature", listener); err != nil {
		t.Fatalf("add listener: %v", err)
	}

	th.ReportAmbient(19.5)

	select {
	case value := <-done:
		if value != 19.5 {
			t.Errorf("expected 19.5, got %v", value)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for ambient notification")
	}
}
