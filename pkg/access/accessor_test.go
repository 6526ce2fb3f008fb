package access

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sanjaiganesh/opent2t/pkg/log"
	"github.com/sanjaiganesh/opent2t/pkg/thing"
)

// notifyingView is a view with the Notifier capability.
type notifyingView struct {
	*thing.MemberTable
	thing.Emitter
}

func newNotifyingView(name string) *notifyingView {
	return &notifyingView{MemberTable: thing.NewMemberTable(name)}
}

// providerDevice produces views per interface name.
type providerDevice struct {
	views map[string]thing.View
	asked []string
}

func (d *providerDevice) AsInterface(name string) thing.View {
	d.asked = append(d.asked, name)
	return d.views[name]
}

func ctxb() context.Context { return context.Background() }

func TestGetPropertyDirectFieldPrecedence(t *testing.T) {
	view := thing.NewMemberTable("Lamp")
	view.SetValue("power", true)

	getterCalled := false
	view.Define("getPower", func(ctx context.Context, args ...any) (any, error) {
		getterCalled = true
		return false, nil
	})

	got, err := GetProperty(ctxb(), view, "Lamp", "power")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if got != true {
		t.Errorf("GetProperty = %v, want true (direct field)", got)
	}
	if getterCalled {
		t.Error("getPower called despite defined direct field")
	}
}

func TestGetPropertySyncGetterFallback(t *testing.T) {
	view := thing.NewMemberTable("Lamp")
	view.Define("getBrightness", func(ctx context.Context, args ...any) (any, error) {
		return 80, nil
	})

	got, err := GetProperty(ctxb(), view, "Lamp", "brightness")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if got != 80 {
		t.Errorf("GetProperty = %v, want 80", got)
	}
}

func TestGetPropertyAsyncGetterFallback(t *testing.T) {
	view := thing.NewMemberTable("Thermostat")
	view.Define("getTemperatureAsync", func(ctx context.Context, args ...any) (any, error) {
		f := thing.NewFuture()
		go func() {
			time.Sleep(5 * time.Millisecond)
			f.Resolve(21.5)
		}()
		return f, nil
	})

	got, err := GetProperty(ctxb(), view, "Thermostat", "temperature")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if got != 21.5 {
		t.Errorf("GetProperty = %v, want 21.5", got)
	}
}

func TestGetPropertyDirectPendingValue(t *testing.T) {
	// A direct slot may itself hold a pending result; it is awaited too.
	view := thing.NewMemberTable("Thermostat")
	view.SetValue("humidity", thing.Resolved(40))

	got, err := GetProperty(ctxb(), view, "Thermostat", "humidity")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if got != 40 {
		t.Errorf("GetProperty = %v, want 40", got)
	}
}

func TestGetPropertyNotImplemented(t *testing.T) {
	view := thing.NewMemberTable("Lamp")

	_, err := GetProperty(ctxb(), view, "Lamp", "hue")
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("GetProperty err = %v, want ErrNotImplemented", err)
	}
}

func TestGetPropertyDeviceError(t *testing.T) {
	wantErr := errors.New("sensor offline")
	view := thing.NewMemberTable("Thermostat")
	view.Define("getTemperature", func(ctx context.Context, args ...any) (any, error) {
		return nil, wantErr
	})

	_, err := GetProperty(ctxb(), view, "Thermostat", "temperature")
	if !errors.Is(err, wantErr) {
		t.Errorf("GetProperty err = %v, want %v", err, wantErr)
	}
}

func TestSetPropertyDirectAssignment(t *testing.T) {
	view := thing.NewMemberTable("Lamp")
	view.SetValue("power", false)

	setterCalled := false
	view.Define("setPower", func(ctx context.Context, args ...any) (any, error) {
		setterCalled = true
		return nil, nil
	})

	if err := SetProperty(ctxb(), view, "Lamp", "power", true); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	if setterCalled {
		t.Error("setPower called despite defined direct field")
	}
	if v, _ := view.Value("power"); v != true {
		t.Errorf("power = %v, want true after direct assignment", v)
	}
}

func TestSetPropertySyncSetterFallback(t *testing.T) {
	view := thing.NewMemberTable("Lamp")

	var gotValue any
	view.Define("setBrightness", func(ctx context.Context, args ...any) (any, error) {
		gotValue = args[0]
		return nil, nil
	})

	if err := SetProperty(ctxb(), view, "Lamp", "brightness", 60); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	if gotValue != 60 {
		t.Errorf("setter received %v, want 60", gotValue)
	}
}

func TestSetPropertyAsyncSetterAwaited(t *testing.T) {
	view := thing.NewMemberTable("Thermostat")

	applied := false
	view.Define("setTargetAsync", func(ctx context.Context, args ...any) (any, error) {
		f := thing.NewFuture()
		go func() {
			time.Sleep(5 * time.Millisecond)
			applied = true
			f.Resolve(nil)
		}()
		return f, nil
	})

	if err := SetProperty(ctxb(), view, "Thermostat", "target", 22.0); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	if !applied {
		t.Error("SetProperty returned before pending completion settled")
	}
}

func TestSetPropertyNotImplemented(t *testing.T) {
	view := thing.NewMemberTable("Lamp")

	err := SetProperty(ctxb(), view, "Lamp", "hue", 120)
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("SetProperty err = %v, want ErrNotImplemented", err)
	}
}

func TestPropertyRoundTripAcrossConventions(t *testing.T) {
	// Write through an async setter, read through a sync getter; the
	// caller sees one convention-free contract either way.
	view := thing.NewMemberTable("Thermostat")

	var target any
	view.Define("setTargetAsync", func(ctx context.Context, args ...any) (any, error) {
		f := thing.NewFuture()
		target = args[0]
		f.Resolve(nil)
		return f, nil
	})
	view.Define("getTarget", func(ctx context.Context, args ...any) (any, error) {
		return target, nil
	})

	if err := SetProperty(ctxb(), view, "Thermostat", "target", 19.5); err != nil {
		t.Fatalf("SetProperty: %v", err)
	}
	got, err := GetProperty(ctxb(), view, "Thermostat", "target")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if got != 19.5 {
		t.Errorf("round trip = %v, want 19.5", got)
	}
}

func TestInvoke(t *testing.T) {
	view := thing.NewMemberTable("Lamp")
	view.Define("fade", func(ctx context.Context, args ...any) (any, error) {
		if len(args) != 2 {
			t.Errorf("fade got %d args, want 2", len(args))
		}
		return args[0], nil
	})

	got, err := Invoke(ctxb(), view, "Lamp", "fade", []any{30, "2s"})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got != 30 {
		t.Errorf("Invoke = %v, want 30", got)
	}
}

func TestInvokePendingResult(t *testing.T) {
	view := thing.NewMemberTable("Lamp")
	view.Define("calibrate", func(ctx context.Context, args ...any) (any, error) {
		return thing.Resolved("done"), nil
	})

	got, err := Invoke(ctxb(), view, "Lamp", "calibrate", []any{})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got != "done" {
		t.Errorf("Invoke = %v, want done", got)
	}
}

func TestInvokeVoidMethod(t *testing.T) {
	view := thing.NewMemberTable("Lamp")
	view.Define("toggle", func(ctx context.Context, args ...any) (any, error) {
		return nil, nil
	})

	got, err := Invoke(ctxb(), view, "Lamp", "toggle", []any{})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got != nil {
		t.Errorf("Invoke = %v, want nil for void method", got)
	}
}

func TestInvokeNilArgs(t *testing.T) {
	called := false
	view := thing.NewMemberTable("Lamp")
	view.Define("toggle", func(ctx context.Context, args ...any) (any, error) {
		called = true
		return nil, nil
	})

	_, err := Invoke(ctxb(), view, "Lamp", "toggle", nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Invoke err = %v, want ErrInvalidArgument", err)
	}
	if called {
		t.Error("method invoked despite nil args")
	}
}

func TestInvokeNotImplemented(t *testing.T) {
	view := thing.NewMemberTable("Lamp")
	// A value slot at the method name is not callable.
	view.SetValue("toggle", "not a method")

	_, err := Invoke(ctxb(), view, "Lamp", "toggle", []any{})
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Invoke err = %v, want ErrNotImplemented", err)
	}
}

func TestListenerOps(t *testing.T) {
	view := newNotifyingView("Thermostat")

	var got []any
	listener := thing.ListenerFunc(func(name string, value any) {
		got = append(got, value)
	})

	if err := AddPropertyListener(view, "Thermostat", "temperature", listener); err != nil {
		t.Fatalf("AddPropertyListener: %v", err)
	}
	view.Emit("temperature", 21.0)
	view.Emit("temperature", 21.5)

	if err := RemovePropertyListener(view, "Thermostat", "temperature", listener); err != nil {
		t.Fatalf("RemovePropertyListener: %v", err)
	}
	view.Emit("temperature", 22.0)

	if len(got) != 2 || got[0] != 21.0 || got[1] != 21.5 {
		t.Errorf("notifications = %v, want [21 21.5]", got)
	}
}

func TestListenerNotImplemented(t *testing.T) {
	view := thing.NewMemberTable("Lamp") // no Notifier capability
	listener := thing.ListenerFunc(func(string, any) {})

	if err := AddPropertyListener(view, "Lamp", "power", listener); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("AddPropertyListener err = %v, want ErrNotImplemented", err)
	}
	if err := RemovePropertyListener(view, "Lamp", "power", listener); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("RemovePropertyListener err = %v, want ErrNotImplemented", err)
	}
}

// Notifier-only device: property reads fail, subscriptions work.
func TestNotifierOnlyDevice(t *testing.T) {
	view := newNotifyingView("Thermostat")

	if _, err := GetProperty(ctxb(), view, "Thermostat", "temperature"); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("GetProperty err = %v, want ErrNotImplemented", err)
	}

	var got any
	listener := thing.ListenerFunc(func(name string, value any) { got = value })
	if err := AddPropertyListener(view, "Thermostat", "temperature", listener); err != nil {
		t.Fatalf("AddPropertyListener: %v", err)
	}
	view.Emit("temperature", 18.0)
	if got != 18.0 {
		t.Errorf("listener got %v, want 18", got)
	}
}

func TestEmptyMemberNameAllOps(t *testing.T) {
	view := newNotifyingView("Lamp")
	listener := thing.ListenerFunc(func(string, any) {})

	if _, err := GetProperty(ctxb(), view, "Lamp", ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("GetProperty err = %v, want ErrInvalidArgument", err)
	}
	if err := SetProperty(ctxb(), view, "Lamp", "", 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SetProperty err = %v, want ErrInvalidArgument", err)
	}
	if _, err := Invoke(ctxb(), view, "Lamp", "", []any{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Invoke err = %v, want ErrInvalidArgument", err)
	}
	if err := AddPropertyListener(view, "Lamp", "", listener); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("AddPropertyListener err = %v, want ErrInvalidArgument", err)
	}
	if err := RemovePropertyListener(view, "Lamp", "", listener); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("RemovePropertyListener err = %v, want ErrInvalidArgument", err)
	}
}

func TestNilDevice(t *testing.T) {
	if _, err := GetProperty(ctxb(), nil, "Lamp", "power"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("GetProperty err = %v, want ErrInvalidArgument", err)
	}
}

func TestNonObjectDevice(t *testing.T) {
	// A device that is neither a view nor an interface provider cannot
	// be dispatched against.
	if _, err := GetProperty(ctxb(), 42, "Lamp", "power"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("GetProperty err = %v, want ErrInvalidArgument", err)
	}
}

func TestInterfaceProviderResolution(t *testing.T) {
	lampView := thing.NewMemberTable("Lamp")
	lampView.SetValue("power", true)
	device := &providerDevice{views: map[string]thing.View{"Lamp": lampView}}

	got, err := GetProperty(ctxb(), device, "Lamp", "power")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if got != true {
		t.Errorf("GetProperty = %v, want true", got)
	}
	if len(device.asked) != 1 || device.asked[0] != "Lamp" {
		t.Errorf("AsInterface asked for %v, want [Lamp]", device.asked)
	}
}

func TestInterfaceProviderStructuredDesignator(t *testing.T) {
	lampView := thing.NewMemberTable("Lamp")
	lampView.SetValue("power", true)
	device := &providerDevice{views: map[string]thing.View{"Lamp": lampView}}

	ref := thing.InterfaceRef{Name: "Lamp", FullName: "org.opent2t.sample.Lamp"}
	if _, err := GetProperty(ctxb(), device, ref, "power"); err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if device.asked[0] != "Lamp" {
		t.Errorf("AsInterface asked for %q, want Lamp", device.asked[0])
	}
}

func TestInterfaceNotImplementedByProvider(t *testing.T) {
	device := &providerDevice{views: map[string]thing.View{}}

	_, err := GetProperty(ctxb(), device, "Thermostat", "temperature")
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("GetProperty err = %v, want ErrNotImplemented", err)
	}
	// Resolution failures name the interface for diagnosis.
	if !strings.Contains(err.Error(), "Thermostat") {
		t.Errorf("error %q does not name interface Thermostat", err.Error())
	}
}

func TestResolutionPerCall(t *testing.T) {
	// Views are re-resolved on every dispatch; a device may hand out a
	// different view each time.
	first := thing.NewMemberTable("Lamp")
	first.SetValue("power", false)
	second := thing.NewMemberTable("Lamp")
	second.SetValue("power", true)

	device := &providerDevice{views: map[string]thing.View{"Lamp": first}}
	if got, _ := GetProperty(ctxb(), device, "Lamp", "power"); got != false {
		t.Errorf("first resolve = %v, want false", got)
	}

	device.views["Lamp"] = second
	if got, _ := GetProperty(ctxb(), device, "Lamp", "power"); got != true {
		t.Errorf("second resolve = %v, want true", got)
	}
}

func TestAwaitHonorsCallerContext(t *testing.T) {
	view := thing.NewMemberTable("Thermostat")
	view.Define("getTemperatureAsync", func(ctx context.Context, args ...any) (any, error) {
		return thing.NewFuture(), nil // never settles
	})

	ctx, cancel := context.WithTimeout(ctxb(), 10*time.Millisecond)
	defer cancel()

	_, err := GetProperty(ctx, view, "Thermostat", "temperature")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("GetProperty err = %v, want deadline exceeded", err)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"foo", "Foo"},
		{"temperature", "Temperature"},
		{"Foo", "Foo"},
		{"x", "x"},
		{"", ""},
		{"überMode", "ÜberMode"},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDispatchLogging(t *testing.T) {
	var events []log.Event
	acc := New(logFunc(func(e log.Event) { events = append(events, e) }))

	view := thing.NewMemberTable("Lamp")
	view.SetValue("power", true)

	if _, err := acc.GetProperty(ctxb(), view, "Lamp", "power"); err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if _, err := acc.GetProperty(ctxb(), view, "Lamp", "hue"); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("GetProperty err = %v, want ErrNotImplemented", err)
	}

	if len(events) != 2 {
		t.Fatalf("logged %d events, want 2", len(events))
	}

	ok := events[0]
	if ok.Op != log.OpGet || ok.Outcome != log.OutcomeOK || ok.Convention != log.ConventionDirect {
		t.Errorf("first event = %+v, want GET/OK/DIRECT", ok)
	}
	if ok.Interface != "Lamp" || ok.Member != "power" {
		t.Errorf("first event names = %q/%q, want Lamp/power", ok.Interface, ok.Member)
	}

	failed := events[1]
	if failed.Outcome != log.OutcomeNotImplemented || failed.Detail == "" {
		t.Errorf("second event = %+v, want NOT_IMPLEMENTED with detail", failed)
	}
}

// logFunc adapts a function to log.Logger for tests.
type logFunc func(log.Event)

func (f logFunc) Log(e log.Event) { f(e) }
