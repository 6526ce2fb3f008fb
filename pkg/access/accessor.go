package access

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sanjaiganesh/opent2t/pkg/log"
	"github.com/sanjaiganesh/opent2t/pkg/thing"
)

// Dispatch errors.
var (
	// ErrInvalidArgument indicates malformed call inputs: a non-object
	// device, an empty member name, or a nil argument list.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotImplemented indicates the resolved view lacks the required
	// member under every attempted convention, or the device did not
	// produce a view for the requested interface.
	ErrNotImplemented = errors.New("not implemented")
)

// Accessor dispatches property, method, and listener operations
// against devices through named interface views. It holds no state
// besides its logger and is safe for concurrent use.
type Accessor struct {
	logger log.Logger
}

// New creates an Accessor. A nil logger disables dispatch logging.
func New(logger log.Logger) *Accessor {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Accessor{logger: logger}
}

// Default is the shared accessor used by the package-level dispatch
// functions. It logs nothing.
var Default = New(nil)

// GetProperty resolves device against the interface designator and
// reads the named property, probing the direct value slot, then
// get<Name>, then get<Name>Async. Pending results are awaited on ctx.
func GetProperty(ctx context.Context, device, designator any, name string) (any, error) {
	return Default.GetProperty(ctx, device, designator, name)
}

// SetProperty resolves device against the interface designator and
// writes the named property, probing the defined value slot (direct
// assignment), then set<Name>, then set<Name>Async.
func SetProperty(ctx context.Context, device, designator any, name string, value any) error {
	return Default.SetProperty(ctx, device, designator, name, value)
}

// Invoke resolves device against the interface designator and invokes
// the named method with args passed positionally.
func Invoke(ctx context.Context, device, designator any, method string, args []any) (any, error) {
	return Default.Invoke(ctx, device, designator, method, args)
}

// AddPropertyListener registers listener for change notifications of
// the named property, under the literal property name as event name.
func AddPropertyListener(device, designator any, name string, listener thing.Listener) error {
	return Default.AddPropertyListener(device, designator, name, listener)
}

// RemovePropertyListener unregisters listener from change
// notifications of the named property.
func RemovePropertyListener(device, designator any, name string, listener thing.Listener) error {
	return Default.RemovePropertyListener(device, designator, name, listener)
}

// GetProperty reads a property through the device's interface view.
func (a *Accessor) GetProperty(ctx context.Context, device, designator any, name string) (any, error) {
	start := time.Now()
	value, conv, async, err := a.getProperty(ctx, device, designator, name)
	a.emit(log.OpGet, designator, name, conv, async, start, err)
	return value, err
}

func (a *Accessor) getProperty(ctx context.Context, device, designator any, name string) (any, log.Convention, bool, error) {
	view, err := resolveView(device, designator)
	if err != nil {
		return nil, log.ConventionNone, false, err
	}
	if err := validateMemberName(name); err != nil {
		return nil, log.ConventionNone, false, err
	}

	// Direct value slot wins over getters.
	if v, ok := view.Value(name); ok {
		settled, async, err := settle(ctx, v)
		return settled, log.ConventionDirect, async, err
	}

	if getter, ok := view.Method("get" + Capitalize(name)); ok {
		return callAndSettle(ctx, getter, log.ConventionSync)
	}
	if getter, ok := view.Method("get" + Capitalize(name) + "Async"); ok {
		return callAndSettle(ctx, getter, log.ConventionAsync)
	}

	return nil, log.ConventionNone, false,
		fmt.Errorf("%w: property getter not implemented by device", ErrNotImplemented)
}

// SetProperty writes a property through the device's interface view.
// The result is always void; pending device results are awaited.
func (a *Accessor) SetProperty(ctx context.Context, device, designator any, name string, value any) error {
	start := time.Now()
	conv, async, err := a.setProperty(ctx, device, designator, name, value)
	a.emit(log.OpSet, designator, name, conv, async, start, err)
	return err
}

func (a *Accessor) setProperty(ctx context.Context, device, designator any, name string, value any) (log.Convention, bool, error) {
	view, err := resolveView(device, designator)
	if err != nil {
		return log.ConventionNone, false, err
	}
	if err := validateMemberName(name); err != nil {
		return log.ConventionNone, false, err
	}

	// A currently defined value slot takes a direct assignment. This
	// deliberately ignores schema-level read-only intent; write
	// capability enforcement belongs to the schema layer.
	if _, ok := view.Value(name); ok {
		view.SetValue(name, value)
		return log.ConventionDirect, false, nil
	}

	if setter, ok := view.Method("set" + Capitalize(name)); ok {
		return applySetter(ctx, setter, value, log.ConventionSync)
	}
	if setter, ok := view.Method("set" + Capitalize(name) + "Async"); ok {
		return applySetter(ctx, setter, value, log.ConventionAsync)
	}

	return log.ConventionNone, false,
		fmt.Errorf("%w: property setter not implemented by device", ErrNotImplemented)
}

// Invoke calls a method on the device's interface view. The method is
// addressed by exact name and must be callable; args are passed
// positionally. A nil args slice fails ErrInvalidArgument; pass an
// empty slice for a zero-argument call.
func (a *Accessor) Invoke(ctx context.Context, device, designator any, method string, args []any) (any, error) {
	start := time.Now()
	value, conv, async, err := a.invoke(ctx, device, designator, method, args)
	a.emit(log.OpInvoke, designator, method, conv, async, start, err)
	return value, err
}

func (a *Accessor) invoke(ctx context.Context, device, designator any, method string, args []any) (any, log.Convention, bool, error) {
	view, err := resolveView(device, designator)
	if err != nil {
		return nil, log.ConventionNone, false, err
	}
	if err := validateMemberName(method); err != nil {
		return nil, log.ConventionNone, false, err
	}
	if args == nil {
		return nil, log.ConventionNone, false,
			fmt.Errorf("%w: args must be an array", ErrInvalidArgument)
	}

	m, ok := view.Method(method)
	if !ok {
		return nil, log.ConventionNone, false,
			fmt.Errorf("%w: method not implemented by device", ErrNotImplemented)
	}

	v, err := m(ctx, args...)
	if err != nil {
		return nil, log.ConventionMethod, false, err
	}
	settled, async, err := settle(ctx, v)
	return settled, log.ConventionMethod, async, err
}

// AddPropertyListener registers listener under the literal property
// name on the view's Notifier capability.
func (a *Accessor) AddPropertyListener(device, designator any, name string, listener thing.Listener) error {
	start := time.Now()
	conv, err := a.listenerOp(device, designator, name, listener, false)
	a.emit(log.OpAddListener, designator, name, conv, false, start, err)
	return err
}

// RemovePropertyListener unregisters listener from the view's
// Notifier capability.
func (a *Accessor) RemovePropertyListener(device, designator any, name string, listener thing.Listener) error {
	start := time.Now()
	conv, err := a.listenerOp(device, designator, name, listener, true)
	a.emit(log.OpRemoveListener, designator, name, conv, false, start, err)
	return err
}

func (a *Accessor) listenerOp(device, designator any, name string, listener thing.Listener, remove bool) (log.Convention, error) {
	view, err := resolveView(device, designator)
	if err != nil {
		return log.ConventionNone, err
	}
	if err := validateMemberName(name); err != nil {
		return log.ConventionNone, err
	}

	notifier, ok := view.(thing.Notifier)
	if !ok {
		if remove {
			return log.ConventionNone,
				fmt.Errorf("%w: property notifier removal not implemented by device", ErrNotImplemented)
		}
		return log.ConventionNone,
			fmt.Errorf("%w: property notifier not implemented by device", ErrNotImplemented)
	}

	if remove {
		notifier.RemoveListener(name, listener)
	} else {
		notifier.On(name, listener)
	}
	return log.ConventionNotifier, nil
}

// resolveView produces the interface view dispatch operates on.
// Devices with the InterfaceProvider capability are asked for a view
// of the named interface; devices without it are used directly as
// their own view.
func resolveView(device, designator any) (thing.View, error) {
	if device == nil {
		return nil, fmt.Errorf("%w: device must be an object", ErrInvalidArgument)
	}

	if p, ok := device.(thing.InterfaceProvider); ok {
		name := thing.DesignatorName(designator)
		view := p.AsInterface(name)
		if view == nil {
			return nil, fmt.Errorf("%w: interface not implemented by device: %s", ErrNotImplemented, name)
		}
		return view, nil
	}

	if v, ok := device.(thing.View); ok {
		return v, nil
	}

	return nil, fmt.Errorf("%w: device must be an object", ErrInvalidArgument)
}

// validateMemberName rejects empty member names before any dispatch.
func validateMemberName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: member name must be a non-empty string", ErrInvalidArgument)
	}
	return nil
}

// settle normalizes a member result: pending results are awaited on
// ctx, settled values pass through. The bool reports whether an await
// happened.
func settle(ctx context.Context, v any) (any, bool, error) {
	if p, ok := v.(thing.Pending); ok {
		settled, err := p.Await(ctx)
		return settled, true, err
	}
	return v, false, nil
}

// callAndSettle invokes a zero-argument member and normalizes its
// result, tagging it with the convention that matched.
func callAndSettle(ctx context.Context, m thing.Member, conv log.Convention) (any, log.Convention, bool, error) {
	v, err := m(ctx)
	if err != nil {
		return nil, conv, false, err
	}
	settled, async, err := settle(ctx, v)
	return settled, conv, async, err
}

// applySetter invokes a one-argument setter member and waits out a
// pending completion; the set operation's own result is void.
func applySetter(ctx context.Context, setter thing.Member, value any, conv log.Convention) (log.Convention, bool, error) {
	v, err := setter(ctx, value)
	if err != nil {
		return conv, false, err
	}
	_, async, err := settle(ctx, v)
	return conv, async, err
}

func (a *Accessor) emit(op log.Operation, designator any, member string, conv log.Convention, async bool, start time.Time, err error) {
	event := log.Event{
		Timestamp:  time.Now(),
		Op:         op,
		Interface:  thing.DesignatorName(designator),
		Member:     member,
		Convention: conv,
		Async:      async,
		Elapsed:    time.Since(start),
		Outcome:    outcomeOf(err),
	}
	if err != nil {
		event.Detail = err.Error()
	}
	a.logger.Log(event)
}

func outcomeOf(err error) log.Outcome {
	switch {
	case err == nil:
		return log.OutcomeOK
	case errors.Is(err, ErrInvalidArgument):
		return log.OutcomeInvalidArgument
	case errors.Is(err, ErrNotImplemented):
		return log.OutcomeNotImplemented
	default:
		return log.OutcomeError
	}
}
