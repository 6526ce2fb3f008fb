// Package access implements the opent2t accessor/dispatcher: the
// uniform capability-access layer callers use to reach heterogeneous
// device members through named interfaces.
//
// # Dispatch Sequence
//
// Every operation follows the same control flow:
//
//	resolve interface view -> validate member name ->
//	attempt primary convention -> attempt fallbacks in order ->
//	normalize result (await if pending) -> return or fail
//
// # Conventions
//
// Property reads probe, in order: a direct value slot at the property
// name, a get<Name> callable, a get<Name>Async callable. Property
// writes probe: a defined value slot (direct assignment), set<Name>,
// set<Name>Async. Methods are addressed by exact name. Listener
// operations require the view's Notifier capability. Once every
// convention is exhausted the operation fails with ErrNotImplemented;
// absence of an implementation is never reported as a nil result.
//
// # Asynchronous Normalization
//
// A device member may produce a settled value or a thing.Pending.
// Either way the caller sees one settled result: the dispatcher awaits
// pending results on the caller's context before returning. This is
// the only suspension point per call; the dispatcher adds no timeout
// of its own, so callers bound hung devices with their context.
//
// The dispatcher is stateless. Interface views are re-resolved on
// every call and never cached, since a device may return
// differently-scoped views over time.
package access
