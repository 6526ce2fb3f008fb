// Package thing implements the device data model for opent2t.
//
// # Devices and Interface Views
//
// A device is an opaque handle. Callers never address a device's
// members directly; they go through an interface view obtained for a
// named interface contract:
//
//	Device ──AsInterface("Thermostat")──> View
//
// Devices that implement InterfaceProvider produce a view per named
// interface. Devices without the capability are used directly as their
// own view and are assumed to carry the interface's members themselves.
//
// # Views as Capability Sets
//
// A View is a member table: each named slot holds either a current
// value or a callable. Optional capabilities are discovered by type
// assertion on the view:
//   - Notifier: event subscription (On / RemoveListener)
//
// MemberTable is the standard View implementation. Device
// implementations embed it and attach members however is natural to
// them: a direct value slot, a sync getter ("getBrightness"), or an
// async getter ("getBrightnessAsync").
//
// # Asynchronous Results
//
// A callable member may return a Pending instead of a settled value.
// Pending is the explicit tagged form of an in-flight result; callers
// (normally the access package) wait for it with Await. Future is the
// standard Pending implementation.
package thing
