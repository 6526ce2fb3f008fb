// Package examples provides reference device implementations for working
// with the access dispatcher.
//
// The example implementations show:
//   - Exposing per-interface views through thing.InterfaceProvider
//   - Direct value slots next to getter/setter methods
//   - Async members that hand back a thing.Pending
//   - Property change notification via thing.Emitter
//
// Available examples:
//   - Lamp: a dimmable lamp covering every member convention
//   - Thermostat: a sensor-style device whose ambient temperature is
//     observable but not readable on demand
//
// These examples can serve as templates for building real translators.
package examples
