package thing

import "fmt"

// InterfaceRef is a structured interface designator: a named reference
// to an interface contract, optionally namespace-qualified.
type InterfaceRef struct {
	// Name is the interface name (e.g. "Thermostat").
	Name string

	// FullName is the namespace-qualified name, if any
	// (e.g. "org.opent2t.sample.Thermostat").
	FullName string
}

// String returns the interface name.
func (r InterfaceRef) String() string {
	return r.Name
}

// DesignatorName normalizes an interface designator to its name.
// Plain strings are returned unchanged; InterfaceRef values yield
// their Name field. Anything else falls back to its printed form,
// which is only ever used for error messages and AsInterface lookup.
func DesignatorName(designator any) string {
	switch d := designator.(type) {
	case string:
		return d
	case InterfaceRef:
		return d.Name
	case *InterfaceRef:
		if d == nil {
			return ""
		}
		return d.Name
	case fmt.Stringer:
		return d.String()
	default:
		return fmt.Sprint(d)
	}
}
