// Package schema defines interface schemas for opent2t: the
// description of which properties, methods, and parameters a named
// interface contract is expected to carry. Schemas are consumed by the
// declaration generator (cmd/opent2t-gen) and by tooling that needs to
// reason about a contract; the dispatcher itself never consults them,
// and no runtime value is ever validated against a schema here.
package schema

import (
	"errors"
	"fmt"
)

// Schema errors.
var (
	// ErrInvalidSchema indicates a structurally malformed schema.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrUnsupportedContract indicates a contract shape this layer
	// refuses rather than silently narrowing, such as a method with
	// more than one output parameter.
	ErrUnsupportedContract = errors.New("unsupported contract")
)

// Known value-type tags for properties and parameters.
const (
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeString  = "string"
	TypeArray   = "array"
	TypeObject  = "object"
)

// knownTypes is the set of accepted value-type tags.
var knownTypes = map[string]bool{
	TypeBoolean: true,
	TypeInteger: true,
	TypeNumber:  true,
	TypeString:  true,
	TypeArray:   true,
	TypeObject:  true,
}

// InterfaceSchema describes one interface contract.
type InterfaceSchema struct {
	// Name is the interface name (e.g. "Thermostat").
	Name string `yaml:"name"`

	// FullName is the namespace-qualified name, if any.
	FullName string `yaml:"fullName,omitempty"`

	// Extends lists names of interfaces this one references/extends.
	Extends []string `yaml:"extends,omitempty"`

	// Properties are the property descriptors.
	Properties []PropertySchema `yaml:"properties,omitempty"`

	// Methods are the method descriptors.
	Methods []MethodSchema `yaml:"methods,omitempty"`
}

// PropertySchema describes one property of an interface contract.
type PropertySchema struct {
	// Name is the property name.
	Name string `yaml:"name"`

	// Type is the value-type tag (boolean, integer, number, string,
	// array, object).
	Type string `yaml:"type"`

	// Read indicates the property can be read.
	Read bool `yaml:"read"`

	// Write indicates the property can be written.
	Write bool `yaml:"write"`
}

// MethodSchema describes one method of an interface contract.
type MethodSchema struct {
	// Name is the method name.
	Name string `yaml:"name"`

	// Parameters are the method's parameters, in declaration order.
	// At most one may be flagged as the output parameter.
	Parameters []ParameterSchema `yaml:"parameters,omitempty"`
}

// ParameterSchema describes one method parameter.
type ParameterSchema struct {
	// Name is the parameter name.
	Name string `yaml:"name"`

	// Type is the value-type tag.
	Type string `yaml:"type"`

	// Out flags the parameter as the method's single output slot;
	// unflagged parameters are inputs.
	Out bool `yaml:"out,omitempty"`
}

// Property returns the named property descriptor.
func (s *InterfaceSchema) Property(name string) (*PropertySchema, bool) {
	for i := range s.Properties {
		if s.Properties[i].Name == name {
			return &s.Properties[i], true
		}
	}
	return nil, false
}

// Method returns the named method descriptor.
func (s *InterfaceSchema) Method(name string) (*MethodSchema, bool) {
	for i := range s.Methods {
		if s.Methods[i].Name == name {
			return &s.Methods[i], true
		}
	}
	return nil, false
}

// Output returns the method's output parameter, if one is declared.
func (m *MethodSchema) Output() (*ParameterSchema, bool) {
	for i := range m.Parameters {
		if m.Parameters[i].Out {
			return &m.Parameters[i], true
		}
	}
	return nil, false
}

// Inputs returns the method's input parameters in declaration order.
func (m *MethodSchema) Inputs() []ParameterSchema {
	var in []ParameterSchema
	for _, p := range m.Parameters {
		if !p.Out {
			in = append(in, p)
		}
	}
	return in
}

// AddParameter appends a parameter to the method. Registering a second
// output parameter fails immediately with ErrUnsupportedContract
// rather than silently picking one.
func (m *MethodSchema) AddParameter(p ParameterSchema) error {
	if p.Out {
		if existing, ok := m.Output(); ok {
			return fmt.Errorf("%w: method %s declares multiple output parameters (%s, %s)",
				ErrUnsupportedContract, m.Name, existing.Name, p.Name)
		}
	}
	m.Parameters = append(m.Parameters, p)
	return nil
}
