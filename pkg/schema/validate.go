package schema

import "fmt"

// Validate checks the schema's structure: a non-empty interface name,
// unique non-empty member names, known value-type tags, and at most
// one output parameter per method. It says nothing about runtime
// values; content validation is out of scope for this layer.
func (s *InterfaceSchema) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: interface name is required", ErrInvalidSchema)
	}

	seen := make(map[string]bool)

	for _, p := range s.Properties {
		if p.Name == "" {
			return fmt.Errorf("%w: %s: property name is required", ErrInvalidSchema, s.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: %s: duplicate member %s", ErrInvalidSchema, s.Name, p.Name)
		}
		seen[p.Name] = true

		if !knownTypes[p.Type] {
			return fmt.Errorf("%w: %s.%s: unknown value type %q", ErrInvalidSchema, s.Name, p.Name, p.Type)
		}
		if !p.Read && !p.Write {
			return fmt.Errorf("%w: %s.%s: property is neither readable nor writable", ErrInvalidSchema, s.Name, p.Name)
		}
	}

	for _, m := range s.Methods {
		if m.Name == "" {
			return fmt.Errorf("%w: %s: method name is required", ErrInvalidSchema, s.Name)
		}
		if seen[m.Name] {
			return fmt.Errorf("%w: %s: duplicate member %s", ErrInvalidSchema, s.Name, m.Name)
		}
		seen[m.Name] = true

		if err := m.validate(s.Name); err != nil {
			return err
		}
	}

	return nil
}

func (m *MethodSchema) validate(ifaceName string) error {
	var out *ParameterSchema
	paramSeen := make(map[string]bool)

	for i := range m.Parameters {
		p := &m.Parameters[i]
		if p.Name == "" {
			return fmt.Errorf("%w: %s.%s: parameter name is required", ErrInvalidSchema, ifaceName, m.Name)
		}
		if paramSeen[p.Name] {
			return fmt.Errorf("%w: %s.%s: duplicate parameter %s", ErrInvalidSchema, ifaceName, m.Name, p.Name)
		}
		paramSeen[p.Name] = true

		if !knownTypes[p.Type] {
			return fmt.Errorf("%w: %s.%s.%s: unknown value type %q", ErrInvalidSchema, ifaceName, m.Name, p.Name, p.Type)
		}

		if p.Out {
			if out != nil {
				return fmt.Errorf("%w: method %s declares multiple output parameters (%s, %s)",
					ErrUnsupportedContract, m.Name, out.Name, p.Name)
			}
			out = p
		}
	}

	return nil
}
