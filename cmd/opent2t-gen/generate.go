package main

import (
	"strings"

	"github.com/sanjaiganesh/opent2t/pkg/schema"
)

// GenerateDeclarations renders the Go declaration file for one
// interface schema: the interface name constant, property and method
// name constants, and the typed contract interface.
func GenerateDeclarations(s *schema.InterfaceSchema, pkg string) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	renderTemplate(&b, "header", headerData{Package: pkg})
	renderTemplate(&b, "constants", s)
	renderTemplate(&b, "contract", s)
	return b.String(), nil
}
