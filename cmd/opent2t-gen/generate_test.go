package main

import (
	"strings"
	"testing"

	"github.com/sanjaiganesh/opent2t/pkg/schema"
)

func thermostatSchema() *schema.InterfaceSchema {
	return &schema.InterfaceSchema{
		Name:     "Thermostat",
		FullName: "org.opent2t.sample.thermostat",
		Properties: []schema.PropertySchema{
			{Name: "ambientTemperature", Type: schema.TypeNumber, Read: true},
			{Name: "targetTemperature", Type: schema.TypeNumber, Read: true, Write: true},
			{Name: "awayMode", Type: schema.TypeBoolean, Write: true},
		},
		Methods: []schema.MethodSchema{
			{Name: "setHold", Parameters: []schema.ParameterSchema{
				{Name: "durationMinutes", Type: schema.TypeInteger},
				{Name: "accepted", Type: schema.TypeBoolean, Out: true},
			}},
			{Name: "resume"},
		},
	}
}

func mustContain(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Errorf("output missing %q\n---\n%s", want, output)
	}
}

func mustNotContain(t *testing.T, output, unwanted string) {
	t.Helper()
	if strings.Contains(output, unwanted) {
		t.Errorf("output unexpectedly contains %q", unwanted)
	}
}

func TestGenerateHeader(t *testing.T) {
	output, err := GenerateDeclarations(thermostatSchema(), "contracts")
	if err != nil {
		t.Fatalf("GenerateDeclarations failed: %v", err)
	}

	mustContain(t, output, "// Code generated by opent2t-gen. DO NOT EDIT.")
	mustContain(t, output, "package contracts")
	mustContain(t, output, `import "context"`)
}

func TestGenerateNameConstants(t *testing.T) {
	output, err := GenerateDeclarations(thermostatSchema(), "contracts")
	if err != nil {
		t.Fatalf("GenerateDeclarations failed: %v", err)
	}

	mustContain(t, output, `const ThermostatInterface = "org.opent2t.sample.thermostat"`)
	mustContain(t, output, `ThermostatPropAmbientTemperature = "ambientTemperature"`)
	mustContain(t, output, `ThermostatPropTargetTemperature = "targetTemperature"`)
	mustContain(t, output, `ThermostatMethodSetHold = "setHold"`)
	mustContain(t, output, `ThermostatMethodResume = "resume"`)
}

func TestGenerateContractAccessors(t *testing.T) {
	output, err := GenerateDeclarations(thermostatSchema(), "contracts")
	if err != nil {
		t.Fatalf("GenerateDeclarations failed: %v", err)
	}

	mustContain(t, output, "type Thermostat interface {")
	mustContain(t, output, "GetAmbientTemperature(ctx context.Context) (float64, error)")
	mustContain(t, output, "GetTargetTemperature(ctx context.Context) (float64, error)")
	mustContain(t, output, "SetTargetTemperature(ctx context.Context, value float64) error")
	mustContain(t, output, "SetAwayMode(ctx context.Context, value bool) error")

	// Read-only and write-only halves stay one-sided
	mustNotContain(t, output, "SetAmbientTemperature")
	mustNotContain(t, output, "GetAwayMode")
}

func TestGenerateContractMethods(t *testing.T) {
	output, err := GenerateDeclarations(thermostatSchema(), "contracts")
	if err != nil {
		t.Fatalf("GenerateDeclarations failed: %v", err)
	}

	mustContain(t, output, "SetHold(ctx context.Context, durationMinutes int64) (bool, error)")
	mustContain(t, output, "Resume(ctx context.Context) error")
}

func TestGenerateFallsBackToBareName(t *testing.T) {
	s := &schema.InterfaceSchema{
		Name: "Lamp",
		Properties: []schema.PropertySchema{
			{Name: "power", Type: schema.TypeBoolean, Read: true, Write: true},
		},
	}

	output, err := GenerateDeclarations(s, "contracts")
	if err != nil {
		t.Fatalf("GenerateDeclarations failed: %v", err)
	}

	mustContain(t, output, `const LampInterface = "Lamp"`)
}

func TestGenerateRejectsInvalidSchema(t *testing.T) {
	s := &schema.InterfaceSchema{
		Name: "Broken",
		Properties: []schema.PropertySchema{
			{Name: "level", Type: "float128", Read: true},
		},
	}

	if _, err := GenerateDeclarations(s, "contracts"); err == nil {
		t.Fatal("expected invalid schema to be rejected")
	}
}

func TestGoTypeName(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{schema.TypeBoolean, "bool"},
		{schema.TypeInteger, "int64"},
		{schema.TypeNumber, "float64"},
		{schema.TypeString, "string"},
		{schema.TypeArray, "[]any"},
		{schema.TypeObject, "map[string]any"},
		{"mystery", "any"},
	}
	for _, tt := range tests {
		if got := goTypeName(tt.tag); got != tt.want {
			t.Errorf("goTypeName(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestDeclFileName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Thermostat", "thermostat"},
		{"DimmableLamp", "dimmable_lamp"},
		{"AVReceiver", "a_v_receiver"},
	}
	for _, tt := range tests {
		if got := declFileName(tt.name); got != tt.want {
			t.Errorf("declFileName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
