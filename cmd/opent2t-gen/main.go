package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/sanjaiganesh/opent2t/pkg/schema"
)

func main() {
	schemaPath := flag.String("schema", "", "Path to interface schema YAML (file or directory)")
	outputDir := flag.String("output", "", "Output directory for generated Go files")
	pkgName := flag.String("package", "contracts", "Package name for generated files")
	flag.Parse()

	if *schemaPath == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: opent2t-gen -schema <path> -output <dir> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*schemaPath, *outputDir, *pkgName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(schemaPath, outputDir, pkgName string) error {
	paths, err := schemaFiles(schemaPath)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no schema files found at %s", schemaPath)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	for _, path := range paths {
		schemas, err := loadSchemas(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}

		for _, s := range schemas {
			code, err := GenerateDeclarations(s, pkgName)
			if err != nil {
				return fmt.Errorf("generating %s: %w", s.Name, err)
			}

			outFileName := declFileName(s.Name) + "_gen.go"
			outPath := filepath.Join(outputDir, outFileName)
			if err := writeFormatted(outPath, code); err != nil {
				return fmt.Errorf("writing %s: %w", outFileName, err)
			}
			fmt.Printf("  generated %s\n", outPath)
		}
	}

	return nil
}

// schemaFiles resolves the schema path to the list of YAML files to
// process. A directory yields all .yaml/.yml files in it.
func schemaFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(path, entry.Name()))
		}
	}
	return paths, nil
}

// loadSchemas reads one file that holds either a `schemas:` list or a
// single top-level schema.
func loadSchemas(path string) ([]*schema.InterfaceSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	schemas, err := schema.ParseInterfaceSchemas(data)
	if err == nil && len(schemas) > 0 {
		return schemas, nil
	}

	s, err := schema.ParseInterfaceSchema(data)
	if err != nil {
		return nil, err
	}
	return []*schema.InterfaceSchema{s}, nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}

// declFileName converts "DimmableLamp" to "dimmable_lamp".
func declFileName(name string) string {
	var result strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteByte('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
