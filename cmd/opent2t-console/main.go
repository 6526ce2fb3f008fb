package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sanjaiganesh/opent2t/cmd/opent2t-console/interactive"
	"github.com/sanjaiganesh/opent2t/pkg/access"
	"github.com/sanjaiganesh/opent2t/pkg/examples"
	"github.com/sanjaiganesh/opent2t/pkg/log"
	"github.com/sanjaiganesh/opent2t/pkg/translator"
	"github.com/sanjaiganesh/opent2t/pkg/version"
)

func main() {
	logPath := flag.String("log", "", "Path to dispatch log file (CBOR, appended)")
	ifaceName := flag.String("interface", "", "Network interface for discovery (default: all)")
	flag.Parse()

	var logger log.Logger = log.NoopLogger{}
	if *logPath != "" {
		fl, err := log.NewFileLogger(*logPath)
		if err != nil {
			stdlog.Fatalf("Failed to open dispatch log: %v", err)
		}
		defer fl.Close()
		logger = fl
	}

	fmt.Printf("OpenT2T Console (contract v%s)\n", version.Current)

	registry := translator.NewRegistry()
	registerSampleTranslators(registry)

	ic, err := interactive.New(access.New(logger), registry, interactive.Config{
		Interface: *ifaceName,
	})
	if err != nil {
		stdlog.Fatalf("Failed to create console: %v", err)
	}

	// Redirect log output through readline to avoid interfering with input
	stdlog.SetOutput(ic.Stdout())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go ic.Run(ctx, cancel)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		stdlog.Printf("Received signal: %v", sig)
	case <-ctx.Done():
		// Cancelled by the quit command
	}

	fmt.Println("Goodbye!")
}

// registerSampleTranslators wires up the in-memory example devices so
// the console is usable out of the box.
func registerSampleTranslators(registry *translator.Registry) {
	_ = registry.Register("opent2t-translator-com-sample-lamp", func(props map[string]any) (any, error) {
		name, _ := props["name"].(string)
		if name == "" {
			name = "Sample Lamp"
		}
		return examples.NewLamp(name), nil
	})

	_ = registry.Register("opent2t-translator-com-sample-thermostat", func(props map[string]any) (any, error) {
		target := 21.0
		if v, ok := props["target"].(float64); ok {
			target = v
		}
		return examples.NewThermostat(target), nil
	})
}
