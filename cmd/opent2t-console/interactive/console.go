// Package interactive provides the interactive command-line interface
// for the opent2t console.
package interactive

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"
	"github.com/sanjaiganesh/opent2t/pkg/access"
	"github.com/sanjaiganesh/opent2t/pkg/discovery"
	"github.com/sanjaiganesh/opent2t/pkg/thing"
	"github.com/sanjaiganesh/opent2t/pkg/translator"
)

// commandTimeout bounds a single dispatch operation issued from the
// prompt.
const commandTimeout = 10 * time.Second

// Config provides configuration to the interactive console.
type Config struct {
	// Interface is the network interface used for discovery.
	// Empty means all interfaces.
	Interface string
}

// Console handles interactive mode for opent2t-console.
type Console struct {
	accessor *access.Accessor
	registry *translator.Registry
	config   Config
	rl       *readline.Instance

	mu      sync.Mutex
	devices map[string]*translator.Instance
	watches map[string]thing.Listener
	nextID  int
}

// New creates a new interactive console handler.
func New(accessor *access.Accessor, registry *translator.Registry, cfg Config) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "opent2t> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{
		accessor: accessor,
		registry: registry,
		config:   cfg,
		rl:       rl,
		devices:  make(map[string]*translator.Instance),
		watches:  make(map[string]thing.Listener),
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the readline input.
func (c *Console) Stderr() io.Writer {
	return c.rl.Stderr()
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "translators", "t":
			c.cmdTranslators()

		case "onboard":
			c.cmdOnboard(args)

		case "devices", "list", "ls":
			c.cmdDevices()

		case "get", "g":
			c.cmdGet(ctx, args)

		case "set", "s":
			c.cmdSet(ctx, args)

		case "invoke", "call":
			c.cmdInvoke(ctx, args)

		case "watch":
			c.cmdWatch(args)

		case "unwatch":
			c.cmdUnwatch(args)

		case "discover":
			c.cmdDiscover(ctx)

		case "quit", "exit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
OpenT2T Console Commands:
  Translators & Devices:
    translators                        - List registered translator packages
    onboard <translator> [key=val...]  - Create a device through a translator
    devices                            - List onboarded devices
    discover                           - Browse the network for onboardable devices

  Access:
    get <dev> <interface> <property>              - Read a property
    set <dev> <interface> <property> <value>      - Write a property
    invoke <dev> <interface> <method> [args...]   - Invoke a method
    watch <dev> <interface> <property>            - Subscribe to changes
    unwatch <dev> <interface> <property>          - Unsubscribe

  Other:
    help   - Show this help
    quit   - Exit`)
}

func (c *Console) cmdTranslators() {
	names := c.registry.Names()
	if len(names) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No translators registered")
		return
	}
	for _, name := range names {
		fmt.Fprintf(c.rl.Stdout(), "  %s\n", name)
	}
}

func (c *Console) cmdOnboard(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: onboard <translator> [key=value...]")
		return
	}

	props := make(map[string]any)
	for _, kv := range args[1:] {
		k, v, found := strings.Cut(kv, "=")
		if !found {
			fmt.Fprintf(c.rl.Stdout(), "Ignoring malformed property %q (want key=value)\n", kv)
			continue
		}
		props[k] = parseValue(v)
	}

	instance, err := c.registry.Create(args[0], props)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Onboard failed: %v\n", err)
		return
	}

	c.mu.Lock()
	c.nextID++
	alias := fmt.Sprintf("d%d", c.nextID)
	c.devices[alias] = instance
	c.mu.Unlock()

	fmt.Fprintf(c.rl.Stdout(), "Onboarded %s as %s (instance %s)\n", instance.Package, alias, instance.ID)
}

func (c *Console) cmdDevices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.devices) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No devices onboarded (use 'onboard')")
		return
	}

	aliases := make([]string, 0, len(c.devices))
	for alias := range c.devices {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	for _, alias := range aliases {
		instance := c.devices[alias]
		fmt.Fprintf(c.rl.Stdout(), "  %s  %s  %s\n", alias, instance.Package, instance.ID)
	}
}

func (c *Console) cmdGet(ctx context.Context, args []string) {
	if len(args) != 3 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: get <dev> <interface> <property>")
		return
	}

	device, ok := c.device(args[0])
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	value, err := c.accessor.GetProperty(ctx, device, args[1], args[2])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Get failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "%s.%s = %v\n", args[1], args[2], value)
}

func (c *Console) cmdSet(ctx context.Context, args []string) {
	if len(args) != 4 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: set <dev> <interface> <property> <value>")
		return
	}

	device, ok := c.device(args[0])
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	if err := c.accessor.SetProperty(ctx, device, args[1], args[2], parseValue(args[3])); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Set failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "%s.%s <- %s\n", args[1], args[2], args[3])
}

func (c *Console) cmdInvoke(ctx context.Context, args []string) {
	if len(args) < 3 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: invoke <dev> <interface> <method> [args...]")
		return
	}

	device, ok := c.device(args[0])
	if !ok {
		return
	}

	methodArgs := make([]any, 0, len(args)-3)
	for _, raw := range args[3:] {
		methodArgs = append(methodArgs, parseValue(raw))
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	result, err := c.accessor.Invoke(ctx, device, args[1], args[2], methodArgs)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invoke failed: %v\n", err)
		return
	}
	if result == nil {
		fmt.Fprintf(c.rl.Stdout(), "%s.%s() ok\n", args[1], args[2])
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "%s.%s() = %v\n", args[1], args[2], result)
}

func (c *Console) cmdWatch(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: watch <dev> <interface> <property>")
		return
	}

	device, ok := c.device(args[0])
	if !ok {
		return
	}

	key := strings.Join(args[:3], "/")

	c.mu.Lock()
	_, exists := c.watches[key]
	c.mu.Unlock()
	if exists {
		fmt.Fprintf(c.rl.Stdout(), "Already watching %s\n", key)
		return
	}

	alias := args[0]
	listener := thing.ListenerFunc(func(name string, value any) {
		fmt.Fprintf(c.rl.Stdout(), "[CHANGE] %s %s.%s = %v\n", alias, args[1], name, value)
	})

	if err := c.accessor.AddPropertyListener(device, args[1], args[2], listener); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Watch failed: %v\n", err)
		return
	}

	c.mu.Lock()
	c.watches[key] = listener
	c.mu.Unlock()

	fmt.Fprintf(c.rl.Stdout(), "Watching %s\n", key)
}

func (c *Console) cmdUnwatch(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: unwatch <dev> <interface> <property>")
		return
	}

	device, ok := c.device(args[0])
	if !ok {
		return
	}

	key := strings.Join(args[:3], "/")

	c.mu.Lock()
	listener, exists := c.watches[key]
	if exists {
		delete(c.watches, key)
	}
	c.mu.Unlock()

	if !exists {
		fmt.Fprintf(c.rl.Stdout(), "Not watching %s\n", key)
		return
	}

	if err := c.accessor.RemovePropertyListener(device, args[1], args[2], listener); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Unwatch failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.rl.Stdout(), "Stopped watching %s\n", key)
}

func (c *Console) cmdDiscover(ctx context.Context) {
	fmt.Fprintf(c.rl.Stdout(), "Browsing for %v...\n", discovery.BrowseTimeout)

	browseCtx, cancel := context.WithTimeout(ctx, discovery.BrowseTimeout)
	defer cancel()

	browser := discovery.NewBrowser(discovery.BrowserConfig{Interface: c.config.Interface})
	services, err := browser.Browse(browseCtx)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Discovery failed: %v\n", err)
		return
	}

	found := 0
	for svc := range services {
		found++
		fmt.Fprintf(c.rl.Stdout(), "  %s  translator=%s  device=%s  %s:%d %v\n",
			svc.InstanceName, svc.Translator, svc.DeviceID, svc.Host, svc.Port, svc.Addresses)
	}

	if found == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No devices found")
	}
}

// device resolves an alias to its onboarded device object, reporting
// failure to the user.
func (c *Console) device(alias string) (any, bool) {
	c.mu.Lock()
	instance, ok := c.devices[alias]
	c.mu.Unlock()

	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "Unknown device %q (see 'devices')\n", alias)
		return nil, false
	}
	return instance.Device, true
}

// parseValue interprets a command argument as a bool, integer, float,
// or falls back to the raw string.
func parseValue(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
