// cmd/hostdemo/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/veldhost/veld/inject"
	"github.com/veldhost/veld/logging"
	"github.com/veldhost/veld/plugin"
	"github.com/veldhost/veld/stringify"
)

// This binary wires a miniature plugin host end to end:
//
// - binds the platform singletons into an inject.Singletons table
// - loads a plugin descriptor from YAML, builds its container, registers it
// - resolves every capability kind through the scope chain, once with an
//   explicit origin and once through the ambient active-container context
// - prints each resolution in the canonical stringify form
//
// It exists as a runnable, testable composition-root example; the library
// packages never wire themselves.

const demoDescriptor = `
id: demo-plugin
name: Demo Plugin
version: 1.0.0
authors: [veld]
`

// host groups the process-wide collaborators the demo stands in for.
type host struct {
	bus        *eventBus
	proxy      *proxyHandle
	singletons *inject.Singletons
	registry   *plugin.Registry
	resolver   *inject.Resolver
}

// eventBus and proxyHandle are stand-ins for the real platform singletons.
type eventBus struct{ posted int }

func (b *eventBus) String() string {
	return stringify.New("EventBus").Add("posted", b.posted).String()
}

type proxyHandle struct{ bind string }

func (p *proxyHandle) String() string {
	return stringify.New("Proxy").Add("bind", p.bind).String()
}

// syncDispatcher runs submitted work inline; a real host schedules it.
type syncDispatcher struct{}

func (syncDispatcher) Execute(fn func()) { fn() }

// newHost builds the singleton table, registry and resolver.
func newHost() *host {
	h := &host{
		bus:      &eventBus{},
		proxy:    &proxyHandle{bind: "0.0.0.0:25577"},
		registry: plugin.NewRegistry(),
	}
	h.singletons = inject.NewSingletons().
		Provide(inject.EventBus, h.bus).
		Provide(inject.Proxy, h.proxy).
		Provide(inject.PluginManager, h.registry).
		Provide(inject.Console, os.Stdout).
		Provide(inject.Dispatcher, syncDispatcher{})
	h.resolver = inject.NewResolver(h.singletons, h.registry)
	return h
}

func run(args []string, stdout, logOut io.Writer) int {
	fs := flag.NewFlagSet("hostdemo", flag.ContinueOnError)
	fs.SetOutput(logOut)
	verbose := fs.Bool("v", false, "debug-level plugin logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := logging.LevelInfo
	if *verbose {
		level = logging.LevelDebug
	}
	baseLog := logging.New(logOut, level)

	h := newHost()

	desc, err := plugin.LoadDescriptor(strings.NewReader(demoDescriptor))
	if err != nil {
		fmt.Fprintln(logOut, "hostdemo:", err)
		return 1
	}

	instance := &struct{ name string }{name: desc.ID}
	c := plugin.NewContainer(desc, instance).BindLoggers(baseLog, logOut)
	if err := h.registry.Register(c); err != nil {
		fmt.Fprintln(logOut, "hostdemo:", err)
		return 1
	}

	ctx := context.Background()

	// Singleton scope: origin and ambient context are irrelevant.
	for _, capability := range []inject.Capability{inject.EventBus, inject.Proxy} {
		v, err := h.resolver.Resolve(ctx, inject.Required(capability), nil)
		if err != nil {
			fmt.Fprintln(logOut, "hostdemo:", err)
			return 1
		}
		fmt.Fprintf(stdout, "%s -> %s\n", capability, stringify.Text(v))
	}

	// Container scope via explicit origin.
	v, err := h.resolver.Resolve(ctx, inject.Required(inject.PluginContainer), instance)
	if err != nil {
		fmt.Fprintln(logOut, "hostdemo:", err)
		return 1
	}
	fmt.Fprintf(stdout, "%s -> %s\n", inject.PluginContainer, stringify.Text(v))

	// Container scope via the ambient active container.
	pluginCtx := inject.WithActiveContainer(ctx, c)
	v, err = h.resolver.Resolve(pluginCtx, inject.Required(inject.Logger), nil)
	if err != nil {
		fmt.Fprintln(logOut, "hostdemo:", err)
		return 1
	}
	v.(logging.Logger).Info("plugin logger resolved")
	fmt.Fprintf(stdout, "%s -> bound\n", inject.Logger)

	// Optional miss outside plugin context resolves to nil, not an error.
	v, err = h.resolver.Resolve(ctx, inject.Optionally(inject.Logger), nil)
	if err != nil {
		fmt.Fprintln(logOut, "hostdemo:", err)
		return 1
	}
	fmt.Fprintf(stdout, "%s (ambient, optional) -> %s\n", inject.Logger, stringify.Text(v))

	fmt.Fprintln(stdout, c.Descriptor())
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
