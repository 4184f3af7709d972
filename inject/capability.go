package inject

import "strconv"

// Capability identifies an abstract value requestable from the Resolver.
//
// The set is closed on purpose: each capability is either a process-wide
// singleton provided once at startup, or a per-plugin binding answered by
// the plugin's own container. Dispatch is an explicit switch over this
// enum, never runtime type introspection.
type Capability int

const (
	// EventBus is the process-wide event bus singleton.
	EventBus Capability = iota
	// Proxy is the process-wide proxy handle singleton.
	Proxy
	// PluginManager is the process-wide plugin manager singleton.
	PluginManager
	// Console is the process-wide console singleton.
	Console
	// Dispatcher is the process-wide execution dispatcher singleton.
	Dispatcher

	// PluginContainer is the requesting plugin's own container.
	PluginContainer
	// Logger is the structured logger bound to the requesting plugin.
	Logger
	// NativeLogger is the platform-native logger bound to the requesting
	// plugin.
	NativeLogger
)

// Singleton reports whether c is bound process-wide for the process
// lifetime.
func (c Capability) Singleton() bool {
	switch c {
	case EventBus, Proxy, PluginManager, Console, Dispatcher:
		return true
	default:
		return false
	}
}

// PerPlugin reports whether c is answered by a plugin container.
func (c Capability) PerPlugin() bool {
	switch c {
	case PluginContainer, Logger, NativeLogger:
		return true
	default:
		return false
	}
}

// String returns the capability name.
func (c Capability) String() string {
	switch c {
	case EventBus:
		return "event-bus"
	case Proxy:
		return "proxy"
	case PluginManager:
		return "plugin-manager"
	case Console:
		return "console"
	case Dispatcher:
		return "dispatcher"
	case PluginContainer:
		return "plugin-container"
	case Logger:
		return "logger"
	case NativeLogger:
		return "native-logger"
	default:
		return "capability(" + strconv.Itoa(int(c)) + ")"
	}
}

// Request names a capability together with its nullability: an Optional
// request tolerates resolving to nil, a required one does not.
type Request struct {
	Capability Capability
	Optional   bool
}

// Required builds a request that must resolve to a non-nil value.
func Required(c Capability) Request { return Request{Capability: c} }

// Optionally builds a request for which a nil result is acceptable.
func Optionally(c Capability) Request { return Request{Capability: c, Optional: true} }
