package plugin

import (
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/veldhost/veld/logging"
	"github.com/veldhost/veld/stringify"
)

// Container represents one loaded plugin: its descriptor, the plugin's
// main instance object, and the per-plugin bindings the resolver answers
// from (the container itself, a structured logger, a platform-native
// logger).
//
// A container's bindings are fixed at wiring time and read-only afterwards,
// which is what lets the resolver consult them without locking.
type Container struct {
	desc       Descriptor
	instanceID uuid.UUID
	instance   any
	logger     logging.Logger
	nativeLog  *log.Logger
}

// NewContainer creates a container for the given descriptor and plugin
// instance. Loggers start unbound; see BindLoggers.
func NewContainer(desc Descriptor, instance any) *Container {
	return &Container{
		desc:       desc,
		instanceID: uuid.New(),
		instance:   instance,
	}
}

// BindLoggers derives the container's per-plugin loggers and returns the
// container for chaining: the structured logger is base scoped with the
// plugin id, the native logger writes to nativeOut prefixed with the
// plugin id. A nil base or nativeOut leaves the respective binding absent.
func (c *Container) BindLoggers(base logging.Logger, nativeOut io.Writer) *Container {
	if base != nil {
		c.logger = base.With("plugin", c.desc.ID)
	}
	if nativeOut != nil {
		c.nativeLog = log.New(nativeOut, "["+c.desc.ID+"] ", log.LstdFlags)
	}
	return c
}

// Descriptor returns the plugin's static metadata.
func (c *Container) Descriptor() Descriptor { return c.desc }

// InstanceID returns the process-unique id assigned to this container.
func (c *Container) InstanceID() uuid.UUID { return c.instanceID }

// Instance returns the plugin's main instance object, or nil if the plugin
// has not been instantiated.
func (c *Container) Instance() any { return c.instance }

// Logger returns the structured logger bound to this plugin, or nil when
// unbound.
func (c *Container) Logger() logging.Logger { return c.logger }

// NativeLogger returns the platform-native logger bound to this plugin, or
// nil when unbound.
func (c *Container) NativeLogger() *log.Logger { return c.nativeLog }

// String renders the container in canonical form.
func (c *Container) String() string {
	return stringify.New("Container").
		Add("plugin", c.desc.ID).
		Add("instance-id", c.instanceID).
		String()
}
