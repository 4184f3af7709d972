// Package plugin provides the concrete container infrastructure behind the
// resolver's collaborator interfaces.
//
// A Descriptor is the static YAML metadata shipped with a plugin (id, name,
// version, authors, dependencies), validated against the lowercase plugin
// id form. A Container pairs a descriptor with the plugin's instance object
// and the per-plugin bindings resolution answers from: the container
// itself, a structured logger scoped with the plugin id, and a
// platform-native logger prefixed with it. The Registry tracks loaded
// containers and maps plugin-supplied objects back to their owner; it
// implements inject.ContainerRegistry.
//
// Wiring order in a host:
//
//	desc, err := plugin.LoadDescriptor(metaFile)
//	c := plugin.NewContainer(desc, instance).BindLoggers(baseLog, os.Stderr)
//	err = registry.Register(c)
package plugin
