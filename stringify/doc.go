// Package stringify builds deterministic, human-readable text
// representations of structured state.
//
// Builder collects an ordered sequence of named and unnamed entries and
// renders them under a display name with configurable brackets, separators
// and nil-omission:
//
//	stringify.New("Server").
//		Add("addr", addr).
//		Add("motd", motd).
//		AddValue(rev).
//		String()
//	// Server(addr=0.0.0.0:25577, motd='A Veld Server', 1a2b3c)
//
// Text is the standalone canonical value formatter the builder uses for
// entry values; it renders collections bracketed and comma-joined and
// recurses through nested collections with the same convention.
//
// The package has no dependencies beyond the standard library and no
// knowledge of the rest of the module; any caller wanting a canonical
// debug/display form of its state can use it.
package stringify
