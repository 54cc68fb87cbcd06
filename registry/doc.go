// Package registry implements version-dispatching registries of serializable
// types.
//
// A Catalog is a family of mapping tables, one per Bucket of protocol
// Versions, held in a single mapping document. Each table maps symbolic
// names (eg "optional_uuid") to the integer IDs used on the wire by
// Versions of its Bucket. Documents are provided by a Source, which is
// typically embedded in the catalog's package and may be overlaid from a
// directory.
//
// A Builder resolves names against the table of one Version and collects
// Entries. Build yields an immutable Registry indexed by name and by ID,
// which is shared without locking. Registries are explicit values: there is
// no process-wide registry, and consumers receive the Registry they use.
//
// Descriptor is the Entry of a serializable type, pairing its name and ID
// with a wire.Codec. Define resolves, constructs, and adds a Descriptor in
// one step:
//
//	var b = registry.NewBuilder[registry.Type](catalog, version)
//	var Byte = registry.Define(b, "byte", wire.ByteCodec)
//	var reg, err = b.Build()
package registry
