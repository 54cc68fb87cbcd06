package registry

import (
	"sort"

	"github.com/pkg/errors"
	"go.packetlens.dev/core/metrics"
	"go.packetlens.dev/core/protocol"
)

// Entry is a named and identified member of a Registry.
type Entry interface {
	// Name of the Entry, unique within its Registry.
	Name() string
	// ID of the Entry, or SentinelID if it has none.
	ID() int32
}

// Builder assembles a Registry of one Catalog at one Version. Errors are
// sticky: after the first, further Adds are ignored and Build returns the
// error without a Registry.
//
// A Builder is not safe for concurrent use.
type Builder[E Entry] struct {
	catalog *Catalog
	version protocol.Version

	table    Table
	resolved bool

	byName map[string]E
	byID   map[int32]E
	err    error
}

// NewBuilder returns a Builder of |catalog| at Version |v|. The catalog's
// mapping document is loaded on first Resolve.
func NewBuilder[E Entry](catalog *Catalog, v protocol.Version) *Builder[E] {
	return &Builder[E]{
		catalog: catalog,
		version: v,
		byName:  make(map[string]E),
		byID:    make(map[int32]E),
	}
}

// Version returns the Version of the Builder.
func (b *Builder[E]) Version() protocol.Version { return b.version }

// Err returns the first error encountered by the Builder, if any.
func (b *Builder[E]) Err() error { return b.err }

// Resolve returns the ID of |name| in the Builder's mapping table, or
// SentinelID if it's unmapped. If the table cannot be resolved, the
// Builder fails and SentinelID is returned.
func (b *Builder[E]) Resolve(name string) int32 {
	if b.err != nil {
		return SentinelID
	}
	if !b.resolved {
		if b.table, b.err = b.catalog.Resolve(b.version); b.err != nil {
			return SentinelID
		}
		b.resolved = true
	}
	return b.table.ID(name)
}

// Add the Entry |e| to the Builder. Entries having SentinelID are indexed
// by name only.
func (b *Builder[E]) Add(e E) {
	if b.err != nil {
		return
	}
	var name, id = e.Name(), e.ID()

	if err := protocol.ValidateResourceKey(name, 1, maxNameLength); err != nil {
		b.err = protocol.ExtendContext(err, "Name")
		return
	} else if _, ok := b.byName[name]; ok {
		b.err = errors.WithMessagef(ErrDuplicateName, "catalog %s: %s", b.catalog.Name(), name)
		return
	}
	b.byName[name] = e

	if id != SentinelID {
		if other, ok := b.byID[id]; ok {
			b.err = errors.Errorf("catalog %s: %s and %s share ID %d",
				b.catalog.Name(), other.Name(), name, id)
			return
		}
		b.byID[id] = e
	}
}

// Build returns the Registry, or the first error encountered by the Builder.
// A failed Builder returns no Registry.
func (b *Builder[E]) Build() (*Registry[E], error) {
	if !b.resolved && b.err == nil {
		_ = b.Resolve("")
	}
	if b.err != nil {
		return nil, b.err
	}
	var entries = make([]E, 0, len(b.byName))
	for _, e := range b.byName {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	metrics.RegistryDefinitionsTotal.WithLabelValues(b.catalog.Name()).Add(float64(len(entries)))

	return &Registry[E]{
		table:   b.table,
		byName:  b.byName,
		byID:    b.byID,
		entries: entries,
	}, nil
}

const maxNameLength = 128

// Registry is an immutable index of Entries by Name and ID, for one Catalog
// at one Version. It's safe for concurrent use.
type Registry[E Entry] struct {
	table   Table
	byName  map[string]E
	byID    map[int32]E
	entries []E
}

// ByName returns the Entry of |name|, and whether it exists.
func (r *Registry[E]) ByName(name string) (E, bool) {
	var e, ok = r.byName[name]
	return e, ok
}

// ByID returns the Entry of |id|, and whether it exists. An unknown ID is
// an ordinary outcome and not an error.
func (r *Registry[E]) ByID(id int32) (E, bool) {
	var e, ok = r.byID[id]
	return e, ok
}

// Len returns the number of Entries.
func (r *Registry[E]) Len() int { return len(r.entries) }

// Entries returns all Entries, ordered on Name. The returned slice must not
// be modified.
func (r *Registry[E]) Entries() []E { return r.entries }

// Version returns the Version of the Registry.
func (r *Registry[E]) Version() protocol.Version { return r.table.Version() }

// Bucket returns the Bucket of the Registry's mapping table.
func (r *Registry[E]) Bucket() Bucket { return r.table.Bucket() }

// Catalog returns the name of the Registry's Catalog.
func (r *Registry[E]) Catalog() string { return r.table.Catalog() }
