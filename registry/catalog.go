package registry

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.packetlens.dev/core/metrics"
	"go.packetlens.dev/core/protocol"
	"gopkg.in/yaml.v2"
)

// SentinelID is the ID of a name having no entry in a mapping table. An entry
// with the SentinelID can still encode and decode values, but cannot be found
// by ID.
const SentinelID int32 = -1

// Catalog is a family of versioned mapping tables loaded from a single
// mapping document, of the form:
//
//	{ "V_1_8": { "byte": 0, "short": 1 }, "V_1_9": { ... } }
//
// The document is loaded lazily, at most once, on first use of the Catalog.
// Concurrent first users block on a single loader, and a failed load is
// remembered rather than retried. A Catalog is safe for concurrent use.
type Catalog struct {
	name    string
	source  Source
	buckets BucketFunc

	once sync.Once
	doc  map[string]map[string]int32
	err  error
}

// NewCatalog returns a Catalog |name| having document "|name|.json" of
// |source|, with tables selected by |buckets|.
func NewCatalog(name string, source Source, buckets BucketFunc) *Catalog {
	return &Catalog{
		name:    name,
		source:  source,
		buckets: buckets,
	}
}

// Name of the Catalog.
func (c *Catalog) Name() string { return c.name }

// Bucket returns the Bucket of |v|.
func (c *Catalog) Bucket(v protocol.Version) Bucket { return c.buckets(v) }

// Load the mapping document, if it hasn't been loaded already.
func (c *Catalog) Load() error {
	c.once.Do(func() {
		c.doc, c.err = c.load()

		if c.err != nil {
			metrics.CatalogLoadsTotal.WithLabelValues(c.name, metrics.Fail).Inc()
			log.WithFields(log.Fields{"catalog": c.name, "err": c.err}).
				Error("failed to load mapping document")
		} else {
			metrics.CatalogLoadsTotal.WithLabelValues(c.name, metrics.Ok).Inc()
			log.WithFields(log.Fields{"catalog": c.name, "buckets": len(c.doc)}).
				Debug("loaded mapping document")
		}
	})
	return c.err
}

func (c *Catalog) load() (map[string]map[string]int32, error) {
	var b, err = c.source.Open(c.name + ".json")
	if err != nil {
		return nil, &ConfigurationError{Catalog: c.name, Err: err}
	}
	// JSON is a subset of YAML, and yaml.v2 yields the document's integer
	// IDs directly into int32 values.
	var doc map[string]map[string]int32
	if err = yaml.Unmarshal(b, &doc); err != nil {
		return nil, &ConfigurationError{
			Catalog: c.name,
			Err:     errors.WithMessage(err, "parsing mapping document"),
		}
	}
	return doc, nil
}

// BucketNames returns the sorted names of tables in the mapping document.
func (c *Catalog) BucketNames() ([]string, error) {
	if err := c.Load(); err != nil {
		return nil, err
	}
	var out = make([]string, 0, len(c.doc))
	for name := range c.doc {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// Resolve returns the Table of Version |v|. If the mapping document has no
// table for the Bucket of |v|, a *ConfigurationError is returned.
func (c *Catalog) Resolve(v protocol.Version) (Table, error) {
	if err := v.Validate(); err != nil {
		return Table{}, err
	} else if err = c.Load(); err != nil {
		return Table{}, err
	}
	var bucket = c.buckets(v)

	var ids, ok = c.doc[bucket.Name]
	if !ok {
		return Table{}, &ConfigurationError{
			Catalog: c.name,
			Bucket:  bucket.Name,
			Version: v,
			Err:     errors.New("no such bucket in mapping document"),
		}
	}
	return Table{catalog: c.name, bucket: bucket, version: v, ids: ids}, nil
}

// Table maps symbolic names to integer IDs for one Bucket of a Catalog.
// Tables are immutable.
type Table struct {
	catalog string
	bucket  Bucket
	version protocol.Version
	ids     map[string]int32
}

// ID returns the ID of |name|, or SentinelID if |name| has no mapping.
func (t Table) ID(name string) int32 {
	if id, ok := t.ids[name]; ok {
		return id
	}
	return SentinelID
}

// Lookup returns the ID of |name|, and whether it has a mapping.
func (t Table) Lookup(name string) (int32, bool) {
	var id, ok = t.ids[name]
	return id, ok
}

// Len returns the number of mapped names.
func (t Table) Len() int { return len(t.ids) }

// Names returns the mapped names, ordered on ID and then name.
func (t Table) Names() []string {
	var out = make([]string, 0, len(t.ids))
	for name := range t.ids {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		if a, b := t.ids[out[i]], t.ids[out[j]]; a != b {
			return a < b
		}
		return out[i] < out[j]
	})
	return out
}

// Catalog returns the name of the Table's Catalog.
func (t Table) Catalog() string { return t.catalog }

// Bucket returns the Table's Bucket.
func (t Table) Bucket() Bucket { return t.bucket }

// Version returns the Version the Table was resolved for.
func (t Table) Version() protocol.Version { return t.version }
