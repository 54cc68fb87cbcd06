package main

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"go.packetlens.dev/core/entitydata"
	"go.packetlens.dev/core/itemtype"
	mbp "go.packetlens.dev/core/mainboilerplate"
	"go.packetlens.dev/core/protocol"
	"go.packetlens.dev/core/registry"
	"gopkg.in/yaml.v2"
)

// catalogFs is the filesystem of --catalog.dir.
var catalogFs = afero.NewOsFs()

// catalogSource returns the Source of catalog mapping documents, layering
// documents of --catalog.dir over |embedded|.
func catalogSource(embedded registry.Source) registry.Source {
	if Config.Catalog.Dir == "" {
		return embedded
	}
	return registry.Layered(registry.DirSource(catalogFs, Config.Catalog.Dir), embedded)
}

func newCatalog(name string) (*registry.Catalog, error) {
	switch name {
	case itemtype.CatalogName:
		return itemtype.NewCatalog(catalogSource(itemtype.EmbeddedSource)), nil
	case entitydata.CatalogName:
		return entitydata.NewCatalog(catalogSource(entitydata.EmbeddedSource)), nil
	}
	return nil, errors.Errorf("unknown catalog %q", name)
}

// loadTypes builds item and entity data types of |v|.
func loadTypes(v protocol.Version) (*itemtype.Types, *entitydata.Types, error) {
	var items, err = itemtype.New(itemtype.NewCatalog(catalogSource(itemtype.EmbeddedSource)), v)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "item types")
	}
	entities, err := entitydata.New(entitydata.NewCatalog(catalogSource(entitydata.EmbeddedSource)), v, items)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "entity data types")
	}
	return items, entities, nil
}

type cmdCatalogShow struct {
	Catalog string           `long:"catalog" short:"c" default:"item_types" choice:"item_types" choice:"entity_data_types" description:"Catalog to show"`
	At      protocol.Version `long:"at" default:"1.18.2" description:"Protocol version of resolved types"`
	All     bool             `long:"all" description:"Include types having no ID in the version"`
	Format  string           `long:"format" short:"o" choice:"table" choice:"yaml" default:"table" description:"Output format"`
}

// catalogEntry is a row of `catalog show`.
type catalogEntry struct {
	ID            int32  `yaml:"id"`
	Name          string `yaml:"name"`
	MaxAmount     int    `yaml:"maxAmount,omitempty"`
	MaxDurability int    `yaml:"maxDurability,omitempty"`
	Attributes    string `yaml:"attributes,omitempty"`
}

func (cmd *cmdCatalogShow) Execute([]string) error {
	mbp.InitLog(Config.Log)
	return cmd.output(os.Stdout)
}

func (cmd *cmdCatalogShow) output(w io.Writer) error {
	var entries, err = cmd.entries()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"catalog": cmd.Catalog,
		"version": cmd.At,
		"entries": len(entries),
	}).Debug("resolved catalog")

	switch cmd.Format {
	case "yaml":
		return yaml.NewEncoder(w).Encode(entries)
	default:
		return outputTable(w, cmd.Catalog, entries)
	}
}

func (cmd *cmdCatalogShow) entries() ([]catalogEntry, error) {
	var items, entities, err = loadTypes(cmd.At)
	if err != nil {
		return nil, err
	}
	var out []catalogEntry

	switch cmd.Catalog {
	case itemtype.CatalogName:
		for _, t := range items.Registry().Entries() {
			if t.ID() == registry.SentinelID && !cmd.All {
				continue
			}
			var entry = catalogEntry{
				ID:            t.ID(),
				Name:          t.Name(),
				MaxAmount:     t.MaxAmount(),
				MaxDurability: t.MaxDurability(),
				Attributes:    t.Attributes().String(),
			}
			out = append(out, entry)
		}
	case entitydata.CatalogName:
		for _, t := range entities.Registry().Entries() {
			if !t.HasID() && !cmd.All {
				continue
			}
			out = append(out, catalogEntry{ID: t.ID(), Name: t.Name()})
		}
	default:
		return nil, errors.Errorf("unknown catalog %q", cmd.Catalog)
	}
	return out, nil
}

func outputTable(w io.Writer, catalog string, entries []catalogEntry) error {
	var table = tablewriter.NewWriter(w)

	var headers = []string{"ID", "Name"}
	if catalog == itemtype.CatalogName {
		headers = append(headers, "Max Amount", "Max Durability", "Attributes")
	}
	table.Header(headers)

	for _, e := range entries {
		var id = "<none>"
		if e.ID != registry.SentinelID {
			id = fmt.Sprintf("%d", e.ID)
		}
		var row = []string{id, e.Name}

		if catalog == itemtype.CatalogName {
			var durability = "-"
			if e.MaxDurability != 0 {
				durability = fmt.Sprintf("%d", e.MaxDurability)
			}
			row = append(row, fmt.Sprintf("%d", e.MaxAmount), durability, e.Attributes)
		}
		if err := table.Append(row); err != nil {
			return errors.WithMessage(err, "appending row")
		}
	}
	return table.Render()
}

type cmdCatalogBuckets struct {
	Catalog string `long:"catalog" short:"c" default:"item_types" choice:"item_types" choice:"entity_data_types" description:"Catalog to list"`
}

func (cmd *cmdCatalogBuckets) Execute([]string) error {
	mbp.InitLog(Config.Log)
	return cmd.output(os.Stdout)
}

func (cmd *cmdCatalogBuckets) output(w io.Writer) error {
	var catalog, err = newCatalog(cmd.Catalog)
	if err != nil {
		return err
	}
	names, err := catalog.BucketNames()
	if err != nil {
		return err
	}
	var present = make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}

	var table = tablewriter.NewWriter(w)
	table.Header([]string{"Version", "Protocol", "Bucket", "Mapped"})

	for _, v := range protocol.Versions() {
		var bucket = catalog.Bucket(v)
		if err = table.Append([]string{
			v.String(),
			fmt.Sprintf("%d", v.ProtocolNumber()),
			bucket.Name,
			fmt.Sprintf("%t", present[bucket.Name]),
		}); err != nil {
			return errors.WithMessage(err, "appending row")
		}
	}
	return table.Render()
}
