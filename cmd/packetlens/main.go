package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"go.packetlens.dev/core/codecs"
	mbp "go.packetlens.dev/core/mainboilerplate"
	"go.packetlens.dev/core/pipeline"
	"go.packetlens.dev/core/protocol"
	"go.packetlens.dev/core/proxy"
	"go.packetlens.dev/core/server"
	"go.packetlens.dev/core/task"
)

const iniFilename = "packetlens.ini"

// Config is the top-level configuration object of packetlens.
var Config = new(struct {
	Proxy struct {
		mbp.ServiceConfig
		Upstream string `long:"upstream" env:"UPSTREAM" default:"localhost:25565" description:"Address of the game server"`
	} `group:"Proxy" namespace:"proxy" env-namespace:"PROXY"`

	Protocol struct {
		Version protocol.Version `long:"version" env:"VERSION" default:"1.18.2" description:"Protocol version spoken by clients and the game server"`
	} `group:"Protocol" namespace:"protocol" env-namespace:"PROTOCOL"`

	Compression struct {
		Threshold int          `long:"threshold" env:"THRESHOLD" default:"-1" description:"Packets of at least this many bytes are compressed. Negative disables compression"`
		Codec     codecs.Codec `long:"codec" env:"CODEC" default:"ZLIB" description:"Compression codec"`
		Late      bool         `long:"late" env:"LATE" description:"Install client compression after interception, as hosts which enable compression mid-connection do"`
	} `group:"Compression" namespace:"compression" env-namespace:"COMPRESSION"`

	Catalog struct {
		Dir string `long:"dir" env:"DIR" description:"Directory of mapping documents, which override those built in"`
	} `group:"Catalog" namespace:"catalog" env-namespace:"CATALOG"`

	Log         mbp.LogConfig         `group:"Logging" namespace:"log" env-namespace:"LOG"`
	Diagnostics mbp.DiagnosticsConfig `group:"Debug" namespace:"debug" env-namespace:"DEBUG"`
})

type cmdServe struct{}

func (cmdServe) Execute(args []string) error {
	defer mbp.InitDiagnosticsAndRecover(Config.Diagnostics)()
	mbp.InitLog(Config.Log)

	mbp.Must(Config.Proxy.Validate(), "invalid proxy configuration")
	mbp.Must(Config.Protocol.Version.Validate(), "invalid protocol version")
	mbp.Must(Config.Compression.Codec.Validate(), "invalid compression codec")

	log.WithFields(log.Fields{
		"id":     Config.Proxy.ResolveID(),
		"config": Config,
	}).Info("starting proxy")

	// Fail fast if mapping documents don't cover the configured Version.
	var _, _, err = loadTypes(Config.Protocol.Version)
	mbp.Must(err, "loading catalogs")

	srv, err := server.New(Config.Proxy.Listen)
	mbp.Must(err, "building Server instance")

	var px = &proxy.Proxy{
		Config: proxy.Config{
			Upstream:        Config.Proxy.Upstream,
			Version:         Config.Protocol.Version,
			LateCompression: Config.Compression.Late,
		},
		Observer: proxy.LoggingObserver{},
	}
	if Config.Compression.Threshold >= 0 {
		px.Config.Compression = &pipeline.Compression{
			Threshold: Config.Compression.Threshold,
			Codec:     Config.Compression.Codec,
		}
	}

	var tasks = task.NewGroup(context.Background())
	srv.QueueTasks(tasks)

	tasks.Queue("proxy.Serve", func() error {
		return px.Serve(srv.Ctx, srv.GameListener)
	})

	var signalCh = make(chan os.Signal, 1)
	tasks.Queue("watch signals", func() error {
		select {
		case sig := <-signalCh:
			log.WithField("signal", sig).Info("caught signal")
			tasks.Cancel()
		case <-tasks.Context().Done():
		}
		return nil
	})

	// Install signal handler & start proxy tasks.
	signal.Notify(signalCh, syscall.SIGTERM, syscall.SIGINT)
	tasks.GoRun()

	log.WithField("endpoint", srv.Endpoint()).Info("serving")

	// Block until all tasks complete. Assert none returned an error.
	mbp.Must(tasks.Wait(), "proxy task failed")
	log.Info("goodbye")

	return nil
}

func main() {
	var parser = flags.NewParser(Config, flags.Default)
	var reg = mbp.NewCommandRegistry()

	reg.AddCommand("", "serve", "Serve as a packet intercepting proxy", `
Serve a proxy which accepts client connections and relays each to the game
server, observing packets of both directions. The proxy serves until signaled
to exit (via SIGTERM or SIGINT). HTTP diagnostics are served on the same port.
`, &cmdServe{})

	reg.AddCommand("", "catalog", "Inspect mapping catalogs", `
Inspect the versioned mapping catalogs of entity data and item types, as
built in or overridden by documents of --catalog.dir.
`, &struct{}{})

	reg.AddCommand("catalog", "show", "Show the types of a catalog at a protocol version", `
Show the types of a catalog, resolved for a protocol version.

Only types having an ID in the version are shown, unless --all is given.

Examples:

# Show item types of 1.16.5.
packetlens catalog show --catalog item_types --at 1.16.5

# Show entity data types of 1.8.8 as YAML.
packetlens catalog show --catalog entity_data_types --at 1.8.8 -o yaml
`, &cmdCatalogShow{})

	reg.AddCommand("catalog", "buckets", "List the version buckets of a catalog", `
List each protocol version with the bucket of the catalog it maps to, and
whether the mapping document has a table for that bucket.
`, &cmdCatalogBuckets{})

	mbp.Must(reg.AddCommands("", parser.Command, true), "adding commands")

	mbp.AddPrintConfigCmd(parser, iniFilename)
	mbp.MustParseConfig(parser, iniFilename)
}
