package mainboilerplate

import (
	"net"
	"os"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/pkg/errors"
	"go.packetlens.dev/core/protocol"
)

// ServiceConfig represents identification and addressing configuration of the process.
type ServiceConfig struct {
	ID     string `long:"id" env:"ID" description:"Unique ID of this process. Auto-generated if not set"`
	Listen string `long:"listen" env:"LISTEN" default:":25577" description:"Address on which to accept client connections and HTTP diagnostics"`
}

// Validate returns an error if the ServiceConfig is not well-formed.
func (cfg ServiceConfig) Validate() error {
	if cfg.ID != "" {
		if err := protocol.ValidateToken(cfg.ID, 1, 64); err != nil {
			return protocol.ExtendContext(err, "ID")
		}
	}
	if _, _, err := net.SplitHostPort(cfg.Listen); err != nil {
		return errors.WithMessage(err, "Listen")
	}
	return nil
}

// ResolveID returns the configured ID, or generates one from a pet name
// and the hostname.
func (cfg ServiceConfig) ResolveID() string {
	if cfg.ID != "" {
		return cfg.ID
	}
	var id = petname.Generate(2, "-")
	if host, err := os.Hostname(); err == nil {
		id = host + "-" + id
	}
	return id
}
