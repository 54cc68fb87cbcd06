package registry

import (
	"fmt"

	"github.com/pkg/errors"
	"go.packetlens.dev/core/protocol"
)

// ConfigurationError is returned when a Catalog cannot provide a mapping
// table for a Version, either because its document couldn't be loaded or
// because the document lacks the Version's Bucket. It's fatal to the Builder
// which encounters it.
type ConfigurationError struct {
	Catalog string
	Bucket  string           // Empty if the document failed to load.
	Version protocol.Version // Meaningful only if Bucket is set.
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Bucket == "" {
		return fmt.Sprintf("catalog %s: %s", e.Catalog, e.Err)
	}
	return fmt.Sprintf("catalog %s: bucket %s (version %s): %s",
		e.Catalog, e.Bucket, e.Version, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// ErrDuplicateName is returned when a Builder is given an Entry having the
// Name of an Entry already added.
var ErrDuplicateName = errors.New("duplicate name")
