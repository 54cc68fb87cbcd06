package registry

import (
	"fmt"

	"go.packetlens.dev/core/protocol"
)

// Bucket is a contiguous range of protocol Versions which share a mapping
// table. A Bucket begins at Since and extends until the next Bucket's Since.
type Bucket struct {
	// Oldest Version of the Bucket.
	Since protocol.Version
	// Name of the Bucket, and key of its table in the mapping document.
	Name string
}

// BucketFunc maps a Version to its Bucket.
type BucketFunc func(protocol.Version) Bucket

// Buckets returns a BucketFunc over Buckets |bs|, which must be non-empty
// and strictly ascending by Since. A Version maps to the Bucket having the
// greatest Since not newer than the Version. Versions older than the first
// Bucket map to the first Bucket. The mapping is thus total, and monotonic:
// for versions a <= b, bucket(a) never follows bucket(b).
func Buckets(bs ...Bucket) BucketFunc {
	if len(bs) == 0 {
		panic("at least one Bucket is required")
	}
	for i := 1; i < len(bs); i++ {
		if !bs[i].Since.NewerThan(bs[i-1].Since) {
			panic(fmt.Sprintf("Bucket %s (since %s) doesn't follow %s (since %s)",
				bs[i].Name, bs[i].Since, bs[i-1].Name, bs[i-1].Since))
		}
	}
	bs = append([]Bucket(nil), bs...)

	return func(v protocol.Version) Bucket {
		var out = bs[0]
		for _, b := range bs[1:] {
			if v.OlderThan(b.Since) {
				break
			}
			out = b
		}
		return out
	}
}
