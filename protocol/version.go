package protocol

import (
	"fmt"
	"strings"
)

// Version is a released revision of the game protocol. Versions form a total
// order following their release order. Distinct releases may share a
// protocol number (eg, 1.16.4 and 1.16.5) yet remain distinct Versions, and
// compare by release order rather than by protocol number.
type Version uint8

// Releases known to this package, in release order.
const (
	V1_7_10 Version = iota
	V1_8
	V1_8_3
	V1_8_8
	V1_9
	V1_9_2
	V1_9_4
	V1_10
	V1_11
	V1_11_2
	V1_12
	V1_12_1
	V1_12_2
	V1_13
	V1_13_1
	V1_13_2
	V1_14
	V1_14_1
	V1_14_2
	V1_14_3
	V1_14_4
	V1_15
	V1_15_1
	V1_15_2
	V1_16
	V1_16_1
	V1_16_2
	V1_16_3
	V1_16_4
	V1_16_5
	V1_17
	V1_17_1
	V1_18
	V1_18_1
	V1_18_2

	numVersions = iota
)

// Oldest and Newest bound the lattice.
const (
	Oldest = V1_7_10
	Newest = V1_18_2
)

type release struct {
	name     string // Release name, eg "1.16.5".
	protocol int32  // Protocol number sent in the handshake.
}

var releases = [numVersions]release{
	{"1.7.10", 5},
	{"1.8", 47},
	{"1.8.3", 47},
	{"1.8.8", 47},
	{"1.9", 107},
	{"1.9.2", 109},
	{"1.9.4", 110},
	{"1.10", 210},
	{"1.11", 315},
	{"1.11.2", 316},
	{"1.12", 335},
	{"1.12.1", 338},
	{"1.12.2", 340},
	{"1.13", 393},
	{"1.13.1", 401},
	{"1.13.2", 404},
	{"1.14", 477},
	{"1.14.1", 480},
	{"1.14.2", 485},
	{"1.14.3", 490},
	{"1.14.4", 498},
	{"1.15", 573},
	{"1.15.1", 575},
	{"1.15.2", 578},
	{"1.16", 735},
	{"1.16.1", 736},
	{"1.16.2", 751},
	{"1.16.3", 753},
	{"1.16.4", 754},
	{"1.16.5", 754},
	{"1.17", 755},
	{"1.17.1", 756},
	{"1.18", 757},
	{"1.18.1", 757},
	{"1.18.2", 758},
}

// Versions returns all known Versions, oldest first.
func Versions() []Version {
	var out = make([]Version, numVersions)
	for i := range out {
		out[i] = Version(i)
	}
	return out
}

// Compare returns -1 if |a| is older than |b|, 1 if |a| is newer, and 0 if
// they're the same release.
func Compare(a, b Version) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// OlderThan returns true iff |v| was released before |other|.
func (v Version) OlderThan(other Version) bool { return Compare(v, other) < 0 }

// OlderThanOrEquals returns true iff |v| is |other| or was released before it.
func (v Version) OlderThanOrEquals(other Version) bool { return Compare(v, other) <= 0 }

// NewerThan returns true iff |v| was released after |other|.
func (v Version) NewerThan(other Version) bool { return Compare(v, other) > 0 }

// NewerThanOrEquals returns true iff |v| is |other| or was released after it.
func (v Version) NewerThanOrEquals(other Version) bool { return Compare(v, other) >= 0 }

// Valid returns true if |v| is a known release.
func (v Version) Valid() bool { return v < numVersions }

// String returns the release name, eg "1.16.5".
func (v Version) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Version(%d)", uint8(v))
	}
	return releases[v].name
}

// Name returns the symbolic name of the release, eg "V_1_16_5". Catalog
// mapping documents key their version buckets by this name.
func (v Version) Name() string {
	return "V_" + strings.ReplaceAll(v.String(), ".", "_")
}

// ProtocolNumber returns the protocol number of the release.
func (v Version) ProtocolNumber() int32 {
	if !v.Valid() {
		return -1
	}
	return releases[v].protocol
}

// Validate returns an error if |v| is not a known release.
func (v Version) Validate() error {
	if !v.Valid() {
		return NewValidationError("unknown version (%d)", uint8(v))
	}
	return nil
}

// ParseVersion parses a release name ("1.16.5") or symbolic name ("V_1_16_5").
func ParseVersion(s string) (Version, error) {
	var name = strings.TrimSpace(s)
	if strings.HasPrefix(name, "V_") {
		name = strings.ReplaceAll(strings.TrimPrefix(name, "V_"), "_", ".")
	}
	for i, r := range releases {
		if r.name == name {
			return Version(i), nil
		}
	}
	return 0, NewValidationError("unknown version (%s)", s)
}

// VersionByName returns the Version of symbolic name |name| ("V_1_16_5").
func VersionByName(name string) (Version, bool) {
	for i := range releases {
		if Version(i).Name() == name {
			return Version(i), true
		}
	}
	return 0, false
}

// MustParseVersion is ParseVersion which panics on error.
func MustParseVersion(s string) Version {
	var v, err = ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// VersionOfProtocol returns the newest release speaking protocol number |p|.
func VersionOfProtocol(p int32) (Version, bool) {
	for i := numVersions - 1; i >= 0; i-- {
		if releases[i].protocol == p {
			return Version(i), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(b []byte) error {
	var parsed, err = ParseVersion(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// UnmarshalFlag implements flags.Unmarshaler, so Versions may be used
// directly as configuration fields.
func (v *Version) UnmarshalFlag(value string) error { return v.UnmarshalText([]byte(value)) }

// MarshalFlag implements flags.Marshaler.
func (v Version) MarshalFlag() (string, error) { return v.String(), nil }
