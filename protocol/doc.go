// Package protocol defines the lattice of game protocol releases and the
// validation behaviors shared by the rest of packetlens.
//
// A Version is a released revision of the game protocol. Versions are totally
// ordered by release, and most wire behavior is selected by comparing the
// process's active Version against release boundaries:
//
//	if v.NewerThanOrEquals(protocol.V1_9) {
//		// VarInt encoding.
//	}
//
// There is no package-level "active" Version. The consuming program resolves
// one at startup and passes it to everything that needs it.
package protocol
