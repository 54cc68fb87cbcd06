// Package pipeline implements a per-connection chain of named processing
// Stages, in the manner of a host network stack: length framing,
// threshold compression, and any Stages installed by interested parties.
//
// A Chain's Stages may be added, removed, and re-ordered while packets
// flow. Each packet traverses the Stages which were present when it entered
// the Chain.
package pipeline
