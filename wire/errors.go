package wire

import "github.com/pkg/errors"

var (
	// ErrTruncated is returned when a read requires more bytes than remain.
	ErrTruncated = errors.New("wire: truncated data")
	// ErrVarIntTooBig is returned when a VarInt or VarLong has too many continuation bytes.
	ErrVarIntTooBig = errors.New("wire: VarInt is too big")
	// ErrNegativeLength is returned when a length prefix is negative.
	ErrNegativeLength = errors.New("wire: negative length")
	// ErrStringTooLong is returned when a string exceeds its maximum length.
	ErrStringTooLong = errors.New("wire: string too long")
	// ErrIllegalRefCount is raised (as a panic) when a Buffer is retained or
	// released after its final Release.
	ErrIllegalRefCount = errors.New("wire: illegal reference count")
	// ErrNBTDepth is returned when NBT nests deeper than MaxNBTDepth.
	ErrNBTDepth = errors.New("wire: NBT exceeds maximum depth")
	// ErrUnknownNBTTag is returned for an undefined NBT tag type.
	ErrUnknownNBTTag = errors.New("wire: unknown NBT tag type")
)
