package entitydata

import (
	"fmt"

	"go.packetlens.dev/core/wire"
)

// BlockFace is a face of a block.
type BlockFace int32

// BlockFaces, by wire value.
const (
	Down  BlockFace = 0
	Up    BlockFace = 1
	North BlockFace = 2
	South BlockFace = 3
	West  BlockFace = 4
	East  BlockFace = 5
	Other BlockFace = 255
)

func (f BlockFace) String() string {
	switch f {
	case Down:
		return "DOWN"
	case Up:
		return "UP"
	case North:
		return "NORTH"
	case South:
		return "SOUTH"
	case West:
		return "WEST"
	case East:
		return "EAST"
	case Other:
		return "OTHER"
	}
	return fmt.Sprintf("BlockFace(%d)", int32(f))
}

// EntityPose is the posture of an entity.
type EntityPose int32

// EntityPoses, by wire ID.
const (
	Standing EntityPose = iota
	FallFlying
	Sleeping
	Swimming
	SpinAttack
	Crouching
	LongJumping
	Dying
)

var poseNames = [...]string{
	"STANDING",
	"FALL_FLYING",
	"SLEEPING",
	"SWIMMING",
	"SPIN_ATTACK",
	"CROUCHING",
	"LONG_JUMPING",
	"DYING",
}

func (p EntityPose) String() string {
	if p >= 0 && int(p) < len(poseNames) {
		return poseNames[p]
	}
	return fmt.Sprintf("EntityPose(%d)", int32(p))
}

// Unknown values of either enumeration are carried through unchanged.
var (
	blockFaceCodec = wire.MapCodec(wire.VarIntCodec,
		func(v int32) (BlockFace, error) { return BlockFace(v), nil },
		func(f BlockFace) int32 { return int32(f) })
	entityPoseCodec = wire.MapCodec(wire.VarIntCodec,
		func(v int32) (EntityPose, error) { return EntityPose(v), nil },
		func(p EntityPose) int32 { return int32(p) })
)
