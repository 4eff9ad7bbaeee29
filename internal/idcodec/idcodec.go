package idcodec

import (
	"errors"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// Field widths, fixed by the wire format. See doc.go for the bit layout.
const (
	ShardBits = 10
	TypeBits  = 16
	SlotBits  = 38

	MaxShard = (1 << ShardBits) - 1
	MaxType  = (1 << TypeBits) - 1
	MaxSlot  = (1 << SlotBits) - 1

	shardMask = uint64(MaxShard)
	typeMask  = uint64(MaxType)
)

// ErrOverflow is returned by Pack when a field doesn't fit in its bit width.
var ErrOverflow = errors.New("idcodec: field exceeds its bit width")

// Pack concatenates shard, typeID and slot into a single external id.
//
// Returns ErrOverflow if shard > MaxShard, typeID > MaxType, or
// slot > MaxSlot; none of the three fields may silently truncate.
func Pack(shard int, typeID uint16, slot uint64) (uint64, error) {
	if shard < 0 || uint64(shard) > shardMask {
		return 0, ErrOverflow
	}
	if slot > MaxSlot {
		return 0, ErrOverflow
	}
	// typeID is already width-constrained by its uint16 type, but the top
	// bit of TypeBits (16) exactly matches uint16's range, so no check
	// beyond the type system is needed for it.
	return slot<<(ShardBits+TypeBits) | uint64(typeID)<<ShardBits | uint64(shard), nil
}

// ShardOf extracts the shard field from a packed id.
func ShardOf(id uint64) int {
	return int(id & shardMask)
}

// TypeOf extracts the type field from a packed id.
func TypeOf(id uint64) uint16 {
	return uint16((id >> ShardBits) & typeMask)
}

// SlotOf extracts the slot field from a packed id.
func SlotOf(id uint64) uint64 {
	return id >> (ShardBits + TypeBits)
}

// Unpack splits id back into its three fields.
func Unpack(id uint64) (shard int, typeID uint16, slot uint64) {
	return ShardOf(id), TypeOf(id), SlotOf(id)
}

// Route maps (typeName, key) to a shard index in [0, numShards) using a
// stable 64-bit hash and the high-half-of-128-bit-multiply trick, giving a
// uniform distribution with no modulo bias. numShards must be > 0.
func Route(typeName, key string, numShards int) int {
	h := HashKey(typeName, key)
	hi, _ := bits.Mul64(h, uint64(numShards))
	return int(hi)
}

// HashKey computes the stable hash Route is built on, exposed separately so
// callers (tests, the peered router) can reason about routing without
// recomputing the shard math.
func HashKey(typeName, key string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(typeName)
	_, _ = d.WriteString("-")
	_, _ = d.WriteString(key)
	return d.Sum64()
}
