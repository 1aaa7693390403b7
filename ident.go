package staticize

import (
	"hash/maphash"

	"staticize/shape"
)

// TypeID is an opaque comparable token identifying a resolved static form.
// IDs are deterministic within one process and intentionally unstable across
// processes (the hash is seeded per process), so they must never be
// persisted or sent over a wire.
type TypeID uint64

var idSeed = maphash.MakeSeed()

// idOf fingerprints the canonical encoding of an already-resolved shape.
// Keying on the encoding rather than the display name keeps shapes with
// equal rendering (unit vs. the empty tuple) from colliding.
func idOf(static shape.Shape) TypeID {
	return TypeID(maphash.String(idSeed, static.Canonical()))
}
