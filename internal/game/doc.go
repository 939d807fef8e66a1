// Package game implements the six-seat bisca rules engine: seeded dealing,
// trick resolution, scoring with tie-point carry-over, lead rotation and
// draw replenishment.
//
// The engine is deterministic: a Match built from a seed string and fed the
// same sequence of plays always produces the same deck order, trick outcomes,
// scores and lead rotation. It is single-threaded; callers are responsible
// for serialising access to a Match.
//
// Note that following suit is deliberately not enforced, neither by
// LegalMoves nor by ResolveTrick. The rulebook says players must follow suit
// when able, but the behavior replicated here never did, and recorded seeds
// depend on that.
package game
