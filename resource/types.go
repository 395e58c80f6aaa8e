package resource

import (
	"errors"
	"math"
)

// Kind identifies one of the four resource kinds.
// The order is significant: each kind feeds the recipe of the next one,
// and the last kind (Geode) is the optimization objective.
type Kind int

// Resource kinds, in production-chain order.
const (
	Ore Kind = iota
	Clay
	Obsidian
	Geode
)

const (
	// NumKinds is the fixed number of resource kinds.
	NumKinds = 4

	// Objective is the kind whose final quantity the search maximizes.
	Objective = Geode

	// Unbounded marks a quantity without an upper limit (e.g. the robot cap
	// of the objective kind).
	Unbounded = math.MaxInt
)

// ErrUnknownKind is returned by ParseKind for a name outside Kinds.
var ErrUnknownKind = errors.New("resource: unknown kind")

// Kinds lists every kind in ascending order.
var Kinds = [NumKinds]Kind{Ore, Clay, Obsidian, Geode}

var kindNames = [NumKinds]string{"ore", "clay", "obsidian", "geode"}

// String returns the lower-case name used in blueprint text.
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}

	return kindNames[k]
}

// Valid reports whether k is one of the four kinds.
func (k Kind) Valid() bool { return k >= 0 && int(k) < NumKinds }

// ParseKind maps a lower-case name ("ore", "clay", ...) to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	return 0, ErrUnknownKind
}

// Vector is a fixed-width tuple with one quantity per Kind, indexed by Kind.
type Vector [NumKinds]int
