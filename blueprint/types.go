package blueprint

import (
	"errors"

	"github.com/katalvlaran/geodes/resource"
)

var (
	// ErrEmptyInput indicates that the input holds no blueprint at all.
	ErrEmptyInput = errors.New("blueprint: no blueprints in input")

	// ErrMalformed indicates text that does not follow the recipe grammar.
	ErrMalformed = errors.New("blueprint: malformed blueprint")

	// ErrOutOfOrder indicates a blueprint whose ID is not its 1-based position.
	ErrOutOfOrder = errors.New("blueprint: unexpected blueprint number")

	// ErrInvalidBlueprint indicates a blueprint failing field validation.
	ErrInvalidBlueprint = errors.New("blueprint: invalid blueprint")
)

// Blueprint is a fixed set of four robot recipes.
// Costs[k] is what one robot producing kind k costs; it is read-only once
// constructed and shared by reference for a whole search.
type Blueprint struct {
	// ID is the 1-based puzzle number of the blueprint.
	ID int `validate:"gte=1"`

	// Costs is indexed by the kind the robot produces.
	Costs [resource.NumKinds]resource.Vector `validate:"dive,dive,gte=0"`
}

// New builds a blueprint from the four recipe costs in Kind order.
func New(id int, ore, clay, obsidian, geode resource.Vector) Blueprint {
	return Blueprint{
		ID:    id,
		Costs: [resource.NumKinds]resource.Vector{ore, clay, obsidian, geode},
	}
}

// Cost returns the price of one robot producing kind k.
func (b *Blueprint) Cost(k resource.Kind) resource.Vector { return b.Costs[k] }
