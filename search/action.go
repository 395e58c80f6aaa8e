package search

import "github.com/katalvlaran/geodes/resource"

// Action is the decision taken in one minute: build one robot of a kind, or idle.
type Action uint8

const (
	// Idle builds nothing.
	Idle Action = iota
	// BuildOre .. BuildGeode build one robot of the matching kind.
	BuildOre
	BuildClay
	BuildObsidian
	BuildGeode
)

// numActions is the size of the closed action set.
const numActions = resource.NumKinds + 1

// Build returns the action building a robot of kind k.
func Build(k resource.Kind) Action { return BuildOre + Action(k) }

// Robot returns the kind built by a, and false for Idle.
func (a Action) Robot() (resource.Kind, bool) {
	if a == Idle || a >= numActions {
		return 0, false
	}

	return resource.Kind(a - BuildOre), true
}

// String returns "idle" or "build <kind>".
func (a Action) String() string {
	if k, ok := a.Robot(); ok {
		return "build " + k.String()
	}
	if a == Idle {
		return "idle"
	}

	return "unknown"
}

// priority is the branching order: the objective robot first, then the kinds
// feeding it from nearest to farthest, idle last.
var priority = func() [numActions]Action {
	var (
		out [numActions]Action
		i   int
	)
	for k := resource.Kind(resource.NumKinds - 1); k >= 0; k-- {
		out[i] = Build(k)
		i++
	}
	out[i] = Idle

	return out
}()

// Priority returns the actions in the order the search tries them.
func Priority() [numActions]Action { return priority }
