package blueprint

import "github.com/katalvlaran/geodes/resource"

// RobotCaps derives the per-kind robot ceiling for b.
//
// For every non-objective kind k the cap is the largest amount of k any
// single recipe consumes (0 if no recipe uses k). Only one robot is built
// per minute, so a fleet producing more than that per minute cannot be put
// to work. The objective entry is resource.Unbounded.
//
// Invariant kept by the search: robots[k] ≤ caps[k] at every reachable node.
func (b *Blueprint) RobotCaps() resource.Vector {
	var (
		caps resource.Vector
		k, r resource.Kind
	)
	for k = 0; k < resource.NumKinds; k++ {
		if k == resource.Objective {
			caps[k] = resource.Unbounded
			continue
		}
		for r = 0; r < resource.NumKinds; r++ {
			if c := b.Costs[r].Get(k); c > caps[k] {
				caps[k] = c
			}
		}
	}

	return caps
}
