package search

import "github.com/katalvlaran/geodes/resource"

// Bounds estimates the final geode count reachable from a node.
//
//   - pessimistic: geodes already banked plus what the current geode robots
//     deliver if nothing else is ever built. Always reachable (idle to the end).
//   - optimistic: pessimistic plus t(t+1)/2 with t = minutesLeft−1, the yield
//     of one extra geode robot finished every remaining minute starting next
//     minute (a robot finished i minutes before the end adds i geodes).
//
// Both values include the geodes already held.
func Bounds(res, robots resource.Vector, minutesLeft int) (pessimistic, optimistic int) {
	pessimistic = res.Get(resource.Objective) + minutesLeft*robots.Get(resource.Objective)
	t := minutesLeft - 1
	if t <= 0 {
		return pessimistic, pessimistic
	}

	return pessimistic, pessimistic + t*(t+1)/2
}
