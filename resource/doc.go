// Package resource defines the four resource kinds of the robot factory and
// the fixed-width Vector used to count them.
//
// 🚀 What is a resource Vector?
//
//	A Vector holds one non-negative quantity per Kind:
//	  • Ore      — mined by the starting robot, spent by every recipe
//	  • Clay     — feeds obsidian robots
//	  • Obsidian — feeds geode robots
//	  • Geode    — the objective, never spent
//
// The same type describes stockpiles, robot fleets and recipe costs.
//
// ✨ Key properties:
//   - value type ([NumKinds]int): assignment copies, siblings never alias
//   - component-wise Add / Sub and the Contains (≥) test
//   - no allocations in any operation
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/geodes/resource"
//
//	stock := resource.New(5, 14, 0, 0)
//	cost := resource.New(3, 14, 0, 0)
//	if stock.Contains(cost) {
//		stock = stock.Sub(cost) // (2,0,0,0)
//	}
//
// Complexity: every operation is O(NumKinds) = O(1).
package resource
