package blueprint_test

import (
	"fmt"

	"github.com/katalvlaran/geodes/blueprint"
)

// ExampleParseString reads one blueprint and prints its robot caps.
func ExampleParseString() {
	bps, err := blueprint.ParseString("Blueprint 1: Each ore robot costs 4 ore. " +
		"Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. " +
		"Each geode robot costs 2 ore and 7 obsidian.")
	if err != nil {
		fmt.Println(err)
		return
	}
	caps := bps[0].RobotCaps()
	fmt.Println(caps[0], caps[1], caps[2])
	// Output:
	// 4 14 7
}
