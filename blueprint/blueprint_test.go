package blueprint_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/geodes/blueprint"
	"github.com/katalvlaran/geodes/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exampleText is the wrapped two-blueprint sample from the puzzle statement.
const exampleText = `Blueprint 1:
  Each ore robot costs 4 ore.
  Each clay robot costs 2 ore.
  Each obsidian robot costs 3 ore and 14 clay.
  Each geode robot costs 2 ore and 7 obsidian.

Blueprint 2:
  Each ore robot costs 2 ore.
  Each clay robot costs 3 ore.
  Each obsidian robot costs 3 ore and 8 clay.
  Each geode robot costs 3 ore and 12 obsidian.
`

func TestParse_Example(t *testing.T) {
	bps, err := blueprint.Parse(strings.NewReader(exampleText))
	require.NoError(t, err)
	require.Len(t, bps, 2)

	want1 := blueprint.New(1,
		resource.New(4, 0, 0, 0),
		resource.New(2, 0, 0, 0),
		resource.New(3, 14, 0, 0),
		resource.New(2, 0, 7, 0),
	)
	want2 := blueprint.New(2,
		resource.New(2, 0, 0, 0),
		resource.New(3, 0, 0, 0),
		resource.New(3, 8, 0, 0),
		resource.New(3, 0, 12, 0),
	)
	assert.Equal(t, want1, bps[0])
	assert.Equal(t, want2, bps[1])
}

// TestParse_SingleLine accepts the one-blueprint-per-line layout of real inputs.
func TestParse_SingleLine(t *testing.T) {
	line := "Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. " +
		"Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.\n"
	bps, err := blueprint.ParseString(line + strings.Replace(line, "Blueprint 1", "Blueprint 2", 1))
	require.NoError(t, err)
	require.Len(t, bps, 2)
	assert.Equal(t, resource.New(2, 0, 7, 0), bps[1].Cost(resource.Geode))
}

// TestParse_RecipeOrderIsFree lets recipes appear in any order.
func TestParse_RecipeOrderIsFree(t *testing.T) {
	text := "Blueprint 1: Each geode robot costs 2 ore and 7 obsidian. Each clay robot costs 2 ore. " +
		"Each ore robot costs 4 ore. Each obsidian robot costs 14 clay and 3 ore."
	bps, err := blueprint.ParseString(text)
	require.NoError(t, err)
	assert.Equal(t, resource.New(3, 14, 0, 0), bps[0].Cost(resource.Obsidian))
	assert.Equal(t, resource.New(4, 0, 0, 0), bps[0].Cost(resource.Ore))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"empty", "  \n\t", blueprint.ErrEmptyInput},
		{"no header", "Each ore robot costs 4 ore.", blueprint.ErrMalformed},
		{"leading junk", "hello Blueprint 1: Each ore robot costs 4 ore.", blueprint.ErrMalformed},
		{"out of order", strings.Replace(exampleText, "Blueprint 2", "Blueprint 3", 1), blueprint.ErrOutOfOrder},
		{"missing recipe", "Blueprint 1: Each ore robot costs 4 ore.", blueprint.ErrMalformed},
		{"unknown robot", strings.Replace(exampleText, "Each clay robot", "Each sand robot", 1), blueprint.ErrMalformed},
		{"unknown cost kind", strings.Replace(exampleText, "2 ore.", "2 sand.", 1), blueprint.ErrMalformed},
		{"duplicate recipe", strings.Replace(exampleText, "Each clay robot", "Each ore robot", 1), blueprint.ErrMalformed},
		{"stray text", strings.Replace(exampleText, "Blueprint 2:", "Blueprint 2: oops", 1), blueprint.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := blueprint.ParseString(tc.text)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParse_ReadError(t *testing.T) {
	_, err := blueprint.Parse(failingReader{})
	assert.ErrorContains(t, err, "disk on fire")
}

// TestRobotCaps checks the per-kind maximum over all recipes.
func TestRobotCaps(t *testing.T) {
	bp := blueprint.New(1,
		resource.New(4, 0, 0, 0),
		resource.New(2, 0, 0, 0),
		resource.New(3, 14, 0, 0),
		resource.New(2, 0, 7, 0),
	)
	caps := bp.RobotCaps()

	assert.Equal(t, 4, caps.Get(resource.Ore))
	assert.Equal(t, 14, caps.Get(resource.Clay))
	assert.Equal(t, 7, caps.Get(resource.Obsidian))
	assert.Equal(t, resource.Unbounded, caps.Get(resource.Geode), "objective kind is never capped")
}

// TestRobotCaps_UnusedKind yields a zero cap for a kind no recipe consumes.
func TestRobotCaps_UnusedKind(t *testing.T) {
	bp := blueprint.New(1,
		resource.New(1, 0, 0, 0),
		resource.New(1, 0, 0, 0),
		resource.New(1, 0, 0, 0),
		resource.New(1, 0, 0, 0),
	)
	caps := bp.RobotCaps()
	assert.Equal(t, 1, caps.Get(resource.Ore))
	assert.Equal(t, 0, caps.Get(resource.Clay))
	assert.Equal(t, 0, caps.Get(resource.Obsidian))
}

// TestRobotCaps_OreNeverSpent parses recipes that cost no ore at all.
func TestRobotCaps_OreNeverSpent(t *testing.T) {
	bps, err := blueprint.ParseString("Blueprint 1: Each ore robot costs 0 ore. Each clay robot costs 0 ore. " +
		"Each obsidian robot costs 0 ore and 1 clay. Each geode robot costs 0 ore and 1 obsidian.")
	require.NoError(t, err)
	require.Len(t, bps, 1)

	caps := bps[0].RobotCaps()
	assert.Equal(t, resource.New(0, 1, 1, resource.Unbounded), caps)
}

func TestValidate(t *testing.T) {
	ok := blueprint.New(1, resource.New(1, 0, 0, 0), resource.New(1, 0, 0, 0),
		resource.New(1, 1, 0, 0), resource.New(1, 0, 1, 0))
	assert.NoError(t, ok.Validate())

	badID := ok
	badID.ID = 0
	assert.ErrorIs(t, badID.Validate(), blueprint.ErrInvalidBlueprint)

	negative := ok
	negative.Costs[resource.Clay] = resource.New(-1, 0, 0, 0)
	assert.ErrorIs(t, negative.Validate(), blueprint.ErrInvalidBlueprint)
}
