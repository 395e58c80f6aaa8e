package resource

import "fmt"

// New builds a Vector from the four quantities in Kind order.
func New(ore, clay, obsidian, geode int) Vector {
	return Vector{ore, clay, obsidian, geode}
}

// Unit returns the Vector holding a single unit of k.
func Unit(k Kind) Vector {
	var v Vector
	v[k] = 1

	return v
}

// Get returns the quantity of kind k.
func (v Vector) Get(k Kind) int { return v[k] }

// Inc returns a copy of v with one more unit of k.
func (v Vector) Inc(k Kind) Vector {
	v[k]++

	return v
}

// Add returns the component-wise sum v + o.
func (v Vector) Add(o Vector) Vector {
	var k int
	for k = 0; k < NumKinds; k++ {
		v[k] += o[k]
	}

	return v
}

// Sub returns the component-wise difference v − o.
// Callers must check Contains first when the result has to stay non-negative.
func (v Vector) Sub(o Vector) Vector {
	var k int
	for k = 0; k < NumKinds; k++ {
		v[k] -= o[k]
	}

	return v
}

// Contains reports whether v[k] ≥ o[k] for every kind k,
// i.e. whether a stock v can pay for a cost o.
func (v Vector) Contains(o Vector) bool {
	var k int
	for k = 0; k < NumKinds; k++ {
		if v[k] < o[k] {
			return false
		}
	}

	return true
}

// NonNegative reports whether every component is ≥ 0.
func (v Vector) NonNegative() bool {
	var k int
	for k = 0; k < NumKinds; k++ {
		if v[k] < 0 {
			return false
		}
	}

	return true
}

// String renders v as "ore=1 clay=0 obsidian=0 geode=0".
func (v Vector) String() string {
	return fmt.Sprintf("ore=%d clay=%d obsidian=%d geode=%d", v[Ore], v[Clay], v[Obsidian], v[Geode])
}
