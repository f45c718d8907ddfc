package instance

import (
	"fmt"
	"math/rand/v2"
)

// SampleSize is the number of random members drawn for each generated set.
const SampleSize = 10

// Generate builds a random coverable instance with the given element and
// set counts.
//
// Unpadded instances draw SampleSize distinct members per set and then add
// every still uncovered element to a random set. Padded instances draw
// sets-elements random sets and append one singleton per element, which
// requires sets >= elements.
func Generate(rng *rand.Rand, elements, sets int, padded bool) (*Instance, error) {
	if elements <= 0 || sets <= 0 {
		return nil, fmt.Errorf("instance: generate needs positive counts, got %d elements, %d sets", elements, sets)
	}
	if elements > MaxElementCount {
		return nil, fmt.Errorf("instance: generate supports at most %d elements, got %d", MaxElementCount, elements)
	}
	if padded && sets < elements {
		return nil, fmt.Errorf("instance: padded generation needs sets >= elements, got %d < %d", sets, elements)
	}
	var raw [][]int
	if padded {
		for i := 0; i < sets-elements; i++ {
			raw = append(raw, sample(rng, elements))
		}
		for e := 1; e <= elements; e++ {
			raw = append(raw, []int{e})
		}
	} else {
		covered := make([]bool, elements+1)
		for i := 0; i < sets; i++ {
			members := sample(rng, elements)
			for _, m := range members {
				covered[m] = true
			}
			raw = append(raw, members)
		}
		for e := 1; e <= elements; e++ {
			if !covered[e] {
				k := rng.IntN(len(raw))
				raw[k] = append(raw[k], e)
			}
		}
	}
	return Build(elements, raw)
}

// Name returns the conventional file name of a generated instance.
func Name(elements, sets int, padded bool) string {
	if padded {
		return fmt.Sprintf("s-c-padded-%d-%d", elements, sets)
	}
	return fmt.Sprintf("s-c-%d-%d", elements, sets)
}

func sample(rng *rand.Rand, elements int) []int {
	n := SampleSize
	if n > elements {
		n = elements
	}
	perm := rng.Perm(elements)[:n]
	out := make([]int, n)
	for i, p := range perm {
		out[i] = p + 1
	}
	return out
}
