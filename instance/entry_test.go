package instance

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_RestrictDoesNotMutate(t *testing.T) {
	e := NewEntry(7, []int{3, 1, 2, 2})
	assert.Equal(t, []int{1, 2, 3}, e.Original)

	r := e.Restrict(SetOf(2, 9))
	assert.Equal(t, 7, r.ID)
	assert.Equal(t, []int{1, 3}, Elements(r.Active))
	assert.Equal(t, []int{1, 2, 3}, r.Original)
	assert.Equal(t, []int{1, 2, 3}, Elements(e.Active), "receiver must keep its active membership")
	assert.Equal(t, 3, e.Size())
	assert.Equal(t, 2, r.Size())
}

func TestEntry_RestrictComposes(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 100; i++ {
		e := NewEntry(1, randomMembers(rng, 30))
		s1 := SetOf(randomMembers(rng, 30)...)
		s2 := SetOf(randomMembers(rng, 30)...)
		stepwise := e.Restrict(s1).Restrict(s2)
		combined := e.Restrict(s1.Union(s2))
		require.Equal(t, Elements(combined.Active), Elements(stepwise.Active))
	}
}

func TestEntry_DominatedBy(t *testing.T) {
	a := NewEntry(1, []int{1})
	b := NewEntry(2, []int{1, 2})
	c := NewEntry(3, []int{1, 2})
	assert.True(t, a.DominatedBy(b))
	assert.False(t, b.DominatedBy(a))
	assert.False(t, b.DominatedBy(c), "equal memberships do not dominate each other")
	assert.False(t, b.DominatedBy(b))
}

func randomMembers(rng *rand.Rand, n int) []int {
	var out []int
	for i := 1; i <= n; i++ {
		if rng.IntN(3) == 0 {
			out = append(out, i)
		}
	}
	return out
}
