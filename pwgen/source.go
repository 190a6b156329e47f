package pwgen

import "math/rand"

// Source is a stateful uniform integer generator. Intn returns a value in
// [0, n) and advances the source by exactly one draw. Implementations are
// not required to be safe for concurrent use.
type Source interface {
	Intn(n int) int
}

// drawRange performs one draw over the closed interval [lo, hi].
func drawRange(src Source, lo, hi int) int {
	return src.Intn(hi-lo+1) + lo
}

type randSource struct {
	r *rand.Rand
}

// FromRand adapts a math/rand generator. Its output is not compatible with
// JavaRandom for the same seed.
func FromRand(r *rand.Rand) Source {
	return randSource{r: r}
}

func (s randSource) Intn(n int) int {
	return s.r.Intn(n)
}
