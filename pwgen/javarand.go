package pwgen

const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = (1 << 48) - 1
)

// JavaRandom is the 48-bit linear congruential generator used to record the
// reference password vectors. For a given seed it yields the same sequence
// as java.util.Random.
type JavaRandom struct {
	seed int64
}

// NewJavaRandom returns a generator seeded with seed.
func NewJavaRandom(seed int64) *JavaRandom {
	r := &JavaRandom{}
	r.Seed(seed)
	return r
}

// Seed resets the generator state.
func (r *JavaRandom) Seed(seed int64) {
	r.seed = (seed ^ lcgMultiplier) & lcgMask
}

// next advances the state and returns its top bits as a signed 32-bit value.
func (r *JavaRandom) next(bits uint) int32 {
	r.seed = (r.seed*lcgMultiplier + lcgAddend) & lcgMask
	return int32(uint64(r.seed) >> (48 - bits))
}

// Int32 returns the next 32 pseudorandom bits as a signed value.
func (r *JavaRandom) Int32() int32 {
	return r.next(32)
}

// Intn returns a uniform value in [0, n). It panics if n <= 0 or n does not
// fit in 32 bits.
func (r *JavaRandom) Intn(n int) int {
	if n <= 0 || n > 1<<31-1 {
		panic("pwgen: invalid argument to Intn")
	}
	bound := int32(n)
	v := r.next(31)
	m := bound - 1
	if bound&m == 0 {
		return int((int64(bound) * int64(v)) >> 31)
	}
	// Reject draws from the incomplete final bucket. The sum overflows
	// negative exactly when u lies in that bucket.
	for u := v; ; u = r.next(31) {
		v = u % bound
		if u-v+m >= 0 {
			break
		}
	}
	return int(v)
}
