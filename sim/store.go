package sim

import "fmt"

// ParticleStore is a fixed-capacity arena of box-relative positions.
// Slots [0, Len()) are live; slots beyond are stale and never exposed.
// Insertion writes at index Len(); removal moves the last live slot into the
// vacated one, so particle order is not preserved.
type ParticleStore struct {
	r []Vec3
	n int
}

// NewParticleStore allocates a store with the given capacity and copies the
// initial positions into it. Positions are wrapped on the way in.
func NewParticleStore(capacity int, initial []Vec3) (*ParticleStore, error) {
	if capacity < len(initial) {
		return nil, fmt.Errorf("store capacity %d below initial particle count %d", capacity, len(initial))
	}
	s := &ParticleStore{r: make([]Vec3, capacity)}
	for i, ri := range initial {
		s.r[i] = ri.Wrap()
	}
	s.n = len(initial)
	return s, nil
}

// Len returns the live particle count n.
func (s *ParticleStore) Len() int { return s.n }

// Cap returns the fixed capacity.
func (s *ParticleStore) Cap() int { return len(s.r) }

// At returns the position of live particle i. It panics on a stale index.
func (s *ParticleStore) At(i int) Vec3 {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("particle index %d outside live range [0, %d)", i, s.n))
	}
	return s.r[i]
}

// Set overwrites the position of live particle i.
func (s *ParticleStore) Set(i int, ri Vec3) {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("particle index %d outside live range [0, %d)", i, s.n))
	}
	s.r[i] = ri
}

// Append writes ri into slot n and grows the live count.
// It returns ErrCapacityExhausted without mutating the store when full.
func (s *ParticleStore) Append(ri Vec3) error {
	if s.n >= len(s.r) {
		return fmt.Errorf("append to store holding %d of %d: %w", s.n, len(s.r), ErrCapacityExhausted)
	}
	s.r[s.n] = ri
	s.n++
	return nil
}

// Remove deletes live particle i by swapping in the last live slot.
func (s *ParticleStore) Remove(i int) {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("particle index %d outside live range [0, %d)", i, s.n))
	}
	last := s.n - 1
	s.r[i] = s.r[last]
	s.n = last
}

// Live returns the live positions. The slice aliases store memory and is
// only valid until the next mutation; callers outside the engine use Snapshot.
func (s *ParticleStore) Live() []Vec3 {
	return s.r[:s.n:s.n]
}

// Snapshot returns a copy of the live positions.
func (s *ParticleStore) Snapshot() []Vec3 {
	out := make([]Vec3, s.n)
	copy(out, s.r[:s.n])
	return out
}
