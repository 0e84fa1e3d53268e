package rng

import (
	"fmt"
	"math"
	"math/rand"
)

// maxZeroDraws bounds how many times Gaussian redraws a zero u1
const maxZeroDraws = 64

// ErrDegenerateSource is returned by Gaussian if the source keeps returning 0
var ErrDegenerateSource = fmt.Errorf("random source only returns 0")

// Uniform is anything that can hand out uniform values in [0,1)
type Uniform interface {
	Float64() float64
}

// Source wraps a seeded math/rand generator.
// It is not safe for concurrent use.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// New returns a Source seeded with the given seed
func New(seed int64) *Source {
	return &Source{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed this Source was created with
func (s *Source) Seed() int64 {
	return s.seed
}

// Float64 returns a uniform value in [0,1)
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// InsideUnitCircle returns a uniformly distributed point (x, y) with x*x + y*y < 1.
// Points are drawn from the enclosing square & rejected if they fall outside.
func (s *Source) InsideUnitCircle() (float64, float64) {
	for {
		x := s.rng.Float64()*2 - 1
		y := s.rng.Float64()*2 - 1
		if x*x+y*y < 1 {
			return x, y
		}
	}
}

// Gaussian draws a normally distributed value with mean mu and standard
// deviation sigma via the Box-Muller transform.
// A zero u1 is redrawn (log(0) is -Inf) at most maxZeroDraws times.
func Gaussian(u Uniform, mu, sigma float64) (float64, error) {
	u1 := u.Float64()
	for i := 0; u1 == 0; i++ {
		if i >= maxZeroDraws {
			return 0, ErrDegenerateSource
		}
		u1 = u.Float64()
	}
	u2 := u.Float64()

	x := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return x*sigma + mu, nil
}
