package vrptw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDist_Basic(t *testing.T) {
	a := Customer{X: 0, Y: 0}
	b := Customer{X: 3, Y: 4}
	assert.InDelta(t, 5.0, dist(a, b), 1e-9)
}

func TestDist_SamePoint(t *testing.T) {
	a := Customer{X: 1, Y: 1}
	assert.Equal(t, 0.0, dist(a, a))
}

func TestDist_Symmetric(t *testing.T) {
	a := Customer{X: 2, Y: -3}
	b := Customer{X: -5, Y: 7}
	assert.InDelta(t, dist(a, b), dist(b, a), 1e-12)
}

func TestDist_NoRounding(t *testing.T) {
	a := Customer{X: 0, Y: 0}
	b := Customer{X: 1, Y: 1}
	assert.InDelta(t, math.Sqrt2, dist(a, b), 1e-12)
}
