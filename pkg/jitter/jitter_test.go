package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationWithinBounds(t *testing.T) {
	base := 2 * time.Second

	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+time.Duration(DefaultJitter*float64(base)))
	}
}

func TestDurationZeroJitter(t *testing.T) {
	assert.Equal(t, time.Second, Duration(time.Second, 0))
}

func TestExponentialBackoff(t *testing.T) {
	base := 2 * time.Second
	max := 30 * time.Second

	// Без джиттера значения детерминированы
	assert.Equal(t, 2*time.Second, ExponentialBackoff(base, max, 0, 0))
	assert.Equal(t, 4*time.Second, ExponentialBackoff(base, max, 1, 0))
	assert.Equal(t, 8*time.Second, ExponentialBackoff(base, max, 2, 0))
	assert.Equal(t, 16*time.Second, ExponentialBackoff(base, max, 3, 0))

	// Потолок
	assert.Equal(t, max, ExponentialBackoff(base, max, 4, 0))
	assert.Equal(t, max, ExponentialBackoff(base, max, 50, 0))
}
