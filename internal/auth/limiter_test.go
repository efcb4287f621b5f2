package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiterPoolEnforcesBurst(t *testing.T) {
	pool := NewLimiterPool(1, 2)

	assert.True(t, pool.Allow("10.0.0.1"))
	assert.True(t, pool.Allow("10.0.0.1"))
	assert.False(t, pool.Allow("10.0.0.1"))

	// Separate clients get separate buckets.
	assert.True(t, pool.Allow("10.0.0.2"))
}

func TestLimiterPoolDefaults(t *testing.T) {
	pool := NewLimiterPool(0, 0)
	assert.True(t, pool.Allow("10.0.0.1"))
}
