package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionRegistryLifecycle(t *testing.T) {
	RegisterSession("sid-1", 42, time.Minute)

	userID, ok := LookupSession("sid-1")
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)

	RevokeSession("sid-1")
	_, ok = LookupSession("sid-1")
	assert.False(t, ok)
}

func TestLookupSessionUnknown(t *testing.T) {
	_, ok := LookupSession("never-registered")
	assert.False(t, ok)
}

func TestSessionRegistryExpiry(t *testing.T) {
	RegisterSession("sid-expired", 7, -time.Second)
	_, ok := LookupSession("sid-expired")
	assert.False(t, ok)
}
