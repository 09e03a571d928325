// SPDX-License-Identifier: MIT
package claims

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimThenClaimedContainsID(t *testing.T) {
	s := NewStore()
	assert.True(t, s.Claim("inc-42"))
	assert.Contains(t, s.Claimed(), "inc-42")
}

func TestClaimIsIdempotent(t *testing.T) {
	s := NewStore()
	assert.True(t, s.Claim("inc-1"))
	assert.False(t, s.Claim("inc-1"))

	occurrences := 0
	for _, id := range s.Claimed() {
		if id == "inc-1" {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences)
	assert.Equal(t, 1, s.Len())
}

func TestClaimedSnapshotIsIndependent(t *testing.T) {
	s := NewStore()
	s.Claim("a")
	snap := s.Claimed()
	s.Claim("b")
	assert.Len(t, snap, 1)
	assert.Equal(t, 2, s.Len())
}

func TestEmptyStore(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.Claimed())
	assert.NotNil(t, s.Claimed())
	assert.Equal(t, 0, s.Len())
}

func TestConcurrentClaims(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Claim(fmt.Sprintf("inc-%d", i))
				_ = s.Claimed()
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 100, s.Len())
}
