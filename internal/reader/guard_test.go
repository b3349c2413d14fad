// Copyright (c) 2026 Minar. All rights reserved.

package reader_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minarbd/minar/internal/reader"
)

/*
TestGuard_StaleTokens verifies that issuing a newer token permanently
invalidates older ones within the same scope.
*/
func TestGuard_StaleTokens(t *testing.T) {
	guard := reader.NewGuard()

	first := guard.Issue("client|book")
	second := guard.Issue("client|book")

	assert.False(t, guard.IsCurrent("client|book", first), "older token must be stale")
	assert.True(t, guard.IsCurrent("client|book", second))

	third := guard.Issue("client|book")
	assert.False(t, guard.IsCurrent("client|book", second))
	assert.True(t, guard.IsCurrent("client|book", third))
}

/*
TestGuard_ScopeIsolation verifies that scopes do not invalidate each other.
*/
func TestGuard_ScopeIsolation(t *testing.T) {
	guard := reader.NewGuard()

	a := guard.Issue("client-a|book")
	b := guard.Issue("client-b|book")

	assert.True(t, guard.IsCurrent("client-a|book", a))
	assert.True(t, guard.IsCurrent("client-b|book", b))
}

func TestGuard_Forget(t *testing.T) {
	t.Run("current_token_retires_scope", func(t *testing.T) {
		guard := reader.NewGuard()

		token := guard.Issue("scope")
		guard.Forget("scope", token)

		assert.False(t, guard.IsCurrent("scope", token))

		// A fresh counter starts over.
		assert.Equal(t, uint64(1), guard.Issue("scope"))
	})

	t.Run("stale_token_cannot_retire", func(t *testing.T) {
		guard := reader.NewGuard()

		old := guard.Issue("scope")
		newer := guard.Issue("scope")

		guard.Forget("scope", old)

		assert.True(t, guard.IsCurrent("scope", newer), "a newer generation keeps the scope alive")
	})
}

/*
TestGuard_Concurrent hammers one scope from many goroutines: exactly the
highest issued token may remain current.
*/
func TestGuard_Concurrent(t *testing.T) {
	guard := reader.NewGuard()

	const workers = 32
	tokens := make([]uint64, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			tokens[slot] = guard.Issue("scope")
		}(i)
	}
	wg.Wait()

	current := 0
	for _, token := range tokens {
		if guard.IsCurrent("scope", token) {
			current++
			assert.Equal(t, uint64(workers), token)
		}
	}
	assert.Equal(t, 1, current)
}
