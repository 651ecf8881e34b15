package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicClock_StartsAtEpoch(t *testing.T) {
	clock := NewDeterministicClock()
	assert.True(t, Epoch.Equal(clock.Current()))
	assert.Equal(t, int64(0), clock.Ticks())
	assert.Equal(t, int64(1_700_000_000), Epoch.Unix())
}

func TestDeterministicClock_NowAdvances(t *testing.T) {
	clock := NewDeterministicClock()

	assert.True(t, Epoch.Equal(clock.Now()))
	assert.True(t, Epoch.Add(time.Second).Equal(clock.Now()))
	assert.True(t, Epoch.Add(2*time.Second).Equal(clock.Now()))
	assert.True(t, Epoch.Add(3*time.Second).Equal(clock.Current()))
	assert.Equal(t, int64(3), clock.Ticks())
}

func TestDeterministicClock_CustomStep(t *testing.T) {
	start := time.Unix(-1, 0).UTC()
	clock := NewDeterministicClockAt(start, 250*time.Millisecond)

	clock.Now()
	clock.Now()
	assert.True(t, time.Unix(-1, 500_000_000).Equal(clock.Now()))
}

func TestDeterministicClock_ZeroStepIsFixed(t *testing.T) {
	clock := NewDeterministicClockAt(Epoch, 0)
	for i := 0; i < 5; i++ {
		assert.True(t, Epoch.Equal(clock.Now()))
	}
}

func TestDeterministicClock_Reset(t *testing.T) {
	clock := NewDeterministicClock()

	clock.Now()
	clock.Now()
	clock.Now()
	assert.Equal(t, int64(3), clock.Ticks())

	clock.Reset()
	assert.Equal(t, int64(0), clock.Ticks())
	assert.True(t, Epoch.Equal(clock.Now()))
}

func TestDeterministicClock_ThreadSafe(t *testing.T) {
	clock := NewDeterministicClock()
	const numGoroutines = 50
	const callsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	results := make([][]time.Time, numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		results[i] = make([]time.Time, callsPerGoroutine)
		go func(idx int) {
			defer wg.Done()
			for j := 0; j < callsPerGoroutine; j++ {
				results[idx][j] = clock.Now()
			}
		}(i)
	}

	wg.Wait()

	// Every instant handed out is distinct and on the step grid.
	seen := make(map[int64]bool)
	for i := 0; i < numGoroutines; i++ {
		for j := 0; j < callsPerGoroutine; j++ {
			offset := results[i][j].Unix() - Epoch.Unix()
			require.False(t, seen[offset], "duplicate offset %d", offset)
			seen[offset] = true
		}
	}

	total := numGoroutines * callsPerGoroutine
	assert.Len(t, seen, total)
	for i := int64(0); i < int64(total); i++ {
		assert.True(t, seen[i], "missing offset %d", i)
	}
}

func TestDeterministicClock_Deterministic(t *testing.T) {
	clock1 := NewDeterministicClock()
	clock2 := NewDeterministicClock()

	for i := 0; i < 100; i++ {
		assert.True(t, clock1.Now().Equal(clock2.Now()))
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC)
	clock := NewFixedClock(at)

	assert.True(t, at.Equal(clock.Now()))
	assert.True(t, at.Equal(clock.Now()))
}
