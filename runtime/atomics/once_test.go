package atomics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnceDoTwice(t *testing.T) {
	var once Once
	count := 0
	require.True(t, once.Do(func() { count++ }))
	once.Wait()
	require.False(t, once.Do(func() { count++ }))
	once.Wait()
	require.Equal(t, 1, count)
	require.True(t, once.IsDone())
}

func TestOnceDoNil(t *testing.T) {
	var once Once
	require.True(t, once.Do(nil))
	once.Wait()
	require.False(t, once.Do(nil))
}

func TestOnceDoConcurrent(t *testing.T) {
	var once Once
	var m sync.Mutex
	count := 0
	winners := 0

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if once.Do(func() {
				m.Lock()
				count++
				m.Unlock()
			}) {
				m.Lock()
				winners++
				m.Unlock()
			}
			// After Do has returned the function must have run
			once.Wait()
			m.Lock()
			assert.Equal(t, 1, count)
			m.Unlock()
		}()
	}
	wg.Wait()

	require.Equal(t, 1, count)
	require.Equal(t, 1, winners)
}

func TestBoolSwap(t *testing.T) {
	b := NewBool(false)
	require.False(t, b.Swap(true))
	require.True(t, b.Get())
	require.True(t, b.Swap(false))
	require.False(t, b.Get())
}
