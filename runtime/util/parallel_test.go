package util

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParallel(t *testing.T) {
	var count int64
	Parallel(
		func() { atomic.AddInt64(&count, 1) },
		func() { atomic.AddInt64(&count, 1) },
		func() { atomic.AddInt64(&count, 1) },
	)
	require.EqualValues(t, 3, count)
}

func TestParallelEmpty(t *testing.T) {
	Parallel() // must not hang or panic
}

func TestParallelOrderIndependent(t *testing.T) {
	// Two functions that each unblock the other, this hangs forever if
	// Parallel runs the functions sequentially.
	a := make(chan struct{})
	b := make(chan struct{})
	Parallel(
		func() { close(a); <-b },
		func() { close(b); <-a },
	)
}
