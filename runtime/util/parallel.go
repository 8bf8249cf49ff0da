// Package util provides small concurrency helpers with no domain knowledge.
package util

import "sync"

// Parallel calls all given functions concurrently and returns when they have
// all returned. There is no error or panic handling here, it exists purely to
// cut boiler-plate from code that fans out a fixed set of operations, such as
// draining two pipes at once.
func Parallel(f ...func()) {
	var wg sync.WaitGroup
	wg.Add(len(f))
	for _, fn := range f {
		go func(fn func()) {
			defer wg.Done()
			fn()
		}(fn)
	}
	wg.Wait()
}
