package atomics

import "sync"

// Once is similar to sync.Once except that once.Do() returns true, if this
// was the call that invoked the function. Additionally, once.Wait() blocks
// until once.Do() has been called, which is useful when a result is resolved
// exactly once but awaited from multiple call sites.
//
// Calling once.Do(nil) is legal and behaves like once.Do(func(){}).
type Once struct {
	m    sync.Mutex
	done Bool
	c    chan struct{}
}

// Do calls f() and returns true, the first time once.Do() is called.
// All subsequent calls return false without calling f().
func (o *Once) Do(f func()) bool {
	if o.done.Get() {
		return false
	}

	o.m.Lock()
	defer o.m.Unlock()

	if o.done.Get() {
		return false
	}

	// Wake anyone blocked in Wait(), even if f() panics
	defer func() {
		if o.c != nil {
			close(o.c)
		}
	}()
	defer o.done.Set(true)

	if f != nil {
		f()
	}
	return true
}

// Wait blocks until once.Do() has been called. After the first call to
// once.Do() this always returns immediately.
func (o *Once) Wait() {
	if o.done.Get() {
		return
	}

	o.m.Lock()
	if o.done.Get() {
		o.m.Unlock()
		return
	}
	if o.c == nil {
		o.c = make(chan struct{})
	}
	c := o.c
	o.m.Unlock()

	<-c
}

// IsDone returns true if once.Do() has been called.
func (o *Once) IsDone() bool {
	return o.done.Get()
}
