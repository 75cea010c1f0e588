// Package keylock provides per-key exclusive sections with a bounded wait.
// The scheduling core keys them by employee ID so that check-then-write
// sequences for one employee serialize while different employees proceed in
// parallel.
package keylock

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrLockTimeout is returned when the section could not be entered within
// the caller's bound. No state was touched; the caller may retry.
var ErrLockTimeout = errors.New("timed out waiting for per-key lock")

type entry struct {
	sem  chan struct{}
	refs int
}

type KeyedLock struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *KeyedLock {
	return &KeyedLock{entries: make(map[string]*entry)}
}

// Acquire enters the exclusive section for key, waiting at most wait. The
// returned release function is idempotent and must be called on every exit
// path. Context cancellation is honored while waiting; once the section is
// held the operation runs to completion.
func (k *KeyedLock) Acquire(ctx context.Context, key string, wait time.Duration) (release func(), err error) {
	e := k.checkout(key)

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case e.sem <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-e.sem
				k.checkin(key, e)
			})
		}, nil
	case <-timer.C:
		k.checkin(key, e)
		return nil, ErrLockTimeout
	case <-ctx.Done():
		k.checkin(key, e)
		return nil, ctx.Err()
	}
}

func (k *KeyedLock) checkout(key string) *entry {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		k.entries[key] = e
	}
	e.refs++
	return e
}

func (k *KeyedLock) checkin(key string, e *entry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
}
