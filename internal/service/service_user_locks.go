// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"golang.org/x/sync/semaphore"
)

// userLocks hands out one non-blocking token per user. Entries are removed
// on release so the map only holds users with a running operation.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*semaphore.Weighted
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*semaphore.Weighted)}
}

// tryLock takes the token of userID. It returns a release func, or false
// when the token is held.
func (l *userLocks) tryLock(userID string) (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	sem, ok := l.locks[userID]
	if !ok {
		sem = semaphore.NewWeighted(1)
		l.locks[userID] = sem
	}
	if !sem.TryAcquire(1) {
		return nil, false
	}

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		sem.Release(1)
		if l.locks[userID] == sem {
			delete(l.locks, userID)
		}
	}, true
}
