package internal

import (
	"fmt"
	"sync"

	"github.com/petermattis/goid"
)

// ReentrantMutex is a mutex that can be locked multiple times by the goroutine holding it.
// Other goroutines block until the holder released every lock it took.
// The zero value is an unlocked mutex.
type ReentrantMutex struct {
	mu   sync.Mutex
	cond *sync.Cond

	// goroutine holding the lock, 0 when free
	owner int64

	// each nested Lock by the owner increases the depth by 1
	depth int
}

func NewReentrantMutex() *ReentrantMutex {
	m := &ReentrantMutex{}
	m.cond = sync.NewCond(&m.mu)

	return m
}

func (m *ReentrantMutex) Lock() {
	gid := getGID()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cond == nil {
		m.cond = sync.NewCond(&m.mu)
	}

	for m.depth > 0 && m.owner != gid {
		m.cond.Wait()
	}

	m.owner = gid
	m.depth++
}

func (m *ReentrantMutex) Unlock() {
	gid := getGID()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.depth == 0 || m.owner != gid {
		panic(fmt.Sprintf("observable: unlock of mutex not held by goroutine %d", gid))
	}

	m.depth--
	if m.depth == 0 {
		m.owner = 0
		m.cond.Signal()
	}
}

// Held reports whether the calling goroutine currently holds the lock.
func (m *ReentrantMutex) Held() bool {
	gid := getGID()

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.depth > 0 && m.owner == gid
}

func getGID() int64 {
	return goid.Get()
}
