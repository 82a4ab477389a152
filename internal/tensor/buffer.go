package tensor

import (
	"sync"
	"sync/atomic"

	"k8s.io/klog/v2"
)

// buffer is the reference-counted flat storage shared by an owning tensor and
// every view derived from it. Only owning tensors hold references; views keep
// a plain pointer and observe the release through live().
type buffer[T Number] struct {
	data     []T
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newBuffer creates a zeroed buffer of n elements with refCount = 1.
func newBuffer[T Number](n int) *buffer[T] {
	buf := &buffer[T]{
		data: make([]T, n),
	}
	buf.refCount.Store(1)
	klog.V(4).Infof("tensor: allocated buffer of %d elements", n)
	return buf
}

// addRef increments the reference count (for Retain).
func (b *buffer[T]) addRef() {
	n := b.refCount.Add(1)
	klog.V(4).Infof("tensor: retained buffer, %d owners", n)
}

// release decrements the reference count and drops the storage when it reaches 0.
func (b *buffer[T]) release() {
	n := b.refCount.Add(-1)
	if n > 0 {
		klog.V(4).Infof("tensor: released owner, %d owners remain", n)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data != nil {
		klog.V(4).Infof("tensor: freed buffer of %d elements", len(b.data))
	}
	b.data = nil
}

// live reports whether the storage is still held by at least one owner.
func (b *buffer[T]) live() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data != nil
}

// owners returns the number of owning tensors sharing the buffer.
func (b *buffer[T]) owners() int {
	return int(b.refCount.Load())
}
