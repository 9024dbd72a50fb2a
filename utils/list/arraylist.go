package list

import (
	"fmt"
	"sync"
)

// List is an index-addressed sequence of values.
type List[T any] interface {
	Add(item T)                                 // Append an item at the end
	Find(predicate func(T) bool) (T, int, bool) // First item matching the predicate, with its index
	Get(index int) (T, error)                   // Item at index
	GetAll() []T                                // Copy of every item
	Set(index int, newValue T) error            // Replace the item at index
	Size() int                                  // Number of items
}

// ArrayList implements List over a slice guarded by a RWMutex.
type ArrayList[T any] struct {
	mu    sync.RWMutex
	items []T
}

// NewArrayList returns a list holding size copies of fill.
//
// Example:
//
//	func main() {
//		frames := list.NewArrayList(4, models.EmptyFrame())
//		fmt.Println(frames.Size()) //output: 4
//	}
func NewArrayList[T any](size int, fill T) *ArrayList[T] {
	items := make([]T, size)
	for i := range items {
		items[i] = fill
	}
	return &ArrayList[T]{items: items}
}

// Add appends an item at the end of the list.
func (list *ArrayList[T]) Add(item T) {
	list.mu.Lock()
	defer list.mu.Unlock()

	list.items = append(list.items, item)
}

// Find returns the first item satisfying the predicate, scanning from index 0.
//
// Example:
//
//	func main() {
//		list := &ArrayList[int]{}
//		list.Add(10)
//		list.Add(20)
//
//		number, index, found := list.Find(func(number int) bool {
//			return number == 20
//		})
//	}
func (list *ArrayList[T]) Find(predicate func(T) bool) (T, int, bool) {
	list.mu.RLock()
	defer list.mu.RUnlock()

	for i, item := range list.items {
		if predicate(item) {
			return item, i, true
		}
	}
	var zero T
	return zero, -1, false
}

// Get returns the item at index, or an error when index is out of range.
func (list *ArrayList[T]) Get(index int) (T, error) {
	list.mu.RLock()
	defer list.mu.RUnlock()

	if index < 0 || index >= len(list.items) {
		var zero T
		return zero, fmt.Errorf("index out of range: %d", index)
	}
	return list.items[index], nil
}

// GetAll returns a copy of the items so callers cannot mutate the list.
func (list *ArrayList[T]) GetAll() []T {
	list.mu.RLock()
	defer list.mu.RUnlock()

	itemsCopy := make([]T, len(list.items))
	copy(itemsCopy, list.items)
	return itemsCopy
}

// Set replaces the item at index.
func (list *ArrayList[T]) Set(index int, newValue T) error {
	list.mu.Lock()
	defer list.mu.Unlock()

	if index < 0 || index >= len(list.items) {
		return fmt.Errorf("index out of range: %d", index)
	}
	list.items[index] = newValue
	return nil
}

// Size returns the number of items.
func (list *ArrayList[T]) Size() int {
	list.mu.RLock()
	defer list.mu.RUnlock()

	return len(list.items)
}
