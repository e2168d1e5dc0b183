package repl

import (
	"errors"
	"sort"
	"sync"

	"github.com/inhibitor1217/too-many-lists/list"
)

// Workspace holds the named lists a REPL session operates on.
type Workspace struct {
	mu    sync.Mutex
	lists map[string]*list.List[string]
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		lists: make(map[string]*list.List[string]),
	}
}

// get returns the list stored under key. With create set, a missing key is
// populated with a fresh empty list. Callers must hold the mutex.
func (w *Workspace) get(key string, create bool) (*list.List[string], error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}
	l, exists := w.lists[key]
	if !exists {
		if !create {
			return nil, errors.New("no such list: " + key)
		}
		l = list.New[string]()
		w.lists[key] = l
	}
	return l, nil
}

// seek returns a cursor positioned on the element at index.
func seek(l *list.List[string], index int) (*list.Cursor[string], error) {
	if index < 0 || index >= l.Len() {
		return nil, errors.New("index out of range")
	}
	c := l.Cursor()
	for i := 0; i <= index; i++ {
		c.MoveNext()
	}
	return c, nil
}

// LPush adds a value at the front of the list stored under key, creating
// the list if needed.
func (w *Workspace) LPush(key, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	l, err := w.get(key, true)
	if err != nil {
		return err
	}
	l.PushFront(value)
	return nil
}

// RPush adds a value at the back of the list stored under key, creating
// the list if needed.
func (w *Workspace) RPush(key, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	l, err := w.get(key, true)
	if err != nil {
		return err
	}
	l.PushBack(value)
	return nil
}

// LPop removes and returns the front value of the list stored under key.
func (w *Workspace) LPop(key string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	l, err := w.get(key, false)
	if err != nil {
		return "", err
	}
	value, ok := l.PopFront()
	if !ok {
		return "", errors.New("list is empty")
	}
	return value, nil
}

// RPop removes and returns the back value of the list stored under key.
func (w *Workspace) RPop(key string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	l, err := w.get(key, false)
	if err != nil {
		return "", err
	}
	value, ok := l.PopBack()
	if !ok {
		return "", errors.New("list is empty")
	}
	return value, nil
}

// Len returns the number of elements in the list stored under key.
func (w *Workspace) Len(key string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	l, err := w.get(key, false)
	if err != nil {
		return 0, err
	}
	return l.Len(), nil
}

// Items returns the elements of the list stored under key, front to back.
func (w *Workspace) Items(key string) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	l, err := w.get(key, false)
	if err != nil {
		return nil, err
	}
	items := make([]string, 0, l.Len())
	it := l.Iter()
	for value, ok := it.Next(); ok; value, ok = it.Next() {
		items = append(items, value)
	}
	return items, nil
}

// Insert places a value at index in the list stored under key, shifting
// the element previously at that index toward the back.
func (w *Workspace) Insert(key string, index int, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	l, err := w.get(key, false)
	if err != nil {
		return err
	}
	c, err := seek(l, index)
	if err != nil {
		return err
	}
	c.SpliceBefore(list.From(value))
	return nil
}

// Remove detaches and returns the value at index in the list stored under
// key.
func (w *Workspace) Remove(key string, index int) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	l, err := w.get(key, false)
	if err != nil {
		return "", err
	}
	c, err := seek(l, index)
	if err != nil {
		return "", err
	}
	value, _ := c.RemoveCurrent()
	return value, nil
}

// Split cuts the list stored under key after index and stores the detached
// back portion under newKey.
func (w *Workspace) Split(key string, index int, newKey string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if newKey == "" {
		return errors.New("key cannot be empty")
	}
	if _, exists := w.lists[newKey]; exists {
		return errors.New("list already exists: " + newKey)
	}
	l, err := w.get(key, false)
	if err != nil {
		return err
	}
	c, err := seek(l, index)
	if err != nil {
		return err
	}
	w.lists[newKey] = c.SplitAfter()
	return nil
}

// Merge appends the list stored under src at the back of the list stored
// under dst and removes src. The transfer re-points boundary links only.
func (w *Workspace) Merge(dst, src string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if dst == src {
		return errors.New("cannot merge a list into itself")
	}
	s, err := w.get(src, false)
	if err != nil {
		return err
	}
	d, err := w.get(dst, true)
	if err != nil {
		return err
	}
	// A ghost-position splice-before appends at the back.
	d.Cursor().SpliceBefore(s)
	delete(w.lists, src)
	return nil
}

// Keys returns the names of all stored lists in sorted order.
func (w *Workspace) Keys() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	keys := make([]string, 0, len(w.lists))
	for key := range w.lists {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Drop removes the list stored under key.
func (w *Workspace) Drop(key string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.get(key, false); err != nil {
		return err
	}
	delete(w.lists, key)
	return nil
}
