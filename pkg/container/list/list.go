package list

// Element is a node of a List.
type Element[T any] struct {
	// Value is the payload carried by this element.
	Value T

	next, prev *Element[T]
	list       *List[T]
}

// Next returns the next list element or nil.
func (e *Element[T]) Next() *Element[T] {
	return e.next
}

// Prev returns the previous list element or nil.
func (e *Element[T]) Prev() *Element[T] {
	return e.prev
}

// List is a doubly-linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head, tail *Element[T]
	length     int
}

// New creates an empty list containing the given values in order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.length
}

// Front returns the first element or nil.
func (l *List[T]) Front() *Element[T] {
	return l.head
}

// Back returns the last element or nil.
func (l *List[T]) Back() *Element[T] {
	return l.tail
}

// PushFront inserts v at the front and returns its element.
func (l *List[T]) PushFront(v T) *Element[T] {
	e := &Element[T]{Value: v, list: l, next: l.head}
	if l.head != nil {
		l.head.prev = e
	} else {
		l.tail = e
	}
	l.head = e
	l.length++
	return e
}

// PushBack appends v at the back and returns its element.
func (l *List[T]) PushBack(v T) *Element[T] {
	e := &Element[T]{Value: v, list: l, prev: l.tail}
	if l.tail != nil {
		l.tail.next = e
	} else {
		l.head = e
	}
	l.tail = e
	l.length++
	return e
}

// PopFront removes and returns the first value. The second return is false
// on an empty list.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	v := l.head.Value
	l.Remove(l.head)
	return v, true
}

// PopBack removes and returns the last value. The second return is false
// on an empty list.
func (l *List[T]) PopBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	v := l.tail.Value
	l.Remove(l.tail)
	return v, true
}

// Remove unlinks e from the list. Removing an element that belongs to a
// different list is a no-op.
func (l *List[T]) Remove(e *Element[T]) {
	if e == nil || e.list != l {
		return
	}

	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}

	e.next, e.prev, e.list = nil, nil, nil
	l.length--
}

// Each calls fn for every value from front to back.
func (l *List[T]) Each(fn func(v T)) {
	for e := l.head; e != nil; e = e.next {
		fn(e.Value)
	}
}

// Slice returns the values from front to back.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.length)
	l.Each(func(v T) { out = append(out, v) })
	return out
}
