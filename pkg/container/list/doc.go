/*
Package list provides a generic doubly-linked list and a slice-backed stack.

Unlike container/list in the standard library, List is type-parameterized,
so no assertions are needed when reading values:

	l := list.New(1, 2, 3)
	l.PushFront(0)

	for e := l.Front(); e != nil; e = e.Next() {
		fmt.Println(e.Value)
	}

Neither type is safe for concurrent use; guard shared instances with a
mutex.
*/
package list
