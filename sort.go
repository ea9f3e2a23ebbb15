package slist

// Sort reorders the list into non-descending order using c, or the bound
// comparator when c is nil. The sort is a stable merge sort over the nodes.
func (l *List[T]) Sort(c Comparator[T]) error {
	if err := l.check(); err != nil {
		return err
	}
	c = l.comparator(c)
	if c == nil {
		return l.fail("sort", ErrMissingComparator)
	}
	l.head = mergeSort(l.head, c)
	return nil
}

func mergeSort[T any](head *node[T], c Comparator[T]) *node[T] {
	if head == nil || head.next == nil {
		return head
	}
	back := split(head)
	return merge(mergeSort(head, c), mergeSort(back, c), c)
}

// split cuts the chain after its middle node and returns the second half.
func split[T any](head *node[T]) *node[T] {
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	back := slow.next
	slow.next = nil
	return back
}

// merge joins two sorted chains. On ties the node from a wins, which keeps
// the sort stable.
func merge[T any](a, b *node[T], c Comparator[T]) *node[T] {
	var head node[T]
	tail := &head
	for a != nil && b != nil {
		if c.Compare(b.val, a.val) < 0 {
			tail.next, b = b, b.next
		} else {
			tail.next, a = a, a.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return head.next
}
