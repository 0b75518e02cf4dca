// Package ringbuf implements a fixed-capacity FIFO ring buffer.
//
// The buffer holds the most recent values pushed into it, up to a capacity
// fixed at construction. Pushing into a full buffer silently evicts the
// oldest value, so memory stays O(capacity) no matter how much passes
// through. Capacity zero is legal and turns every Push into a discard.
//
// Example:
//
//	b := ringbuf.New[string](2)
//	b.Push("a")
//	b.Push("b")
//	b.Push("c") // evicts "a"
//	for v := range b.Drain() {
//		fmt.Println(v) // "b", then "c"; buffer is empty afterwards
//	}
package ringbuf
