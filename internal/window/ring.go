package window

import "io"

// lineRing retains the most recent capacity line records in arrival order.
// Each slot owns its bytes; when full, the slot at the cursor holds the
// oldest retained line and is the next to be overwritten.
type lineRing struct {
	slots [][]byte
	idx   int
	count int
}

func newLineRing(capacity uint64) *lineRing {
	return &lineRing{slots: make([][]byte, capacity)}
}

// add stores an owned copy of record, evicting the oldest line when full.
func (r *lineRing) add(record []byte) {
	if len(r.slots) == 0 {
		return
	}
	slot := r.slots[r.idx]
	if cap(slot) < len(record) {
		slot = make([]byte, len(record))
	}
	slot = slot[:len(record)]
	copy(slot, record)
	r.slots[r.idx] = slot
	r.idx = (r.idx + 1) % len(r.slots)
	if r.count < len(r.slots) {
		r.count++
	}
}

// writeTo emits the surviving records oldest-first.
func (r *lineRing) writeTo(w io.Writer) error {
	start := 0
	if r.count == len(r.slots) {
		start = r.idx
	}
	for i := 0; i < r.count; i++ {
		if _, err := w.Write(r.slots[(start+i)%len(r.slots)]); err != nil {
			return err
		}
	}
	return nil
}

// byteRing retains the most recent capacity bytes of everything written to
// it. It satisfies io.Writer so a plain copy can stream through it.
type byteRing struct {
	buf  []byte
	idx  int
	full bool
}

func newByteRing(capacity uint64) *byteRing {
	return &byteRing{buf: make([]byte, capacity)}
}

func (r *byteRing) Write(p []byte) (int, error) {
	written := len(p)
	if len(r.buf) == 0 {
		return written, nil
	}
	// Only the final len(buf) bytes of p can survive.
	if len(p) >= len(r.buf) {
		copy(r.buf, p[len(p)-len(r.buf):])
		r.idx = 0
		r.full = true
		return written, nil
	}
	n := copy(r.buf[r.idx:], p)
	if n < len(p) {
		copy(r.buf, p[n:])
		r.full = true
	}
	r.idx += len(p)
	if r.idx >= len(r.buf) {
		r.idx -= len(r.buf)
		r.full = true
	}
	return written, nil
}

// writeTo emits the retained bytes in original order.
func (r *byteRing) writeTo(w io.Writer) error {
	if !r.full {
		_, err := w.Write(r.buf[:r.idx])
		return err
	}
	if _, err := w.Write(r.buf[r.idx:]); err != nil {
		return err
	}
	_, err := w.Write(r.buf[:r.idx])
	return err
}
