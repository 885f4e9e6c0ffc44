// Package textbuf provides a mutable, append-only text buffer with
// amortized O(1) growth and deferred per-line indentation.
//
// A Buffer is a low-overhead alternative to strings.Builder for code
// that assembles large amounts of text incrementally: generated source
// code, structured logs, serialized reports. Text and primitive values
// are formatted directly into the buffer's own storage, and while the
// indentation depth is non-zero every new line gets its indentation
// inserted automatically at the first write on that line.
package textbuf

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io"
)

// indentUnit is the one prefix byte inserted per indentation level at
// the start of a line.
const indentUnit = '\t'

// ErrInvalidCapacity is returned when a requested capacity is negative
// or too small to hold the current content.
var ErrInvalidCapacity = errors.New("invalid capacity")

// Buffer owns a contiguous, growable block of UTF-8 text.
//
// The zero value is an empty buffer ready for use. A Buffer is not safe
// for concurrent use; give each goroutine its own instance.
type Buffer struct {
	buf    []byte // len(buf) is the logical length, cap(buf) the capacity
	column int    // runes written since the last line break
	indent int    // indentation levels to insert at each line start
}

// New returns an empty buffer with room for capacity bytes. A capacity
// of zero postpones allocation until the first write.
func New(capacity int) (*Buffer, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("capacity %d: %w", capacity, ErrInvalidCapacity)
	}

	buffer := &Buffer{}
	if capacity > 0 {
		buffer.buf = make([]byte, 0, capacity)
	}
	return buffer, nil
}

// Len returns the number of bytes written so far, indentation included.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Cap returns the size of the backing storage.
func (b *Buffer) Cap() int {
	return cap(b.buf)
}

// Column returns the number of runes written since the last line break,
// counting any materialized indentation. Zero means the next write
// starts a new line.
func (b *Buffer) Column() int {
	return b.column
}

// IndentDepth returns the current indentation depth.
func (b *Buffer) IndentDepth() int {
	return b.indent
}

// Indent adjusts the indentation depth by levels, which may be
// negative. The depth never goes below zero.
//
// The new depth takes effect at the next write that starts a line;
// lines that already have content on them are unaffected, and changing
// the depth repeatedly between writes costs nothing.
func (b *Buffer) Indent(levels int) {
	b.indent += levels
	if b.indent < 0 {
		b.indent = 0
	}
}

// Grow reserves room for at least extra more bytes, reallocating if
// needed. Non-positive extra is a no-op.
func (b *Buffer) Grow(extra int) {
	if extra <= 0 {
		return
	}
	b.ensure(extra)
}

// SetCapacity reallocates the backing storage to hold exactly capacity
// bytes, preserving content. Asking for less than Len() fails with
// ErrInvalidCapacity and leaves the buffer unchanged.
func (b *Buffer) SetCapacity(capacity int) error {
	if capacity < len(b.buf) {
		return fmt.Errorf("capacity %d below length %d: %w",
			capacity, len(b.buf), ErrInvalidCapacity)
	}
	if capacity == cap(b.buf) {
		return nil
	}

	newBuf := make([]byte, len(b.buf), capacity)
	copy(newBuf, b.buf)
	b.buf = newBuf
	return nil
}

// Reset forgets the content, the column and the indentation depth, but
// keeps the allocated storage for reuse.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.column = 0
	b.indent = 0
}

// Bytes returns the written content. The returned slice shares storage
// with the buffer and is only valid until the next operation that may
// grow it.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// String returns an independent copy of the content.
func (b *Buffer) String() string {
	return string(b.buf)
}

// Hash returns the 32-bit FNV-1a hash of the current content. It is
// recomputed on every call.
func (b *Buffer) Hash() uint32 {
	hasher := fnv.New32a()
	_, _ = hasher.Write(b.buf)
	return hasher.Sum32()
}

// WriteTo copies the content to writer. The buffer is left unchanged.
func (b *Buffer) WriteTo(writer io.Writer) (int64, error) {
	written, err := writer.Write(b.buf)
	return int64(written), err
}

// ensure makes room for at least extra more bytes. Growth doubles the
// capacity, so a sequence of appends costs amortized O(1) per byte.
func (b *Buffer) ensure(extra int) {
	if cap(b.buf)-len(b.buf) >= extra {
		return
	}

	newCapacity := len(b.buf) + extra
	if doubled := 2 * cap(b.buf); doubled > newCapacity {
		newCapacity = doubled
	}

	newBuf := make([]byte, len(b.buf), newCapacity)
	copy(newBuf, b.buf)
	b.buf = newBuf
}
