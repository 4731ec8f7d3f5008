// ABOUTME: Pooled append buffer holding exactly one frame of terminal output; recycled via sync.Pool
// ABOUTME: The renderer appends escape sequences and text, then flushes it with a single Write

package tui

import (
	"io"
	"strconv"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any {
		return &RenderBuffer{
			buf: make([]byte, 0, 4096),
		}
	},
}

// AcquireBuffer gets an empty RenderBuffer from the pool.
func AcquireBuffer() *RenderBuffer {
	buf := bufferPool.Get().(*RenderBuffer)
	buf.Reset()
	return buf
}

// ReleaseBuffer returns a RenderBuffer to the pool. The buffer's
// contents must not be used afterwards.
func ReleaseBuffer(buf *RenderBuffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}

// RenderBuffer is a growable byte buffer for one frame.
type RenderBuffer struct {
	buf []byte
}

// Append grows the buffer by len(p) bytes, preserving prior content.
func (b *RenderBuffer) Append(p []byte) {
	b.buf = append(b.buf, p...)
}

// AppendString appends the bytes of s.
func (b *RenderBuffer) AppendString(s string) {
	b.buf = append(b.buf, s...)
}

// AppendByte appends a single byte.
func (b *RenderBuffer) AppendByte(c byte) {
	b.buf = append(b.buf, c)
}

// AppendInt appends the decimal form of n.
func (b *RenderBuffer) AppendInt(n int) {
	b.buf = strconv.AppendInt(b.buf, int64(n), 10)
}

// Bytes returns the buffered frame. The slice aliases the buffer.
func (b *RenderBuffer) Bytes() []byte {
	return b.buf
}

// Len returns the number of buffered bytes.
func (b *RenderBuffer) Len() int {
	return len(b.buf)
}

// Reset clears the buffer for reuse without deallocating.
func (b *RenderBuffer) Reset() {
	b.buf = b.buf[:0]
}

// WriteTo flushes the whole buffer to w in one Write call.
func (b *RenderBuffer) WriteTo(w io.Writer) (int64, error) {
	if len(b.buf) == 0 {
		return 0, nil
	}
	n, err := w.Write(b.buf)
	if err == nil && n < len(b.buf) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}
