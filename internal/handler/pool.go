package handler

import (
	"bytes"
	"sync"
)

// maxPooledBufferSize keeps roll payloads with full reel strips from pinning large buffers
const maxPooledBufferSize = 64 << 10

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 4096)) // A roll with 3x40 symbols encodes to a few KB
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool unless it grew too large
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
