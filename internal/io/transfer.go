package io

import (
	"fmt"
	"log/slog"
)

// ChunkSize is the maximum amount of bytes requested per transfer call.
const ChunkSize = 1_024_000

// transfer holds the state of a single copy. The read offset is only ever
// advanced by the transfer calls themselves.
type transfer struct {
	src     int
	dst     int
	size    uint64
	offset  int64
	written uint64
}

// Transfer copies from the src descriptor to the dst descriptor in chunks of
// [ChunkSize], with the kernel moving the data directly between both of them.
// It stops when the source is exhausted or a transfer call fails, in the
// latter case returning the bytes written so far with an [ErrTransfer].
func (i *Handler) Transfer(src int, dst int, size uint64) (uint64, error) {
	t := &transfer{
		src:  src,
		dst:  dst,
		size: size,
	}

	for {
		n, err := i.unixHandler.Sendfile(t.dst, t.src, &t.offset, ChunkSize)
		if err != nil {
			slog.Debug("Transfer call failed:",
				"offset", t.offset,
				"written", t.written,
				"err", err,
			)

			return t.written, fmt.Errorf("%w: %w", ErrTransfer, err)
		}

		if n <= 0 {
			break
		}

		t.written += uint64(n)

		if i.reporter != nil {
			i.reporter.Update(t.written, t.size)
		}
	}

	return t.written, nil
}
