// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Charles University, Faculty of Arts,
//                Department of Linguistics
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package codec

import (
	"fmt"
	"io"
)

const (
	maxIntWidth = 64
)

// BitBuffer is an append-only sequence of bits with a read
// cursor. Bits are stored MSB first. Consumed or flushed
// bytes can be removed from the front of the buffer which
// keeps memory usage independent of the total stream length.
//
// Invariant: len(data) == ceil(length / 8) and pos <= length.
type BitBuffer struct {
	data   []byte
	length int
	pos    int
}

// Len returns total number of bits held by the buffer
// (both read and unread).
func (bb *BitBuffer) Len() int {
	return bb.length
}

// RemainingBits returns number of unread bits
func (bb *BitBuffer) RemainingBits() int {
	return bb.length - bb.pos
}

// AppendBytes appends all bits of p, MSB first within each byte.
func (bb *BitBuffer) AppendBytes(p []byte) {
	if bb.length%8 == 0 {
		bb.data = append(bb.data, p...)
		bb.length += len(p) * 8
		return
	}
	for _, b := range p {
		bb.appendBits(uint64(b), 8)
	}
}

// AppendInt appends the lowest `width` bits of value, MSB first.
// The value must fit into the width.
func (bb *BitBuffer) AppendInt(value uint64, width int) error {
	if width < 0 || width > maxIntWidth {
		return fmt.Errorf("%w: unsupported width %d", ErrValueOverflow, width)
	}
	if width < maxIntWidth && value>>uint(width) != 0 {
		return fmt.Errorf("%w: %d in %d bits", ErrValueOverflow, value, width)
	}
	bb.appendBits(value, width)
	return nil
}

func (bb *BitBuffer) appendBits(value uint64, width int) {
	for width > 0 {
		used := bb.length % 8
		if used == 0 {
			bb.data = append(bb.data, 0)
		}
		free := 8 - used
		n := min(free, width)
		chunk := byte(value>>uint(width-n)) & byte(1<<uint(n)-1)
		bb.data[len(bb.data)-1] |= chunk << uint(free-n)
		width -= n
		bb.length += n
	}
}

// ReadInt consumes next `width` bits and returns them as an unsigned
// integer. If fewer bits are available, ErrInsufficientBits is returned
// and nothing is consumed.
func (bb *BitBuffer) ReadInt(width int) (uint64, error) {
	if width < 0 || width > maxIntWidth {
		return 0, fmt.Errorf("%w: unsupported width %d", ErrValueOverflow, width)
	}
	if bb.RemainingBits() < width {
		return 0, fmt.Errorf(
			"%w: requested %d, available %d", ErrInsufficientBits, width, bb.RemainingBits())
	}
	var ans uint64
	for width > 0 {
		avail := 8 - bb.pos%8
		n := min(avail, width)
		chunk := (bb.data[bb.pos/8] >> uint(avail-n)) & byte(1<<uint(n)-1)
		ans = ans<<uint(n) | uint64(chunk)
		width -= n
		bb.pos += n
	}
	return ans, nil
}

// Compact removes all the completely consumed bytes
// from the front of the buffer.
func (bb *BitBuffer) Compact() {
	drop := bb.pos / 8
	if drop == 0 {
		return
	}
	n := copy(bb.data, bb.data[drop:])
	bb.data = bb.data[:n]
	bb.pos -= drop * 8
	bb.length -= drop * 8
}

// FlushWholeBytes writes all the complete unread bytes to w and
// removes them from the buffer, but only in case their number
// exceeds the threshold. A possible trailing partial byte stays
// in the buffer. The read cursor must be at a byte boundary.
// The number of written bytes is returned.
func (bb *BitBuffer) FlushWholeBytes(w io.Writer, threshold int) (int, error) {
	if bb.pos%8 != 0 {
		return 0, fmt.Errorf("%w: read cursor at bit %d", ErrUnalignedStream, bb.pos)
	}
	start := bb.pos / 8
	end := bb.length / 8
	if end-start <= threshold {
		return 0, nil
	}
	written, err := w.Write(bb.data[start:end])
	if err != nil {
		return written, fmt.Errorf("failed to flush bit buffer: %w", err)
	}
	n := copy(bb.data, bb.data[end:])
	bb.data = bb.data[:n]
	bb.length -= end * 8
	bb.pos = 0
	return written, nil
}

// DrainRemainderToBytes returns all the unread bits as bytes
// and resets the buffer. The number of unread bits must be
// a multiple of 8.
func (bb *BitBuffer) DrainRemainderToBytes() ([]byte, error) {
	if bb.pos%8 != 0 || bb.RemainingBits()%8 != 0 {
		return []byte{}, fmt.Errorf(
			"%w: %d bits remaining", ErrUnalignedStream, bb.RemainingBits())
	}
	ans := make([]byte, bb.RemainingBits()/8)
	copy(ans, bb.data[bb.pos/8:])
	bb.Reset()
	return ans, nil
}

// Reset discards all the data
func (bb *BitBuffer) Reset() {
	bb.data = bb.data[:0]
	bb.length = 0
	bb.pos = 0
}

// NewBitBuffer creates an empty buffer with preallocated
// capacity for sizeHint bytes.
func NewBitBuffer(sizeHint int) *BitBuffer {
	return &BitBuffer{
		data: make([]byte, 0, max(sizeHint, 0)),
	}
}
