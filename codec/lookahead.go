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

// lookahead is a fixed-capacity FIFO of symbol indices used
// by the decoder to hold back the last symbols of a stream
// until it is clear which of them form the trailer.
type lookahead struct {
	items [3]int
	head  int
	size  int
}

func (q *lookahead) Len() int {
	return q.size
}

// PushBack adds an item to the tail. The caller is responsible
// for keeping the size within the capacity.
func (q *lookahead) PushBack(v int) {
	if q.size == len(q.items) {
		panic("lookahead queue overflow")
	}
	q.items[(q.head+q.size)%len(q.items)] = v
	q.size++
}

// PopFront removes and returns the oldest item
func (q *lookahead) PopFront() int {
	if q.size == 0 {
		panic("lookahead queue underflow")
	}
	v := q.items[q.head]
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return v
}

// PopBack removes and returns the newest item
func (q *lookahead) PopBack() int {
	if q.size == 0 {
		panic("lookahead queue underflow")
	}
	q.size--
	return q.items[(q.head+q.size)%len(q.items)]
}
