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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"

	"github.com/moparisthebest/freespeech/dictionary"
)

type sortableWord string

func (w sortableWord) Compare(other collections.Comparable) int {
	o, ok := other.(sortableWord)
	if !ok {
		return -1
	}
	return strings.Compare(string(w), string(o))
}

// dictReport summarizes dictionary properties relevant
// for encoding.
type dictReport struct {
	Size        int      `json:"size"`
	BitsPerWord int      `json:"bitsPerWord"`
	UsableWords int      `json:"usableWords"`
	Unreachable []string `json:"unreachable"`
}

func newDictReport(dict *dictionary.Dictionary) dictReport {
	unreachable := new(collections.BinTree[sortableWord])
	unreachable.UniqValues = true
	for _, w := range dict.Unreachable() {
		unreachable.Add(sortableWord(w))
	}
	sorted := unreachable.ToSlice()
	ans := dictReport{
		Size:        dict.Size(),
		BitsPerWord: dict.Width(),
		UsableWords: dict.UsableSize(),
		Unreachable: make([]string, len(sorted)),
	}
	for i, w := range sorted {
		ans.Unreachable[i] = string(w)
	}
	return ans
}

func (r dictReport) WriteText(w io.Writer) {
	fmt.Fprintf(w, "size:          %d\n", r.Size)
	fmt.Fprintf(w, "bits per word: %d\n", r.BitsPerWord)
	fmt.Fprintf(w, "usable words:  %d\n", r.UsableWords)
	if len(r.Unreachable) > 0 {
		fmt.Fprintf(w, "unreachable (%d):\n", len(r.Unreachable))
		for _, v := range r.Unreachable {
			fmt.Fprintf(w, "  %s\n", v)
		}
	}
}
