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
	"bytes"
	"testing"

	"github.com/moparisthebest/freespeech/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDictReport(t *testing.T) {
	dict, _, err := dictionary.NewDictionary(
		[]string{"one", "two", "three", "four", "zulu", "alpha", "mike"})
	require.NoError(t, err)
	rep := newDictReport(dict)
	assert.Equal(t, 7, rep.Size)
	assert.Equal(t, 2, rep.BitsPerWord)
	assert.Equal(t, 4, rep.UsableWords)
	assert.Equal(t, []string{"alpha", "mike", "zulu"}, rep.Unreachable)

	var buf bytes.Buffer
	rep.WriteText(&buf)
	assert.Contains(t, buf.String(), "bits per word: 2")
	assert.Contains(t, buf.String(), "unreachable (3):")
}

func TestNewDictReportExact(t *testing.T) {
	dict, _, err := dictionary.NewDictionary([]string{"a", "b", "c", "d"})
	require.NoError(t, err)
	rep := newDictReport(dict)
	assert.Empty(t, rep.Unreachable)
}
