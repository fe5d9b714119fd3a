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

package dictionary

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Modder represents a type which is able
// to modify a word before it enters a dictionary
// (e.g. to change its case)
type Modder interface {
	Mod(s string) string
}

type ToLower struct{}

func (m ToLower) Mod(s string) string {
	return strings.ToLower(s)
}

// FirstRunes keeps at most N leading characters
// of a word.
type FirstRunes struct {
	N int
}

func (m FirstRunes) Mod(s string) string {
	if utf8.RuneCountInString(s) <= m.N {
		return s
	}
	i := 0
	for pos := range s {
		if i == m.N {
			return s[:pos]
		}
		i++
	}
	return s
}

type Identity struct{}

func (m Identity) Mod(s string) string {
	return s
}

type ModderChain struct {
	fn []Modder
}

func NewModderChain(fn []Modder) *ModderChain {
	return &ModderChain{fn: fn}
}

func (m *ModderChain) Mod(s string) string {
	ans := s
	for _, mod := range m.fn {
		ans = mod.Mod(ans)
	}
	return ans
}

// ModderFactory creates a modder by its name. Supported names
// are "toLower", "firstN" (where N is a positive number, e.g.
// "first5") and an empty string for identity.
func ModderFactory(name string) (Modder, error) {
	if name == "toLower" {
		return ToLower{}, nil

	} else if name == "" {
		return Identity{}, nil

	} else if strings.HasPrefix(name, "first") {
		var n int
		if _, err := fmt.Sscanf(name, "first%d", &n); err != nil || n < 1 {
			return nil, fmt.Errorf("invalid modder %s", name)
		}
		return FirstRunes{N: n}, nil
	}
	return nil, fmt.Errorf("unknown modder function %s", name)
}

// ParseModderChain creates a chain out of modder names.
func ParseModderChain(names []string) (*ModderChain, error) {
	fn := make([]Modder, 0, len(names))
	for _, name := range names {
		m, err := ModderFactory(name)
		if err != nil {
			return nil, err
		}
		fn = append(fn, m)
	}
	return NewModderChain(fn), nil
}
