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

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfValidate(t *testing.T) {
	var c Conf
	assert.NoError(t, c.Validate())
	assert.False(t, c.IsConfigured())

	c.Type = "sqlite"
	assert.Error(t, c.Validate())
	c.Name = "/tmp/words.db"
	assert.NoError(t, c.Validate())
	assert.True(t, c.IsConfigured())

	c.Type = "postgres"
	assert.Error(t, c.Validate())

	c.Type = "mysql"
	c.TablePrefix = "1abc"
	assert.Error(t, c.Validate())
	c.TablePrefix = "fs_test"
	assert.NoError(t, c.Validate())
}

func TestConfTable(t *testing.T) {
	var c Conf
	assert.Equal(t, "freespeech_wordlist", c.Table())
	c.TablePrefix = "custom"
	assert.Equal(t, "custom_wordlist", c.Table())
}

func TestValidateListName(t *testing.T) {
	assert.NoError(t, ValidateListName("bip39-english"))
	assert.NoError(t, ValidateListName("wordnet_nouns.v3"))
	assert.Error(t, ValidateListName(""))
	assert.Error(t, ValidateListName("a b"))
	assert.Error(t, ValidateListName("x';DROP"))
}
