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
	"bufio"
	"fmt"
	"os"
)

// MultiFileScanner wraps multiple word list files and provides
// a unified word scanning interface. Words are returned with
// punctuation already stripped, empty tokens are skipped.
type MultiFileScanner struct {
	filePaths    []string
	currentIndex int
	currentFile  *os.File
	scanner      *bufio.Scanner
	word         string
	err          error
}

// NewMultiFileScanner creates a scanner that reads through multiple files sequentially
func NewMultiFileScanner(filePaths ...string) (*MultiFileScanner, error) {
	if len(filePaths) == 0 {
		return nil, fmt.Errorf("at least one file path required")
	}

	mfs := &MultiFileScanner{
		filePaths:    filePaths,
		currentIndex: -1,
	}

	if !mfs.openNextFile() {
		return nil, mfs.err
	}

	return mfs, nil
}

func (mfs *MultiFileScanner) FilesID() string {
	if len(mfs.filePaths) > 0 {
		return fmt.Sprintf("multifile://%s", mfs.filePaths[0])
	}
	return "multifile://-"
}

func (mfs *MultiFileScanner) openNextFile() bool {
	if mfs.currentFile != nil {
		mfs.currentFile.Close()
		mfs.currentFile = nil
		mfs.scanner = nil
	}
	mfs.currentIndex++
	if mfs.currentIndex >= len(mfs.filePaths) {
		return false
	}

	file, err := os.Open(mfs.filePaths[mfs.currentIndex])
	if err != nil {
		mfs.err = fmt.Errorf("failed to open word list: %w", err)
		return false
	}

	mfs.currentFile = file
	mfs.scanner = newWordScanner(file)
	return true
}

// Scan advances to the next word, returning false when finished or on error
func (mfs *MultiFileScanner) Scan() bool {
	for mfs.scanner != nil {
		for mfs.scanner.Scan() {
			if mfs.scanner.Text() == OversizedToken {
				continue
			}
			mfs.word = StripPunct(mfs.scanner.Text())
			if mfs.word != "" {
				return true
			}
		}
		if err := mfs.scanner.Err(); err != nil {
			mfs.err = fmt.Errorf("failed to read %s: %w", mfs.filePaths[mfs.currentIndex], err)
			return false
		}
		// current file exhausted
		if !mfs.openNextFile() {
			break
		}
	}
	mfs.word = ""
	return false
}

// Text returns the current word
func (mfs *MultiFileScanner) Text() string {
	return mfs.word
}

// Err returns the first error encountered during scanning
func (mfs *MultiFileScanner) Err() error {
	return mfs.err
}

// Close closes any open file handles
func (mfs *MultiFileScanner) Close() error {
	if mfs.currentFile != nil {
		err := mfs.currentFile.Close()
		mfs.currentFile = nil
		mfs.scanner = nil
		return err
	}
	return nil
}
