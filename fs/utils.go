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

package fs

import (
	"os"
	"path/filepath"
	"sort"
)

// IsDir tests whether a provided path represents
// a directory. If not or in case of an IO error,
// false is returned.
func IsDir(path string) bool {
	finfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return finfo.Mode().IsDir()
}

// IsFile tests whether a provided path represents
// a file. If not or in case of an IO error,
// false is returned.
func IsFile(path string) bool {
	finfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return finfo.Mode().IsRegular()
}

// FileSize returns size of a file in bytes. In case
// of an error (or for non-regular files), -1 is returned.
func FileSize(path string) int64 {
	finfo, err := os.Stat(path)
	if err != nil || !finfo.Mode().IsRegular() {
		return -1
	}
	return finfo.Size()
}

// ListFilesInDir returns paths of all the regular
// files in a directory specified by 'path'. The paths
// are sorted by name so the order of words loaded
// from multiple files is stable.
func ListFilesInDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return []string{}, err
	}
	ans := make([]string, 0, len(entries))
	for _, v := range entries {
		if v.Type().IsRegular() {
			ans = append(ans, filepath.Join(path, v.Name()))
		}
	}
	sort.Strings(ans)
	return ans, nil
}

// ExpandPaths replaces each directory in paths with the files
// it contains. Paths which are neither files nor directories
// are kept as they are so a later open reports a proper error.
func ExpandPaths(paths ...string) ([]string, error) {
	ans := make([]string, 0, len(paths))
	for _, p := range paths {
		if IsDir(p) {
			tmp, err := ListFilesInDir(p)
			if err != nil {
				return nil, err
			}
			ans = append(ans, tmp...)

		} else {
			ans = append(ans, p)
		}
	}
	return ans, nil
}
