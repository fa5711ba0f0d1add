// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/invowk/modhost/pkg/origin"
)

// archiveExtensions are file suffixes treated as packaged mods.
var archiveExtensions = []string{".zip", ".jar"}

// Candidate is a possible mod origin found by Scan.
type Candidate struct {
	Location origin.Location
	Kind     origin.Kind
}

// Scan lists the immediate children of dir that may be mods: directories and
// archive files. Hidden entries are skipped and the result is sorted by name.
func Scan(dir string) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan mods directory %s: %w", dir, err)
	}

	var out []Candidate
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		loc := origin.Location(filepath.Join(dir, name))
		switch {
		case e.IsDir():
			out = append(out, Candidate{Location: loc, Kind: origin.KindDirectory})
		case e.Type().IsRegular() && isArchiveName(name):
			out = append(out, Candidate{Location: loc, Kind: origin.KindArchive})
		}
	}

	slices.SortFunc(out, func(a, b Candidate) int {
		return strings.Compare(string(a.Location), string(b.Location))
	})
	return out, nil
}

func isArchiveName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return slices.Contains(archiveExtensions, ext)
}
