// SPDX-License-Identifier: MPL-2.0

package modmeta

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/invowk/modhost/pkg/cueutil"
	"github.com/invowk/modhost/pkg/origin"
)

// ParseCUE parses a mod.cue document. filename is used in error messages.
func ParseCUE(data []byte, filename string) (*Descriptor, error) {
	result, err := cueutil.ParseAndDecode[Descriptor](modSchema, data, "#Mod", cueutil.WithFilename(filename))
	if err != nil {
		return nil, &DescriptorError{Path: filename, Cause: err}
	}
	return finish(result.Value, filename)
}

// ParseTOML parses a mod.toml document. Unknown keys are rejected.
func ParseTOML(data []byte, filename string) (*Descriptor, error) {
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, filename); err != nil {
		return nil, &DescriptorError{Path: filename, Cause: err}
	}

	var d Descriptor
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, &DescriptorError{Path: filename, Cause: err}
	}
	return finish(&d, filename)
}

func finish(d *Descriptor, filename string) (*Descriptor, error) {
	if err := d.Validate(); err != nil {
		return nil, &DescriptorError{Path: filename, Cause: err}
	}
	d.FilePath = filename
	return d, nil
}

// Read loads the descriptor found at the top level of loc. The origin is
// opened for the duration of the call only.
func Read(loc origin.Location) (d *Descriptor, err error) {
	root, err := origin.Open(loc)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := root.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return ReadRoot(root)
}

// ReadRoot loads the descriptor from an already resolved root.
func ReadRoot(root *origin.Root) (*Descriptor, error) {
	label := func(name string) string {
		if root.IsArchive() {
			return root.Origin().String() + "!/" + name
		}
		return filepath.Join(root.Path(), name)
	}

	candidates := []struct {
		name  string
		parse func([]byte, string) (*Descriptor, error)
	}{
		{CUEFileName, ParseCUE},
		{TOMLFileName, ParseTOML},
	}
	for _, c := range candidates {
		data, err := afero.ReadFile(root.FS(), c.name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, &DescriptorError{Path: label(c.name), Cause: err}
		}
		return c.parse(data, label(c.name))
	}

	return nil, fmt.Errorf("%w in %s (expected %s or %s)", ErrDescriptorNotFound, root.Origin(), CUEFileName, TOMLFileName)
}
