// SPDX-License-Identifier: MPL-2.0

package modmeta

import (
	_ "embed"
	"errors"
	"fmt"
	"path"
	"regexp"
	"slices"
	"strings"
)

const (
	// CUEFileName is the preferred descriptor file name.
	CUEFileName = "mod.cue"
	// TOMLFileName is the alternative descriptor file name.
	TOMLFileName = "mod.toml"

	maxIDLength = 128
)

var (
	//go:embed mod_schema.cue
	modSchema []byte

	// ErrDescriptorNotFound is returned when an origin has neither mod.cue nor mod.toml.
	ErrDescriptorNotFound = errors.New("mod descriptor not found")

	// Keep in sync with #Mod in mod_schema.cue.
	idPattern             = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*(\.[a-zA-Z0-9_-]+)*$`)
	entrypointNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
)

type (
	// Descriptor is the declared metadata of a mod.
	Descriptor struct {
		// ID is the mod identifier (mandatory).
		ID string `json:"id" toml:"id"`
		// Version is free-form, semantic versioning recommended.
		Version     string `json:"version,omitempty" toml:"version"`
		Name        string `json:"name,omitempty" toml:"name"`
		Description string `json:"description,omitempty" toml:"description"`
		// Adapter is the language adapter identifier (mandatory).
		Adapter string `json:"adapter" toml:"adapter"`
		// Entrypoints maps entrypoint names to slash-separated paths relative
		// to the mod root.
		Entrypoints map[string]string `json:"entrypoints,omitempty" toml:"entrypoints"`
		Authors     []string          `json:"authors,omitempty" toml:"authors"`

		// FilePath is where the descriptor was read from (not part of the file).
		FilePath string `json:"-" toml:"-"`
	}

	// DescriptorError is returned when a descriptor cannot be read or parsed.
	DescriptorError struct {
		Path  string
		Cause error
	}
)

// Error implements the error interface.
func (e *DescriptorError) Error() string {
	return fmt.Sprintf("invalid mod descriptor %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *DescriptorError) Unwrap() error { return e.Cause }

// DisplayName returns Name, falling back to ID.
func (d *Descriptor) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// Entrypoint returns the path registered for name.
func (d *Descriptor) Entrypoint(name string) (string, bool) {
	p, ok := d.Entrypoints[name]
	return p, ok
}

// EntrypointNames returns the entrypoint names, sorted.
func (d *Descriptor) EntrypointNames() []string {
	names := make([]string, 0, len(d.Entrypoints))
	for name := range d.Entrypoints {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate checks the structural rules shared by both descriptor formats.
// CUE descriptors already satisfy the field rules through the schema; the
// entrypoint path rules need filesystem semantics CUE cannot express.
func (d *Descriptor) Validate() error {
	switch {
	case d.ID == "":
		return errors.New("id: must not be empty")
	case len(d.ID) > maxIDLength:
		return fmt.Errorf("id: too long (%d chars, max %d)", len(d.ID), maxIDLength)
	case !idPattern.MatchString(d.ID):
		return fmt.Errorf("id: %q must start with a letter and contain only letters, digits, '_', '-' and '.' separators", d.ID)
	case d.Adapter == "":
		return errors.New("adapter: must not be empty")
	}

	for _, name := range d.EntrypointNames() {
		if !entrypointNamePattern.MatchString(name) {
			return fmt.Errorf("entrypoints.%s: invalid entrypoint name", name)
		}
		if err := validateEntrypointPath(d.Entrypoints[name]); err != nil {
			return fmt.Errorf("entrypoints.%s: %w", name, err)
		}
	}
	return nil
}

// validateEntrypointPath rejects paths that are absolute or escape the root.
func validateEntrypointPath(p string) error {
	if p == "" {
		return errors.New("path must not be empty")
	}
	if strings.ContainsRune(p, '\x00') {
		return errors.New("path contains a null byte")
	}
	slashed := strings.ReplaceAll(p, `\`, "/")
	if strings.HasPrefix(slashed, "/") || (len(slashed) > 1 && slashed[1] == ':') {
		return fmt.Errorf("absolute path %q is not allowed; use a path relative to the mod root", p)
	}
	if cleaned := path.Clean(slashed); cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("path %q escapes the mod root", p)
	}
	return nil
}
