// SPDX-License-Identifier: MPL-2.0

// Package cuelang implements the lang.cue adapter: an entrypoint is a CUE
// file evaluated from the mod root and printed as JSON.
package cuelang

import (
	"context"
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/afero"

	"github.com/invowk/modhost/pkg/adapter"
	"github.com/invowk/modhost/pkg/cueutil"
)

// ID is the adapter identifier mods declare to use this adapter.
const ID = "lang.cue"

// Adapter evaluates CUE entrypoints.
type Adapter struct{}

// New is the adapter factory.
func New() (adapter.LanguageAdapter, error) {
	return &Adapter{}, nil
}

// ID implements adapter.LanguageAdapter.
func (a *Adapter) ID() string { return ID }

// Invoke evaluates the entrypoint file. When Args is non-empty, its first
// element selects a path inside the evaluated value (e.g. "outputs.greeting").
func (a *Adapter) Invoke(ctx context.Context, req adapter.InvokeRequest) error {
	if req.Root == nil {
		return errors.New("cue adapter: mod root is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := afero.ReadFile(req.Root.FS(), req.Entrypoint)
	if err != nil {
		return fmt.Errorf("failed to read entrypoint %s: %w", req.Entrypoint, err)
	}
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, req.Entrypoint); err != nil {
		return err
	}

	value := cuecontext.New().CompileBytes(data, cue.Filename(req.Entrypoint))
	if value.Err() != nil {
		return cueutil.FormatError(value.Err(), req.Entrypoint)
	}

	if len(req.Args) > 0 {
		value = value.LookupPath(cue.ParsePath(req.Args[0]))
		if !value.Exists() {
			return fmt.Errorf("%s: path %q not found", req.Entrypoint, req.Args[0])
		}
	}

	if err := value.Validate(cue.Concrete(true)); err != nil {
		return cueutil.FormatError(err, req.Entrypoint)
	}

	out, err := value.MarshalJSON()
	if err != nil {
		return cueutil.FormatError(err, req.Entrypoint)
	}
	if req.Stdout == nil {
		return nil
	}
	_, err = fmt.Fprintf(req.Stdout, "%s\n", out)
	return err
}
