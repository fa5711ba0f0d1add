// SPDX-License-Identifier: MPL-2.0

// Package shell implements the lang.sh adapter: entrypoints are POSIX shell
// scripts read from the mod root and run by the mvdan/sh interpreter, so no
// host shell is required.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/invowk/modhost/pkg/adapter"
)

const (
	// ID is the adapter identifier mods declare to use this adapter.
	ID = "lang.sh"

	// EnvModID is set to the invoking mod's id.
	EnvModID = "MODHOST_MOD_ID"
	// EnvModRoot is set to the mod root path.
	EnvModRoot = "MODHOST_MOD_ROOT"
)

// Adapter runs shell entrypoints. It is stateless and shared by all mods.
type Adapter struct{}

// New is the adapter factory.
func New() (adapter.LanguageAdapter, error) {
	return &Adapter{}, nil
}

// ID implements adapter.LanguageAdapter.
func (a *Adapter) ID() string { return ID }

// Invoke implements adapter.Invoker.
func (a *Adapter) Invoke(ctx context.Context, req adapter.InvokeRequest) error {
	if req.Root == nil {
		return errors.New("shell adapter: mod root is required")
	}

	script, err := afero.ReadFile(req.Root.FS(), req.Entrypoint)
	if err != nil {
		return fmt.Errorf("failed to read entrypoint %s: %w", req.Entrypoint, err)
	}

	prog, err := syntax.NewParser().Parse(bytes.NewReader(script), req.Entrypoint)
	if err != nil {
		return fmt.Errorf("failed to parse entrypoint: %w", err)
	}

	workDir, err := workDir(req)
	if err != nil {
		return err
	}

	env := append(os.Environ(),
		EnvModID+"="+req.ModID,
		EnvModRoot+"="+req.Root.Path(),
	)

	opts := []interp.RunnerOption{
		interp.Dir(workDir),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(req.Stdin, req.Stdout, req.Stderr),
	}
	// "--" keeps arguments such as "-v" from being read as shell options.
	if len(req.Args) > 0 {
		opts = append(opts, interp.Params(append([]string{"--"}, req.Args...)...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return &adapter.ExitError{Code: int(status)}
		}
		return fmt.Errorf("entrypoint execution failed: %w", err)
	}
	return nil
}

// workDir is the mod directory for directory roots. Archive roots have no
// host directory, so scripts run in the current working directory.
func workDir(req adapter.InvokeRequest) (string, error) {
	if req.Root.IsArchive() {
		return os.Getwd()
	}
	return filepath.Abs(req.Root.Path())
}
