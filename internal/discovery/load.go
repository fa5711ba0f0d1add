// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/invowk/modhost/pkg/mod"
	"github.com/invowk/modhost/pkg/modmeta"
)

// DefaultParallelism is used when Options.Parallelism is not positive.
const DefaultParallelism = 4

type (
	// Options controls Load.
	Options struct {
		// Instantiate creates each container's adapter eagerly.
		Instantiate bool
		// Parallelism bounds concurrent loads.
		Parallelism int
		// Logger receives one warning per diagnostic.
		Logger *log.Logger
	}

	// Result holds the containers that loaded and the problems that did not
	// stop the load. Containers are ordered like the candidates.
	Result struct {
		Containers  []*mod.Container
		Diagnostics []Diagnostic
	}

	slot struct {
		container *mod.Container
		diag      *Diagnostic
	}
)

// HasErrors reports whether any diagnostic has error severity.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Load builds a container for every candidate. Failures of individual
// candidates become diagnostics; only context cancellation fails the call.
// When two candidates declare the same mod id the first one in candidate
// order is kept.
func Load(ctx context.Context, loader *mod.Loader, candidates []Candidate, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	limit := opts.Parallelism
	if limit <= 0 {
		limit = DefaultParallelism
	}

	slots := make([]slot, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			container, err := loader.Load(c.Location, opts.Instantiate)
			if err != nil {
				slots[i].diag = loadDiagnostic(c, err)
				return nil
			}
			slots[i].container = container
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load mods: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load mods: %w", err)
	}

	res := &Result{}
	owners := make(map[string]string, len(candidates))
	for i, s := range slots {
		switch {
		case s.diag != nil:
			res.Diagnostics = append(res.Diagnostics, *s.diag)
		case owners[s.container.ID()] != "":
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Severity: SeverityError,
				Code:     CodeDuplicateID,
				Message:  fmt.Sprintf("mod id %q is already provided by %s", s.container.ID(), owners[s.container.ID()]),
				Path:     string(candidates[i].Location),
			})
		default:
			owners[s.container.ID()] = string(candidates[i].Location)
			res.Containers = append(res.Containers, s.container)
		}
	}

	for _, d := range res.Diagnostics {
		logger.Warn("mod skipped", "path", d.Path, "code", d.Code, "err", d.Message)
	}
	return res, nil
}

func loadDiagnostic(c Candidate, err error) *Diagnostic {
	d := &Diagnostic{
		Severity: SeverityError,
		Code:     CodeLoadFailed,
		Message:  err.Error(),
		Path:     string(c.Location),
		Cause:    err,
	}
	if errors.Is(err, modmeta.ErrDescriptorNotFound) {
		d.Severity = SeverityWarning
		d.Code = CodeNoDescriptor
	}
	return d
}
