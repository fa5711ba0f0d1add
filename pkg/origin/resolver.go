// SPDX-License-Identifier: MPL-2.0

package origin

import (
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

type (
	// Resolver translates Locations into Roots. It is safe for concurrent use.
	Resolver struct {
		logger  *log.Logger
		onMount func(Location)
		mounts  atomic.Int64
	}

	// ResolverOption configures a Resolver.
	ResolverOption func(*Resolver)
)

// WithLogger sets the logger used for mount events.
func WithLogger(logger *log.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMountHook registers fn to be called after every successful archive mount.
func WithMountHook(fn func(Location)) ResolverOption {
	return func(r *Resolver) { r.onMount = fn }
}

// NewResolver creates a Resolver.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveRoot returns the root for loc. Directory origins are returned as-is;
// archive origins are mounted read-only. Each call on an archive creates a
// new mount.
func (r *Resolver) ResolveRoot(loc Location) (*Root, error) {
	root, err := Open(loc)
	if err != nil {
		r.logger.Debug("origin resolution failed", "origin", loc, "err", err)
		return nil, err
	}

	if root.IsArchive() {
		r.mounts.Add(1)
		r.logger.Debug("mounted archive", "origin", loc)
		if r.onMount != nil {
			r.onMount(loc)
		}
	}
	return root, nil
}

// Mounts returns the number of archive mounts performed by this resolver.
func (r *Resolver) Mounts() int64 {
	return r.mounts.Load()
}
