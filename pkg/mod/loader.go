// SPDX-License-Identifier: MPL-2.0

package mod

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/invowk/modhost/pkg/adapter"
	"github.com/invowk/modhost/pkg/modmeta"
	"github.com/invowk/modhost/pkg/origin"
)

// ErrNilDescriptor is returned when a container is requested without a descriptor.
var ErrNilDescriptor = errors.New("mod descriptor must not be nil")

type (
	// Loader builds containers that share one adapter registry and one
	// origin resolver.
	Loader struct {
		registry *adapter.Registry
		resolver *origin.Resolver
		logger   *log.Logger
	}

	// LoaderOption configures a Loader.
	LoaderOption func(*Loader)
)

// WithLogger sets the logger used for container events.
func WithLogger(logger *log.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader. A nil resolver is replaced with a default one.
func NewLoader(registry *adapter.Registry, resolver *origin.Resolver, opts ...LoaderOption) *Loader {
	if resolver == nil {
		resolver = origin.NewResolver()
	}
	l := &Loader{
		registry: registry,
		resolver: resolver,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Registry returns the adapter registry shared by the loader's containers.
func (l *Loader) Registry() *adapter.Registry { return l.registry }

// Resolver returns the origin resolver shared by the loader's containers.
func (l *Loader) Resolver() *origin.Resolver { return l.resolver }

// NewContainer binds desc and loc. When instantiate is set the adapter named
// by desc.Adapter is fetched from the registry now; otherwise the container
// never gets one. Instantiation failures are returned unchanged as
// *adapter.InstantiationError.
func (l *Loader) NewContainer(desc *modmeta.Descriptor, loc origin.Location, instantiate bool) (*Container, error) {
	if desc == nil {
		return nil, ErrNilDescriptor
	}

	c := &Container{
		meta:     desc,
		origin:   loc,
		resolver: l.resolver,
	}

	if instantiate {
		if l.registry == nil {
			return nil, &adapter.InstantiationError{AdapterID: desc.Adapter, ModID: desc.ID, Cause: adapter.ErrUnknownAdapter}
		}
		a, err := l.registry.GetOrCreate(desc.Adapter, desc.ID)
		if err != nil {
			return nil, err
		}
		c.adapter = a
	}

	l.logger.Debug("mod container created", "mod", desc.ID, "origin", loc, "adapter", desc.Adapter, "instantiated", instantiate)
	return c, nil
}

// Load reads the descriptor at loc and builds a container for it.
func (l *Loader) Load(loc origin.Location, instantiate bool) (*Container, error) {
	desc, err := modmeta.Read(loc)
	if err != nil {
		return nil, err
	}
	return l.NewContainer(desc, loc, instantiate)
}
