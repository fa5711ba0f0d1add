// SPDX-License-Identifier: MPL-2.0

package mod

import (
	"sync"

	"github.com/invowk/modhost/pkg/adapter"
	"github.com/invowk/modhost/pkg/modmeta"
	"github.com/invowk/modhost/pkg/origin"
)

// Container is the value the runtime hands around for a loaded mod. All
// methods are safe for concurrent use.
type Container struct {
	meta     *modmeta.Descriptor
	origin   origin.Location
	adapter  adapter.LanguageAdapter
	resolver *origin.Resolver

	rootMu sync.Mutex
	root   *origin.Root
}

// ID returns the descriptor id.
func (c *Container) ID() string { return c.meta.ID }

// Metadata returns the descriptor the container was built from.
func (c *Container) Metadata() *modmeta.Descriptor { return c.meta }

// OriginFile returns the location the mod was loaded from.
func (c *Container) OriginFile() origin.Location { return c.origin }

// Adapter returns the adapter bound at construction, or nil when the
// container was built without instantiation.
func (c *Container) Adapter() adapter.LanguageAdapter { return c.adapter }

// Root returns the mod's filesystem root, resolving it on the first call.
// Later calls return the same *origin.Root without touching the origin
// again. A failed resolution is not remembered; the next call retries.
func (c *Container) Root() (*origin.Root, error) {
	c.rootMu.Lock()
	defer c.rootMu.Unlock()

	if c.root != nil {
		return c.root, nil
	}

	root, err := c.resolver.ResolveRoot(c.origin)
	if err != nil {
		return nil, err
	}
	c.root = root
	return root, nil
}
