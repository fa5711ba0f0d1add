// SPDX-License-Identifier: MPL-2.0

// Package mod provides the runtime container for a loaded mod.
//
// A Container binds a descriptor, the origin it was loaded from, the shared
// language adapter named by the descriptor and the mod's filesystem root.
// The adapter is created only at construction time, and only when asked
// for; the root is resolved on first use and memoized, so an archive-backed
// mod is mounted at most once per container.
package mod
