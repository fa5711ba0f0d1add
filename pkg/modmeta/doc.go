// SPDX-License-Identifier: MPL-2.0

// Package modmeta reads mod descriptors.
//
// A mod carries its descriptor at the top level of its origin, either as
// mod.cue (validated against the embedded #Mod schema) or as mod.toml.
// When both exist mod.cue wins. Descriptors are read once, before the mod
// container exists, and are treated as immutable afterwards.
package modmeta
