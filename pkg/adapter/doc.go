// SPDX-License-Identifier: MPL-2.0

// Package adapter defines the language adapter capability and the registry
// that hands out one shared adapter instance per identifier.
//
// Identifiers come from mod descriptors and are treated as untrusted input:
// they are only ever used as keys into a factory table populated at startup,
// never resolved to code by name.
package adapter
