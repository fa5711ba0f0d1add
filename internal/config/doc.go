// SPDX-License-Identifier: MPL-2.0

// Package config loads modhost's configuration.
//
// Values are layered in Viper: built-in defaults, then an optional CUE file
// validated against the embedded #Config schema, then MODHOST_* environment
// variables.
package config
