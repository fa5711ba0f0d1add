// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors: an operation, the resource it
// touched, the cause, and suggestions the CLI prints alongside the message.
package issue
