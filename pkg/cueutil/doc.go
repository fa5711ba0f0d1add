// SPDX-License-Identifier: MPL-2.0

// Package cueutil holds the CUE decoding flow shared by mod descriptors and
// the host configuration:
//
//  1. Compile the embedded schema
//  2. Compile the user document and unify it with the schema definition
//  3. Validate and decode into a Go value
//
// # Usage
//
//	//go:embed mod_schema.cue
//	var schema []byte
//
//	result, err := cueutil.ParseAndDecode[Descriptor](schema, data, "#Mod",
//	    cueutil.WithFilename("mod.cue"))
//	if err != nil {
//	    return nil, err
//	}
//	return result.Value, nil
package cueutil
