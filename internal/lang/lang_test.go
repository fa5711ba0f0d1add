// SPDX-License-Identifier: MPL-2.0

package lang

import (
	"testing"

	"github.com/invowk/modhost/internal/lang/cuelang"
	"github.com/invowk/modhost/internal/lang/shell"
	"github.com/invowk/modhost/pkg/adapter"
)

func TestRegisterBuiltins(t *testing.T) {
	r := adapter.NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		t.Fatalf("RegisterBuiltins() error = %v", err)
	}

	for _, id := range []string{shell.ID, cuelang.ID} {
		a, err := r.GetOrCreate(id, "test")
		if err != nil {
			t.Fatalf("GetOrCreate(%q) error = %v", id, err)
		}
		if a.ID() != id {
			t.Errorf("ID() = %q, want %q", a.ID(), id)
		}
	}

	if err := RegisterBuiltins(r); err == nil {
		t.Error("registering builtins twice should fail")
	}
}
