// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"
)

const testSchema = `
#Doc: close({
	name:   string & !=""
	count?: int & >=0
})
`

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

func TestParseAndDecode(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		result, err := ParseAndDecode[testDoc]([]byte(testSchema), []byte("name: \"a\"\ncount: 3\n"), "#Doc")
		if err != nil {
			t.Fatalf("ParseAndDecode() error = %v", err)
		}
		if result.Value.Name != "a" || result.Value.Count != 3 {
			t.Errorf("ParseAndDecode() = %+v", *result.Value)
		}
	})

	t.Run("schema violation names the file", func(t *testing.T) {
		_, err := ParseAndDecode[testDoc]([]byte(testSchema), []byte("name: \"a\"\ncount: -1\n"), "#Doc", WithFilename("doc.cue"))
		if err == nil {
			t.Fatal("expected error for negative count")
		}
		if !strings.Contains(err.Error(), "doc.cue") {
			t.Errorf("error %q should mention the file", err)
		}
	})

	t.Run("closed definition rejects unknown fields", func(t *testing.T) {
		_, err := ParseAndDecode[testDoc]([]byte(testSchema), []byte("name: \"a\"\nextra: true\n"), "#Doc")
		if err == nil {
			t.Fatal("expected error for unknown field")
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := ParseAndDecode[testDoc]([]byte(testSchema), []byte(`name: "a`), "#Doc")
		if err == nil {
			t.Fatal("expected syntax error")
		}
	})

	t.Run("oversized document", func(t *testing.T) {
		_, err := ParseAndDecode[testDoc]([]byte(testSchema), []byte(`name: "abcdef"`), "#Doc", WithMaxFileSize(4))
		if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
			t.Fatalf("expected size error, got %v", err)
		}
	})

	t.Run("missing definition is an internal error", func(t *testing.T) {
		_, err := ParseAndDecode[testDoc]([]byte(testSchema), []byte(`name: "a"`), "#Missing")
		if err == nil || !strings.Contains(err.Error(), "internal error") {
			t.Fatalf("expected internal error, got %v", err)
		}
	})
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"id"}, "id"},
		{[]string{"entrypoints", "main"}, "entrypoints.main"},
		{[]string{"authors", "0"}, "authors[0]"},
		{[]string{"a", "1", "b"}, "a[1].b"},
	}
	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
