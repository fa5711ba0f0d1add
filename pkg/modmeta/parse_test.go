// SPDX-License-Identifier: MPL-2.0

package modmeta

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/invowk/modhost/internal/testutil"
	"github.com/invowk/modhost/pkg/origin"
)

const sampleCUE = `id:          "modA"
version:     "1.2.0"
name:        "Mod A"
adapter:     "lang.sh"
entrypoints: main: "scripts/main.sh"
authors: ["ada"]
`

const sampleTOML = `id = "modA"
version = "1.2.0"
name = "Mod A"
adapter = "lang.sh"
authors = ["ada"]

[entrypoints]
main = "scripts/main.sh"
`

var sampleDescriptor = Descriptor{
	ID:          "modA",
	Version:     "1.2.0",
	Name:        "Mod A",
	Adapter:     "lang.sh",
	Entrypoints: map[string]string{"main": "scripts/main.sh"},
	Authors:     []string{"ada"},
}

var ignoreFilePath = cmpopts.IgnoreFields(Descriptor{}, "FilePath")

func TestParseCUE(t *testing.T) {
	got, err := ParseCUE([]byte(sampleCUE), "mod.cue")
	if err != nil {
		t.Fatalf("ParseCUE() error = %v", err)
	}
	if diff := cmp.Diff(sampleDescriptor, *got, ignoreFilePath); diff != "" {
		t.Errorf("ParseCUE() mismatch (-want +got):\n%s", diff)
	}
	if got.FilePath != "mod.cue" {
		t.Errorf("FilePath = %q", got.FilePath)
	}
}

func TestParseTOML(t *testing.T) {
	got, err := ParseTOML([]byte(sampleTOML), "mod.toml")
	if err != nil {
		t.Fatalf("ParseTOML() error = %v", err)
	}
	if diff := cmp.Diff(sampleDescriptor, *got, ignoreFilePath); diff != "" {
		t.Errorf("ParseTOML() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		parse func([]byte, string) (*Descriptor, error)
		data  string
	}{
		{"cue missing adapter", ParseCUE, `id: "modA"`},
		{"cue bad id", ParseCUE, "id: \"9lives\"\nadapter: \"lang.sh\"\n"},
		{"cue unknown field", ParseCUE, "id: \"a\"\nadapter: \"lang.sh\"\nextra: 1\n"},
		{"cue escaping entrypoint", ParseCUE, "id: \"a\"\nadapter: \"lang.sh\"\nentrypoints: main: \"../../etc/passwd\"\n"},
		{"cue absolute entrypoint", ParseCUE, "id: \"a\"\nadapter: \"lang.sh\"\nentrypoints: main: \"/bin/sh\"\n"},
		{"toml missing id", ParseTOML, `adapter = "lang.sh"`},
		{"toml bad id", ParseTOML, "id = \"has space\"\nadapter = \"lang.sh\"\n"},
		{"toml unknown key", ParseTOML, "id = \"a\"\nadapter = \"lang.sh\"\nextra = 1\n"},
		{"toml escaping entrypoint", ParseTOML, "id = \"a\"\nadapter = \"lang.sh\"\n[entrypoints]\nmain = \"..\"\n"},
		{"toml syntax", ParseTOML, `id = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parse([]byte(tt.data), "desc")
			var descErr *DescriptorError
			if !errors.As(err, &descErr) {
				t.Fatalf("error = %v, want *DescriptorError", err)
			}
			if descErr.Path != "desc" {
				t.Errorf("Path = %q, want %q", descErr.Path, "desc")
			}
		})
	}
}

func TestValidateEntrypointPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"main.sh", false},
		{"scripts/main.sh", false},
		{"./scripts/../main.sh", false},
		{"", true},
		{"/abs.sh", true},
		{`C:\abs.sh`, true},
		{"../up.sh", true},
		{`scripts\..\..\up.sh`, true},
		{"a\x00b", true},
	}
	for _, tt := range tests {
		if err := validateEntrypointPath(tt.path); (err != nil) != tt.wantErr {
			t.Errorf("validateEntrypointPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestRead(t *testing.T) {
	tmp := t.TempDir()

	t.Run("directory with mod.cue", func(t *testing.T) {
		dir := filepath.Join(tmp, "cue-dir")
		testutil.MustWriteTree(t, dir, map[string]string{CUEFileName: sampleCUE})

		got, err := Read(origin.Location(dir))
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if diff := cmp.Diff(sampleDescriptor, *got, ignoreFilePath); diff != "" {
			t.Errorf("Read() mismatch (-want +got):\n%s", diff)
		}
		if got.FilePath != filepath.Join(dir, CUEFileName) {
			t.Errorf("FilePath = %q", got.FilePath)
		}
	})

	t.Run("mod.cue wins over mod.toml", func(t *testing.T) {
		dir := filepath.Join(tmp, "both")
		testutil.MustWriteTree(t, dir, map[string]string{
			CUEFileName:  sampleCUE,
			TOMLFileName: "id = \"other\"\nadapter = \"lang.cue\"\n",
		})

		got, err := Read(origin.Location(dir))
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if got.ID != "modA" {
			t.Errorf("ID = %q, want modA", got.ID)
		}
	})

	t.Run("archive with mod.toml", func(t *testing.T) {
		archive := filepath.Join(tmp, "toml.zip")
		testutil.MustWriteZip(t, archive, testutil.ZipEntry{Name: TOMLFileName, Body: sampleTOML})

		got, err := Read(origin.Location(archive))
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if diff := cmp.Diff(sampleDescriptor, *got, ignoreFilePath); diff != "" {
			t.Errorf("Read() mismatch (-want +got):\n%s", diff)
		}
		if !strings.HasSuffix(got.FilePath, "toml.zip!/mod.toml") {
			t.Errorf("FilePath = %q", got.FilePath)
		}
	})

	t.Run("missing descriptor", func(t *testing.T) {
		dir := filepath.Join(tmp, "empty")
		testutil.MustMkdirAll(t, dir, 0o755)

		_, err := Read(origin.Location(dir))
		if !errors.Is(err, ErrDescriptorNotFound) {
			t.Fatalf("error = %v, want ErrDescriptorNotFound", err)
		}
	})

	t.Run("missing origin", func(t *testing.T) {
		_, err := Read(origin.Location(filepath.Join(tmp, "nope")))
		var notFound *origin.OriginNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("error = %v, want *origin.OriginNotFoundError", err)
		}
	})
}

func TestDescriptorHelpers(t *testing.T) {
	d := Descriptor{ID: "x", Entrypoints: map[string]string{"b": "b.sh", "a": "a.sh"}}
	if d.DisplayName() != "x" {
		t.Errorf("DisplayName() = %q", d.DisplayName())
	}
	d.Name = "Pretty"
	if d.DisplayName() != "Pretty" {
		t.Errorf("DisplayName() = %q", d.DisplayName())
	}
	if diff := cmp.Diff([]string{"a", "b"}, d.EntrypointNames()); diff != "" {
		t.Errorf("EntrypointNames() mismatch:\n%s", diff)
	}
	if p, ok := d.Entrypoint("a"); !ok || p != "a.sh" {
		t.Errorf("Entrypoint(a) = %q, %v", p, ok)
	}
}
