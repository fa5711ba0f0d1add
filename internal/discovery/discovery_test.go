// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/invowk/modhost/internal/testutil"
	"github.com/invowk/modhost/pkg/adapter"
	"github.com/invowk/modhost/pkg/mod"
	"github.com/invowk/modhost/pkg/origin"
)

type stubAdapter struct{}

func (stubAdapter) ID() string { return "lang.stub" }

func modCUE(id string) string {
	return fmt.Sprintf("id: %q\nadapter: \"lang.stub\"\n", id)
}

func newLoader() *mod.Loader {
	r := adapter.NewRegistry()
	r.MustRegister("lang.stub", func() (adapter.LanguageAdapter, error) { return stubAdapter{}, nil })
	return mod.NewLoader(r, origin.NewResolver())
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteTree(t, dir, map[string]string{
		"b-dir/mod.cue":   modCUE("b"),
		".hidden/mod.cue": modCUE("h"),
		"notes.txt":       "ignored",
	})
	testutil.MustWriteZip(t, filepath.Join(dir, "a.zip"), testutil.Files(map[string]string{"mod.cue": modCUE("a")})...)
	testutil.MustWriteZip(t, filepath.Join(dir, "c.JAR"), testutil.Files(map[string]string{"mod.cue": modCUE("c")})...)

	got, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	want := []Candidate{
		{Location: origin.Location(filepath.Join(dir, "a.zip")), Kind: origin.KindArchive},
		{Location: origin.Location(filepath.Join(dir, "b-dir")), Kind: origin.KindDirectory},
		{Location: origin.Location(filepath.Join(dir, "c.JAR")), Kind: origin.KindArchive},
	}
	if len(got) != len(want) {
		t.Fatalf("Scan() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Scan()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScan_MissingDir(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("Scan() expected error for missing directory")
	}
}

func TestLoad_CollectsDiagnostics(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteTree(t, dir, map[string]string{
		"a/mod.cue":   modCUE("alpha"),
		"b/mod.cue":   modCUE("alpha"),
		"c/README.md": "no descriptor",
		"d/mod.cue":   `id: 1`,
		"e/mod.toml":  "id = \"echo\"\nadapter = \"lang.stub\"\n",
		"f/mod.cue":   `id: "foxtrot", adapter: "lang.missing"`,
	})
	testutil.MustWriteFile(t, filepath.Join(dir, "g.zip"), "not a zip")

	candidates, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	res, err := Load(t.Context(), newLoader(), candidates, Options{Instantiate: true, Parallelism: 2})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var ids []string
	for _, c := range res.Containers {
		ids = append(ids, c.ID())
	}
	if fmt.Sprint(ids) != "[alpha echo]" {
		t.Errorf("container ids = %v, want [alpha echo]", ids)
	}
	if res.Containers[0].OriginFile() != origin.Location(filepath.Join(dir, "a")) {
		t.Errorf("duplicate id kept %s, want the first candidate", res.Containers[0].OriginFile())
	}

	codes := map[string]string{}
	for _, d := range res.Diagnostics {
		codes[filepath.Base(d.Path)] = d.Code
	}
	wantCodes := map[string]string{
		"b":     CodeDuplicateID,
		"c":     CodeNoDescriptor,
		"d":     CodeLoadFailed,
		"f":     CodeLoadFailed,
		"g.zip": CodeLoadFailed,
	}
	if len(codes) != len(wantCodes) {
		t.Errorf("diagnostics = %v, want %v", res.Diagnostics, wantCodes)
	}
	for name, code := range wantCodes {
		if codes[name] != code {
			t.Errorf("diagnostic for %s = %q, want %q", name, codes[name], code)
		}
	}
	if !res.HasErrors() {
		t.Error("HasErrors() = false")
	}

	for _, d := range res.Diagnostics {
		if filepath.Base(d.Path) == "f" {
			var ie *adapter.InstantiationError
			if !errors.As(d.Cause, &ie) {
				t.Errorf("diagnostic cause %T is not an InstantiationError", d.Cause)
			}
		}
	}
}

func TestLoad_WithoutInstantiationSkipsAdapter(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteTree(t, dir, map[string]string{
		"f/mod.cue": `id: "foxtrot", adapter: "lang.missing"`,
	})
	candidates, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	res, err := Load(t.Context(), newLoader(), candidates, Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(res.Containers) != 1 || res.Containers[0].Adapter() != nil {
		t.Errorf("Load() = %+v, want one container without adapter", res)
	}
	if res.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", res.Diagnostics)
	}
}

func TestLoad_Canceled(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteTree(t, dir, map[string]string{"a/mod.cue": modCUE("alpha")})
	candidates, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if _, err := Load(ctx, newLoader(), candidates, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Severity: SeverityWarning, Path: "mods/x", Message: "boom"}
	if got := d.String(); got != "warning: mods/x: boom" {
		t.Errorf("String() = %q", got)
	}
}
