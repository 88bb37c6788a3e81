package dirctx

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testProjectID = "0199039d-8b5e-7a2f-b7c4-1a2b3c4d5e6f"

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir temp: %v", err)
	}
	return tmp
}

func TestValidateValidContext(t *testing.T) {
	dc := &DirectoryContext{
		Version:   ContextFileVersion,
		ProjectID: testProjectID,
		ServerURL: "http://localhost:3000",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := dc.Validate(); err != nil {
		t.Fatalf("expected valid context, got error: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name string
		ctx  DirectoryContext
	}{
		{"wrong_version", DirectoryContext{Version: "999", ProjectID: testProjectID}},
		{"missing_project", DirectoryContext{Version: ContextFileVersion}},
		{"bad_project_id", DirectoryContext{Version: ContextFileVersion, ProjectID: "not-a-uuid"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.ctx.Validate(); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestReadMissingReturnsNil(t *testing.T) {
	chdirTemp(t)
	ctx, err := Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx != nil {
		t.Fatalf("expected nil context when %s missing", ContextFileName)
	}
}

func TestWriteAndRead_RoundTrip(t *testing.T) {
	tmp := chdirTemp(t)
	now := time.Now().UTC()
	dc := &DirectoryContext{
		Version:   ContextFileVersion,
		ProjectID: testProjectID,
		ServerURL: "http://example",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := Write(dc); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmp, ContextFileName)); err != nil {
		t.Fatalf("%s not written: %v", ContextFileName, err)
	}

	got, err := Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got == nil {
		t.Fatalf("expected non-nil context")
	}
	if got.ProjectID != dc.ProjectID || got.Version != ContextFileVersion {
		t.Fatalf("mismatch after round trip: %+v vs %+v", got, dc)
	}
}

func TestWriteRejectsInvalid(t *testing.T) {
	chdirTemp(t)
	dc := &DirectoryContext{Version: "bad"}
	if err := Write(dc); err == nil {
		t.Fatalf("expected error writing invalid context")
	}
}

func TestReadCorruptedJSON(t *testing.T) {
	chdirTemp(t)
	if err := os.WriteFile(ContextFileName, []byte("{not-json}"), 0644); err != nil {
		t.Fatalf("write corrupt: %v", err)
	}
	if ctx, err := Read(); err == nil || ctx != nil {
		t.Fatalf("expected error and nil context for corrupt JSON")
	}
}

func TestResolveProjectID(t *testing.T) {
	contextual := &DirectoryContext{Version: ContextFileVersion, ProjectID: testProjectID}

	// explicit wins
	got, err := ResolveProjectID("explicit-id", contextual)
	if err != nil || got != "explicit-id" {
		t.Fatalf("explicit should win, got=%q err=%v", got, err)
	}
	// fallback to context
	got, err = ResolveProjectID("", contextual)
	if err != nil || got != testProjectID {
		t.Fatalf("context should be used, got=%q err=%v", got, err)
	}
	// error when both empty
	if _, err := ResolveProjectID("", nil); err == nil {
		t.Fatalf("expected error when neither source provided")
	}
}
