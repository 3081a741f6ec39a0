package engine

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func fence(body string) string {
	return "```rust\n" + body + "\n```\n"
}

func TestRun_ReportsMissingExamples(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docs/guide.md",
		"# Guide\n\n"+fence("let e1 = 1;")+"\nprose\n\n"+fence("let e2 = 2;")+fence("let e3 = 3;"))
	writeFile(t, dir, "docs/api.md",
		"# API\n\n"+fence("let e4 = 4;")+fence("let e5 = 5;"))
	writeFile(t, dir, "src/lib.rs",
		"/// let e1 = 1;\nfn a() {}\n\n//! let e3 = 3;\n\n/// let e4 = 4;\nfn b() {}\n")

	res, err := Run(context.Background(), Config{Root: dir, DefaultExcludes: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Examples) != 5 {
		t.Fatalf("expected 5 examples, got %d", len(res.Examples))
	}
	if res.DocFiles != 2 || res.SourceFiles != 1 {
		t.Fatalf("file counts = (%d, %d), want (2, 1)", res.DocFiles, res.SourceFiles)
	}
	if len(res.Missing) != 2 {
		t.Fatalf("expected 2 missing, got %+v", res.Missing)
	}
	missing := map[string]bool{}
	for _, ex := range res.Missing {
		missing[ex.Text] = true
	}
	if !missing["let e2 = 2;"] || !missing["let e5 = 5;"] {
		t.Fatalf("wrong missing set: %+v", res.Missing)
	}
}

func TestRun_OrderedByPathThenOffset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docs/b.md", fence("let b1 = 1;")+fence("let b2 = 2;"))
	writeFile(t, dir, "docs/a.md", fence("let a1 = 1;"))

	res, err := Run(context.Background(), Config{Root: dir, DefaultExcludes: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Examples) != 3 {
		t.Fatalf("expected 3 examples, got %d", len(res.Examples))
	}
	if res.Examples[0].Text != "let a1 = 1;" ||
		res.Examples[1].Text != "let b1 = 1;" ||
		res.Examples[2].Text != "let b2 = 2;" {
		t.Fatalf("wrong order: %+v", res.Examples)
	}
}

func TestRun_DedupAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docs/one.md", "intro\n\n"+fence("let shared = 0;"))
	writeFile(t, dir, "docs/two.md", fence("let shared = 0;"))

	res, err := Run(context.Background(), Config{Root: dir, DefaultExcludes: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Examples) != 1 {
		t.Fatalf("expected 1 deduplicated example, got %d", len(res.Examples))
	}
	if !strings.HasSuffix(res.Examples[0].Path, "one.md") {
		t.Fatalf("expected smallest path to win, got %s", res.Examples[0].Path)
	}
}

func TestRun_EmptyDocsSkipsSourcePhase(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docs/prose.md", "no examples here\n")
	writeFile(t, dir, "src/lib.rs", "fn a() {}\n")

	res, err := Run(context.Background(), Config{Root: dir, DefaultExcludes: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Examples) != 0 || len(res.Missing) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
	if res.SourceFiles != 0 {
		t.Fatalf("source phase should be skipped with no examples, scanned %d files", res.SourceFiles)
	}
}

func TestRun_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docs/guide.md", fence("let a = 1;")+fence("let gone = 2;"))
	writeFile(t, dir, "src/lib.rs", "/// let a = 1;\n")

	first, err := Run(context.Background(), Config{Root: dir, DefaultExcludes: true})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Run(context.Background(), Config{Root: dir, DefaultExcludes: true})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.Examples, second.Examples) ||
		!reflect.DeepEqual(first.Missing, second.Missing) ||
		!reflect.DeepEqual(first.Warnings, second.Warnings) {
		t.Fatalf("runs differ:\n%+v\n%+v", first, second)
	}
}

func TestRun_UnterminatedFenceWarns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docs/bad.md", "prose\n\n```rust\nfn lost() {}\n")

	res, err := Run(context.Background(), Config{Root: dir, DefaultExcludes: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "unterminated") {
		t.Fatalf("expected unterminated fence warning, got %v", res.Warnings)
	}
	if len(res.Examples) != 0 {
		t.Fatalf("unterminated fence must yield no example, got %+v", res.Examples)
	}
}

func TestRun_SeparateDocAndSourceRoots(t *testing.T) {
	docs := t.TempDir()
	src := t.TempDir()
	writeFile(t, docs, "guide.md", fence("let a = 1;"))
	writeFile(t, src, "lib.rs", "//! let a = 1;\n")

	res, err := Run(context.Background(), Config{DocsRoot: docs, SourceRoot: src, Root: docs, DefaultExcludes: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Missing) != 0 {
		t.Fatalf("expected no missing examples, got %+v", res.Missing)
	}
}

func TestRun_DocReadErrorIsFatal(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are ignored when running as root")
	}
	dir := t.TempDir()
	writeFile(t, dir, "docs/guide.md", fence("let a = 1;"))
	writeFile(t, dir, "docs/locked.md", fence("let b = 2;"))
	if err := os.Chmod(filepath.Join(dir, "docs", "locked.md"), 0); err != nil {
		t.Fatal(err)
	}

	_, err := Run(context.Background(), Config{Root: dir, DefaultExcludes: true})
	if err == nil {
		t.Fatal("unreadable doc file must fail the run")
	}
	if !strings.Contains(err.Error(), "locked.md") {
		t.Fatalf("error should name the unreadable file, got: %v", err)
	}
}

func TestRun_SourceReadErrorIsFatal(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are ignored when running as root")
	}
	dir := t.TempDir()
	writeFile(t, dir, "docs/guide.md", fence("let a = 1;"))
	writeFile(t, dir, "src/locked.rs", "/// let a = 1;\n")
	if err := os.Chmod(filepath.Join(dir, "src", "locked.rs"), 0); err != nil {
		t.Fatal(err)
	}

	_, err := Run(context.Background(), Config{Root: dir, DefaultExcludes: true})
	if err == nil {
		t.Fatal("unreadable source file must fail the run")
	}
	if !strings.Contains(err.Error(), "locked.rs") {
		t.Fatalf("error should name the unreadable file, got: %v", err)
	}
}

func TestRun_CustomLangAndMarkers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docs/guide.md", "```go\nfmt.Println(1)\n```\n")
	writeFile(t, dir, "pkg/demo.go", "// fmt.Println(1)\n")

	res, err := Run(context.Background(), Config{
		Root:            dir,
		Lang:            "go",
		Markers:         []string{"//"},
		DefaultExcludes: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Missing) != 0 {
		t.Fatalf("expected go example found, got %+v", res.Missing)
	}
}
