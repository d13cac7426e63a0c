package driver_test

import (
	"context"
	"path/filepath"
	"testing"

	"sable/internal/diag"
	"sable/internal/driver"
	"sable/internal/source"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := driver.OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sb", []byte(`class C { void M(string s!! = null) { } }`))
	result := driver.CheckSource(fs, fileID, driver.CheckOptions{})
	hash := fs.Get(fileID).Hash

	if err := cache.Put(hash, result); err != nil {
		t.Fatal(err)
	}

	decl, emit, ok := cache.Get(hash, fileID)
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if decl.Len() != result.DeclBag.Len() || emit.Len() != result.EmitBag.Len() {
		t.Errorf("cached counts differ: decl %d/%d emit %d/%d",
			decl.Len(), result.DeclBag.Len(), emit.Len(), result.EmitBag.Len())
	}
	if emit.CountBy(diag.EmitNullCheckedNullDefault) != 1 {
		t.Error("expected the emit warning to survive the round trip")
	}
	// Spans are re-homed onto the requested file.
	if emit.Items()[0].Primary.File != fileID {
		t.Error("expected span re-homed to the given FileID")
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := driver.OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var hash [32]byte
	hash[0] = 0xAB
	if _, _, ok := cache.Get(hash, 0); ok {
		t.Error("expected a miss for an unknown hash")
	}
}

func TestDiskCacheServesDirRuns(t *testing.T) {
	root := writeTree(t, map[string]string{
		"warn.sb": `class C { void M(string s!! = null) { } }`,
	})
	cache, err := driver.OpenDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	run := func() *driver.DirResult {
		fs := source.NewFileSet()
		result, err := driver.CheckDir(context.Background(), fs, root, driver.DirOptions{Cache: cache})
		if err != nil {
			t.Fatal(err)
		}
		return result
	}

	cold := run()
	warm := run()

	coldBag := cold.Files[0].Result.Merged()
	warmBag := warm.Files[0].Result.Merged()
	if coldBag.Len() != warmBag.Len() {
		t.Fatalf("warm run diagnostics differ: %d vs %d", coldBag.Len(), warmBag.Len())
	}
	// A hit skips the front end entirely.
	if warm.Files[0].Result.File != nil {
		t.Error("expected no AST on a cache hit")
	}
}
