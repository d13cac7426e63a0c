package driver

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"sable/internal/diag"
	"sable/internal/source"
)

// cacheSchema guards against stale layouts; bump it whenever the cached
// record shape or any diagnostic message text changes.
const cacheSchema = 1

// cachedDiag is the on-disk form of one diagnostic. Spans are stored as raw
// offsets: they stay valid as long as the content hash matches.
type cachedDiag struct {
	Code     uint16 `msgpack:"c"`
	Severity uint8  `msgpack:"s"`
	Message  string `msgpack:"m"`
	Start    uint32 `msgpack:"a"`
	End      uint32 `msgpack:"b"`
}

type cachedEntry struct {
	Schema int          `msgpack:"v"`
	Decl   []cachedDiag `msgpack:"d"`
	Emit   []cachedDiag `msgpack:"e"`
}

// DiskCache memoizes per-file diagnostics keyed by content hash. A hit skips
// the whole front end for that file; the AST and symbols are not cached, so
// callers needing them must bypass the cache.
type DiskCache struct {
	dir string
}

// OpenDiskCache creates (if needed) and opens the cache directory. With an
// empty dir it resolves under the user cache directory.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
		dir = filepath.Join(base, "sable", "check")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) entryPath(hash [32]byte) string {
	name := hex.EncodeToString(hash[:])
	return filepath.Join(c.dir, name[:2], name[2:]+".msgpack")
}

// Get looks up cached diagnostics for a file. The returned bags are re-homed
// onto fileID. ok is false on miss, schema mismatch, or a corrupt entry.
func (c *DiskCache) Get(hash [32]byte, fileID source.FileID) (decl, emit *diag.Bag, ok bool) {
	data, err := os.ReadFile(c.entryPath(hash))
	if err != nil {
		return nil, nil, false
	}
	var entry cachedEntry
	if err := msgpack.Unmarshal(data, &entry); err != nil || entry.Schema != cacheSchema {
		return nil, nil, false
	}
	return thawBag(entry.Decl, fileID), thawBag(entry.Emit, fileID), true
}

// Put stores the diagnostics of a completed check. Write failures are
// returned but safe to ignore: the cache is an accelerator, not a store of
// record.
func (c *DiskCache) Put(hash [32]byte, result *CheckResult) error {
	entry := cachedEntry{
		Schema: cacheSchema,
		Decl:   freezeBag(result.DeclBag),
		Emit:   freezeBag(result.EmitBag),
	}
	data, err := msgpack.Marshal(&entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	path := c.entryPath(hash)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func freezeBag(bag *diag.Bag) []cachedDiag {
	items := bag.Items()
	out := make([]cachedDiag, 0, len(items))
	for _, d := range items {
		out = append(out, cachedDiag{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}
	return out
}

func thawBag(items []cachedDiag, fileID source.FileID) *diag.Bag {
	bag := diag.NewBag(len(items))
	for _, cd := range items {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: fileID, Start: cd.Start, End: cd.End},
		})
	}
	return bag
}
