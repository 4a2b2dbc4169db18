package modules

import (
	"path/filepath"
	"testing"

	"github.com/lucidlang/lucid/internal/evaluator"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.db")
	cache, err := OpenDiskCache(path)
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	defer cache.Close()

	mod := &evaluator.Module{
		FQN: nil,
		Exports: map[string]*evaluator.Function{
			"run": {Arity: 0},
		},
		RecordTypes: map[string]*evaluator.RecordType{
			"Point": {Name: "Point", Fields: []string{"x", "y"}},
		},
	}

	cache.Put("demo.app", mod)

	got, ok := cache.Get("demo.app")
	if !ok {
		t.Fatalf("expected a cache hit for demo.app")
	}
	if _, ok := got.RecordTypes["Point"]; !ok {
		t.Errorf("expected cached record type Point to round-trip, got %v", got.RecordTypes)
	}
	if len(got.Exports) != 1 {
		t.Errorf("expected 1 cached export, got %d", len(got.Exports))
	}

	if _, ok := cache.Get("nonexistent.module"); ok {
		t.Errorf("expected a cache miss for an unwritten FQN")
	}
}
