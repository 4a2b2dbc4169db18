// Package modules provides a disk-backed second-tier cache for the
// evaluator's module loader, so a module evaluated once survives
// process restarts without re-running its declarations.
package modules

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/lucidlang/lucid/internal/evaluator"
)

// DiskCache is a sqlite-backed evaluator.ModuleCache, grounded on
// funxy's own internal/modules/loader.go cache-by-FQN idiom but
// persisted to disk instead of kept purely in memory. It stores a
// module's export names and record-type declarations keyed by FQN;
// the cached entry's Exports are placeholder Functions that raise
// :unbound when called, not a replay of the original Functions, since
// a Function closes over an Environment that cannot itself be
// serialized.
type DiskCache struct {
	mu sync.Mutex
	db *sql.DB
}

// OpenDiskCache opens (creating if absent) a sqlite database at path
// and ensures its module-cache table exists.
func OpenDiskCache(path string) (*DiskCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open module cache: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS module_cache (
		fqn TEXT PRIMARY KEY,
		record_types TEXT NOT NULL,
		export_names TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create module cache table: %w", err)
	}
	return &DiskCache{db: db}, nil
}

func (c *DiskCache) Close() error {
	return c.db.Close()
}

type cachedRecordType struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// Get implements evaluator.ModuleCache. A disk hit reconstructs the
// Module's record-type table and a set of placeholder export Functions
// so the caller can surface the module's shape (arities are not
// stored, so each exported Function comes back as an arity-0 native
// that raises :unbound on any call) —
// callers that need a fully live module should prefer the in-memory
// loader cache, which this tier only backstops across process restarts.
func (c *DiskCache) Get(fqn string) (*evaluator.Module, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var recordTypesJSON, exportNamesJSON string
	err := c.db.QueryRow(
		`SELECT record_types, export_names FROM module_cache WHERE fqn = ?`, fqn,
	).Scan(&recordTypesJSON, &exportNamesJSON)
	if err != nil {
		return nil, false
	}

	var recordTypes []cachedRecordType
	if err := json.Unmarshal([]byte(recordTypesJSON), &recordTypes); err != nil {
		return nil, false
	}
	var exportNames []string
	if err := json.Unmarshal([]byte(exportNamesJSON), &exportNames); err != nil {
		return nil, false
	}

	rtTable := make(map[string]*evaluator.RecordType, len(recordTypes))
	for _, rt := range recordTypes {
		rtTable[rt.Name] = &evaluator.RecordType{Name: rt.Name, Fields: rt.Fields}
	}

	return evaluator.NewCachedModuleShell(fqn, exportNames, rtTable), true
}

// Put implements evaluator.ModuleCache, persisting the module's shape
// (FQN, export names, record-type field lists) for a later Get.
func (c *DiskCache) Put(fqn string, m *evaluator.Module) {
	c.mu.Lock()
	defer c.mu.Unlock()

	exportNames := m.ExportNames()
	recordTypes := make([]cachedRecordType, 0, len(m.RecordTypes))
	for name, rt := range m.RecordTypes {
		recordTypes = append(recordTypes, cachedRecordType{Name: name, Fields: rt.Fields})
	}

	exportNamesJSON, err := json.Marshal(exportNames)
	if err != nil {
		return
	}
	recordTypesJSON, err := json.Marshal(recordTypes)
	if err != nil {
		return
	}

	c.db.Exec(
		`INSERT INTO module_cache (fqn, record_types, export_names) VALUES (?, ?, ?)
		 ON CONFLICT(fqn) DO UPDATE SET record_types = excluded.record_types, export_names = excluded.export_names`,
		fqn, string(recordTypesJSON), string(exportNamesJSON),
	)
}
