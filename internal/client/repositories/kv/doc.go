// Package kv provides the key/value slot storage the credential store
// persists into.
//
// # Overview
//
// The store keeps its whole collection under a single fixed key. Repository
// is that contract: opaque byte values addressed by string keys.
// SQLiteRepository persists into the migrated `storage` table;
// MemoryRepository backs tests and throwaway sessions.
//
// Key Types
//
//   - type Repository       : interface used by services.CredentialStore
//   - type SQLiteRepository : SQLite implementation over *sql.DB
//   - type MemoryRepository : map-backed implementation
//
// Typical Usage
//
//	repo := kv.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "passwords", payload)
//	v, _ := repo.Get(ctx, "passwords") // nil, nil when absent
//	_ = repo.Rename(ctx, "passwords", "passwords.corrupt")
package kv
