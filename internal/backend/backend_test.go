package backend

import (
	"path/filepath"
	"testing"
)

func TestTypeIsValid(t *testing.T) {
	for _, typ := range []Type{MemoryBackend, KVBackend, SQLiteBackend} {
		if !typ.IsValid() {
			t.Errorf("%s should be valid", typ)
		}
	}
	if Type("postgres").IsValid() {
		t.Error("unexpected backend type should be invalid")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory needs nothing", Config{Type: MemoryBackend}, false},
		{"sqlite needs path", Config{Type: SQLiteBackend}, true},
		{"sqlite with path", Config{Type: SQLiteBackend, SQLiteDBPath: "x.db"}, false},
		{"kv needs path", Config{Type: KVBackend}, true},
		{"kv with path", Config{Type: KVBackend, BadgerPath: "data"}, false},
		{"unknown type", Config{Type: "postgres"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFactoryCreatesEachBackend(t *testing.T) {
	f := NewFactory(nil)

	cases := []struct {
		name       string
		cfg        Config
		hasCleanup bool
	}{
		{"memory", Config{Type: MemoryBackend}, false},
		{"kv", Config{Type: KVBackend, BadgerPath: t.TempDir()}, true},
		{"sqlite", Config{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(t.TempDir(), "sman.db")}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := f.CreateStore(tc.cfg)
			if err != nil {
				t.Fatalf("CreateStore: %v", err)
			}
			if res.Store == nil {
				t.Fatal("store is nil")
			}
			if (res.Cleanup != nil) != tc.hasCleanup {
				t.Fatalf("cleanup presence = %v, want %v", res.Cleanup != nil, tc.hasCleanup)
			}
			if res.Cleanup != nil {
				if err := res.Cleanup(); err != nil {
					t.Fatalf("cleanup: %v", err)
				}
			}
		})
	}
}
