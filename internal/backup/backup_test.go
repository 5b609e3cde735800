package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func writeJSONStore(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "levelup.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write store file: %v", err)
	}
	return path
}

func TestCreateBackup_JSONStore(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONStore(t, dir, `{"version":1,"state":{"level":3}}`)

	m := NewManager(path)
	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("create backup failed: %v", err)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"version":1,"state":{"level":3}}` {
		t.Errorf("backup content mismatch: %s", data)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
}

func TestCreateBackup_MissingStore(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "levelup.json"))
	if _, err := m.CreateBackup(); err == nil {
		t.Fatal("expected an error when the store file is missing")
	}
}

func TestRestoreBackup_RejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONStore(t, dir, `{"version":1,"state":{}}`)
	m := NewManager(path)

	bad := filepath.Join(dir, "backups", "levelup-20240101-0900.json")
	if err := os.MkdirAll(filepath.Dir(bad), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := m.RestoreBackup(bad); err == nil {
		t.Fatal("expected restore to refuse a malformed backup")
	}

	data, _ := os.ReadFile(path)
	if string(data) != `{"version":1,"state":{}}` {
		t.Error("store was modified by a failed restore")
	}
}

func TestRestoreBackup_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONStore(t, dir, `{"version":1,"state":{"level":5}}`)
	m := NewManager(path)

	backupPath, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("create backup failed: %v", err)
	}

	// Diverge the live store, then restore.
	if err := os.WriteFile(path, []byte(`{"version":1,"state":{"level":1}}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.RestoreBackup(backupPath); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"version":1,"state":{"level":5}}` {
		t.Errorf("restore did not bring back the backup content: %s", data)
	}
}

func TestListBackups_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONStore(t, dir, `{}`)
	m := NewManager(path)

	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(m.GetBackupDir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(m.GetBackupDir(), "levelup-garbage.json"), []byte("{}"), 0600); err != nil {
		t.Fatal(err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected foreign files to be skipped, got %d entries", len(backups))
	}
}
