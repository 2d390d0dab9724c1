// Package chain appends audit records to a hash-chained JSONL file. Each
// record carries the hash of its predecessor, so any tampering with stored
// history is detectable by replaying the file.
package chain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Record is one audit entry for a config save. OldValue/NewValue hold the
// document payloads around the change; OldValue is empty on first save.
type Record struct {
	Time            time.Time       `json:"time"`
	Action          string          `json:"action"`
	GameID          string          `json:"game_id"`
	AdminID         string          `json:"admin_id"`
	ConfigVersionID string          `json:"config_version_id"`
	OldValue        json.RawMessage `json:"old_value,omitempty"`
	NewValue        json.RawMessage `json:"new_value,omitempty"`
	RequestID       string          `json:"request_id,omitempty"`
	Prev            string          `json:"prev"`
	Hash            string          `json:"hash"`
}

type Writer struct {
	mu   sync.Mutex
	f    *os.File
	prev []byte // previous hash
}

func NewWriter(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Writer{f: f, prev: make([]byte, 32)}, nil
}

func (w *Writer) Close() error { return w.f.Close() }

// Record chains and appends one entry. A zero Time is stamped with now.
func (w *Writer) Record(rec Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if rec.Time.IsZero() {
		rec.Time = time.Now().UTC()
	}
	rec.Prev = hex.EncodeToString(w.prev)
	rec.Hash = ""
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	h := sha256.Sum256(append(w.prev, b...))
	rec.Hash = hex.EncodeToString(h[:])
	b, err = json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := w.f.Write(append(b, '\n')); err != nil {
		return err
	}
	copy(w.prev, h[:])
	return nil
}
