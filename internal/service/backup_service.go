package service

import (
	"encoding/json"
	"fmt"
	"time"

	"backend/internal/repository"
	"backend/internal/store"
)

// Backup is a full export of the ledger, one raw document per store key.
type Backup struct {
	Filename string                     `json:"filename"`
	Data     map[string]json.RawMessage `json:"data"`
}

// BackupService exports and restores the whole ledger as a single JSON
// document. Restore is all-or-nothing; a malformed or partial file leaves the
// store untouched.
type BackupService interface {
	Export() (Backup, error)
	Restore(payload []byte) error
}

type backupService struct {
	store    store.Port
	notifier *Notifier
}

func NewBackupService(s store.Port, notifier *Notifier) BackupService {
	return &backupService{store: s, notifier: notifier}
}

func (s *backupService) Export() (Backup, error) {
	data, err := s.store.Snapshot(repository.BackupKeys)
	if err != nil {
		return Backup{}, err
	}
	return Backup{
		Filename: fmt.Sprintf("gold-system-backup-%s.json", time.Now().Format("2006-01-02")),
		Data:     data,
	}, nil
}

func (s *backupService) Restore(payload []byte) error {
	var data map[string]json.RawMessage
	if err := json.Unmarshal(payload, &data); err != nil {
		return fmt.Errorf("invalid backup file: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("invalid backup file: no recognized keys")
	}

	known := make(map[string]bool, len(repository.BackupKeys))
	for _, key := range repository.BackupKeys {
		known[key] = true
	}
	entries := make(map[string]json.RawMessage, len(data))
	for key, value := range data {
		if !known[key] {
			continue
		}
		if string(value) == "null" {
			continue
		}
		entries[key] = value
	}
	if len(entries) == 0 {
		return fmt.Errorf("invalid backup file: no recognized keys")
	}
	if err := s.store.Restore(entries); err != nil {
		return err
	}
	s.notifier.PublishSnapshot()
	return nil
}
