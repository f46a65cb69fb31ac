package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// SessionLogSchema is bumped whenever SessionLog changes shape.
const SessionLogSchema uint16 = 1

// SessionLog is the replayable history of a REPL session: every accepted
// input in submission order.
type SessionLog struct {
	Schema uint16   `msgpack:"schema"`
	Inputs []string `msgpack:"inputs"`
}

// SaveSessionLog writes log to path through a temp file and rename, so a
// crash never leaves a truncated log behind.
func SaveSessionLog(path string, log SessionLog) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(&log); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode session log: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadSessionLog reads a log written by SaveSessionLog. A missing file is an
// empty log.
func LoadSessionLog(path string) (SessionLog, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return SessionLog{Schema: SessionLogSchema}, nil
		}
		return SessionLog{}, err
	}
	defer func() {
		_ = f.Close()
	}()

	var log SessionLog
	if err := msgpack.NewDecoder(f).Decode(&log); err != nil {
		return SessionLog{}, fmt.Errorf("decode session log %s: %w", path, err)
	}
	if log.Schema != SessionLogSchema {
		return SessionLog{}, fmt.Errorf("session log %s: schema %d, want %d", path, log.Schema, SessionLogSchema)
	}
	return log, nil
}
