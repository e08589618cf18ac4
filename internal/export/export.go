// Package export serializes the diary snapshot into a portable backup document
// and parses such documents back.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the frame header of a zstd stream.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Document returns the snapshot as a 2-space indented JSON document with the
// fixed field order {ideas, logs}. Empty collections serialize as [] and
// text is written literally, without HTML escaping.
func Document(snap domain.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap.Clone()); err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Filename returns the backup file name for the local calendar date of now.
func Filename(now time.Time) string {
	return fmt.Sprintf("idea_diary_backup_%s.json", now.Local().Format(time.DateOnly))
}

// CompressedFilename returns the backup file name used for zstd output.
func CompressedFilename(now time.Time) string {
	return Filename(now) + ".zst"
}

// Compress wraps data in a zstd frame.
func Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	defer func() { _ = enc.Close() }()
	return enc.EncodeAll(data, nil), nil
}

// Parse reads a backup document, compressed or not, and validates it.
func Parse(data []byte) (domain.Snapshot, error) {
	if bytes.HasPrefix(data, zstdMagic) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("create zstd decoder: %w", err)
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("%w: decompress: %w", domain.ErrInvalidSnapshot, err)
		}
	}

	var doc struct {
		Ideas *[]domain.Idea     `json:"ideas"`
		Logs  *[]domain.LogEntry `json:"logs"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %w", domain.ErrInvalidSnapshot, err)
	}
	if doc.Ideas == nil || doc.Logs == nil {
		return domain.Snapshot{}, fmt.Errorf("%w: document must contain ideas and logs", domain.ErrInvalidSnapshot)
	}

	snap := domain.Snapshot{Ideas: *doc.Ideas, Logs: *doc.Logs}.Clone()
	if err := snap.Validate(); err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}
