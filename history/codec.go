package history

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Encode serializes the log to a compact binary form and compresses it with
// zstd. The format is a flat little-endian record stream; snapshot payloads
// are stored length-prefixed since their size varies per entry.
// Complexity: O(entries).
func (l *Log) Encode() ([]byte, error) {
	var raw bytes.Buffer
	if err := binary.Write(&raw, binary.LittleEndian, uint64(len(l.steps))); err != nil {
		return nil, err
	}
	for i := range l.steps {
		if err := writeEntry(&raw, l.steps[i], l.vertices[i], l.newIDs[i], l.newTypes[i], l.snapshot[i]); err != nil {
			return nil, err
		}
	}

	w, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer w.Close()
	return w.EncodeAll(raw.Bytes(), nil), nil
}

func writeEntry(w io.Writer, step uint64, vertex int32, newID, newType uint32, snapshot []byte) error {
	for _, field := range []any{step, vertex, newID, newType, uint32(len(snapshot))} {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return err
		}
	}
	_, err := w.Write(snapshot)
	return err
}

// DecodeEntries decompresses and parses a byte stream produced by Encode,
// returning the entries in log order without mutating any existing Log.
// Complexity: O(entries).
func DecodeEntries(data []byte) ([]Entry, error) {
	d, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	raw, err := d.DecodeAll(data, nil)
	if err != nil {
		return nil, err
	}

	r := bytes.NewReader(raw)
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, count)
	for i := uint64(0); i < count; i++ {
		var e Entry
		var snapLen uint32
		if err := binary.Read(r, binary.LittleEndian, &e.Step); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &e.Vertex); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &e.NewID); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &e.NewType); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &snapLen); err != nil {
			return nil, err
		}
		if snapLen > 0 {
			e.Snapshot = make([]byte, snapLen)
			if _, err := io.ReadFull(r, e.Snapshot); err != nil {
				return nil, err
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// LoadEntries replaces the log's contents with the given entries, as decoded
// by DecodeEntries. It does not change recording state or the baseline.
func (l *Log) LoadEntries(entries []Entry) {
	l.steps = l.steps[:0]
	l.vertices = l.vertices[:0]
	l.newIDs = l.newIDs[:0]
	l.newTypes = l.newTypes[:0]
	l.snapshot = l.snapshot[:0]
	for _, e := range entries {
		l.steps = append(l.steps, e.Step)
		l.vertices = append(l.vertices, e.Vertex)
		l.newIDs = append(l.newIDs, e.NewID)
		l.newTypes = append(l.newTypes, e.NewType)
		l.snapshot = append(l.snapshot, e.Snapshot)
	}
	if len(entries) > 0 {
		l.everStepped = true
	}
}
