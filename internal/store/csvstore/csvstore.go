package csvstore

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/idilsaglam/meetings/internal/model"
	"github.com/idilsaglam/meetings/internal/tz"
)

// CSV-backed storage. Single file, header row, one meeting per record.
// No locking and no atomic rename; fine for a local single-user tool.

const DataFileName = "meetings.csv"

var header = []string{"Title", "DateTime", "TimeZone"}

// RecordError reports a malformed stored record. Line counts the header.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record on line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

type Store struct {
	Path string
}

func New(path string) *Store {
	return &Store{Path: path}
}

// DefaultPath is meetings.csv in the working directory.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, DataFileName), nil
}

// Load reads every stored meeting. A missing file yields no meetings.
func (s *Store) Load() ([]model.Meeting, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Meeting{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Save overwrites the file with meetings in the given order.
func (s *Store) Save(meetings []model.Meeting) error {
	var buf bytes.Buffer
	if err := Encode(&buf, meetings); err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func Encode(w io.Writer, meetings []model.Meeting) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csv write: %w", err)
	}
	for _, m := range meetings {
		if err := cw.Write([]string{m.Title, tz.FormatLocal(m.Local), m.Zone.String()}); err != nil {
			return fmt.Errorf("csv write: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv write: %w", err)
	}
	return nil
}

// Decode parses a stored file. Columns are located by header name; the
// first malformed record aborts the whole load.
func Decode(r io.Reader) ([]model.Meeting, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err == io.EOF {
		return []model.Meeting{}, nil
	}
	if err != nil {
		return nil, &RecordError{Line: 1, Err: err}
	}
	cols := make(map[string]int, len(head))
	for i, name := range head {
		cols[name] = i
	}
	for _, name := range header {
		if _, ok := cols[name]; !ok {
			return nil, &RecordError{Line: 1, Err: fmt.Errorf("header missing column %q", name)}
		}
	}

	meetings := []model.Meeting{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &RecordError{Line: pe.StartLine, Err: pe.Err}
			}
			return nil, fmt.Errorf("read file: %w", err)
		}
		line, _ := cr.FieldPos(0)
		m, err := decodeRecord(rec, cols)
		if err != nil {
			return nil, &RecordError{Line: line, Err: err}
		}
		meetings = append(meetings, m)
	}
	return meetings, nil
}

func decodeRecord(rec []string, cols map[string]int) (model.Meeting, error) {
	field := func(name string) (string, error) {
		i := cols[name]
		if i >= len(rec) {
			return "", fmt.Errorf("missing %s", name)
		}
		return rec[i], nil
	}

	title, err := field("Title")
	if err != nil {
		return model.Meeting{}, err
	}
	raw, err := field("DateTime")
	if err != nil {
		return model.Meeting{}, err
	}
	label, err := field("TimeZone")
	if err != nil {
		return model.Meeting{}, err
	}

	local, err := tz.ParseLocal(raw)
	if err != nil {
		return model.Meeting{}, fmt.Errorf("parse DateTime: %w", err)
	}
	zone := tz.Zone(label)
	if !zone.Valid() {
		return model.Meeting{}, fmt.Errorf("%w: %q", tz.ErrUnknownZone, label)
	}
	return model.New(title, local, zone), nil
}
