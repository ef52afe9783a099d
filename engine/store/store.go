package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ini/ini"
	"github.com/spaghettifunk/anima-bridge/engine/core"
)

// The placeholder section marks a store that holds no records yet.
const (
	PlaceholderSection = "Placeholder"
	placeholderKey     = "TempValue"
	placeholderValue   = "000"
)

// RecordStore is the shared transform data file. It holds no open handle:
// every call loads the file, works on it and writes it back.
type RecordStore struct {
	path string
}

func NewRecordStore(path string) RecordStore {
	return RecordStore{path: path}
}

func (s RecordStore) Path() string {
	return s.path
}

// Exists reports whether the data file is present on disk.
func (s RecordStore) Exists() bool {
	fi, err := os.Stat(s.path)
	return err == nil && !fi.IsDir()
}

// Init creates the data file with the placeholder section when it does not
// exist yet. It reports whether the file was created.
func (s RecordStore) Init() (bool, error) {
	if s.Exists() {
		return false, nil
	}
	if err := s.save(placeholderFile()); err != nil {
		return false, err
	}
	return true, nil
}

// Put writes the records, replacing any section that already has the same
// key. The data file is created when missing. Nothing is written when one of
// the records is invalid.
func (s RecordStore) Put(records ...TransformRecord) error {
	for _, r := range records {
		if err := r.validate(); err != nil {
			return err
		}
	}
	if _, err := s.Init(); err != nil {
		return err
	}
	f, err := s.load()
	if err != nil {
		return err
	}

	for _, r := range records {
		f.DeleteSection(r.Key)
		sec, err := f.NewSection(r.Key)
		if err != nil {
			return fmt.Errorf("store: section [%s]: %w", r.Key, err)
		}
		if err := r.encode(sec); err != nil {
			return fmt.Errorf("store: section [%s]: %w", r.Key, err)
		}
	}
	return s.save(f)
}

// Clear drops every section and leaves only the placeholder behind.
func (s RecordStore) Clear() error {
	return s.save(placeholderFile())
}

// RecordError describes a section that could not be decoded.
type RecordError struct {
	Key string
	Err error
}

func (e *RecordError) Error() string {
	return e.Err.Error()
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Snapshot is the decoded content of the store at the time it was read.
type Snapshot struct {
	// Records holds every valid record in file order.
	Records []TransformRecord
	// Invalid holds the sections that are not valid records.
	Invalid []*RecordError
}

// Len returns the number of valid records.
func (sn *Snapshot) Len() int {
	return len(sn.Records)
}

// Match returns the records whose mesh source name equals name exactly.
func (sn *Snapshot) Match(name string) []TransformRecord {
	var out []TransformRecord
	for _, r := range sn.Records {
		if r.MeshSourceName == name {
			out = append(out, r)
		}
	}
	return out
}

// Load reads the whole store. The placeholder is not reported, neither as a
// record nor as an invalid section. Keys above the first section header are
// reported as an invalid DEFAULT section. A missing file is
// core.ErrDataFileMissing.
func (s RecordStore) Load() (*Snapshot, error) {
	if !s.Exists() {
		return nil, fmt.Errorf("%w: %s", core.ErrDataFileMissing, s.path)
	}
	f, err := s.load()
	if err != nil {
		return nil, err
	}

	sn := &Snapshot{}
	for _, sec := range f.Sections() {
		if isPlaceholder(sec) {
			continue
		}
		if sec.Name() == ini.DefaultSection {
			if len(sec.Keys()) > 0 {
				sn.Invalid = append(sn.Invalid, &RecordError{
					Key: sec.Name(),
					Err: fmt.Errorf("%w: keys outside of any section", core.ErrInvalidRecord),
				})
			}
			continue
		}
		r, err := decodeRecord(sec)
		if err != nil {
			sn.Invalid = append(sn.Invalid, &RecordError{Key: sec.Name(), Err: err})
			continue
		}
		sn.Records = append(sn.Records, r)
	}
	return sn, nil
}

func isPlaceholder(sec *ini.Section) bool {
	return sec.Name() == PlaceholderSection && !sec.HasKey(KeyMeshSourceName)
}

func placeholderFile() *ini.File {
	f := ini.Empty()
	sec, _ := f.NewSection(PlaceholderSection)
	_, _ = sec.NewKey(placeholderKey, placeholderValue)
	return f
}

func (s RecordStore) load() (*ini.File, error) {
	f, err := ini.Load(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", core.ErrDataFileMissing, s.path)
		}
		return nil, fmt.Errorf("store: read %s: %w", s.path, err)
	}
	return f, nil
}

func (s RecordStore) save(f *ini.File) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("store: create directory for %s: %w", s.path, err)
	}
	if err := f.SaveTo(s.path); err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	return nil
}
