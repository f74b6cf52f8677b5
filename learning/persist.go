package learning

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Persister moves a Store to and from durable storage. Load builds the store with the
// given options.
type Persister interface {
	Load(options ...StoreOption) (*Store, error)
	Save(store *Store) error
}

// LoadOrEmpty loads the persisted store, starting empty when the data cannot be read.
func LoadOrEmpty(p Persister, options ...StoreOption) *Store {
	store, err := p.Load(options...)
	if err != nil {
		log.Warn().Err(err).Msg("discarding persisted store, starting empty")
		return NewStore(options...)
	}
	return store
}

// FilePersister keeps the store in the single file with a known extension in a directory.
type FilePersister struct {
	dir  string
	ext  string
	name string
}

// NewFilePersister stores under dir. name is used for the file when none exists yet.
func NewFilePersister(dir, ext, name string) *FilePersister {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &FilePersister{dir: dir, ext: ext, name: name}
}

// Path is the file the store is loaded from and saved to.
func (p *FilePersister) Path() (string, error) {
	matches, err := p.discover()
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return filepath.Join(p.dir, p.name+p.ext), nil
	}
	if len(matches) > 1 {
		log.Warn().Strs("files", matches).Msgf("more than one %s file, using the first", p.ext)
	}
	return matches[0], nil
}

func (p *FilePersister) discover() ([]string, error) {
	entries, err := os.ReadDir(p.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store directory: %w", err)
	}
	var matches []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == p.ext {
			matches = append(matches, filepath.Join(p.dir, e.Name()))
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// Load reads the store. A missing file is an empty store, not an error.
func (p *FilePersister) Load(options ...StoreOption) (*Store, error) {
	matches, err := p.discover()
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return NewStore(options...), nil
	}
	path, err := p.Path()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	store, err := Decode(data, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("records", store.Len()).Msg("loaded store")
	return store, nil
}

func (p *FilePersister) Save(store *Store) (err error) {
	data, err := Encode(store)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	path, err := p.Path()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create store file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close store file: %w", cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	log.Debug().Str("path", path).Int("records", store.Len()).Msg("saved store")
	return nil
}
