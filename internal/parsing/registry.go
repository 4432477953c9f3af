package parsing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/konstantinfoerster/card-stacks-go/internal/aio"
	"github.com/konstantinfoerster/card-stacks-go/internal/stacks"
	"github.com/pkg/errors"
)

// Registry maps format keys to reader and writer implementations. It is
// an explicit object handed to whoever loads or writes files, there is no
// process wide registration. Populate it once at startup, it is not safe
// for concurrent registration.
type Registry struct {
	readers map[string]StackReader
	writers map[string]StackWriter
}

func NewRegistry() *Registry {
	return &Registry{
		readers: map[string]StackReader{},
		writers: map[string]StackWriter{},
	}
}

// NewDefaultRegistry returns a registry with all built-in formats
// registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterReader("arena", ArenaReader{})
	r.RegisterWriter("arena", ArenaWriter{})
	r.RegisterReader("csv", CSVReader{})
	r.RegisterWriter("csv", PrintCSVWriter{})
	r.RegisterWriter("scryfall_csv", CatalogCSVWriter{})

	return r
}

func (r *Registry) RegisterReader(format string, reader StackReader) {
	r.readers[format] = reader
}

func (r *Registry) RegisterWriter(format string, writer StackWriter) {
	r.writers[format] = writer
}

func (r *Registry) Reader(format string) (StackReader, error) {
	reader, ok := r.readers[format]
	if !ok {
		return nil, &UnsupportedFormatError{Format: format}
	}

	return reader, nil
}

func (r *Registry) Writer(format string) (StackWriter, error) {
	writer, ok := r.writers[format]
	if !ok {
		return nil, &UnsupportedFormatError{Format: format}
	}

	return writer, nil
}

// FormatKey resolves the registry key of a path, the extension without
// the leading dot or the full file name if there is none.
func FormatKey(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return filepath.Base(path)
	}

	return strings.TrimPrefix(ext, ".")
}

// LoadStack reads the file with the reader registered for its format key
// and stamps the originating path as source on every card. The source is
// provenance metadata only, it never takes part in equality or identity.
func (r *Registry) LoadStack(path string) (*stacks.Stack, error) {
	reader, err := r.Reader(FormatKey(path))
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s %w", path, err)
	}
	defer aio.Close(f)

	stack, err := reader.Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	stamped := stacks.New()
	for _, c := range stack.Cards() {
		stamped.Add(c.WithSource(path))
	}

	return stamped, nil
}

// WriteStack writes the stack with the writer registered for the format
// key of the path.
func (r *Registry) WriteStack(stack *stacks.Stack, path string) (err error) {
	writer, err := r.Writer(FormatKey(path))
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to create file %s %w", path, err)
	}
	defer func(toClose *os.File) {
		cErr := toClose.Close()
		if cErr != nil {
			// report close errors
			if err == nil {
				err = cErr
			} else {
				err = errors.Wrap(err, cErr.Error())
			}
		}
	}(f)

	if err = writer.Write(stack, f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return err
}
