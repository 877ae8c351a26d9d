package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a catalog file whose extension is not .yaml, .yml or .toml.
var ErrUnknownFormat = errors.New("catalog: unknown file format")

// Format is a catalog serialization format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Loader reads catalog files.
type Loader struct {
	// Logger receives informational messages. nil means no logging.
	Logger *log.Logger
}

// LoadFile loads a catalog file with a silent Loader.
func LoadFile(path string) (*File, error) {
	return (&Loader{}).Load(path)
}

// Load reads and parses the catalog file at path.
func (l *Loader) Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.logf("loaded %s catalog %s: %d affixes, %d units, %d nouns",
		format, path, len(f.Affixes), len(f.Units), len(f.Nouns))

	return f, nil
}

func (l *Loader) logf(format string, args ...any) {
	if l.Logger != nil {
		l.Logger.Printf(format, args...)
	}
}

// Parse parses catalog data in the given format.
func Parse(data []byte, format Format) (*File, error) {
	var f File

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("failed to parse catalog TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values and brings all text to NFC, so that
// composed and decomposed spellings of the same morpheme render identically.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Affixes {
		a := &f.Affixes[i]
		nfc(&a.Name, &a.Morpheme, &a.Morpheme2, &a.Joiner)
		a.Flavor = strings.TrimSpace(a.Flavor)
	}

	for i := range f.Units {
		u := &f.Units[i]
		nfc(&u.Name, &u.Symbol, &u.Joiner)

		if u.Symbol == "" {
			u.Symbol = u.Name
		}

		if u.Flavor == "" {
			u.Flavor = "suffix"
		}
	}

	for i := range f.Nouns {
		n := &f.Nouns[i]
		nfc(&n.Name, &n.Lemma, &n.Singular, &n.Plural, &n.Abbreviation, &n.PluralAbbreviation, &n.NounalVerb)
	}
}

func nfc(fields ...*string) {
	for _, s := range fields {
		*s = norm.NFC.String(*s)
	}
}

// Marshal serializes a catalog in the given format.
func Marshal(f *File, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(f)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile writes a catalog to path, in the format its extension names.
func WriteFile(f *File, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := Marshal(f, format)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file %s: %w", path, err)
	}

	return nil
}
