// Package modelio reads and writes metabolic models in several formats:
// cobra-shaped JSON, YAML, an SBML subset, and gob as the native binary
// form. ReadModel and WriteModel infer the format from the file extension;
// the per-format codecs work on io.Reader/io.Writer for callers that
// manage their own streams.
package modelio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Braden-Griebel/hippotools/model"
)

// Sentinel errors for model I/O.
var (
	// ErrUnsupportedFileType indicates a format name or extension outside
	// the supported set.
	ErrUnsupportedFileType = errors.New("modelio: unsupported file type")

	// ErrBadModel indicates structurally invalid serialized content.
	ErrBadModel = errors.New("modelio: invalid model data")
)

// FileType identifies a serialization format.
type FileType int

const (
	// JSON is the cobra-compatible JSON shape.
	JSON FileType = iota

	// YAML mirrors the JSON shape in YAML.
	YAML

	// SBML is an XML subset: species, reactions with flux bounds, gene
	// associations and a flux objective.
	SBML

	// Gob is the native binary form.
	Gob
)

// ParseFileType resolves a format name or bare file extension. Accepted
// aliases: json/jsn, yaml/yml, sbml/xml, gob/bin.
func ParseFileType(name string) (FileType, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "json", "jsn":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "sbml", "xml":
		return SBML, nil
	case "gob", "bin":
		return Gob, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFileType, name)
	}
}

// Read decodes a model from r in the given format.
func Read(r io.Reader, ft FileType) (*model.Model, error) {
	switch ft {
	case JSON:
		return readJSON(r)
	case YAML:
		return readYAML(r)
	case SBML:
		return readSBML(r)
	case Gob:
		return readGob(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFileType, int(ft))
	}
}

// Write encodes a model to w in the given format.
func Write(w io.Writer, m *model.Model, ft FileType) error {
	switch ft {
	case JSON:
		return writeJSON(w, m)
	case YAML:
		return writeYAML(w, m)
	case SBML:
		return writeSBML(w, m)
	case Gob:
		return writeGob(w, m)
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedFileType, int(ft))
	}
}

// ReadModel reads a model file, inferring the format from the extension
// when fileType is empty.
func ReadModel(path, fileType string) (*model.Model, error) {
	if fileType == "" {
		fileType = filepath.Ext(path)
	}
	ft, err := ParseFileType(fileType)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, ft)
}

// WriteModel writes a model file, inferring the format from the extension
// when fileType is empty.
func WriteModel(path string, m *model.Model, fileType string) error {
	if fileType == "" {
		fileType = filepath.Ext(path)
	}
	ft, err := ParseFileType(fileType)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, m, ft); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
