package scene

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/myreality/pkg/errors"
)

// Scene encodings.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatFromPath returns the encoding implied by a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported scene file %q", path)
	}
}

// =============================================================================
// Scene Serialization API
// =============================================================================

// ReadFile reads a scene from a .json, .yaml or .yml file. The path "-"
// reads from standard input and detects the encoding from the content.
func ReadFile(path string) (*Scene, error) {
	if err := errors.ValidateSceneFilename(path); err != nil {
		return nil, err
	}
	if path == "-" {
		return Read(os.Stdin, "")
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Read decodes a scene in the given format. An empty format sniffs the
// first non-space byte: '{' means JSON, anything else YAML.
func Read(r io.Reader, format string) (*Scene, error) {
	br := bufio.NewReader(r)
	if format == "" {
		format = sniff(br)
	}

	var s Scene
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(br).Decode(&s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode json")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(br)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown scene format %q", format)
	}
	return &s, nil
}

// Write encodes a scene in the given format.
func Write(s *Scene, w io.Writer, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown scene format %q", format)
	}
	return nil
}

// WriteFile writes a scene to path, choosing the encoding from the
// extension. The file is created with 0644 permissions.
func WriteFile(s *Scene, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(s, f, format)
}

func sniff(br *bufio.Reader) string {
	for {
		b, err := br.Peek(1)
		if err != nil || len(b) == 0 {
			return FormatYAML
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			_, _ = br.ReadByte()
		case '{':
			return FormatJSON
		default:
			return FormatYAML
		}
	}
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout converts a layout to indented JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteLayout(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalLayout parses JSON bytes into a layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	return l, nil
}

// WriteLayout writes a layout as JSON to w.
func WriteLayout(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteLayoutFile writes a layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(l, f)
}

// ReadLayoutFile reads a layout JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout %s", path)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
