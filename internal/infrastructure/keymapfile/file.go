package keymapfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/keymapper-dev/keymapper/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

const filePerm = 0o644

// Decode reads a YAML document. Unknown fields are rejected.
func Decode(r io.Reader) (Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc, nil
}

// Encode writes doc as YAML.
func Encode(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode key map document: %w", err)
	}
	return enc.Close()
}

// Load reads and converts the key maps stored at path.
// A missing file holds no key maps.
func Load(path string) ([]entity.KeyMap, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open key maps: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	keyMaps, err := doc.ToKeyMaps()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return keyMaps, nil
}

// Save replaces the file at path with keyMaps. The write is atomic.
func Save(path string, keyMaps []entity.KeyMap) error {
	var buf bytes.Buffer
	if err := Encode(&buf, FromKeyMaps(keyMaps)); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to write key maps: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".keymaps-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to write key maps: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write key maps: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write key maps: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write key maps: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write key maps: %w", err)
	}
	return nil
}

// JSONSchemaExtend restricts type to the known action ids.
func (ActionDoc) JSONSchemaExtend(s *jsonschema.Schema) {
	prop, ok := s.Properties.Get("type")
	if !ok {
		return
	}
	for _, id := range KnownActionTypes() {
		prop.Enum = append(prop.Enum, string(id))
	}
}

// GenerateSchema returns the JSON schema of a key map document.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{RequiredFromJSONSchemaTags: true}
	schema := r.Reflect(&Document{})

	schema.ID = "https://github.com/keymapper-dev/keymapper/keymaps.schema.json"
	schema.Title = "Keymapper Key Maps"
	schema.Description = "Key maps checked and edited by the keymapper tooling"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
