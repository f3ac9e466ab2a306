// Package adapter contains storage adapters for scene documents.
package adapter

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/minio/highwayhash"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/scopegate/internal/model"
)

// DocumentStore loads and saves scene documents.
type DocumentStore interface {
	// Load reads and decodes the document at location.
	Load(ctx context.Context, location m.Path) (m.Document, error)
	// Save encodes doc and writes it to location, replacing any previous content.
	Save(ctx context.Context, location m.Path, doc m.Document) error
	// Resolve expands directories into the documents they contain.
	// Plain document locations are returned unchanged.
	Resolve(ctx context.Context, locations ...m.Path) ([]m.Path, error)
}

// LocalDocumentStore stores documents as YAML through afs, so both local paths
// and afs URLs are accepted as locations.
type LocalDocumentStore struct {
	fs afs.Service
}

// NewLocalDocumentStore constructs a LocalDocumentStore.
func NewLocalDocumentStore() *LocalDocumentStore {
	return &LocalDocumentStore{fs: afs.New()}
}

// Load implements DocumentStore.
func (s *LocalDocumentStore) Load(ctx context.Context, location m.Path) (m.Document, error) {
	data, err := s.fs.DownloadWithURL(ctx, string(location))
	if err != nil {
		return m.Document{}, fmt.Errorf("read document %s: %w", location, err)
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		return m.Document{}, fmt.Errorf("decode document %s: %w", location, err)
	}

	return doc, nil
}

// Save implements DocumentStore.
func (s *LocalDocumentStore) Save(ctx context.Context, location m.Path, doc m.Document) error {
	data, err := EncodeDocument(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", location, err)
	}

	if err := s.fs.Upload(ctx, string(location), 0o644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write document %s: %w", location, err)
	}

	return nil
}

// Resolve implements DocumentStore.
func (s *LocalDocumentStore) Resolve(ctx context.Context, locations ...m.Path) ([]m.Path, error) {
	var out []m.Path

	for _, location := range locations {
		object, err := s.fs.Object(ctx, string(location))
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", location, err)
		}

		if !object.IsDir() {
			out = append(out, location)
			continue
		}

		objects, err := s.fs.List(ctx, string(location))
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", location, err)
		}

		var found []m.Path

		for _, child := range objects {
			if child.IsDir() || !isDocumentName(child.Name()) {
				continue
			}

			found = append(found, m.Path(child.URL()))
		}

		sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })
		out = append(out, found...)
	}

	return out, nil
}

func isDocumentName(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// EncodeDocument returns the YAML form of doc.
func EncodeDocument(doc m.Document) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// DecodeDocument parses the YAML form of a document.
func DecodeDocument(data []byte) (m.Document, error) {
	var doc m.Document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil {
		return m.Document{}, err
	}

	return doc, nil
}

var fingerprintKey = []byte("scopegate/document/fingerprint/0")

// Fingerprint returns a stable hash of the encoded document.
// Two documents with equal content have equal fingerprints.
func Fingerprint(doc m.Document) (uint64, error) {
	data, err := EncodeDocument(doc)
	if err != nil {
		return 0, err
	}

	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}

	if _, err := hash.Write(data); err != nil {
		return 0, err
	}

	return hash.Sum64(), nil
}
