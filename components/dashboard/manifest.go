package dashboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	manifestVersionV1 = "1"
	// ManifestVersion exposes the current manifest format version for tooling.
	ManifestVersion = manifestVersionV1
)

// ErrInvalidManifest wraps every manifest validation failure.
var ErrInvalidManifest = errors.New("dashboard: invalid manifest")

// PageManifestDocument models a YAML manifest overriding built-in pages.
type PageManifestDocument struct {
	Version string         `json:"version" yaml:"version"`
	Name    string         `json:"name,omitempty" yaml:"name,omitempty"`
	Pages   []ManifestPage `json:"pages" yaml:"pages"`
	Source  string         `json:"-" yaml:"-"`
}

// ManifestPage overrides one page. Unset fields keep the registered values.
type ManifestPage struct {
	ID             PageID            `json:"id" yaml:"id"`
	Title          string            `json:"title,omitempty" yaml:"title,omitempty"`
	TitleLocalized map[string]string `json:"title_localized,omitempty" yaml:"title_localized,omitempty"`
	Description    string            `json:"description,omitempty" yaml:"description,omitempty"`
	Position       *int              `json:"position,omitempty" yaml:"position,omitempty"`
	Order          []string          `json:"order,omitempty" yaml:"order,omitempty"`
	Filters        map[string]string `json:"filters,omitempty" yaml:"filters,omitempty"`
	Notify         *bool             `json:"notify,omitempty" yaml:"notify,omitempty"`
}

// LoadManifestFile reads a manifest from disk, applies it to the registry, and returns the document.
func (r *Registry) LoadManifestFile(path string) (*PageManifestDocument, error) {
	doc, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyManifest(r, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ApplyManifest overrides registered pages with the manifest entries. Order
// entries must name widgets the page already knows.
func ApplyManifest(reg PageRegistry, doc *PageManifestDocument) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidManifest)
	}
	for _, entry := range doc.Pages {
		def, ok := reg.Page(entry.ID)
		if !ok {
			return fmt.Errorf("dashboard: apply manifest %s: %w: %s", doc.Source, ErrUnknownPage, entry.ID)
		}
		if err := entry.applyTo(&def); err != nil {
			return fmt.Errorf("dashboard: apply manifest %s: %w", doc.Source, err)
		}
		if err := reg.RegisterPage(def); err != nil {
			return err
		}
	}
	return nil
}

func (entry ManifestPage) applyTo(def *PageDefinition) error {
	if entry.Title != "" {
		def.Title = entry.Title
	}
	if entry.TitleLocalized != nil {
		def.TitleLocalized = copyStringMap(entry.TitleLocalized)
	}
	if entry.Description != "" {
		def.Description = entry.Description
	}
	if entry.Position != nil {
		def.Position = *entry.Position
	}
	if entry.Notify != nil {
		def.Notify = *entry.Notify
	}
	if len(entry.Order) > 0 {
		for _, id := range entry.Order {
			if !def.HasWidget(id) {
				return fmt.Errorf("%w: page %s has no widget %q", ErrInvalidManifest, def.ID, id)
			}
		}
		def.DefaultOrder = append([]string(nil), entry.Order...)
	}
	if len(entry.Filters) > 0 {
		filters := copyStringMap(def.DefaultFilters)
		if filters == nil {
			filters = map[string]string{}
		}
		for name, value := range entry.Filters {
			filters[name] = value
		}
		def.DefaultFilters = filters
	}
	return nil
}

// ManifestFromPages snapshots page definitions into a manifest document.
func ManifestFromPages(name string, pages []PageDefinition) *PageManifestDocument {
	doc := &PageManifestDocument{Version: ManifestVersion, Name: name}
	for _, def := range pages {
		position := def.Position
		notify := def.Notify
		doc.Pages = append(doc.Pages, ManifestPage{
			ID:             def.ID,
			Title:          def.Title,
			TitleLocalized: copyStringMap(def.TitleLocalized),
			Description:    def.Description,
			Position:       &position,
			Order:          append([]string(nil), def.DefaultOrder...),
			Filters:        copyStringMap(def.DefaultFilters),
			Notify:         &notify,
		})
	}
	return doc
}

// Page returns the manifest entry for id.
func (doc *PageManifestDocument) Page(id PageID) (*ManifestPage, bool) {
	for i := range doc.Pages {
		if doc.Pages[i].ID == id {
			return &doc.Pages[i], true
		}
	}
	return nil, false
}

// ReadManifest loads a manifest file from disk without applying it.
func ReadManifest(path string) (*PageManifestDocument, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("dashboard: open manifest %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeManifest(f)
	if err != nil {
		return nil, fmt.Errorf("dashboard: decode manifest %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeManifest reads a manifest from any reader.
func DecodeManifest(r io.Reader) (*PageManifestDocument, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc PageManifestDocument
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: manifest is empty", ErrInvalidManifest)
		}
		return nil, fmt.Errorf("%w: parse manifest: %v", ErrInvalidManifest, err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// EncodeManifest writes the manifest as YAML.
func EncodeManifest(w io.Writer, doc *PageManifestDocument) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	return encoder.Close()
}

// Validate checks the document against the manifest schema and rejects
// duplicate pages and duplicate order entries.
func (doc *PageManifestDocument) Validate() error {
	if doc.Version != manifestVersionV1 {
		return fmt.Errorf("%w: unsupported manifest version %q", ErrInvalidManifest, doc.Version)
	}
	if err := ValidateManifestSchema(doc); err != nil {
		return err
	}
	seen := make(map[PageID]struct{}, len(doc.Pages))
	for idx, page := range doc.Pages {
		if page.ID == "" {
			return fmt.Errorf("%w: page at index %d is missing id", ErrInvalidManifest, idx)
		}
		if _, exists := seen[page.ID]; exists {
			return fmt.Errorf("%w: duplicate page %s", ErrInvalidManifest, page.ID)
		}
		seen[page.ID] = struct{}{}
		ids := make(map[string]struct{}, len(page.Order))
		for _, id := range page.Order {
			if _, dup := ids[id]; dup {
				return fmt.Errorf("%w: page %s orders widget %q twice", ErrInvalidManifest, page.ID, id)
			}
			ids[id] = struct{}{}
		}
	}
	return nil
}

func (doc *PageManifestDocument) applyDefaults() {
	if doc.Version == "" {
		doc.Version = manifestVersionV1
	}
}
