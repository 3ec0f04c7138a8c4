package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/granitdvor/monument-backend/internal/catalog"
	"github.com/granitdvor/monument-backend/pkg/logger"
)

// Mode is the resolved deployment mode
type Mode string

const (
	ModeDynamic Mode = "dynamic"
	ModeStatic  Mode = "static"
)

// Canonical resource identifiers. Content sections use the
// "content:<section>" form.
const (
	ResourceProducts   = "products"
	ResourceCategories = "categories"
	ResourceExamples   = "examples-of-work"
	ResourceContact    = "contact"
	ResourceFilters    = "filters"
	ResourceContent    = "content" // the shared document behind every section

	contentPrefix = "content:"
)

// ErrResourceUnavailable is the uniform failure result: both the static
// export and the live backend failed to produce the resource. Callers
// render an error state; they never receive silently empty data.
var ErrResourceUnavailable = errors.New("resource unavailable from both static export and live backend")

// ErrUnknownResource marks a resource identifier outside the contract
var ErrUnknownResource = errors.New("unknown resource")

// DocumentPath maps a logical resource to its static export document.
// This is the file-layout contract shared with the export pipeline; if the
// export side moves its output, it must move here too.
func DocumentPath(resource string) (string, error) {
	switch resource {
	case ResourceProducts:
		return "products.json", nil
	case ResourceCategories:
		return "categories.json", nil
	case ResourceExamples:
		return "examples.json", nil
	case ResourceContact:
		return "contact.json", nil
	case ResourceContent:
		return "content.json", nil
	}
	if strings.HasPrefix(resource, contentPrefix) {
		// every content section projects out of the one shared document
		return "content.json", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownResource, resource)
}

// Source reads one static export document by path
type Source interface {
	ReadDocument(ctx context.Context, path string) ([]byte, error)
}

// LiveAPI fetches a resource from the live backend
type LiveAPI interface {
	Fetch(ctx context.Context, resource string, query url.Values) ([]byte, error)
}

// Resolver resolves logical resource reads against either the static JSON
// export or the live backend, transparently to callers. Writes never go
// through the resolver: static deployments are read-only by construction,
// so mutation paths always talk to the live backend directly.
type Resolver struct {
	mode    Mode
	static  Source
	live    LiveAPI
	modeRaw string // configured value; "" means auto-detect by hostname

	classifyOnce sync.Once
	classified   Mode
	hostname     string
}

// NewResolver builds a resolver. mode is the explicit configuration value
// ("static", "dynamic" or empty for the legacy hostname heuristic against
// hostname).
func NewResolver(mode string, hostname string, static Source, live LiveAPI) *Resolver {
	return &Resolver{
		modeRaw:  mode,
		hostname: hostname,
		static:   static,
		live:     live,
	}
}

// Mode resolves the deployment mode once and memoizes it. The explicit
// config value wins; the hostname heuristic is best-effort only.
func (r *Resolver) Mode() Mode {
	r.classifyOnce.Do(func() {
		switch strings.ToLower(r.modeRaw) {
		case string(ModeStatic):
			r.classified = ModeStatic
		case string(ModeDynamic):
			r.classified = ModeDynamic
		default:
			r.classified = ClassifyHost(r.hostname)
			logger.Warn("Deployment mode not configured, classified by hostname", map[string]interface{}{
				"hostname": r.hostname,
				"mode":     string(r.classified),
			})
		}
	})
	return r.classified
}

// ResetClassification drops the memoized mode so the next call re-derives
// it. Used across navigation boundaries that may change the hostname
// context, and by tests.
func (r *Resolver) ResetClassification() {
	r.classifyOnce = sync.Once{}
}

// ClassifyHost applies the legacy hostname heuristic: known static-hosting
// domains (and anything that is not a dev host) count as static. This is
// best-effort, not a capability probe; prefer the explicit config value.
func ClassifyHost(hostname string) Mode {
	host := strings.ToLower(hostname)
	switch {
	case host == "", host == "localhost", host == "127.0.0.1":
		return ModeDynamic
	case strings.HasSuffix(host, ".github.io"),
		strings.HasSuffix(host, ".pages.dev"),
		strings.HasSuffix(host, ".netlify.app"):
		return ModeStatic
	}
	return ModeDynamic
}

// Fetch resolves a logical resource to its current JSON document.
// Static mode tries the exported document first and falls back to the live
// backend on any failure; dynamic mode goes straight to the live backend.
// The "filters" aggregate has no export of its own and is synthesized.
func (r *Resolver) Fetch(ctx context.Context, resource string, query url.Values) ([]byte, error) {
	if resource == ResourceFilters {
		return r.fetchFilters(ctx, query)
	}

	if section, ok := strings.CutPrefix(resource, contentPrefix); ok {
		return r.fetchContentSection(ctx, section)
	}

	if _, err := DocumentPath(resource); err != nil {
		return nil, err
	}

	if r.Mode() == ModeStatic {
		data, err := r.readStatic(ctx, resource)
		if err == nil {
			return postFilter(resource, data, query)
		}
		logger.Warn("Static document unavailable, falling back to live backend", map[string]interface{}{
			"resource": resource,
			"error":    err.Error(),
		})
	}

	data, err := r.live.Fetch(ctx, resource, query)
	if err != nil {
		logger.Error("Resource unavailable from every source", err, map[string]interface{}{
			"resource": resource,
		})
		return nil, fmt.Errorf("%w: %s", ErrResourceUnavailable, resource)
	}
	return data, nil
}

// readStatic loads and validates one exported document
func (r *Resolver) readStatic(ctx context.Context, resource string) ([]byte, error) {
	path, err := DocumentPath(resource)
	if err != nil {
		return nil, err
	}

	data, err := r.static.ReadDocument(ctx, path)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("static document %s is not valid JSON", path)
	}
	return data, nil
}

// postFilter applies query-like narrowing to a static document; currently
// only products support it (by category id)
func postFilter(resource string, data []byte, query url.Values) ([]byte, error) {
	if resource != ResourceProducts || query.Get("category_id") == "" {
		return data, nil
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}

	wanted := query.Get("category_id")
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID != nil && fmt.Sprint(*p.CategoryID) == wanted {
			filtered = append(filtered, p)
		}
	}
	return json.Marshal(filtered)
}

// FilterMetadata is the synthesized "filters" aggregate
type FilterMetadata struct {
	Categories []model.Category   `json:"categories"`
	Materials  []string           `json:"materials"`
	PriceRange catalog.PriceRange `json:"priceRange"`
}

// fetchFilters synthesizes the filters aggregate from the categories and
// products documents when no dedicated export exists. Synthesis failures
// degrade to an empty-but-well-formed result: this is a derived
// convenience view, never primary data.
func (r *Resolver) fetchFilters(ctx context.Context, query url.Values) ([]byte, error) {
	if r.Mode() != ModeStatic {
		if data, err := r.live.Fetch(ctx, ResourceFilters, query); err == nil {
			return data, nil
		}
	}

	meta := FilterMetadata{
		Categories: []model.Category{},
		Materials:  []string{},
	}

	if data, err := r.Fetch(ctx, ResourceCategories, nil); err == nil {
		var categories []model.Category
		if err := json.Unmarshal(data, &categories); err == nil {
			for _, c := range categories {
				if c.IsActive {
					meta.Categories = append(meta.Categories, c)
				}
			}
		}
	}

	if data, err := r.Fetch(ctx, ResourceProducts, nil); err == nil {
		var products []model.Product
		if err := json.Unmarshal(data, &products); err == nil {
			meta.Materials = catalog.CollectMaterials(products)
			meta.PriceRange = catalog.ObservedPriceRange(products)
		}
	}

	return json.Marshal(meta)
}

// fetchContentSection loads the shared content document and projects the
// requested section key
func (r *Resolver) fetchContentSection(ctx context.Context, section string) ([]byte, error) {
	data, err := r.Fetch(ctx, ResourceContent, nil)
	if err != nil {
		return nil, err
	}

	var document map[string]json.RawMessage
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: content document malformed", ErrResourceUnavailable)
	}

	body, ok := document[section]
	if !ok {
		return nil, fmt.Errorf("%w: content section %q", ErrResourceUnavailable, section)
	}
	return body, nil
}
