package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"testing/fstest"

	"github.com/granitdvor/monument-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLiveAPI records calls and returns canned responses per resource
type stubLiveAPI struct {
	responses map[string][]byte
	err       error
	calls     []string
}

func (s *stubLiveAPI) Fetch(ctx context.Context, resource string, query url.Values) ([]byte, error) {
	s.calls = append(s.calls, resource)
	if s.err != nil {
		return nil, s.err
	}
	if data, ok := s.responses[resource]; ok {
		return data, nil
	}
	return nil, errors.New("no canned response")
}

func staticExport() fstest.MapFS {
	products := []model.Product{
		{ID: 1, Name: "Памятник", Price: 1200, CategoryID: uintPtr(1), Materials: "Черный гранит"},
		{ID: 2, Name: "Ограда", Price: 400, CategoryID: uintPtr(2), Materials: "Металл"},
	}
	categories := []model.Category{
		{ID: 1, Name: "Памятники", IsActive: true},
		{ID: 2, Name: "Ограды", IsActive: true},
		{ID: 3, Name: "Архив", IsActive: false},
	}
	content := map[string]json.RawMessage{
		"about-company": json.RawMessage(`{"title":"О компании"}`),
		"footer":        json.RawMessage(`{"copyright":"ГранитДвор"}`),
	}

	productsJSON, _ := json.Marshal(products)
	categoriesJSON, _ := json.Marshal(categories)
	contentJSON, _ := json.Marshal(content)

	return fstest.MapFS{
		"products.json":   &fstest.MapFile{Data: productsJSON},
		"categories.json": &fstest.MapFile{Data: categoriesJSON},
		"content.json":    &fstest.MapFile{Data: contentJSON},
	}
}

func uintPtr(v uint) *uint { return &v }

func TestDocumentPath(t *testing.T) {
	tests := []struct {
		resource string
		want     string
	}{
		{ResourceProducts, "products.json"},
		{ResourceCategories, "categories.json"},
		{ResourceExamples, "examples.json"},
		{ResourceContact, "contact.json"},
		{ResourceContent, "content.json"},
		{"content:footer", "content.json"},
	}
	for _, tt := range tests {
		path, err := DocumentPath(tt.resource)
		require.NoError(t, err, tt.resource)
		assert.Equal(t, tt.want, path)
	}

	_, err := DocumentPath("orders")
	assert.ErrorIs(t, err, ErrUnknownResource)
}

func TestClassifyHost(t *testing.T) {
	tests := []struct {
		hostname string
		want     Mode
	}{
		{"", ModeDynamic},
		{"localhost", ModeDynamic},
		{"127.0.0.1", ModeDynamic},
		{"granitdvor.github.io", ModeStatic},
		{"preview.pages.dev", ModeStatic},
		{"granitdvor.netlify.app", ModeStatic},
		{"GRANITDVOR.GITHUB.IO", ModeStatic},
		{"api.granitdvor.by", ModeDynamic},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyHost(tt.hostname), "hostname %q", tt.hostname)
	}
}

func TestResolverMode_ExplicitConfigWins(t *testing.T) {
	r := NewResolver("static", "localhost", NewFSSource(staticExport()), &stubLiveAPI{})
	assert.Equal(t, ModeStatic, r.Mode())

	r = NewResolver("dynamic", "granitdvor.github.io", NewFSSource(staticExport()), &stubLiveAPI{})
	assert.Equal(t, ModeDynamic, r.Mode())
}

func TestResolverMode_MemoizedUntilReset(t *testing.T) {
	r := NewResolver("", "localhost", NewFSSource(staticExport()), &stubLiveAPI{})
	require.Equal(t, ModeDynamic, r.Mode())

	// changing the hostname underneath does not change the memoized result
	r.hostname = "granitdvor.github.io"
	assert.Equal(t, ModeDynamic, r.Mode())

	r.ResetClassification()
	assert.Equal(t, ModeStatic, r.Mode())
}

func TestFetch_StaticModeReadsExport(t *testing.T) {
	live := &stubLiveAPI{}
	r := NewResolver("static", "", NewFSSource(staticExport()), live)

	data, err := r.Fetch(context.Background(), ResourceProducts, nil)
	require.NoError(t, err)

	var products []model.Product
	require.NoError(t, json.Unmarshal(data, &products))
	assert.Len(t, products, 2)
	assert.Empty(t, live.calls, "live backend never consulted when the export serves")
}

func TestFetch_StaticModeFallsBackToLive(t *testing.T) {
	live := &stubLiveAPI{responses: map[string][]byte{
		ResourceContact: []byte(`{"address":"г. Минск"}`),
	}}
	// contact.json missing from the export
	r := NewResolver("static", "", NewFSSource(staticExport()), live)

	data, err := r.Fetch(context.Background(), ResourceContact, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"address":"г. Минск"}`, string(data))
	assert.Equal(t, []string{ResourceContact}, live.calls)
}

func TestFetch_InvalidStaticJSONFallsBack(t *testing.T) {
	fsys := staticExport()
	fsys["products.json"] = &fstest.MapFile{Data: []byte("{broken")}

	live := &stubLiveAPI{responses: map[string][]byte{
		ResourceProducts: []byte(`[]`),
	}}
	r := NewResolver("static", "", NewFSSource(fsys), live)

	data, err := r.Fetch(context.Background(), ResourceProducts, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestFetch_BothSourcesFailing(t *testing.T) {
	live := &stubLiveAPI{err: errors.New("connection refused")}
	r := NewResolver("static", "", NewFSSource(fstest.MapFS{}), live)

	_, err := r.Fetch(context.Background(), ResourceProducts, nil)

	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestFetch_UnknownResource(t *testing.T) {
	r := NewResolver("static", "", NewFSSource(staticExport()), &stubLiveAPI{})

	_, err := r.Fetch(context.Background(), "orders", nil)

	assert.ErrorIs(t, err, ErrUnknownResource)
}

func TestFetch_DynamicModeGoesStraightToLive(t *testing.T) {
	live := &stubLiveAPI{responses: map[string][]byte{
		ResourceProducts: []byte(`[{"id":9,"name":"Стела","price":900}]`),
	}}
	r := NewResolver("dynamic", "", NewFSSource(staticExport()), live)

	data, err := r.Fetch(context.Background(), ResourceProducts, nil)
	require.NoError(t, err)

	var products []model.Product
	require.NoError(t, json.Unmarshal(data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, uint(9), products[0].ID)
}

func TestFetch_ProductsPostFilteredByCategory(t *testing.T) {
	r := NewResolver("static", "", NewFSSource(staticExport()), &stubLiveAPI{})

	query := url.Values{}
	query.Set("category_id", "2")

	data, err := r.Fetch(context.Background(), ResourceProducts, query)
	require.NoError(t, err)

	var products []model.Product
	require.NoError(t, json.Unmarshal(data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Ограда", products[0].Name)
}

func TestFetch_FiltersSynthesizedFromExport(t *testing.T) {
	r := NewResolver("static", "", NewFSSource(staticExport()), &stubLiveAPI{err: errors.New("down")})

	data, err := r.Fetch(context.Background(), ResourceFilters, nil)
	require.NoError(t, err)

	var meta FilterMetadata
	require.NoError(t, json.Unmarshal(data, &meta))

	assert.Len(t, meta.Categories, 2, "inactive categories excluded")
	assert.Equal(t, []string{"Металл", "Черный гранит"}, meta.Materials)
	assert.Equal(t, 400.0, meta.PriceRange.Min)
	assert.Equal(t, 1200.0, meta.PriceRange.Max)
}

func TestFetch_FiltersDegradeToEmptyAggregate(t *testing.T) {
	// nothing exported, live backend down: the aggregate is empty but valid
	r := NewResolver("static", "", NewFSSource(fstest.MapFS{}), &stubLiveAPI{err: errors.New("down")})

	data, err := r.Fetch(context.Background(), ResourceFilters, nil)
	require.NoError(t, err)

	var meta FilterMetadata
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.Empty(t, meta.Categories)
	assert.Empty(t, meta.Materials)
	assert.Zero(t, meta.PriceRange.Min)
	assert.Zero(t, meta.PriceRange.Max)
}

func TestFetch_ContentSectionProjection(t *testing.T) {
	r := NewResolver("static", "", NewFSSource(staticExport()), &stubLiveAPI{})

	data, err := r.Fetch(context.Background(), "content:footer", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"copyright":"ГранитДвор"}`, string(data))

	_, err = r.Fetch(context.Background(), "content:missing-section", nil)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestFetch_ContextCancellation(t *testing.T) {
	r := NewResolver("static", "", NewFSSource(staticExport()), &stubLiveAPI{err: errors.New("down")})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Fetch(ctx, ResourceProducts, nil)
	assert.Error(t, err)
}
