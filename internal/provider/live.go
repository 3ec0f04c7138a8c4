package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPLiveAPI fetches resources from the live backend over HTTP
type HTTPLiveAPI struct {
	baseURL string
	client  *http.Client
}

func NewHTTPLiveAPI(baseURL string) *HTTPLiveAPI {
	return &HTTPLiveAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *HTTPLiveAPI) Fetch(ctx context.Context, resource string, query url.Values) ([]byte, error) {
	endpoint := a.baseURL + "/" + resourceEndpoint(resource)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("live backend returned status %d for %s", resp.StatusCode, resource)
	}

	return io.ReadAll(resp.Body)
}

// resourceEndpoint maps a logical resource to the live API route
func resourceEndpoint(resource string) string {
	if section, ok := strings.CutPrefix(resource, contentPrefix); ok {
		return "content/" + section
	}
	switch resource {
	case ResourceProducts:
		return "products"
	case ResourceCategories:
		return "categories"
	case ResourceExamples:
		return "examples-of-work"
	case ResourceContact:
		return "contact"
	case ResourceFilters:
		return "products/filters"
	case ResourceContent:
		return "content"
	}
	return resource
}
