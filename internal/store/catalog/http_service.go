package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// HTTPClient matches the subset of http.Client used by HTTPService.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// DefaultTimeout bounds a single CMS request so a hung backend surfaces as a
// fetch failure instead of a stalled page.
const DefaultTimeout = 10 * time.Second

// HTTPService implements Service against the headless CMS REST API.
type HTTPService struct {
	base   *url.URL
	client HTTPClient
}

// NewHTTPService constructs a Service that fetches listings from the CMS at
// baseURL. A nil client gets a default with a request timeout applied.
func NewHTTPService(baseURL string, client HTTPClient) (*HTTPService, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("catalog: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse base URL: %w", err)
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPService{
		base:   parsed,
		client: client,
	}, nil
}

type listResponse struct {
	Data []RawListing `json:"data"`
}

type itemResponse struct {
	Data *RawListing `json:"data"`
}

// List fetches the full collection and maps each record. A record whose
// specifications payload is malformed is kept in degraded form rather than
// failing the whole collection.
func (s *HTTPService) List(ctx context.Context) ([]Listing, error) {
	resp, err := s.get(ctx, "/api/cars?populate=image")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, s.errorFromResponse(resp)
	}

	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("catalog: decode listings: %w", err)
	}

	listings := make([]Listing, 0, len(payload.Data))
	for _, raw := range payload.Data {
		listing, err := MapListing(raw, s.base.String())
		if err != nil {
			log.Printf("catalog: %v (keeping listing in degraded form)", err)
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// Get fetches one listing by identifier.
func (s *HTTPService) Get(ctx context.Context, id int) (Listing, error) {
	resp, err := s.get(ctx, "/api/cars/"+strconv.Itoa(id)+"?populate=image")
	if err != nil {
		return Listing{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Listing{}, fmt.Errorf("%w: id %d", ErrListingNotFound, id)
	}
	if resp.StatusCode != http.StatusOK {
		return Listing{}, s.errorFromResponse(resp)
	}

	var payload itemResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Listing{}, fmt.Errorf("catalog: decode listing: %w", err)
	}
	if payload.Data == nil {
		return Listing{}, fmt.Errorf("%w: id %d", ErrListingNotFound, id)
	}

	return MapListing(*payload.Data, s.base.String())
}

func (s *HTTPService) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.resolve(endpoint), nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: request failed: %w", err)
	}
	return resp, nil
}

func (s *HTTPService) resolve(endpoint string) string {
	ref, err := url.Parse(strings.TrimPrefix(endpoint, "/"))
	if err != nil {
		return s.base.String()
	}
	return s.base.ResolveReference(ref).String()
}

func (s *HTTPService) errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	type errorPayload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	var payload errorPayload
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
			return fmt.Errorf("catalog: cms error (%d): %s", resp.StatusCode, payload.Error.Message)
		}
	}
	return fmt.Errorf("catalog: cms error (%d): %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
