package countries

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/validator"
	"github.com/joefazee/atlas/models"
)

// HTTPClient talks to a restcountries v3.1 compatible API.
type HTTPClient struct {
	baseURL    string
	listFields string
	httpClient *http.Client
	log        logger.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client from cfg. A nil httpClient gets one with cfg.Timeout.
func NewHTTPClient(cfg Config, httpClient *http.Client, log logger.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		listFields: cfg.ListFields,
		httpClient: httpClient,
		log:        log,
	}
}

func (c *HTTPClient) FetchAll(ctx context.Context) ([]models.Country, error) {
	endpoint := c.baseURL + "/all"
	if c.listFields != "" {
		endpoint += "?fields=" + url.QueryEscape(c.listFields)
	}

	var out []models.Country
	if err := c.getJSON(ctx, "all", endpoint, &out); err != nil {
		c.log.Error(err, map[string]interface{}{"op": "all"})
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) FetchByName(ctx context.Context, term string) ([]models.Country, error) {
	if term == "" {
		return []models.Country{}, nil
	}

	var out []models.Country
	err := c.getJSON(ctx, "name", c.baseURL+"/name/"+url.PathEscape(term), &out)
	if err != nil {
		// A search miss is a 404 upstream; every failure reads as no results.
		c.log.Error(err, map[string]interface{}{"op": "name", "term": term})
		return []models.Country{}, nil
	}
	if out == nil {
		out = []models.Country{}
	}
	return out, nil
}

func (c *HTTPClient) FetchByRegion(ctx context.Context, region string) ([]models.Country, error) {
	region = strings.ToLower(strings.TrimSpace(region))
	if region == "" {
		return nil, &ValidationError{Field: "region", Err: models.ErrInvalidRegion}
	}

	var out []models.Country
	if err := c.getJSON(ctx, "region", c.baseURL+"/region/"+url.PathEscape(region), &out); err != nil {
		c.log.Error(err, map[string]interface{}{"op": "region", "region": region})
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) FetchByCode(ctx context.Context, code string) (*models.Country, error) {
	if !validator.IsAlpha3(code) {
		return nil, &ValidationError{Field: "code", Err: models.ErrInvalidCountryCode}
	}

	var raw json.RawMessage
	err := c.getJSON(ctx, "alpha", c.baseURL+"/alpha/"+url.PathEscape(code), &raw)
	if err != nil {
		var te *TransportError
		if errors.As(err, &te) && te.Status == http.StatusNotFound {
			return nil, &NotFoundError{Code: code}
		}
		c.log.Error(err, map[string]interface{}{"op": "alpha", "code": code})
		return nil, err
	}

	country, err := decodeOne(raw)
	if err != nil {
		return nil, &TransportError{Op: "alpha", Err: err}
	}
	if country == nil {
		return nil, &NotFoundError{Code: code}
	}
	return country, nil
}

// decodeOne accepts either a bare object or a collection, using its first element.
func decodeOne(raw json.RawMessage) (*models.Country, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var list []models.Country
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return nil, nil
		}
		return &list[0], nil
	}

	var one models.Country
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return nil, err
	}
	return &one, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, op, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &TransportError{Op: op, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}
