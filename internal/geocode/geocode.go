// Package geocode resolves free-form street addresses to coordinates via
// the Nominatim search API. Lookups are best effort: network failures are
// retried a fixed number of times with a fixed backoff, and anything that
// still fails surfaces as ErrUnavailable.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"
)

// ErrUnavailable is returned when an address cannot be resolved, either
// because the geocoding service failed or because it found no match.
var ErrUnavailable = errors.New("could not locate address")

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder resolves an address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinates, error)
}

const (
	userAgent    = "SharedFlatTracker/1.0"
	extraRetries = 2
	retryBackoff = 500 * time.Millisecond
)

// Client queries a Nominatim-compatible endpoint.
type Client struct {
	baseURL string
	country string
	httpc   *http.Client
}

// NewClient builds a client for the given endpoint. country optionally
// restricts results to an ISO country code; empty means no restriction.
func NewClient(baseURL, country string) *Client {
	return &Client{
		baseURL: baseURL,
		country: country,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Geocode resolves address, retrying transient failures up to the fixed
// attempt budget. A well-formed "no results" answer is final and is not
// retried.
func (c *Client) Geocode(ctx context.Context, address string) (Coordinates, error) {
	var coords Coordinates
	backoff := retry.WithMaxRetries(extraRetries, retry.NewConstant(retryBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		res, err := c.lookup(ctx, address)
		if err != nil {
			return err
		}
		coords = res
		return nil
	})
	if err != nil {
		return Coordinates{}, ErrUnavailable
	}
	return coords, nil
}

func (c *Client) lookup(ctx context.Context, address string) (Coordinates, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("q", address)
	query.Set("limit", "1")
	if c.country != "" {
		query.Set("countrycodes", c.country)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return Coordinates{}, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Coordinates{}, retry.RetryableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return Coordinates{}, retry.RetryableError(fmt.Errorf("geocoder returned status %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return Coordinates{}, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Coordinates{}, err
	}
	if len(results) == 0 {
		return Coordinates{}, ErrUnavailable
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Coordinates{}, err
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Coordinates{}, err
	}
	return Coordinates{Latitude: lat, Longitude: lon}, nil
}
