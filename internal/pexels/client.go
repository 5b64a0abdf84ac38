// Package pexels is a thin client for the Pexels Videos API, used only to
// populate the movie catalog.
package pexels

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.pexels.com"

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// Video is the subset of the provider payload the catalog cares about.
type Video struct {
	ID       int         `json:"id"`
	URL      string      `json:"url"`
	Image    string      `json:"image"`
	Duration int         `json:"duration"`
	User     VideoAuthor `json:"user"`
	Files    []VideoFile `json:"video_files"`
}

type VideoAuthor struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type VideoFile struct {
	Quality string `json:"quality"`
	Link    string `json:"link"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

type searchResponse struct {
	Videos []Video `json:"videos"`
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL overrides the API host, used by tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = base
	return c
}

func (c *Client) Search(ctx context.Context, query string, perPage int) ([]Video, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(perPage))
	return c.fetch(ctx, "/videos/search?"+q.Encode())
}

func (c *Client) Popular(ctx context.Context, perPage int) ([]Video, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))
	return c.fetch(ctx, "/videos/popular?"+q.Encode())
}

func (c *Client) fetch(ctx context.Context, path string) ([]Video, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels: fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels: fetch failed: status %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("pexels: decode failed: %w", err)
	}
	return out.Videos, nil
}

// BestFile picks the highest-resolution HD file, falling back to the first
// file listed.
func (v Video) BestFile() string {
	best := ""
	bestW := -1
	for _, f := range v.Files {
		if f.Quality == "hd" && f.Width > bestW {
			best = f.Link
			bestW = f.Width
		}
	}
	if best == "" && len(v.Files) > 0 {
		best = v.Files[0].Link
	}
	return best
}
