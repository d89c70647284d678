package picsum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// idHeader carries the served image id on the final response. Older CDN
// nodes omit it, in which case the id is recovered from the redirect URL.
const idHeader = "Picsum-Id"

// ImageSpec describes one randomized image request.
type ImageSpec struct {
	Width  int
	Height int
	Blur   int // 0 disables
	Grey   bool
	// Random disambiguates otherwise-identical requests so the service
	// serves a fresh image instead of a cached duplicate.
	Random string
}

// ImageRef identifies the image the service chose to serve.
type ImageRef struct {
	ID  string
	URL string
}

// ImageInfo is the metadata document for a served image.
type ImageInfo struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	URL         string `json:"url"`
	DownloadURL string `json:"download_url"`
}

// Client talks to a Lorem Picsum compatible API.
type Client struct {
	BaseURL string
	HC      *http.Client
}

// FetchImage requests a randomized image at the spec's dimensions and
// returns which image was served, without retaining the image bytes.
func (c *Client) FetchImage(ctx context.Context, spec ImageSpec) (ImageRef, error) {
	q := url.Values{}
	if spec.Random != "" {
		q.Set("random", spec.Random)
	}
	if spec.Blur > 0 {
		q.Set("blur", strconv.Itoa(spec.Blur))
	}
	if spec.Grey {
		q.Set("grayscale", "")
	}
	u := fmt.Sprintf("%s/%d/%d", c.BaseURL, spec.Width, spec.Height)
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return ImageRef{}, fmt.Errorf("build image request: %w", err)
	}
	resp, err := c.HC.Do(req)
	if err != nil {
		return ImageRef{}, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ImageRef{}, fmt.Errorf("fetch image: unexpected status %d", resp.StatusCode)
	}

	id := resp.Header.Get(idHeader)
	if id == "" {
		id = idFromPath(resp.Request.URL.Path)
	}
	if id == "" {
		return ImageRef{}, fmt.Errorf("fetch image: no image id in response for %s", u)
	}
	return ImageRef{ID: id, URL: resp.Request.URL.String()}, nil
}

// Info fetches the metadata document for an image id.
func (c *Client) Info(ctx context.Context, id string) (ImageInfo, error) {
	u := fmt.Sprintf("%s/id/%s/info", c.BaseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("build info request: %w", err)
	}
	resp, err := c.HC.Do(req)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("fetch info for %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ImageInfo{}, fmt.Errorf("fetch info for %s: unexpected status %d", id, resp.StatusCode)
	}

	var info ImageInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return ImageInfo{}, fmt.Errorf("decode info for %s: %w", id, err)
	}
	return info, nil
}

// idFromPath recovers the image id from a redirect target of the form
// /id/{id}/{width}/{height}[.ext].
func idFromPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) >= 2 && parts[0] == "id" {
		return parts[1]
	}
	return ""
}
