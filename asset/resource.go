// Package asset resolves scene assets such as meshes and textures from
// local file paths or remote http/https URLs.
package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

// A Resource wraps a streamable local file or remote asset. Callers must
// close it to release the underlying file handle or response body.
type Resource struct {
	io.ReadCloser

	path string
}

// Path returns the location this resource was opened from.
func (r *Resource) Path() string {
	return r.path
}

// Open a resource stream. Paths with an http or https scheme are fetched
// over the network; anything else is treated as a local file path.
func Open(path string) (*Resource, error) {
	u, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("asset: %v", err)
	}

	var reader io.ReadCloser
	switch u.Scheme {
	case "http", "https":
		resp, err := http.Get(path)
		if err != nil {
			return nil, fmt.Errorf("asset: could not fetch %q: %v", path, err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("asset: could not fetch %q: status %d", path, resp.StatusCode)
		}
		reader = resp.Body
	default:
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("asset: %v", err)
		}
		reader = f
	}

	return &Resource{
		ReadCloser: reader,
		path:       path,
	}, nil
}
