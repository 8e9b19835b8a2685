package rowsource

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	retryablehttp "github.com/hashicorp/go-retryablehttp"
	"golang.org/x/net/html"

	"github.com/coursedeck/coursedeck/internal/utils"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:83.0) Gecko/20100101 Firefox/83.0"

var defaultClient *retryablehttp.Client

// GetDefaultClient returns the shared retrying HTTP client used for data
// retrieval.
func GetDefaultClient() *retryablehttp.Client {
	if defaultClient == nil {
		defaultClient = retryablehttp.NewClient()
		defaultClient.RetryMax = 3
		defaultClient.HTTPClient.Timeout = 30 * time.Second
		defaultClient.Logger = nil
	}
	return defaultClient
}

// Open resolves a location (local path or http(s) URL) into a Source, picking
// the decoder from the file extension: .csv, .json, .html/.htm. Anything else
// defaults to CSV.
func Open(location string) (Source, error) {
	data, err := fetch(location)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(path.Ext(strings.SplitN(location, "?", 2)[0])) {
	case ".json":
		return NewJSONSource(location, data), nil
	case ".html", ".htm":
		return NewHTMLSource(location, data), nil
	default:
		return NewCSVSource(location, data), nil
	}
}

func fetch(location string) ([]byte, error) {
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, err
		}
		return data, nil
	}

	req, err := retryablehttp.NewRequest(http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en")

	utils.Log.Debugf("fetching %s", location)
	resp, err := GetDefaultClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		// Error pages usually come back as HTML; surface their title when
		// there is one, it beats dumping a whole body into the error.
		if title, ok := htmlTitle(string(body)); ok {
			return nil, fmt.Errorf("fetching %s: HTTP %d (%s)", location, resp.StatusCode, title)
		}
		return nil, fmt.Errorf("fetching %s: HTTP %d", location, resp.StatusCode)
	}
	return body, nil
}

func htmlTitle(body string) (string, bool) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return "", false
	}
	return traverseTitle(doc)
}

func traverseTitle(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && n.Data == "title" {
		if n.FirstChild != nil {
			return strings.TrimSpace(n.FirstChild.Data), true
		}
		return "", true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title, ok := traverseTitle(c); ok {
			return title, ok
		}
	}
	return "", false
}
