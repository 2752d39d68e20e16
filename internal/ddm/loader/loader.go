package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/goliatone/go-ddmform/pkg/ddm"
	"github.com/goliatone/go-ddmform/pkg/schema"
)

// maxDefinitionSize caps remote definitions. Portal structures are a few
// kilobytes; anything near this size is not a DDM document.
const maxDefinitionSize = 8 << 20

// Loader implements ddm.Loader for local files, an fs.FS, and (when
// enabled) http(s) URLs.
type Loader struct {
	fs      fs.FS
	client  *http.Client
	timeout time.Duration
}

var _ ddm.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options ddm.LoaderOptions) *Loader {
	l := &Loader{fs: options.FileSystem, timeout: options.RequestTimeout}

	switch {
	case options.HTTPClient != nil:
		client := *options.HTTPClient
		if client.Timeout == 0 {
			client.Timeout = l.timeout
		}
		l.client = &client
	case options.AllowHTTPFallback:
		l.client = &http.Client{Timeout: l.timeout}
	}
	return l
}

// Load reads the definition src points at.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if src == nil {
		return schema.Document{}, errors.New("ddm loader: source is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return schema.Document{}, err
	}

	location := src.Location()
	if location == "" {
		return schema.Document{}, fmt.Errorf("ddm loader: %s source has no location", src.Kind())
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case schema.SourceKindFile:
		data, err = os.ReadFile(location)
	case schema.SourceKindFS:
		if l.fs == nil {
			return schema.Document{}, errors.New("ddm loader: no file system configured")
		}
		data, err = fs.ReadFile(l.fs, location)
	case schema.SourceKindURL:
		data, err = l.fetch(ctx, location)
	default:
		return schema.Document{}, fmt.Errorf("ddm loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return schema.Document{}, fmt.Errorf("ddm loader: read %s: %w", location, err)
	}
	return schema.NewDocument(src, data)
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	if l.client == nil {
		return nil, errors.New("http support disabled")
	}
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/xml, text/xml;q=0.9, */*;q=0.1")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDefinitionSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxDefinitionSize {
		return nil, fmt.Errorf("definition exceeds %d bytes", maxDefinitionSize)
	}
	return data, nil
}
