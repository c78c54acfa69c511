package inputprocessor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Sugamrai0/AIML/internal/util"
)

// maxFetchBytes bounds URL and file reads.
const maxFetchBytes = 10 << 20

// Result holds extracted content details
type Result struct {
	Body        string
	ContentType string
	Filename    string
	Size        int64
	Mtime       time.Time
	InputType   string // "file", "url" or "raw"
}

// Processor resolves a user-supplied input into text. The input may be a
// file path, an http(s) URL, or the text itself.
type Processor interface {
	Process(ctx context.Context, input string) (Result, error)
}

// New creates a default processor implementation
func New() Processor {
	return &defaultProcessor{client: http.DefaultClient}
}

type defaultProcessor struct {
	client *http.Client
}

func (p *defaultProcessor) Process(ctx context.Context, input string) (Result, error) {
	fi, err := os.Stat(input)
	switch {
	case err == nil && !fi.IsDir():
		return p.processFile(input, fi)
	case err == nil:
		log.WithField("input", input).Debug("input is a directory, treating as raw text")
	case errors.Is(err, os.ErrPermission):
		return Result{}, fmt.Errorf("failed to stat input '%s': %w", input, err)
	}

	if u, urlErr := url.Parse(input); urlErr == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return p.processURL(ctx, u)
	}

	return Result{
		Body:        input,
		ContentType: "text/plain; charset=utf-8",
		Size:        int64(len(input)),
		InputType:   "raw",
	}, nil
}

func (p *defaultProcessor) processFile(path string, fi os.FileInfo) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return Result{}, fmt.Errorf("permission denied reading file '%s': %w", path, err)
		}
		return Result{}, fmt.Errorf("failed to read file '%s': %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxFetchBytes))
	if err != nil {
		return Result{}, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	ct := http.DetectContentType(data)
	if strings.EqualFold(filepath.Ext(path), ".md") {
		ct = "text/markdown; charset=utf-8"
	}
	body, err := toText(data, ct, path)
	if err != nil {
		return Result{}, err
	}

	log.WithFields(log.Fields{"path": path, "content_type": ct, "size": fi.Size()}).Debug("input detected as a file")
	return Result{
		Body:        body,
		ContentType: ct,
		Filename:    filepath.Base(path),
		Size:        fi.Size(),
		Mtime:       fi.ModTime(),
		InputType:   "file",
	}, nil
}

func (p *defaultProcessor) processURL(ctx context.Context, u *url.URL) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request for URL '%s': %w", u, err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch URL '%s': %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		hint, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return Result{}, fmt.Errorf("failed to fetch URL '%s': status code %d %s - Body Hint: %s",
			u, resp.StatusCode, http.StatusText(resp.StatusCode), string(hint))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return Result{}, fmt.Errorf("failed to read response body from URL '%s': %w", u, err)
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	body, err := toText(data, ct, u.String())
	if err != nil {
		return Result{}, err
	}

	name := filepath.Base(u.Path)
	if name == "." || name == "/" {
		name = u.Host
	}
	return Result{
		Body:        body,
		ContentType: ct,
		Filename:    name,
		Size:        int64(len(data)),
		InputType:   "url",
	}, nil
}

func toText(data []byte, contentType, src string) (string, error) {
	if util.IsLikelyBinary(data) {
		return "", fmt.Errorf("input '%s' looks like a binary file (%s)", src, contentType)
	}
	if strings.Contains(strings.ToLower(contentType), "html") {
		text, err := ExtractHTMLText(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("parse html '%s': %w", src, err)
		}
		data = []byte(text)
	}
	return util.CleanText(data, src)
}

// Ensure defaultProcessor satisfies the Processor interface.
var _ Processor = (*defaultProcessor)(nil)
