package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/minatbakat/internal/profile"
	"github.com/abhisek/minatbakat/internal/quiz"
)

// Remote file names under the base URL.
const (
	QuestionsFile = "questions.json"
	ProfilesFile  = "recommendations.json"
)

// MaxContentBytes caps a remote content file. The bundled files are a few
// kilobytes.
const MaxContentBytes = 4 << 20

// ErrTooLarge is returned when a remote file exceeds the size cap.
var ErrTooLarge = errors.New("content file too large")

// HTTPSource fetches content from a base URL. Every request carries a
// ?v=<unix millis> cache buster.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client

	// Now stamps the cache buster. Defaults to time.Now.
	Now func() time.Time

	// MaxBytes caps each response body. Zero means MaxContentBytes.
	MaxBytes int64
}

var _ Source = (*HTTPSource)(nil)

// NewHTTPSource creates a source rooted at baseURL.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{BaseURL: baseURL, Client: client, Now: time.Now}
}

func (s *HTTPSource) Questions(ctx context.Context) (*quiz.Bank, error) {
	raw, err := s.fetch(ctx, QuestionsFile)
	if err != nil {
		return nil, &LoadError{What: WhatQuestions, Err: err}
	}
	bank, err := DecodeQuestions(raw)
	if err != nil {
		return nil, &LoadError{What: WhatQuestions, Err: err}
	}
	return bank, nil
}

func (s *HTTPSource) Profiles(ctx context.Context) (profile.Table, error) {
	raw, err := s.fetch(ctx, ProfilesFile)
	if err != nil {
		return nil, &LoadError{What: WhatProfiles, Err: err}
	}
	t, err := DecodeProfiles(raw)
	if err != nil {
		return nil, &LoadError{What: WhatProfiles, Err: err}
	}
	return t, nil
}

// URLFor builds the cache-busted URL for a content file.
func (s *HTTPSource) URLFor(name string) (string, error) {
	u, err := url.Parse(strings.TrimRight(s.BaseURL, "/") + "/" + name)
	if err != nil {
		return "", err
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	q := u.Query()
	q.Set("v", strconv.FormatInt(now().UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (s *HTTPSource) fetch(ctx context.Context, name string) ([]byte, error) {
	target, err := s.URLFor(name)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, name)
	}

	limit := s.MaxBytes
	if limit <= 0 {
		limit = MaxContentBytes
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > limit {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", name, ErrTooLarge, limit)
	}
	return raw, nil
}
