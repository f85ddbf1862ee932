// Package notify reports finished results to an external collector.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/minatbakat/internal/report"
)

// DefaultTimeout bounds a single Fire delivery.
const DefaultTimeout = 10 * time.Second

// Payload is the record posted for each matched result.
type Payload struct {
	Name   string `json:"name"`
	School string `json:"school"`
	Grade  string `json:"grade"`
	MBTI   string `json:"mbti"`
	RIASEC string `json:"riasec"`
	Majors string `json:"majors"`
}

// FromReport builds the payload for a report. ok is false when the report
// has no matched profile; such results are never sent.
func FromReport(r report.Report) (Payload, bool) {
	if !r.Found {
		return Payload{}, false
	}
	return Payload{
		Name:   r.Participant.Name,
		School: r.Participant.School,
		Grade:  r.Participant.Grade,
		MBTI:   r.MBTIType,
		RIASEC: r.RIASECCode,
		Majors: r.MajorNames(),
	}, true
}

// Outcome labels for the delivery observer.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// Notifier posts payloads to URL. An empty URL disables it.
type Notifier struct {
	URL     string
	Client  *http.Client
	Logger  *zap.Logger
	Timeout time.Duration

	// Observe, when set, is called once per Fire with StatusSent or
	// StatusFailed.
	Observe func(status string)

	wg sync.WaitGroup
}

// New creates a Notifier.
func New(url string, timeout time.Duration, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Notifier{
		URL:     url,
		Client:  &http.Client{},
		Logger:  logger,
		Timeout: timeout,
	}
}

// Enabled reports whether a destination is configured.
func (n *Notifier) Enabled() bool {
	return n != nil && n.URL != ""
}

// Send posts p synchronously. The collector is an Apps Script web app
// that only accepts simple requests, so the JSON body goes out as
// text/plain. The response body is drained and ignored.
func (n *Notifier) Send(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	client := n.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("post result: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// Fire sends p on its own goroutine. Failures are logged and dropped.
func (n *Notifier) Fire(p Payload) {
	if !n.Enabled() {
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		timeout := n.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		logger := n.logger().With(zap.String("mbti", p.MBTI), zap.String("riasec", p.RIASEC))
		if err := n.Send(ctx, p); err != nil {
			logger.Warn("result notification failed", zap.Error(err))
			n.observe(StatusFailed)
			return
		}
		logger.Debug("result notification sent")
		n.observe(StatusSent)
	}()
}

// Wait blocks until every in-flight Fire has finished.
func (n *Notifier) Wait() {
	if n == nil {
		return
	}
	n.wg.Wait()
}

func (n *Notifier) logger() *zap.Logger {
	if n.Logger == nil {
		return zap.NewNop()
	}
	return n.Logger
}

func (n *Notifier) observe(status string) {
	if n.Observe != nil {
		n.Observe(status)
	}
}
