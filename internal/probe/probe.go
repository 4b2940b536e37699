package probe

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	log "github.com/sirupsen/logrus"
)

// Result is one reachability check outcome.
type Result struct {
	Reachable bool
	Latency   time.Duration
	CheckedAt time.Time
}

// New creates and returns an internet reachability probe.
func New(url string, logger *log.Logger) *Probe {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.Logger = logger

	return &Probe{
		httpClient: retryClient.StandardClient(),
		url:        url,
		logger:     logger,
	}
}

// Probe checks whether the internet is reachable through the current
// wireless connection.
type Probe struct {
	httpClient *http.Client
	url        string
	logger     *log.Logger
}

// Check performs one reachability request. A transport failure is a
// normal outcome, not an error: the dashboard displays it.
func (p *Probe) Check(ctx context.Context) Result {
	result := Result{CheckedAt: time.Now()}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		p.logger.Error(fmt.Errorf("can't build request: %w", err))
		return result
	}

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Debug(fmt.Errorf("probe request error: %w", err))
		return result
	}
	defer resp.Body.Close()

	result.Reachable = resp.StatusCode < http.StatusInternalServerError
	result.Latency = time.Since(start)
	return result
}
