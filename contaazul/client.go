package contaazul

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/martinsfin/contaazul-app-sheets/events"
)

const (
	DEFAULT_URL        = "https://services.contaazul.com/contaazul-bff"
	DEFAULT_USER_AGENT = "Mozilla/5.0"
	DEFAULT_TIMEOUT    = 10 * time.Second
	DEFAULT_WORKERS    = 10
)

// Client retrieves financial event summaries from the Conta Azul finance API.
type Client struct {
	URL       string
	Token     string
	UserAgent string
	Workers   int

	http *http.Client
	log  *log.Logger
}

// Detail is a successfully retrieved event summary.
type Detail struct {
	ID     string
	Record *events.Object
}

// Failure records an event that could not be retrieved. Status is 0 for
// transport and decoding errors.
type Failure struct {
	ID     string
	Status int
	Err    error
}

type StatusError struct {
	ID     string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("event %v: HTTP status %v", e.ID, e.Status)
}

func NewClient(uri, token, userAgent string, timeout time.Duration, workers int, logger *log.Logger) *Client {
	if uri == "" {
		uri = DEFAULT_URL
	}

	if userAgent == "" {
		userAgent = DEFAULT_USER_AGENT
	}

	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}

	if workers <= 0 {
		workers = DEFAULT_WORKERS
	}

	if logger == nil {
		logger = log.Default()
	}

	return &Client{
		URL:       strings.TrimRight(uri, "/"),
		Token:     token,
		UserAgent: userAgent,
		Workers:   workers,

		http: &http.Client{Timeout: timeout},
		log:  logger,
	}
}

// Fetch retrieves the summary for a single financial event.
func (c *Client) Fetch(ctx context.Context, id string) (*events.Object, error) {
	uri := fmt.Sprintf("%v/finance/v1/financial-events/%v/summary", c.URL, url.PathEscape(id))

	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	rq.Header.Set("X-Authorization", c.Token)
	rq.Header.Set("User-Agent", c.UserAgent)
	rq.Header.Set("Accept", "application/json")

	response, err := c.http.Do(rq)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		io.Copy(io.Discard, response.Body)

		return nil, &StatusError{ID: id, Status: response.StatusCode}
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	record, err := events.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("event %v: invalid summary (%w)", id, err)
	}

	return record, nil
}

// FetchAll retrieves the summaries for a list of events with at most Workers
// requests in flight. Details are returned in completion order. A failed event
// is logged and reported in the failure list, it never aborts the batch.
func (c *Client) FetchAll(ctx context.Context, ids []string) ([]Detail, []Failure) {
	var g errgroup.Group
	var guard sync.Mutex

	details := []Detail{}
	failures := []Failure{}

	g.SetLimit(c.Workers)

	for _, id := range ids {
		g.Go(func() error {
			record, err := c.Fetch(ctx, id)

			guard.Lock()
			defer guard.Unlock()

			if err != nil {
				failure := Failure{ID: id, Err: err}
				if e, ok := err.(*StatusError); ok {
					failure.Status = e.Status
					c.log.Error("event summary request failed", "id", id, "status", e.Status)
				} else {
					c.log.Warn("event summary request failed", "id", id, "err", err)
				}

				failures = append(failures, failure)
			} else {
				details = append(details, Detail{ID: id, Record: record})
			}

			return nil
		})
	}

	g.Wait()

	return details, failures
}
