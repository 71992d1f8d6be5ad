// Package wiki fetches article pages from the Wiktionary editions through
// the MediaWiki action API. It is the only part of the program that talks
// to the network.
package wiki

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/slowko/slowko/internal/extract"
	"github.com/slowko/slowko/internal/model"
	"github.com/slowko/slowko/internal/worker"
)

// ErrNotFound reports that the wiki has no article under the given title
var ErrNotFound = errors.New("wiki: page not found")

const fetchMaxRetries = 3

// test seam for retry backoff
var fetchSleepFunc = time.Sleep

// Client fetches rendered article HTML for headwords. One client serves
// both editions; per-host politeness (rate limit, robots.txt) is applied
// per endpoint.
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	endpoints  map[extract.Source]string
	limiter    *worker.Limiter
	robots     *Robots
}

// New builds a client from configuration
func New(cfg *model.Config) *Client {
	transport := &http.Transport{
		Proxy: proxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy),
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		endpoints: map[extract.Source]string{
			extract.SourcePolish:  cfg.Sources.PolishAPI,
			extract.SourceEnglish: cfg.Sources.EnglishAPI,
		},
		limiter: worker.NewLimiter(cfg.Rate.RequestsPerSecond, cfg.Rate.Burst),
	}
	if cfg.HTTP.CheckRobots {
		c.robots = NewRobots(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}
	return c
}

// proxyFunc prefers explicit proxy settings over the environment
func proxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}
	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

// parseResponse is the action=parse envelope, formatversion 2
type parseResponse struct {
	Parse struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"parse"`
	Error struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// FetchPage retrieves the rendered HTML of one article. ErrNotFound means
// the title has no entry; any other error is a transport or API failure.
func (c *Client) FetchPage(ctx context.Context, src extract.Source, title string) (string, error) {
	endpoint, ok := c.endpoints[src]
	if !ok || endpoint == "" {
		return "", fmt.Errorf("no endpoint for source %q", src)
	}

	q := url.Values{}
	q.Set("action", "parse")
	q.Set("page", title)
	q.Set("prop", "text")
	q.Set("format", "json")
	q.Set("formatversion", "2")
	q.Set("redirects", "1")
	reqURL := endpoint + "?" + q.Encode()

	crawlDelay := time.Duration(0)
	if c.robots != nil {
		allowed, delay, err := c.robots.CanFetch(ctx, reqURL)
		if err == nil && !allowed {
			return "", fmt.Errorf("robots.txt disallows %s", endpoint)
		}
		crawlDelay = delay
	}
	if err := c.limiter.WaitWithDelay(ctx, reqURL, crawlDelay); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	body, err := c.fetchWithRetry(ctx, reqURL)
	if err != nil {
		return "", err
	}

	var envelope parseResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if envelope.Error.Code != "" {
		if envelope.Error.Code == "missingtitle" {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("api error %s: %s", envelope.Error.Code, envelope.Error.Info)
	}
	if envelope.Parse.Text == "" {
		return "", ErrNotFound
	}
	return envelope.Parse.Text, nil
}

// fetchWithRetry retries transient failures with exponential backoff
func (c *Client) fetchWithRetry(ctx context.Context, reqURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < fetchMaxRetries; attempt++ {
		body, retryable, err := c.fetchOnce(ctx, reqURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
		if attempt < fetchMaxRetries-1 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			fetchSleepFunc(backoff)
		}
	}
	return nil, lastErr
}

func (c *Client) fetchOnce(ctx context.Context, reqURL string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// network errors are worth one more try unless the context is done
		return nil, ctx.Err() == nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, isRetryableStatus(resp.StatusCode), fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, true, fmt.Errorf("read body: %w", err)
	}
	return body, false, nil
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || (code >= 500 && code < 600)
}
