// Package ai provides an HTTP client that asks a chat-completion
// model for diagnostic insights about a parsed build log.
//
// The client consumes the analysis record read-only and returns
// free-text fields that callers merge alongside the parser's output,
// never into it.
package ai

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/buildlens/buildlens/pkg/parser"
)

// DefaultTimeout is the default upstream request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultCacheTTL is how long insights for identical analyses are reused.
const DefaultCacheTTL = 15 * time.Minute

// maxResponseBytes caps how much of the upstream body is read.
const maxResponseBytes = 1024 * 1024

// Insights holds the model's free-text diagnosis of a build.
type Insights struct {
	RootCause       string `json:"root_cause"`
	Recommendations string `json:"recommendations"`
	Impact          string `json:"impact"`
}

// Options configures the client.
type Options struct {
	Endpoint string        // Chat-completions URL
	Model    string        // Model identifier
	APIKey   string        // Bearer token
	Timeout  time.Duration // Request timeout (DefaultTimeout if zero)
	CacheTTL time.Duration // Insight reuse window (DefaultCacheTTL if zero)
}

// Client requests build diagnostics from a chat-completion endpoint.
type Client struct {
	httpClient *http.Client
	opts       Options
	cache      *gocache.Cache
}

// NewClient creates a client for the given endpoint.
func NewClient(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	return &Client{
		httpClient: &http.Client{},
		opts:       opts,
		cache:      gocache.New(opts.CacheTTL, 2*opts.CacheTTL),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

const systemPrompt = `You are a CI/CD build failure analyst. Given a structured ` +
	`summary of a build log, respond with a JSON object containing exactly ` +
	`three string fields: "root_cause", "recommendations", and "impact".`

// Analyze asks the model to diagnose the given analysis. Identical
// analyses within the cache TTL reuse the previous answer without an
// upstream call. Any upstream failure is returned to the caller, who
// is expected to treat missing insights as non-fatal.
func (c *Client) Analyze(ctx context.Context, analysis *parser.LogAnalysis, format string) (*Insights, error) {
	prompt := buildPrompt(analysis, format)
	key := cacheKey(format, prompt)

	if cached, ok := c.cache.Get(key); ok {
		insights := cached.(Insights)
		return &insights, nil
	}

	insights, err := c.request(ctx, prompt)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, *insights, gocache.DefaultExpiration)
	return insights, nil
}

func (c *Client) request(ctx context.Context, prompt string) (*Insights, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.opts.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.opts.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode >= 400 {
		return nil, fmt.Errorf("upstream returned status %d", httpResp.StatusCode)
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("upstream returned no choices")
	}

	return parseInsights(resp.Choices[0].Message.Content), nil
}

// parseInsights decodes the model reply. Models that ignore the JSON
// instruction get their whole reply filed under RootCause.
func parseInsights(content string) *Insights {
	var insights Insights
	if err := json.Unmarshal([]byte(content), &insights); err != nil {
		return &Insights{RootCause: strings.TrimSpace(content)}
	}
	return &insights
}

// buildPrompt renders the analysis into a compact description for the
// model. The record is read-only here.
func buildPrompt(analysis *parser.LogAnalysis, format string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Build log format: %s\n", format)
	fmt.Fprintf(&b, "Steps: %d total, %d failed\n", analysis.TotalSteps, analysis.FailedSteps)
	if analysis.TotalDurationMS != nil {
		fmt.Fprintf(&b, "Elapsed: %dms\n", *analysis.TotalDurationMS)
	}

	for _, step := range analysis.Steps {
		fmt.Fprintf(&b, "- step %q: %s", step.Name, step.Status)
		if step.ErrorMessage != "" {
			fmt.Fprintf(&b, " (%s)", step.ErrorMessage)
		}
		b.WriteString("\n")
	}
	for _, e := range analysis.Errors {
		fmt.Fprintf(&b, "error: %s\n", e)
	}
	for _, w := range analysis.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", w)
	}

	b.WriteString("Diagnose the build outcome.")
	return b.String()
}

func cacheKey(format, prompt string) string {
	sum := sha256.Sum256([]byte(format + "\x00" + prompt))
	return hex.EncodeToString(sum[:])
}
