package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const tavilyURL = "https://api.tavily.com/search"

// TavilySearch is a tool that uses the Tavily Search API to search the web.
type TavilySearch struct {
	APIKey      string
	BaseURL     string
	MaxResults  int
	SearchDepth string
	client      *http.Client
}

// TavilyOption configures a TavilySearch.
type TavilyOption func(*TavilySearch)

// WithTavilyBaseURL sets the endpoint of the Tavily API.
func WithTavilyBaseURL(baseURL string) TavilyOption {
	return func(t *TavilySearch) {
		t.BaseURL = baseURL
	}
}

// WithTavilyMaxResults sets the number of results to return (1-20).
func WithTavilyMaxResults(n int) TavilyOption {
	return func(t *TavilySearch) {
		t.MaxResults = min(max(n, 1), 20)
	}
}

// WithTavilySearchDepth sets the search depth ("basic" or "advanced").
func WithTavilySearchDepth(depth string) TavilyOption {
	return func(t *TavilySearch) {
		t.SearchDepth = depth
	}
}

// WithTavilyHTTPClient sets the HTTP client used for requests.
func WithTavilyHTTPClient(c *http.Client) TavilyOption {
	return func(t *TavilySearch) {
		t.client = c
	}
}

// NewTavilySearch creates a new TavilySearch tool.
// If apiKey is empty, it tries to read from TAVILY_API_KEY environment variable.
func NewTavilySearch(apiKey string, opts ...TavilyOption) (*TavilySearch, error) {
	if apiKey == "" {
		apiKey = os.Getenv("TAVILY_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("TAVILY_API_KEY not set")
	}

	t := &TavilySearch{
		APIKey:      apiKey,
		BaseURL:     tavilyURL,
		MaxResults:  2,
		SearchDepth: "basic",
		client:      http.DefaultClient,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Name returns the name of the tool.
func (t *TavilySearch) Name() string {
	return WebSearchID
}

// Description returns the description of the tool.
func (t *TavilySearch) Description() string {
	return "A search engine optimized for comprehensive, accurate, and trusted results. " +
		"Useful for answering questions about current events."
}

// Parameters returns the argument schema of the tool.
func (t *TavilySearch) Parameters() map[string]any {
	return ObjectSchema([]Property{
		{Name: "query", Type: "string", Description: "search query", Required: true},
	})
}

// SearchResult is one hit returned by the search tool.
type SearchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// SearchResponse is the result of a search call; it is serialized as JSON into
// the tool message.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

type tavilyRequest struct {
	Query       string `json:"query"`
	APIKey      string `json:"api_key"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results"`
}

// Call executes the search.
func (t *TavilySearch) Call(ctx context.Context, args map[string]any) (any, error) {
	query, _ := args["query"].(string)
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must not be empty")
	}
	return t.Search(ctx, query)
}

// Search queries Tavily and returns at most MaxResults hits with HTML removed from their content.
func (t *TavilySearch) Search(ctx context.Context, query string) (*SearchResponse, error) {
	body, err := json.Marshal(tavilyRequest{
		Query:       query,
		APIKey:      t.APIKey,
		SearchDepth: t.SearchDepth,
		MaxResults:  t.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily api returned status: %d", resp.StatusCode)
	}

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if out.Query == "" {
		out.Query = query
	}
	if len(out.Results) > t.MaxResults {
		out.Results = out.Results[:t.MaxResults]
	}
	for i := range out.Results {
		out.Results[i].Content = plainText(out.Results[i].Content)
	}
	return &out, nil
}

// plainText strips markup from a snippet and collapses whitespace.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
