// Package tandoor implements a client for the Tandoor recipe manager REST API.
package tandoor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Ingenimax/tandoor-mcp/pkg/logging"
)

// maxErrorBody caps how much of a remote error body is retained for diagnostics.
const maxErrorBody = 1 << 16

// APIError is returned for failed remote calls. StatusCode is zero when the
// request never produced an HTTP response (network error).
type APIError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("tandoor: network error: %v", e.Err)
	}
	return fmt.Sprintf("tandoor: unexpected status %d: %s", e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Client is a thin HTTP wrapper around the Tandoor API carrying a fixed base
// URL and bearer token. It is safe for reuse across calls; it holds no other
// state.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     logging.Logger
}

// Option represents an option for configuring the client
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger for the client
func WithLogger(logger logging.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Tandoor client. baseURL is the instance root
// without the /api suffix.
func NewClient(baseURL, token string, options ...Option) *Client {
	client := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: http.DefaultClient,
		logger:     logging.New(),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// CreateRecipe creates a new recipe and returns the remote representation.
func (c *Client) CreateRecipe(ctx context.Context, recipe *Recipe) (*Recipe, error) {
	var created Recipe
	if err := c.do(ctx, http.MethodPost, "/recipe/", nil, recipe, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// SearchRecipes queries the recipe search index.
func (c *Client) SearchRecipes(ctx context.Context, query RecipeQuery) (*Page[RecipeOverview], error) {
	params := url.Values{}
	if query.Query != "" {
		params.Set("query", query.Query)
	}
	for _, kw := range query.Keywords {
		params.Add("keywords_or", kw)
	}
	for _, food := range query.Foods {
		params.Add("foods_or", food)
	}
	if query.Rating != nil {
		params.Set("rating", strconv.Itoa(*query.Rating))
	}
	if query.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(query.PageSize))
	}

	var page Page[RecipeOverview]
	if err := c.do(ctx, http.MethodGet, "/recipe/", params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetRecipe fetches the full recipe with the given id.
func (c *Client) GetRecipe(ctx context.Context, id int) (*Recipe, error) {
	var recipe Recipe
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/recipe/%d/", id), nil, nil, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListMealTypes fetches the full meal type vocabulary. The endpoint returns a
// bare array on some instances and a paginated envelope on others; both are
// accepted.
func (c *Client) ListMealTypes(ctx context.Context) ([]MealType, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/meal-type/", nil, nil, &raw); err != nil {
		return nil, err
	}

	var mealTypes []MealType
	if err := json.Unmarshal(raw, &mealTypes); err == nil {
		return mealTypes, nil
	}

	var page Page[MealType]
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("tandoor: failed to decode meal type list: %w", err)
	}
	return page.Results, nil
}

// ListMealPlans lists meal plan entries matching the given filters.
func (c *Client) ListMealPlans(ctx context.Context, query MealPlanQuery) ([]MealPlanEntry, error) {
	params := url.Values{}
	if query.FromDate != "" {
		params.Set("from_date", query.FromDate)
	}
	if query.ToDate != "" {
		params.Set("to_date", query.ToDate)
	}
	if query.MealType != "" {
		params.Set("meal_type", query.MealType)
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/meal-plan/", params, nil, &raw); err != nil {
		return nil, err
	}

	var entries []MealPlanEntry
	if err := json.Unmarshal(raw, &entries); err == nil {
		return entries, nil
	}

	var page Page[MealPlanEntry]
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("tandoor: failed to decode meal plan list: %w", err)
	}
	return page.Results, nil
}

// CreateMealPlan creates a single meal plan entry.
func (c *Client) CreateMealPlan(ctx context.Context, entry *MealPlanEntry) (*MealPlanEntry, error) {
	var created MealPlanEntry
	if err := c.do(ctx, http.MethodPost, "/meal-plan/", nil, entry, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListKeywords lists recipe keywords.
func (c *Client) ListKeywords(ctx context.Context, query ListQuery) (*Page[Keyword], error) {
	var page Page[Keyword]
	if err := c.do(ctx, http.MethodGet, "/keyword/", listParams(query), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListFoods lists foods.
func (c *Client) ListFoods(ctx context.Context, query ListQuery) (*Page[Food], error) {
	var page Page[Food]
	if err := c.do(ctx, http.MethodGet, "/food/", listParams(query), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListUnits lists measurement units.
func (c *Client) ListUnits(ctx context.Context, query ListQuery) (*Page[Unit], error) {
	var page Page[Unit]
	if err := c.do(ctx, http.MethodGet, "/unit/", listParams(query), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetFood fetches a single food, used to recover display names for id-only
// references.
func (c *Client) GetFood(ctx context.Context, id int) (*Food, error) {
	var food Food
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/food/%d/", id), nil, nil, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

// GetUnit fetches a single unit, used to recover display names for id-only
// references.
func (c *Client) GetUnit(ctx context.Context, id int) (*Unit, error) {
	var unit Unit
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/unit/%d/", id), nil, nil, &unit); err != nil {
		return nil, err
	}
	return &unit, nil
}

// ListShoppingListEntries lists shopping list entries. checked is passed
// through verbatim ("recent", "true", "false", "both").
func (c *Client) ListShoppingListEntries(ctx context.Context, checked string) (*Page[ShoppingListEntry], error) {
	params := url.Values{}
	if checked != "" {
		params.Set("checked", checked)
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/shopping-list-entry/", params, nil, &raw); err != nil {
		return nil, err
	}

	var entries []ShoppingListEntry
	if err := json.Unmarshal(raw, &entries); err == nil {
		return &Page[ShoppingListEntry]{Count: len(entries), Results: entries}, nil
	}

	var page Page[ShoppingListEntry]
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("tandoor: failed to decode shopping list: %w", err)
	}
	return &page, nil
}

// CreateShoppingListEntry adds a single entry to the shopping list.
func (c *Client) CreateShoppingListEntry(ctx context.Context, entry *ShoppingListEntry) (*ShoppingListEntry, error) {
	var created ShoppingListEntry
	if err := c.do(ctx, http.MethodPost, "/shopping-list-entry/", nil, entry, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateShoppingListEntry applies a partial update to a shopping list entry.
// The patch contains only the fields the caller wants to change.
func (c *Client) UpdateShoppingListEntry(ctx context.Context, id int, patch map[string]interface{}) (*ShoppingListEntry, error) {
	var updated ShoppingListEntry
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/shopping-list-entry/%d/", id), nil, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteShoppingListEntry removes a shopping list entry.
func (c *Client) DeleteShoppingListEntry(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/shopping-list-entry/%d/", id), nil, nil, nil)
}

func listParams(query ListQuery) url.Values {
	params := url.Values{}
	if query.Query != "" {
		params.Set("query", query.Query)
	}
	if query.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(query.PageSize))
	}
	return params
}

// do performs a single API request. A non-2xx response or transport failure
// is returned as *APIError; no retry is attempted.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	endpoint := c.baseURL + "/api" + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("tandoor: failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("tandoor: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug(ctx, "tandoor api request", map[string]interface{}{
		"method": method,
		"path":   path,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug(ctx, "tandoor api error response", map[string]interface{}{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		})
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("tandoor: failed to decode response for %s %s: %w", method, path, err)
		}
	}
	return nil
}
