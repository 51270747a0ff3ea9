// Package dexscreener is a typed client for the public DexScreener REST API.
//
// Every method issues a single GET request against a fixed endpoint template
// and decodes the JSON body into the records defined in models.go. Errors
// are classified and surfaced untouched: transport failures come back
// wrapped, non-2xx statuses as *APIError and unparseable bodies as
// *DecodeError. Nothing is retried, cached or rate limited.
//
// The API is public, no authentication is required. A Client is immutable
// after construction and safe for concurrent use.
package dexscreener

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public API endpoint.
	DefaultBaseURL = "https://api.dexscreener.com"

	// MaxTokenAddresses is the API's cap on token addresses per
	// GetPairsByTokenAddresses call.
	MaxTokenAddresses = 30
)

// Client talks to the DexScreener API.
type Client struct {
	baseURL string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// New creates a client for the public API.
func New(opts ...Option) *Client {
	defaultTransport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 20,
		TLSHandshakeTimeout: 15 * time.Second,
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		client: &http.Client{
			Transport: defaultTransport,
			Timeout:   25 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetPairsByChainAndAddress returns one or multiple pairs by chain id and
// pair address.
func (c *Client) GetPairsByChainAndAddress(ctx context.Context, chainID, pairAddress string) (*PairsResponse, error) {
	if chainID == "" || pairAddress == "" {
		return nil, ErrEmptyParameter
	}
	var out PairsResponse
	path := "/latest/dex/pairs/" + url.PathEscape(chainID) + "/" + url.PathEscape(pairAddress)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchPairs returns pairs matching a query by token name, symbol or
// address.
func (c *Client) SearchPairs(ctx context.Context, query string) (*PairsResponse, error) {
	if query == "" {
		return nil, ErrEmptyParameter
	}
	var out PairsResponse
	if err := c.getJSON(ctx, "/latest/dex/search?q="+url.QueryEscape(query), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPairsByTokenAddress returns every pair on a chain that includes the
// given token.
func (c *Client) GetPairsByTokenAddress(ctx context.Context, chainID, tokenAddress string) ([]Pair, error) {
	if chainID == "" || tokenAddress == "" {
		return nil, ErrEmptyParameter
	}
	var out []Pair
	path := "/token-pairs/v1/" + url.PathEscape(chainID) + "/" + url.PathEscape(tokenAddress)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPairsByTokenAddresses returns pairs containing any of the given tokens,
// up to MaxTokenAddresses per call.
func (c *Client) GetPairsByTokenAddresses(ctx context.Context, chainID string, tokenAddresses []string) ([]Pair, error) {
	if chainID == "" || len(tokenAddresses) == 0 {
		return nil, ErrEmptyParameter
	}
	if len(tokenAddresses) > MaxTokenAddresses {
		return nil, ErrTooManyTokenAddresses
	}
	for _, addr := range tokenAddresses {
		if addr == "" {
			return nil, ErrEmptyParameter
		}
	}
	// The API wants the addresses as one comma separated path segment, so
	// each address is escaped on its own to keep the commas literal.
	escaped := make([]string, len(tokenAddresses))
	for i, addr := range tokenAddresses {
		escaped[i] = url.PathEscape(addr)
	}
	var out []Pair
	path := "/tokens/v1/" + url.PathEscape(chainID) + "/" + strings.Join(escaped, ",")
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLatestTokenProfiles returns the most recently created token profiles.
func (c *Client) GetLatestTokenProfiles(ctx context.Context) ([]TokenProfile, error) {
	var out []TokenProfile
	if err := c.getJSON(ctx, "/token-profiles/latest/v1", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLatestTokenBoosts returns the most recently boosted tokens.
func (c *Client) GetLatestTokenBoosts(ctx context.Context) ([]TokenBoost, error) {
	var out []TokenBoost
	if err := c.getJSON(ctx, "/token-boosts/latest/v1", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTopTokenBoosts returns the tokens with the most active boosts.
func (c *Client) GetTopTokenBoosts(ctx context.Context) ([]TokenBoost, error) {
	var out []TokenBoost
	if err := c.getJSON(ctx, "/token-boosts/top/v1", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTokenOrders returns the paid orders placed for a token.
func (c *Client) GetTokenOrders(ctx context.Context, chainID, tokenAddress string) ([]Order, error) {
	if chainID == "" || tokenAddress == "" {
		return nil, ErrEmptyParameter
	}
	var out []Order
	path := "/orders/v1/" + url.PathEscape(chainID) + "/" + url.PathEscape(tokenAddress)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// getJSON performs one GET round trip and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("dexscreener: request %s: %w", path, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("dexscreener: read response %s: %w", path, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{StatusCode: res.StatusCode}
		// Best effort: the status alone classifies the failure even when
		// the body is not the API's error document.
		_ = json.Unmarshal(body, apiErr)
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
