package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"stableswap/internal/domain"
)

// AssetLedgerClient talks to a remote asset ledger over its JSON API.
type AssetLedgerClient struct {
	http    *http.Client
	baseURL string
}

type assetsResponse struct {
	Assets []string `json:"assets"`
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

type pullRequest struct {
	Holder  string `json:"holder"`
	Spender string `json:"spender"`
	Asset   string `json:"asset"`
	Amount  int64  `json:"amount"`
}

type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Asset  string `json:"asset"`
	Amount int64  `json:"amount"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var errorCodes = map[string]error{
	"insufficient_balance":   domain.ErrInsufficientBalance,
	"insufficient_allowance": domain.ErrInsufficientAllowance,
	"unknown_asset":          domain.ErrUnknownAsset,
}

func (c *AssetLedgerClient) ListAssets(ctx context.Context) ([]domain.AssetHandle, error) {
	var body assetsResponse
	if err := c.do(ctx, http.MethodGet, nil, &body, "assets"); err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]domain.AssetHandle, 0, len(body.Assets))
	for _, a := range body.Assets {
		assets = append(assets, domain.AssetHandle(a))
	}
	return assets, nil
}

func (c *AssetLedgerClient) BalanceOf(ctx context.Context, holder domain.Identity, asset domain.AssetHandle) (int64, error) {
	var body balanceResponse
	if err := c.do(ctx, http.MethodGet, nil, &body, "balances", string(holder), string(asset)); err != nil {
		return 0, fmt.Errorf("failed to get balance of %q for %q: %w", asset, holder, err)
	}
	return body.Balance, nil
}

func (c *AssetLedgerClient) TransferFrom(ctx context.Context, holder, custodian domain.Identity, asset domain.AssetHandle, amount int64) error {
	req := pullRequest{Holder: string(holder), Spender: string(custodian), Asset: string(asset), Amount: amount}
	if err := c.do(ctx, http.MethodPost, req, nil, "transfers", "pull"); err != nil {
		return fmt.Errorf("failed to pull %d of %q from %q: %w", amount, asset, holder, err)
	}
	return nil
}

func (c *AssetLedgerClient) Transfer(ctx context.Context, custodian, recipient domain.Identity, asset domain.AssetHandle, amount int64) error {
	req := transferRequest{From: string(custodian), To: string(recipient), Asset: string(asset), Amount: amount}
	if err := c.do(ctx, http.MethodPost, req, nil, "transfers"); err != nil {
		return fmt.Errorf("failed to push %d of %q to %q: %w", amount, asset, recipient, err)
	}
	return nil
}

func (c *AssetLedgerClient) do(ctx context.Context, method string, in, out any, segments ...string) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	u = u.JoinPath(escaped...)

	var reqBody io.Reader
	if in != nil {
		raw, marshalErr := json.Marshal(in)
		if marshalErr != nil {
			return fmt.Errorf("failed to encode request: %w", marshalErr)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// statusError maps the ledger's error code onto a domain error when it has one.
func statusError(resp *http.Response) error {
	var body errorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)
	if known, ok := errorCodes[body.Code]; ok {
		return fmt.Errorf("%s: %w", strings.TrimSpace(body.Message), known)
	}
	return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, resp.Status)
}

func NewAssetLedgerClient(httpClient *http.Client, baseURL string) *AssetLedgerClient {
	return &AssetLedgerClient{http: httpClient, baseURL: baseURL}
}
