package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type OkResponse struct {
	OK bool `json:"ok"`
}

type OrderCreateResponse struct {
	OK      bool   `json:"ok"`
	OrderID string `json:"orderId"`
	Code    string `json:"code"`
}

type StockConflictResponse struct {
	Error     string `json:"error"`
	ProductID string `json:"productId"`
	Available int64  `json:"available"`
	Requested int64  `json:"requested"`
}

type StockResponse struct {
	Quantity int64 `json:"quantity"`
}

type AdminProductRow struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	StockQuantity int64  `json:"stock_quantity"`
}

type OrderDetailResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Status      string `json:"status"`
	TotalCents  int64  `json:"total_cents"`
	PaymentPaid bool   `json:"payment_paid"`
	Items       []struct {
		ProductID      string `json:"product_id"`
		Name           string `json:"name"`
		UnitPriceCents int64  `json:"unit_price_cents"`
		Quantity       int64  `json:"quantity"`
	} `json:"items"`
}

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bodyBytes []byte,
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return resp, data
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
}

func mustDecode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal failed: %v body=%s", err, string(body))
	}
	return v
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	return b
}

// createProductWithStock は商品を作って在庫を入れ、product_id を返す。
func createProductWithStock(t *testing.T, c *TestClient, ctx context.Context, namePrefix string, priceCents, stock int64) AdminProductRow {
	t.Helper()

	slug := strings.ToLower(namePrefix) + "-" + time.Now().Format("20060102-150405.000000000")
	slug = strings.ReplaceAll(slug, ".", "-")

	create := map[string]any{
		"name":           namePrefix + " " + slug,
		"slug":           slug,
		"basePriceCents": priceCents,
	}
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/admin/products", mustMarshal(t, create))
	requireStatus(t, resp, http.StatusOK, body)

	resp, body = c.doJSON(ctx, t, http.MethodGet, "/api/admin/products", nil)
	requireStatus(t, resp, http.StatusOK, body)

	rows := mustDecode[[]AdminProductRow](t, body)
	var row AdminProductRow
	for _, r := range rows {
		if r.Slug == slug {
			row = r
			break
		}
	}
	if row.ID == "" {
		t.Fatalf("product not found after create: slug=%s body=%s", slug, string(body))
	}

	stockReq := map[string]any{"quantity": stock, "reason": "e2e setup"}
	resp, body = c.doJSON(ctx, t, http.MethodPatch, "/api/admin/stock/"+row.ID, mustMarshal(t, stockReq))
	requireStatus(t, resp, http.StatusOK, body)

	row.StockQuantity = stock
	row.Slug = slug
	return row
}

func stockQuantity(t *testing.T, c *TestClient, ctx context.Context, slug string) int64 {
	t.Helper()

	resp, body := c.doJSON(ctx, t, http.MethodGet, "/api/stock/"+slug, nil)
	requireStatus(t, resp, http.StatusOK, body)
	return mustDecode[StockResponse](t, body).Quantity
}
