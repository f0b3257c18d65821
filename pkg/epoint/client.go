package epoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/vivento/pkg/clients"
)

const (
	checkoutPath = "/api/1/checkout"
	statusPath   = "/api/1/get-status"

	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusError   = "error"
	StatusNew     = "new"
)

var ErrUnexpectedStatus = errors.New("epoint: unexpected response status")

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("epoint: rate limited, retry after %s", e.RetryAfter)
}

type Config struct {
	PublicKey  string
	PrivateKey string
	BaseURL    string
	Language   string
	Currency   string
}

type CheckoutRequest struct {
	OrderID     string
	Amount      decimal.Decimal
	Description string
	SuccessURL  string
	ErrorURL    string
	CallbackURL string
}

type Checkout struct {
	URL       string
	Data      string
	Signature string
}

// Callback is the decoded body of a gateway notification or status answer.
type Callback struct {
	OrderID     string `json:"order_id"`
	Status      string `json:"status"`
	Transaction string `json:"transaction"`
	Code        string `json:"code"`
	Message     string `json:"message"`
	Amount      string `json:"amount"`
}

func (c *Callback) Succeeded() bool {
	return c.Status == StatusSuccess
}

// Terminal reports whether the gateway will not change the status any more.
func (c *Callback) Terminal() bool {
	switch c.Status {
	case StatusSuccess, StatusFailed, StatusError:
		return true
	}
	return false
}

type Client struct {
	cfg    Config
	signer *Signer
	http   clients.HTTPClientI
}

func NewClient(cfg Config, httpClient clients.HTTPClientI) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:    cfg,
		signer: NewSigner(cfg.PrivateKey),
		http:   httpClient,
	}
}

func (c *Client) Currency() string {
	return c.cfg.Currency
}

// Checkout signs a payment request; the browser posts data and signature to URL.
func (c *Client) Checkout(req CheckoutRequest) (*Checkout, error) {
	data, signature, err := c.signer.Encode(Payload{
		"public_key":           c.cfg.PublicKey,
		"amount":               req.Amount.StringFixed(2),
		"currency":             c.cfg.Currency,
		"description":          req.Description,
		"order_id":             req.OrderID,
		"language":             c.cfg.Language,
		"success_redirect_url": req.SuccessURL,
		"error_redirect_url":   req.ErrorURL,
		"callback_url":         req.CallbackURL,
	})
	if err != nil {
		return nil, err
	}
	return &Checkout{
		URL:       c.cfg.BaseURL + checkoutPath,
		Data:      data,
		Signature: signature,
	}, nil
}

func (c *Client) Verify(data, signature string) bool {
	return c.signer.Verify(data, signature)
}

func (c *Client) ParseCallback(data string) (*Callback, error) {
	payload, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return callbackFromPayload(payload), nil
}

// Status asks the gateway for the current state of an order.
func (c *Client) Status(ctx context.Context, orderID string) (*Callback, error) {
	data, signature, err := c.signer.Encode(Payload{
		"public_key": c.cfg.PublicKey,
		"order_id":   orderID,
	})
	if err != nil {
		return nil, err
	}

	res, err := c.http.PostForm(ctx, c.cfg.BaseURL+statusPath, url.Values{
		"data":      []string{data},
		"signature": []string{signature},
	})
	if err != nil {
		return nil, err
	}

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, &RateLimitError{RetryAfter: parseRetryAfter(res.Header.Get("Retry-After"))}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var payload Payload
	if err := json.Unmarshal(res.Body, &payload); err != nil {
		return nil, &DecodingError{Err: err}
	}
	cb := callbackFromPayload(payload)
	if cb.OrderID == "" {
		cb.OrderID = orderID
	}
	return cb, nil
}

func callbackFromPayload(p Payload) *Callback {
	return &Callback{
		OrderID:     stringField(p, "order_id"),
		Status:      stringField(p, "status"),
		Transaction: stringField(p, "transaction"),
		Code:        stringField(p, "code"),
		Message:     stringField(p, "message"),
		Amount:      stringField(p, "amount"),
	}
}

func stringField(p Payload, key string) string {
	switch v := p[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func parseRetryAfter(h string) time.Duration {
	if seconds, err := strconv.Atoi(h); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return time.Second
}
