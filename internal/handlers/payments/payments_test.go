package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/dto"
	"github.com/GlebRadaev/vivento/internal/service/paymentservice"
	"github.com/GlebRadaev/vivento/pkg/auth"
	"github.com/GlebRadaev/vivento/pkg/epoint"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

type decimalMatcher struct{ want decimal.Decimal }

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string { return "is decimal " + m.want.String() }

func userCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, 1)
}

func TestCreatePaymentHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Checkout created",
			body: `{"amount":25.5,"description":"Top up"}`,
			prepareMock: func() {
				service.EXPECT().CreatePayment(gomock.Any(), 1, decimalMatcher{decimal.RequireFromString("25.5")}, "Top up").
					Return(&domain.CheckoutSession{
						Intent:    &domain.PaymentIntent{ID: 9, OrderID: "1-abc", Amount: decimal.RequireFromString("25.5")},
						URL:       "https://epoint.az/api/1/checkout",
						Data:      "ZGF0YQ==",
						Signature: "c2ln",
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Amount over limit",
			body: `{"amount":"5000"}`,
			prepareMock: func() {
				service.EXPECT().CreatePayment(gomock.Any(), 1, gomock.Any(), "").Return(nil, paymentservice.ErrAmountAboveLimit)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Non positive amount",
			body: `{"amount":0}`,
			prepareMock: func() {
				service.EXPECT().CreatePayment(gomock.Any(), 1, gomock.Any(), "").Return(nil, paymentservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Broken body",
			body:         `{"amount":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Signing failure",
			body: `{"amount":10}`,
			prepareMock: func() {
				service.EXPECT().CreatePayment(gomock.Any(), 1, gomock.Any(), "").Return(nil, &epoint.EncodingError{Err: errors.New("boom")})
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/payments/create", bytes.NewBufferString(tt.body)).WithContext(userCtx())
			w := httptest.NewRecorder()
			handler.CreatePayment(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.CreatePaymentResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "1-abc", body.OrderID)
				assert.Equal(t, 9, body.PaymentID)
				assert.Equal(t, "25.50", body.Amount)
				assert.Equal(t, "https://epoint.az/api/1/checkout", body.CheckoutURL)
			}
		})
	}
}

func TestCallbackHandler(t *testing.T) {
	handler, service := NewMock(t)

	form := func(data, signature string) (*http.Request, string) {
		values := url.Values{"data": {data}, "signature": {signature}}
		r := httptest.NewRequest(http.MethodPost, "/api/payments/callback", strings.NewReader(values.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return r, values.Encode()
	}

	t.Run("form callback processed", func(t *testing.T) {
		service.EXPECT().HandleCallback(gomock.Any(), "ZGF0YQ==", "c2ln").Return(&domain.CallbackOutcome{
			Status: domain.CallbackProcessed, OrderID: "1-abc", PaymentStatus: domain.PaymentCompleted,
		}, nil)
		r, _ := form("ZGF0YQ==", "c2ln")
		w := httptest.NewRecorder()
		handler.Callback(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.CallbackResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, "processed", body.Status)
		assert.Equal(t, "completed", body.PaymentStatus)
	})

	t.Run("json callback ignored", func(t *testing.T) {
		service.EXPECT().HandleCallback(gomock.Any(), "ZGF0YQ==", "c2ln").Return(&domain.CallbackOutcome{
			Status: domain.CallbackIgnored, OrderID: "1-unknown",
		}, nil)
		r := httptest.NewRequest(http.MethodPost, "/api/payments/callback", bytes.NewBufferString(`{"data":"ZGF0YQ==","signature":"c2ln"}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler.Callback(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.CallbackResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, "ignored", body.Status)
	})

	t.Run("invalid signature", func(t *testing.T) {
		service.EXPECT().HandleCallback(gomock.Any(), "ZGF0YQ==", "forged").Return(nil, paymentservice.ErrInvalidSignature)
		r, _ := form("ZGF0YQ==", "forged")
		w := httptest.NewRecorder()
		handler.Callback(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing signature", func(t *testing.T) {
		r, _ := form("ZGF0YQ==", "")
		w := httptest.NewRecorder()
		handler.Callback(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("undecodable payload", func(t *testing.T) {
		service.EXPECT().HandleCallback(gomock.Any(), "???", "c2ln").Return(nil, &epoint.DecodingError{Err: errors.New("bad base64")})
		r, _ := form("???", "c2ln")
		w := httptest.NewRecorder()
		handler.Callback(w, r)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetPaymentStatusHandler(t *testing.T) {
	handler, service := NewMock(t)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	request := func(id string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("payment_id", id)
		ctx := context.WithValue(userCtx(), chi.RouteCtxKey, rctx)
		return httptest.NewRequest(http.MethodGet, "/api/payments/"+id+"/status", nil).WithContext(ctx)
	}

	service.EXPECT().GetPaymentStatus(gomock.Any(), 1, 9).Return(&domain.PaymentIntent{
		ID: 9, OrderID: "1-abc", Amount: decimal.RequireFromString("25.5"), Currency: "AZN",
		Status: domain.PaymentPending, CreatedAt: created,
	}, nil)
	w := httptest.NewRecorder()
	handler.GetPaymentStatus(w, request("9"))
	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.PaymentStatusResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, 9, body.PaymentID)
	assert.Equal(t, "25.50", body.Amount)
	assert.Equal(t, "pending", body.Status)
	assert.True(t, created.Equal(body.CreatedAt))

	service.EXPECT().GetPaymentStatus(gomock.Any(), 1, 10).Return(nil, paymentservice.ErrPaymentNotFound)
	w = httptest.NewRecorder()
	handler.GetPaymentStatus(w, request("10"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	handler.GetPaymentStatus(w, request("x"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
