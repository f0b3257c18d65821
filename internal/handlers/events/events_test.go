package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/dto"
	"github.com/GlebRadaev/vivento/internal/service/eventservice"
	"github.com/GlebRadaev/vivento/pkg/auth"
)

func NewMock(t *testing.T) (*EventHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func requestCtx(id string) context.Context {
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)
	if id == "" {
		return ctx
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

var eventDate = time.Date(2026, 6, 20, 18, 0, 0, 0, time.UTC)

func TestCreateEventHandler(t *testing.T) {
	handler, service := NewMock(t)
	templateID := 3

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"name":"Wedding","date":"2026-06-20T18:00:00Z","location":"Baku","template_id":3}`,
			prepareMock: func() {
				service.EXPECT().CreateEvent(gomock.Any(), &domain.Event{
					UserID:     1,
					Name:       "Wedding",
					Date:       eventDate,
					Location:   "Baku",
					TemplateID: &templateID,
				}).Return(&domain.Event{ID: 5, UserID: 1, Name: "Wedding", Date: eventDate, Location: "Baku", TemplateID: &templateID}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Malformed body",
			body:         `{"name":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing location",
			body:         `{"name":"Wedding","date":"2026-06-20T18:00:00Z"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Unknown template",
			body: `{"name":"Wedding","date":"2026-06-20T18:00:00Z","location":"Baku","template_id":3}`,
			prepareMock: func() {
				service.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(nil, eventservice.ErrTemplateNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(tt.body)).WithContext(requestCtx(""))
			w := httptest.NewRecorder()
			handler.CreateEvent(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.EventDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 5, body.ID)
				assert.Equal(t, "Wedding", body.Name)
			}
		})
	}
}

func TestListEventsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Own events", func(t *testing.T) {
		service.EXPECT().ListEvents(gomock.Any(), 1).Return([]domain.Event{
			{ID: 1, UserID: 1, Name: "A", Date: eventDate},
			{ID: 2, UserID: 1, Name: "B", Date: eventDate},
		}, nil)
		r := httptest.NewRequest(http.MethodGet, "/api/events", nil).WithContext(requestCtx(""))
		w := httptest.NewRecorder()
		handler.ListEvents(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.EventDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 2)
	})

	t.Run("Service failure", func(t *testing.T) {
		service.EXPECT().ListEvents(gomock.Any(), 1).Return(nil, errors.New("db down"))
		r := httptest.NewRequest(http.MethodGet, "/api/events", nil).WithContext(requestCtx(""))
		w := httptest.NewRecorder()
		handler.ListEvents(w, r)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetEventHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Found",
			id:   "5",
			prepareMock: func() {
				service.EXPECT().GetEvent(gomock.Any(), 1, 5).Return(&domain.Event{ID: 5, UserID: 1, Name: "A"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Someone else's event",
			id:   "6",
			prepareMock: func() {
				service.EXPECT().GetEvent(gomock.Any(), 1, 6).Return(nil, eventservice.ErrEventNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/events/"+tt.id, nil).WithContext(requestCtx(tt.id))
			w := httptest.NewRecorder()
			handler.GetEvent(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUpdateEventHandler(t *testing.T) {
	handler, service := NewMock(t)
	name := "Renamed"

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Partial update",
			body: `{"name":"Renamed"}`,
			prepareMock: func() {
				service.EXPECT().UpdateEvent(gomock.Any(), 1, 5, eventservice.EventPatch{Name: &name}).
					Return(&domain.Event{ID: 5, UserID: 1, Name: name}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid map link",
			body:         `{"map_link":"not a url"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Invalid design",
			body: `{"name":"Renamed"}`,
			prepareMock: func() {
				service.EXPECT().UpdateEvent(gomock.Any(), 1, 5, gomock.Any()).Return(nil, eventservice.ErrInvalidEvent)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPut, "/api/events/5", strings.NewReader(tt.body)).WithContext(requestCtx("5"))
			w := httptest.NewRecorder()
			handler.UpdateEvent(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAddGuestHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Guest added",
			body: `{"name":"Leyla","phone":"+994501112233"}`,
			prepareMock: func() {
				service.EXPECT().AddGuest(gomock.Any(), 1, 5, &domain.Guest{Name: "Leyla", Phone: "+994501112233"}).
					Return(&domain.Guest{ID: 7, EventID: 5, Name: "Leyla", Token: "tok", RSVPStatus: domain.RSVPPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Bad email",
			body:         `{"name":"Leyla","email":"nope"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Event not found",
			body: `{"name":"Leyla"}`,
			prepareMock: func() {
				service.EXPECT().AddGuest(gomock.Any(), 1, 5, gomock.Any()).Return(nil, eventservice.ErrEventNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/events/5/guests", strings.NewReader(tt.body)).WithContext(requestCtx("5"))
			w := httptest.NewRecorder()
			handler.AddGuest(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.GuestDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "tok", body.Token)
				assert.Equal(t, "pending", body.RSVPStatus)
			}
		})
	}
}

func TestListGuestsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListGuests(gomock.Any(), 1, 5).Return([]domain.Guest{
		{ID: 1, EventID: 5, Name: "A", Token: "t1", RSVPStatus: domain.RSVPAttending},
	}, nil)
	r := httptest.NewRequest(http.MethodGet, "/api/events/5/guests", nil).WithContext(requestCtx("5"))
	w := httptest.NewRecorder()
	handler.ListGuests(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.GuestDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, "attending", body[0].RSVPStatus)
}
