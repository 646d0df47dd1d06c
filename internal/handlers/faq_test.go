package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-faq/internal/service"
	service_mocks "clinic-faq/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

var sampleFAQ = service.FAQ{
	ID:        4,
	Question:  "Do you accept walk-ins?",
	Answer:    "Yes, subject to availability.",
	Tags:      []string{"booking"},
	Lang:      "en",
	CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	UpdatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
}

func TestFAQHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *service_mocks.MockFAQService)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"question":"Do you accept walk-ins?","answer":"Yes, subject to availability.","tags":["booking"]}`,
			mockSetup: func(m *service_mocks.MockFAQService) {
				m.EXPECT().Create(gomock.Any(), service.CreateFAQRequest{
					Question: "Do you accept walk-ins?",
					Answer:   "Yes, subject to availability.",
					Tags:     []string{"booking"},
				}).Return(sampleFAQ, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid json",
			body:           `not json`,
			mockSetup:      func(m *service_mocks.MockFAQService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "validation error",
			body: `{"question":"Q","answer":"A","tags":[]}`,
			mockSetup: func(m *service_mocks.MockFAQService) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(service.FAQ{}, &service.ValidationError{Field: "tags", Message: "must contain at least 1 item(s)"})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store error",
			body: `{"question":"Q","answer":"A","tags":["t"]}`,
			mockSetup: func(m *service_mocks.MockFAQService) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(service.FAQ{}, errors.New("disk full"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFAQService := service_mocks.NewMockFAQService(ctrl)
			tt.mockSetup(mockFAQService)
			handler := NewFAQHandler(mockFAQService)

			req := httptest.NewRequest(http.MethodPost, "/faqs", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Create() status = %v, want %v (body %s)", w.Code, tt.expectedStatus, w.Body.String())
			}
		})
	}
}

func TestFAQHandler_Create_ResponseShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFAQService := service_mocks.NewMockFAQService(ctrl)
	mockFAQService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(sampleFAQ, nil)
	handler := NewFAQHandler(mockFAQService)

	req := httptest.NewRequest(http.MethodPost, "/faqs", bytes.NewBufferString(`{"question":"Q","answer":"A","tags":["t"]}`))
	w := httptest.NewRecorder()
	handler.Create(w, req)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, key := range []string{"id", "question", "answer", "tags", "lang", "createdAt", "updatedAt"} {
		if _, ok := body[key]; !ok {
			t.Errorf("response missing %q: %v", key, body)
		}
	}
}

func TestFAQHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFAQService := service_mocks.NewMockFAQService(ctrl)
	mockFAQService.EXPECT().List(gomock.Any(), "ms").Return([]service.FAQ{}, nil)
	mockFAQService.EXPECT().List(gomock.Any(), "").Return([]service.FAQ{sampleFAQ}, nil)
	handler := NewFAQHandler(mockFAQService)

	req := httptest.NewRequest(http.MethodGet, "/faqs?lang=ms", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("List() status = %v, want 200", w.Code)
	}
	if got := bytes.TrimSpace(w.Body.Bytes()); string(got) != "[]" {
		t.Errorf("List() body = %s, want []", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/faqs", nil)
	w = httptest.NewRecorder()
	handler.List(w, req)

	var faqs []FAQResponse
	if err := json.Unmarshal(w.Body.Bytes(), &faqs); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(faqs) != 1 || faqs[0].ID != sampleFAQ.ID {
		t.Errorf("List() = %+v", faqs)
	}
}

func TestFAQHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockSetup      func(m *service_mocks.MockFAQService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "found",
			id:   "4",
			mockSetup: func(m *service_mocks.MockFAQService) {
				m.EXPECT().Get(gomock.Any(), int64(4)).Return(sampleFAQ, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "99",
			mockSetup: func(m *service_mocks.MockFAQService) {
				m.EXPECT().Get(gomock.Any(), int64(99)).Return(service.FAQ{}, service.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "FAQ with ID 99 not found",
		},
		{
			name:           "non numeric id",
			id:             "abc",
			mockSetup:      func(m *service_mocks.MockFAQService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero id",
			id:             "0",
			mockSetup:      func(m *service_mocks.MockFAQService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFAQService := service_mocks.NewMockFAQService(ctrl)
			tt.mockSetup(mockFAQService)
			handler := NewFAQHandler(mockFAQService)

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/faqs/"+tt.id, nil), "id", tt.id)
			w := httptest.NewRecorder()

			handler.Get(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Get() status = %v, want %v", w.Code, tt.expectedStatus)
			}
			if tt.expectedError != "" {
				var resp ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode error: %v", err)
				}
				if resp.Error != tt.expectedError {
					t.Errorf("Get() error = %q, want %q", resp.Error, tt.expectedError)
				}
			}
		})
	}
}

func TestFAQHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	answer := "Only on weekdays."
	updated := sampleFAQ
	updated.Answer = answer

	mockFAQService := service_mocks.NewMockFAQService(ctrl)
	mockFAQService.EXPECT().
		Update(gomock.Any(), int64(4), service.UpdateFAQRequest{Answer: &answer}).
		Return(updated, nil)
	handler := NewFAQHandler(mockFAQService)

	req := withURLParam(httptest.NewRequest(http.MethodPatch, "/faqs/4", bytes.NewBufferString(`{"answer":"Only on weekdays."}`)), "id", "4")
	w := httptest.NewRecorder()

	handler.Update(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Update() status = %v, want 200 (body %s)", w.Code, w.Body.String())
	}
	var resp FAQResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Answer != answer || resp.Question != sampleFAQ.Question {
		t.Errorf("Update() = %+v", resp)
	}
}

func TestFAQHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "deleted", err: nil, expectedStatus: http.StatusNoContent},
		{name: "not found", err: service.ErrNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFAQService := service_mocks.NewMockFAQService(ctrl)
			mockFAQService.EXPECT().Delete(gomock.Any(), int64(4)).Return(tt.err)
			handler := NewFAQHandler(mockFAQService)

			req := withURLParam(httptest.NewRequest(http.MethodDelete, "/faqs/4", nil), "id", "4")
			w := httptest.NewRecorder()

			handler.Delete(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Delete() status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}
