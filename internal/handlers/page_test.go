package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-faq/internal/service"
	service_mocks "clinic-faq/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func TestPageHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockSetup      func(m *service_mocks.MockFAQService)
		expectedStatus int
		contains       []string
		notContains    []string
	}{
		{
			name: "renders markdown answer",
			id:   "4",
			mockSetup: func(m *service_mocks.MockFAQService) {
				m.EXPECT().Get(gomock.Any(), int64(4)).Return(service.FAQ{
					ID:       4,
					Question: "Do you accept walk-ins?",
					Answer:   "**Yes**, subject to availability.\n\n- Weekdays only",
					Tags:     []string{"booking"},
					Lang:     "en",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			contains: []string{
				"<title>Do you accept walk-ins?</title>",
				"<strong>Yes</strong>",
				"<li>Weekdays only</li>",
				"<span>booking</span>",
				`lang="en"`,
			},
		},
		{
			name: "raw html is not passed through",
			id:   "5",
			mockSetup: func(m *service_mocks.MockFAQService) {
				m.EXPECT().Get(gomock.Any(), int64(5)).Return(service.FAQ{
					ID:       5,
					Question: "<b>Q</b>",
					Answer:   "Hello <script>alert(1)</script>",
					Tags:     []string{},
					Lang:     "en",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			contains:       []string{"&lt;b&gt;Q&lt;/b&gt;"},
			notContains:    []string{"<script>"},
		},
		{
			name: "not found",
			id:   "9",
			mockSetup: func(m *service_mocks.MockFAQService) {
				m.EXPECT().Get(gomock.Any(), int64(9)).Return(service.FAQ{}, service.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "store error",
			id:   "9",
			mockSetup: func(m *service_mocks.MockFAQService) {
				m.EXPECT().Get(gomock.Any(), int64(9)).Return(service.FAQ{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "invalid id",
			id:             "x",
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
			handler := NewPageHandler(mockFAQService)

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/faqs/"+tt.id+"/page", nil), "id", tt.id)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("ServeHTTP() status = %v, want %v", w.Code, tt.expectedStatus)
			}
			body := w.Body.String()
			for _, s := range tt.contains {
				if !strings.Contains(body, s) {
					t.Errorf("page missing %q", s)
				}
			}
			for _, s := range tt.notContains {
				if strings.Contains(body, s) {
					t.Errorf("page should not contain %q", s)
				}
			}
		})
	}
}
