package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"clinic-faq/internal/cache"
	"clinic-faq/internal/match"
	"clinic-faq/internal/service"
	"clinic-faq/internal/storage"
	storagemocks "clinic-faq/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

func init() {
	// Set default logger to discard output for cleaner test output
	// This suppresses logs from slog.Default() used in the service layer
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testContext returns a context for testing.
// The default logger is already set to discard in init().
func testContext() context.Context {
	return context.Background()
}

func strPtr(s string) *string {
	return &s
}

// primedCache returns a memory cache holding one ask response.
func primedCache(t *testing.T) (*cache.MemoryClient, string) {
	t.Helper()
	c := cache.NewMemoryClient(10)
	t.Cleanup(func() {
		_ = c.Close()
	})
	key := cache.AskKey(1, "en", "opening hours")
	if err := c.Set(testContext(), key, []byte(`{"results":[]}`), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	return c, key
}

func assertEvicted(t *testing.T, c cache.Client, key string, want bool) {
	t.Helper()
	_, err := c.Get(testContext(), key)
	evicted := errors.Is(err, cache.ErrCacheMiss)
	if evicted != want {
		t.Errorf("cache entry evicted = %v, want %v", evicted, want)
	}
}

func TestNewFAQService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewFAQService(storagemocks.NewMockFAQStore(ctrl), nil)
	if svc == nil {
		t.Fatal("NewFAQService() returned nil")
	}

	var _ match.EntrySource = svc
}

func TestFAQService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       service.CreateFAQRequest
		mockSetup func(store *storagemocks.MockFAQStore)
		wantErr   bool
		wantField string
		want      service.FAQ
	}{
		{
			name: "valid faq defaults lang",
			req: service.CreateFAQRequest{
				Question: "  What are your opening hours? ",
				Answer:   "Monday to Friday, 8am to 6pm.",
				Tags:     []string{"hours", " schedule "},
			},
			mockSetup: func(store *storagemocks.MockFAQStore) {
				store.EXPECT().
					Create(gomock.Any(), &storage.FAQRecord{
						Question: "What are your opening hours?",
						Answer:   "Monday to Friday, 8am to 6pm.",
						Tags:     []string{"hours", "schedule"},
						Lang:     "en",
					}).
					DoAndReturn(func(_ context.Context, rec *storage.FAQRecord) error {
						rec.ID = 7
						return nil
					})
			},
			want: service.FAQ{
				ID:       7,
				Question: "What are your opening hours?",
				Answer:   "Monday to Friday, 8am to 6pm.",
				Tags:     []string{"hours", "schedule"},
				Lang:     "en",
			},
		},
		{
			name: "uppercase lang is normalised",
			req: service.CreateFAQRequest{
				Question: "Q",
				Answer:   "A",
				Tags:     []string{"t"},
				Lang:     " MS ",
			},
			mockSetup: func(store *storagemocks.MockFAQStore) {
				store.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *storage.FAQRecord) error {
						if rec.Lang != "ms" {
							t.Errorf("Create() lang = %q, want ms", rec.Lang)
						}
						rec.ID = 1
						return nil
					})
			},
			want: service.FAQ{ID: 1, Question: "Q", Answer: "A", Tags: []string{"t"}, Lang: "ms"},
		},
		{
			name:      "empty question",
			req:       service.CreateFAQRequest{Answer: "A", Tags: []string{"t"}},
			mockSetup: func(store *storagemocks.MockFAQStore) {},
			wantErr:   true,
			wantField: "question",
		},
		{
			name:      "blank answer",
			req:       service.CreateFAQRequest{Question: "Q", Answer: "   ", Tags: []string{"t"}},
			mockSetup: func(store *storagemocks.MockFAQStore) {},
			wantErr:   true,
			wantField: "answer",
		},
		{
			name:      "missing tags",
			req:       service.CreateFAQRequest{Question: "Q", Answer: "A"},
			mockSetup: func(store *storagemocks.MockFAQStore) {},
			wantErr:   true,
			wantField: "tags",
		},
		{
			name:      "empty tags",
			req:       service.CreateFAQRequest{Question: "Q", Answer: "A", Tags: []string{}},
			mockSetup: func(store *storagemocks.MockFAQStore) {},
			wantErr:   true,
			wantField: "tags",
		},
		{
			name:      "blank tag",
			req:       service.CreateFAQRequest{Question: "Q", Answer: "A", Tags: []string{"ok", " "}},
			mockSetup: func(store *storagemocks.MockFAQStore) {},
			wantErr:   true,
			wantField: "tags[1]",
		},
		{
			name:      "invalid lang",
			req:       service.CreateFAQRequest{Question: "Q", Answer: "A", Tags: []string{"t"}, Lang: "english"},
			mockSetup: func(store *storagemocks.MockFAQStore) {},
			wantErr:   true,
			wantField: "lang",
		},
		{
			name: "store error",
			req:  service.CreateFAQRequest{Question: "Q", Answer: "A", Tags: []string{"t"}},
			mockSetup: func(store *storagemocks.MockFAQStore) {
				store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := storagemocks.NewMockFAQStore(ctrl)
			tt.mockSetup(store)
			svc := service.NewFAQService(store, nil)

			got, err := svc.Create(testContext(), tt.req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Create() expected error, got nil")
				}
				var validationErr *service.ValidationError
				isValidation := errors.As(err, &validationErr)
				if tt.wantField == "" {
					if isValidation {
						t.Errorf("Create() error = %v, want store error", err)
					}
					return
				}
				if !isValidation {
					t.Fatalf("Create() error = %v, want ValidationError", err)
				}
				if validationErr.Field != tt.wantField {
					t.Errorf("Create() field = %q, want %q", validationErr.Field, tt.wantField)
				}
				return
			}

			if err != nil {
				t.Fatalf("Create() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Create() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFAQService_Create_InvalidatesAskCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storagemocks.NewMockFAQStore(ctrl)
	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	askCache, key := primedCache(t)
	svc := service.NewFAQService(store, askCache)

	_, err := svc.Create(testContext(), service.CreateFAQRequest{Question: "Q", Answer: "A", Tags: []string{"t"}})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	assertEvicted(t, askCache, key, true)
}

func TestFAQService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storagemocks.NewMockFAQStore(ctrl)
	store.EXPECT().List(gomock.Any(), "en").Return([]storage.FAQRecord{
		{ID: 1, Question: "Q1", Answer: "A1", Tags: []string{"a"}, Lang: "en"},
		{ID: 2, Question: "Q2", Answer: "A2", Lang: "en"},
	}, nil)

	svc := service.NewFAQService(store, nil)
	faqs, err := svc.List(testContext(), " EN ")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(faqs) != 2 {
		t.Fatalf("List() len = %d, want 2", len(faqs))
	}
	if faqs[1].Tags == nil {
		t.Error("List() tags should never be nil")
	}
}

func TestFAQService_List_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeErr := errors.New("connection refused")
	store := storagemocks.NewMockFAQStore(ctrl)
	store.EXPECT().List(gomock.Any(), "").Return(nil, storeErr)

	svc := service.NewFAQService(store, nil)
	if _, err := svc.List(testContext(), ""); !errors.Is(err, storeErr) {
		t.Errorf("List() error = %v, want wrapped %v", err, storeErr)
	}
}

func TestFAQService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storagemocks.NewMockFAQStore(ctrl)
	store.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&storage.FAQRecord{ID: 3, Question: "Q", Answer: "A", Tags: []string{"t"}, Lang: "en"}, nil)
	store.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, storage.ErrNotFound)

	svc := service.NewFAQService(store, nil)

	faq, err := svc.Get(testContext(), 3)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if faq.ID != 3 {
		t.Errorf("Get() ID = %d, want 3", faq.ID)
	}

	if _, err := svc.Get(testContext(), 99); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestFAQService_Update(t *testing.T) {
	existing := func() *storage.FAQRecord {
		return &storage.FAQRecord{ID: 5, Question: "Old Q", Answer: "Old A", Tags: []string{"old"}, Lang: "en"}
	}

	tests := []struct {
		name      string
		req       service.UpdateFAQRequest
		mockSetup func(store *storagemocks.MockFAQStore)
		wantErr   error
		wantField string
		want      service.FAQ
	}{
		{
			name: "partial update keeps other fields",
			req:  service.UpdateFAQRequest{Answer: strPtr(" New A ")},
			mockSetup: func(store *storagemocks.MockFAQStore) {
				store.EXPECT().GetByID(gomock.Any(), int64(5)).Return(existing(), nil)
				store.EXPECT().Update(gomock.Any(), &storage.FAQRecord{
					ID: 5, Question: "Old Q", Answer: "New A", Tags: []string{"old"}, Lang: "en",
				}).Return(nil)
			},
			want: service.FAQ{ID: 5, Question: "Old Q", Answer: "New A", Tags: []string{"old"}, Lang: "en"},
		},
		{
			name: "replace tags and lang",
			req:  service.UpdateFAQRequest{Tags: []string{"new", "tags"}, Lang: strPtr("MS")},
			mockSetup: func(store *storagemocks.MockFAQStore) {
				store.EXPECT().GetByID(gomock.Any(), int64(5)).Return(existing(), nil)
				store.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: service.FAQ{ID: 5, Question: "Old Q", Answer: "Old A", Tags: []string{"new", "tags"}, Lang: "ms"},
		},
		{
			name:      "empty question rejected",
			req:       service.UpdateFAQRequest{Question: strPtr("")},
			mockSetup: func(store *storagemocks.MockFAQStore) {},
			wantField: "question",
		},
		{
			name:      "invalid lang rejected",
			req:       service.UpdateFAQRequest{Lang: strPtr("e")},
			mockSetup: func(store *storagemocks.MockFAQStore) {},
			wantField: "lang",
		},
		{
			name: "missing faq",
			req:  service.UpdateFAQRequest{Answer: strPtr("A")},
			mockSetup: func(store *storagemocks.MockFAQStore) {
				store.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, storage.ErrNotFound)
			},
			wantErr: service.ErrNotFound,
		},
		{
			name: "deleted between read and write",
			req:  service.UpdateFAQRequest{Answer: strPtr("A")},
			mockSetup: func(store *storagemocks.MockFAQStore) {
				store.EXPECT().GetByID(gomock.Any(), int64(5)).Return(existing(), nil)
				store.EXPECT().Update(gomock.Any(), gomock.Any()).Return(storage.ErrNotFound)
			},
			wantErr: service.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := storagemocks.NewMockFAQStore(ctrl)
			tt.mockSetup(store)
			svc := service.NewFAQService(store, nil)

			got, err := svc.Update(testContext(), 5, tt.req)

			if tt.wantField != "" {
				var validationErr *service.ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("Update() error = %v, want ValidationError", err)
				}
				if validationErr.Field != tt.wantField {
					t.Errorf("Update() field = %q, want %q", validationErr.Field, tt.wantField)
				}
				return
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Update() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Update() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Update() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFAQService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storagemocks.NewMockFAQStore(ctrl)
	askCache, key := primedCache(t)
	svc := service.NewFAQService(store, askCache)

	// A failed delete leaves cached answers alone
	store.EXPECT().Delete(gomock.Any(), int64(9)).Return(storage.ErrNotFound)
	if err := svc.Delete(testContext(), 9); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
	assertEvicted(t, askCache, key, false)

	store.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	if err := svc.Delete(testContext(), 1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	assertEvicted(t, askCache, key, true)
}

func TestFAQService_FetchEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storagemocks.NewMockFAQStore(ctrl)
	store.EXPECT().List(gomock.Any(), "en").Return([]storage.FAQRecord{
		{ID: 1, Question: "Q1", Answer: "A1", Tags: []string{"a"}, Lang: "en", CreatedAt: time.Now()},
	}, nil)

	svc := service.NewFAQService(store, nil)
	entries, err := svc.FetchEntries(testContext(), "en")
	if err != nil {
		t.Fatalf("FetchEntries() error = %v", err)
	}

	want := []match.Entry{{ID: 1, Question: "Q1", Answer: "A1", Tags: []string{"a"}, Lang: "en"}}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("FetchEntries() = %+v, want %+v", entries, want)
	}
}

func TestFAQService_Generation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storagemocks.NewMockFAQStore(ctrl)
	gomock.InOrder(
		store.EXPECT().Generation(gomock.Any()).Return(int64(7), nil),
		store.EXPECT().Generation(gomock.Any()).Return(int64(0), errors.New("connection refused")),
	)

	svc := service.NewFAQService(store, nil)

	gen, err := svc.Generation(testContext())
	if err != nil || gen != 7 {
		t.Errorf("Generation() = %d, %v, want 7, nil", gen, err)
	}
	if _, err := svc.Generation(testContext()); err == nil {
		t.Error("Generation() expected store error, got nil")
	}
}
