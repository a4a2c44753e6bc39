package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-resume-builder/config"
	v1 "go-resume-builder/internal/delivery/http/v1"
	"go-resume-builder/internal/domain"
	"go-resume-builder/internal/editor"
	"go-resume-builder/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testSecret = "test-secret"

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, userID string) (*domain.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) GetByID(ctx context.Context, id, userID string) (*domain.Resume, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) ListByUser(ctx context.Context, userID string) ([]domain.ResumeSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResumeSummary), args.Error(1)
}

func (m *MockResumeRepo) Update(ctx context.Context, id, userID string, content domain.ResumeContent, title string) (*domain.ResumeSummary, error) {
	args := m.Called(ctx, id, userID, content, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumeSummary), args.Error(1)
}

func (m *MockResumeRepo) Delete(ctx context.Context, id, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

func newTestRouter(t *testing.T, repo *MockResumeRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := editor.NewManager(repo, time.Hour)
	resumeUC, err := usecase.NewResumeUsecase(repo, sessions, validator.New())
	assert.NoError(t, err)
	photoUC := usecase.NewPhotoUsecase(sessions, nil)

	cfg := &config.Config{
		Port:                     "8080",
		FrontendURL:              "http://localhost:3000",
		JWTSecret:                testSecret,
		RateLimitWindowSeconds:   60,
		RateLimitGlobalThreshold: 1000,
	}

	return v1.NewRouter(v1.RouterDeps{
		ResumeUC: resumeUC,
		PhotoUC:  photoUC,
		Config:   cfg,
	})
}

func signToken(t *testing.T, secret, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": sub + "@example.com",
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

// The identity stamped by the auth middleware must survive the full
// request path into the usecases, where ownership checks read it back
// out of the context.
func TestRouterIdentityFlow(t *testing.T) {
	t.Run("Should thread the token subject through to the repository", func(t *testing.T) {
		repo := new(MockResumeRepo)
		repo.On("ListByUser", mock.Anything, "user1").
			Return([]domain.ResumeSummary{{ID: "r1", Title: "Untitled Resume"}}, nil)
		router := newTestRouter(t, repo)

		req := httptest.NewRequest(http.MethodGet, "/v1/resumes", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "user1"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "r1")
		repo.AssertExpectations(t)
	})

	t.Run("Should reject a request without a token", func(t *testing.T) {
		router := newTestRouter(t, new(MockResumeRepo))

		req := httptest.NewRequest(http.MethodGet, "/v1/resumes", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject a token signed with the wrong secret", func(t *testing.T) {
		router := newTestRouter(t, new(MockResumeRepo))

		req := httptest.NewRequest(http.MethodGet, "/v1/resumes", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "user1"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should serve the health check without auth", func(t *testing.T) {
		router := newTestRouter(t, new(MockResumeRepo))

		req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
