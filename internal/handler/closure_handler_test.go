package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tregobbi/backoffice-service/internal/domain"
	"github.com/tregobbi/backoffice-service/internal/reconcile"
	"github.com/tregobbi/backoffice-service/internal/service"
	"github.com/tregobbi/backoffice-service/internal/validation"
)

// fakeClosureService captures the record passed to UpsertClosure. The
// embedded interface panics on any other call, which no test here makes.
type fakeClosureService struct {
	service.ClosureService
	lastUpsert *domain.DailyClosure
}

func (f *fakeClosureService) UpsertClosure(_ context.Context, closure *domain.DailyClosure) (*domain.ClosureView, error) {
	f.lastUpsert = closure
	view := reconcile.Derive(*closure)
	return &view, nil
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestUpsertClosureStampsAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterCustomValidations())

	fake := &fakeClosureService{}
	h := NewClosureHandler(fake, newTestLogger())

	router := gin.New()
	router.POST("/v1/closures", func(c *gin.Context) {
		// Stands in for the auth middleware
		c.Set("userID", "user-42")
	}, h.UpsertClosure)

	body, err := json.Marshal(map[string]interface{}{
		"date":          "2025-03-10",
		"corrispettivi": "100",
		"cashFinal":     "100",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/closures", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, fake.lastUpsert)
	assert.Equal(t, "user-42", fake.lastUpsert.CreatedBy)
}

func TestUpsertClosureRejectsBadDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterCustomValidations())

	fake := &fakeClosureService{}
	h := NewClosureHandler(fake, newTestLogger())

	router := gin.New()
	router.POST("/v1/closures", h.UpsertClosure)

	body, err := json.Marshal(map[string]interface{}{
		"date": "10/03/2025",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/closures", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, fake.lastUpsert)
}
