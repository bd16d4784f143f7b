package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"synapse_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupErrorHandlerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler(zap.NewNop()))
	router.HandleMethodNotAllowed = true
	return router
}

func TestErrorHandler_HandlerWritten404IsSingleJSONDocument(t *testing.T) {
	router := setupErrorHandlerRouter()
	router.GET("/listings/:id", func(c *gin.Context) {
		common.RespondWithError(c, common.ErrNotFound.WithDetails("Listing not found."))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/listings/123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	// The body must be exactly one JSON object, not the handler's body with a
	// synthetic not-found document appended.
	assert.JSONEq(t, `{"code":"NOT_FOUND","message":"The requested resource could not be found.","details":"Listing not found."}`, w.Body.String())
}

func TestErrorHandler_UnhandledRouteGetsSynthetic404(t *testing.T) {
	router := setupErrorHandlerRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "The requested endpoint does not exist.", body["details"])
}

func TestErrorHandler_WrongMethodGetsSynthetic405(t *testing.T) {
	router := setupErrorHandlerRouter()
	router.GET("/only-get", func(c *gin.Context) {
		common.RespondOK(c, "ok", nil)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/only-get", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "METHOD_NOT_ALLOWED", body["code"])
}

func TestErrorHandler_RecordedErrorIsShaped(t *testing.T) {
	router := setupErrorHandlerRouter()
	router.GET("/fails", func(c *gin.Context) {
		c.Error(common.ErrForbidden.WithDetails("Not yours."))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fails", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"code":"FORBIDDEN","message":"You do not have permission to access this resource.","details":"Not yours."}`, w.Body.String())
}
