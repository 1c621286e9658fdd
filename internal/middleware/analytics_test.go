package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/autohaus/dms_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type AnalyticsMiddlewareTestSuite struct {
	suite.Suite
	logger *slog.Logger
}

func (suite *AnalyticsMiddlewareTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func (suite *AnalyticsMiddlewareTestSuite) newRouter(analytics *utils.AnalyticsClient) *gin.Engine {
	r := gin.New()
	r.Use(AnalyticsMiddleware(analytics))
	r.GET("/api/v1/customers/:id", func(c *gin.Context) {
		c.Set(string(userIDKey), "user-1")
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	return r
}

// A nil client must behave as disabled rather than panic.
func (suite *AnalyticsMiddlewareTestSuite) TestNilClientPassesThrough() {
	r := suite.newRouter(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/customers/abc", nil)
	r.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AnalyticsMiddlewareTestSuite) TestDisabledClientPassesThrough() {
	analytics := utils.NewAnalyticsClient("", suite.logger)
	suite.False(analytics.IsEnabled())

	r := suite.newRouter(analytics)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/customers/abc", nil)
	r.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AnalyticsMiddlewareTestSuite) TestDisabledClientEnqueueIsNoOp() {
	analytics := utils.NewAnalyticsClient("", suite.logger)

	suite.NotPanics(func() {
		analytics.Enqueue("user-1", "api_v1_customers", map[string]any{"method": "GET"})
		analytics.Close()
	})
}

func (suite *AnalyticsMiddlewareTestSuite) TestRouteEventName() {
	suite.Equal("api_v1_customers_:id", routeEventName("/api/v1/customers/:id"))
	suite.Equal("api_v1_transactions_:id_payments", routeEventName("/api/v1/transactions/:id/payments"))
	suite.Equal("health", routeEventName("/health"))
	suite.Equal("", routeEventName("/"))
}

func TestAnalyticsMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsMiddlewareTestSuite))
}
