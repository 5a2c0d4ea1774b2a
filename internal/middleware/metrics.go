package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/patomosley/barbar-shop/internal/metrics"
)

// Metrics conta requisições por rota registrada. Caminhos sem rota entram
// agrupados como "unmatched".
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncHTTP(route)
		c.Next()
	}
}
