package middlewares

import (
	"time"

	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/querystats"
	"github.com/Leeky0615-SpringMVC/spring-jpa-shop/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LoggerMiddleware logs one line per request, including how many SQL
// statements the request executed.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		ctx, counter := querystats.WithCounter(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		utils.InfoLogger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"queries":    counter.Count(),
		}).Infof("%s | %3d | %13v | %s", c.Request.Method, status, latency, path)
	}
}
