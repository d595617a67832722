package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeviceIDHeader carries the client's self-assigned device identifier. The
// visit history is keyed by it; clients persist the value locally.
const DeviceIDHeader = "X-Device-ID"

// deviceIDKey is the gin context key the resolved device ID is stored under.
const deviceIDKey = "deviceID"

// DeviceMiddleware resolves the device ID for the request. A client without
// one gets a fresh UUID echoed back so it can persist it for next time.
func DeviceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := strings.TrimSpace(c.GetHeader(DeviceIDHeader))
		if deviceID == "" {
			deviceID = uuid.New().String()
			c.Header(DeviceIDHeader, deviceID)
		}
		c.Set(deviceIDKey, deviceID)
		c.Next()
	}
}

// DeviceID returns the device ID resolved by DeviceMiddleware.
func DeviceID(c *gin.Context) string {
	if id, ok := c.Get(deviceIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
