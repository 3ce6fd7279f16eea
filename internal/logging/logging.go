// Package logging holds the process-wide zap logger and the gin
// middleware built on top of it. Init is called once at startup; L
// hands out the shared logger afterwards.
package logging

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// Init configures the shared logger. Production selects the JSON
// encoder; development keeps the console encoder. A non-empty file path
// is added as a second sink alongside stdout.
func Init(production bool, file string) error {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if file != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, file)
	}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// L returns the shared logger, falling back to a development logger when
// Init was never called.
func L() *zap.Logger {
	if logger == nil {
		_ = Init(false, "")
	}
	return logger
}

// Sync flushes buffered log entries; call on shutdown.
func Sync() { _ = L().Sync() }

// RequestIDKey is the gin context key under which the request ID
// middleware stores the per-request identifier.
const RequestIDKey = "request_id"

// GinLogger logs one line per request with method, path, status, latency
// and the request ID set by the server's ID middleware.
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		L().Info("http request",
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// GinRecovery converts panics into a 500 JSON payload and logs the
// stack, so a bug in a handler never drops the connection.
func GinRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				L().Error("panic recovered",
					zap.Any("error", err),
					zap.ByteString("stack", debug.Stack()),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"Result":  false,
					"Message": "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
