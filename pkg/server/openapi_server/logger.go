// SPDX-License-Identifier: MIT

package openapi_server

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Logger logs every request handled by inner.
func Logger(inner http.Handler, name string, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		inner.ServeHTTP(w, r)

		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.String("route", name),
			zap.Duration("took", time.Since(start)))
	})
}
