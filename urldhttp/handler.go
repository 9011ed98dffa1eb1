// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/urld/blob/master/LICENSE.txt.

package urldhttp

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/tigerwill90/urld"
)

var Version = "v0.1.0"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MaxBatchSize is the maximum number of urls accepted by [BatchHandler] in a single request.
const MaxBatchSize = 1000

type batchRequest struct {
	URLs []string `json:"urls" binding:"required"`
}

// Handler returns a gin.HandlerFunc that deconstructs the "url" query parameter and responds
// with the JSON rendering of the result. Note that the query parameter is decoded once by
// net/url before being parsed, use [BatchHandler] to submit the text exactly as written.
func Handler(p *urld.Parser) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, ok := c.GetQuery("url")
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing url query parameter"})
			return
		}
		render(c, http.StatusOK, p.Parse(input))
	}
}

// BatchHandler returns a gin.HandlerFunc that deconstructs every url of a JSON body of the form
// {"urls": ["...", ...]} and responds with a JSON array of results, in the same order.
func BatchHandler(p *urld.Parser) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req batchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.URLs) > MaxBatchSize {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("at most %d urls per request", MaxBatchSize)})
			return
		}

		results := make([]*urld.Result, len(req.URLs))
		for i, input := range req.URLs {
			results[i] = p.Parse(input)
		}
		render(c, http.StatusOK, results)
	}
}

// NewEngine returns a gin.Engine serving [Handler] on GET /parse and [BatchHandler] on
// POST /parse. Requests are logged to logger and panics are recovered.
func NewEngine(p *urld.Parser, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), Logger(logger))
	r.GET("/parse", Handler(p))
	r.POST("/parse", BatchHandler(p))
	return r
}

// Logger returns a middleware that logs the client ip, method, path, status code and latency
// of every request.
func Logger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.Int("status", status),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("latency", roundLatency(latency)),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("error", c.Errors.String()))
		}
		logger.LogAttrs(c.Request.Context(), level(status), c.ClientIP(), attrs...)
	}
}

func render(c *gin.Context, code int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Server", "urld "+Version)
	c.Data(code, "application/json; charset=utf-8", b)
}

func level(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func roundLatency(d time.Duration) time.Duration {
	switch {
	case d < 1*time.Microsecond:
		return d.Round(100 * time.Nanosecond)
	case d < 1*time.Millisecond:
		return d.Round(10 * time.Microsecond)
	case d < 10*time.Millisecond:
		return d.Round(100 * time.Microsecond)
	case d < 100*time.Millisecond:
		return d.Round(1 * time.Millisecond)
	case d < 1*time.Second:
		return d.Round(10 * time.Millisecond)
	default:
		return d.Round(100 * time.Millisecond)
	}
}
