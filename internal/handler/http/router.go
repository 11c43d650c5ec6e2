package http

import (
	"database/sql"
	"log/slog"
	"net/http"

	"pagewatch/internal/handler/http/category"
	"pagewatch/internal/handler/http/page"
	"pagewatch/internal/handler/http/requestid"
	"pagewatch/internal/handler/http/source"
	catUC "pagewatch/internal/usecase/category"
	pageUC "pagewatch/internal/usecase/page"
	srcUC "pagewatch/internal/usecase/source"
	"pagewatch/internal/usecase/watch"
)

// maxRequestBody caps JSON request bodies. The largest legitimate payload is
// a page submission; 1 MiB leaves generous headroom.
const maxRequestBody = 1 << 20

// RouterConfig carries the dependencies of the API surface.
type RouterConfig struct {
	DB         *sql.DB
	Sources    *srcUC.Service
	Pages      *pageUC.Service
	Categories *catUC.Service
	Registry   *watch.Registry
	Version    string
	Logger     *slog.Logger
}

// NewRouter builds the API handler: all resource routes plus the health
// endpoint, wrapped in request-id, recovery, access-log, and body-limit
// middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	source.Register(mux, cfg.Sources)
	page.Register(mux, cfg.Pages)
	category.Register(mux, cfg.Categories)
	mux.Handle("GET /healthz", &HealthHandler{
		DB:       cfg.DB,
		Registry: cfg.Registry,
		Version:  cfg.Version,
	})

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var h http.Handler = mux
	h = LimitRequestBody(maxRequestBody)(h)
	h = Logging(logger)(h)
	h = Recover(logger)(h)
	h = requestid.Middleware(h)
	return h
}
