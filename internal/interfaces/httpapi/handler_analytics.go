package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/cricbuzz-livestats/internal/usecase"
)

func (h *Handler) ListAnalyticsQueries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAnalyticsQueries")
	defer span.End()

	queries := h.analyticsService.Catalog(ctx)
	items := make([]analyticsQueryDTO, 0, len(queries))
	for _, q := range queries {
		items = append(items, analyticsQueryToDTO(q))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RunAnalyticsQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAnalyticsQuery")
	defer span.End()

	queryID, err := strconv.Atoi(strings.TrimSpace(r.PathValue("queryID")))
	if err != nil || queryID <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: query id must be a positive integer", usecase.ErrInvalidInput))
		return
	}

	var req runAnalyticsQueryRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.analyticsService.Run(ctx, queryID, req.Params)
	if err != nil {
		h.logger.WarnContext(ctx, "run analytics query failed", "query_id", queryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, queryRunToDTO(view))
}

func (h *Handler) VerifyAnalyticsQueries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.VerifyAnalyticsQueries")
	defer span.End()

	checks, err := h.analyticsService.Verify(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "verify analytics catalog failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]queryCheckDTO, 0, len(checks))
	for _, c := range checks {
		items = append(items, queryCheckDTO{ID: c.ID, Title: c.Title, OK: c.OK, Error: c.Error})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
