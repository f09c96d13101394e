package api

import (
	"errors"
	"time"

	models "PriceScope/internal/domain/models"
	"PriceScope/internal/outliers"
	"PriceScope/internal/usecase"
	xhttp "PriceScope/pkg/http"
	xlogger "PriceScope/pkg/logger"
	"PriceScope/pkg/util"

	"github.com/labstack/echo/v4"
)

// OutliersEchoHandler exposes the analysis over Echo-based HTTP handlers.
type OutliersEchoHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.OutlierAnalyzer
}

func NewOutliersEchoHandler(logger *xlogger.Logger, analyzer *usecase.OutlierAnalyzer) *OutliersEchoHandler {
	return &OutliersEchoHandler{logger: logger, analyzer: analyzer}
}

func (h *OutliersEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/outliers", h.Outliers)
	g.GET("/outliers/chart", h.Chart)
	g.GET("/series", h.Series)
	e.GET("/healthz", h.Health)
}

func (h *OutliersEchoHandler) Outliers(c echo.Context) error {
	params, verr := h.bindAnalyzeParams(c)
	if verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.analyzer.Analyze(c.Request().Context(), *params)
	if err != nil {
		return h.analysisError(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *OutliersEchoHandler) Chart(c echo.Context) error {
	params, verr := h.bindAnalyzeParams(c)
	if verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.analyzer.Chart(c.Request().Context(), *params)
	if err != nil {
		return h.analysisError(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *OutliersEchoHandler) Series(c echo.Context) error {
	req := &models.SeriesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	from := util.ParseTimeDefault(req.From, time.Time{})
	to := util.ParseTimeDefault(req.To, time.Time{})

	res, err := h.analyzer.Series(c.Request().Context(), req.Symbol, from, to)
	if err != nil {
		h.logger.Error("series usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *OutliersEchoHandler) Health(c echo.Context) error {
	if err := h.analyzer.Health(c.Request().Context()); err != nil {
		h.logger.Error("health check failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalErrorf("price source unavailable: %v", err))
	}
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *OutliersEchoHandler) bindAnalyzeParams(c echo.Context) (*usecase.AnalyzeParams, interface{}) {
	req := &models.OutliersRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return nil, verr
	}

	var from, to time.Time
	if req.From != "" {
		t, ok := util.ParseTime(req.From)
		if !ok {
			return nil, []xhttp.ValidationError{{Code: "ERR_DATE", Field: "from", Message: "from must be an ISO date"}}
		}
		from = t
	}
	if req.To != "" {
		t, ok := util.ParseTime(req.To)
		if !ok {
			return nil, []xhttp.ValidationError{{Code: "ERR_DATE", Field: "to", Message: "to must be an ISO date"}}
		}
		to = t
	}

	return &usecase.AnalyzeParams{
		Symbol: req.Symbol,
		Method: req.Method,
		Window: req.Window,
		Sigma:  req.Sigma,
		From:   from,
		To:     to,
	}, nil
}

// analysisError maps configuration mistakes to 400s; everything else is a 500.
func (h *OutliersEchoHandler) analysisError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnknownMethod),
		errors.Is(err, outliers.ErrInvalidConfiguration),
		errors.Is(err, outliers.ErrEmptySeries):
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
	default:
		h.logger.Error("outliers usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
}
