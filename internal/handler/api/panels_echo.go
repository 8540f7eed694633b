package api

import (
	"errors"
	"net/http"

	models "StorePulse/internal/domain/models"
	domrepo "StorePulse/internal/domain/repository"
	"StorePulse/internal/service/ratelimit"
	"StorePulse/internal/usecase"
	xhttp "StorePulse/pkg/http"
	xlogger "StorePulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PanelsHandler exposes the five dashboard panels over Echo. Every endpoint
// is a full recomputation: bind and validate the request, resolve the
// dataset, run the panel, return the envelope.
type PanelsHandler struct {
	logger  *xlogger.Logger
	svc     *usecase.PanelService
	session *usecase.Session
	rl      *ratelimit.Limiter
}

func NewPanelsHandler(logger *xlogger.Logger, svc *usecase.PanelService, session *usecase.Session, rl *ratelimit.Limiter) *PanelsHandler {
	return &PanelsHandler{logger: logger, svc: svc, session: session, rl: rl}
}

func (h *PanelsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api")
	g.GET("/session", h.Session)
	g.GET("/segmentation", h.Segmentation)
	g.GET("/replenishment", h.Replenishment)
	g.GET("/basket", h.Basket)
	g.GET("/basket/rules", h.Rules)
	g.GET("/pricing", h.Pricing)
	g.GET("/geo", h.Geo)
}

// allow consumes one token for the client/endpoint pair. Limits are an
// ambient per-client budget, not a correctness mechanism.
func (h *PanelsHandler) allow(c echo.Context, endpoint string) bool {
	if h.rl == nil {
		return true
	}
	if h.rl.Allow(c.RealIP()+":"+endpoint, 10, 5) {
		return true
	}
	h.logger.Warn(endpoint+" rate_limited", xlogger.String("remote", c.RealIP()))
	return false
}

func (h *PanelsHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *PanelsHandler) Session(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.session.Info())
}

func (h *PanelsHandler) Segmentation(c echo.Context) error {
	req := &models.SegmentationRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.allow(c, "segmentation") {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limited")
	}

	res, err := h.svc.Segmentation(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("segmentation usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PanelsHandler) Replenishment(c echo.Context) error {
	req := &models.ReplenishmentRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.allow(c, "replenishment") {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limited")
	}

	res, err := h.svc.Replenishment(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("replenishment usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PanelsHandler) Basket(c echo.Context) error {
	req := &models.BasketRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.allow(c, "basket") {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limited")
	}

	res, err := h.svc.Basket(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, domrepo.ErrRuleNotFound) {
			appErr := xhttp.NewAppError("ERR_RULE_NOT_FOUND", "driver", err.Error(), http.StatusNotFound).
				WithParam("driver", req.Driver)
			return xhttp.AppErrorResponse(c, appErr)
		}
		h.logger.Error("basket usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PanelsHandler) Rules(c echo.Context) error {
	rules := h.svc.Rules(c.Request().Context())
	return xhttp.ListResponse(c, rules, int64(len(rules)))
}

func (h *PanelsHandler) Pricing(c echo.Context) error {
	req := &models.PricingRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.allow(c, "pricing") {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limited")
	}

	return xhttp.SuccessResponse(c, h.svc.Pricing(c.Request().Context(), req))
}

func (h *PanelsHandler) Geo(c echo.Context) error {
	req := &models.GeoRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.allow(c, "geo") {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limited")
	}

	res, err := h.svc.Geo(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("geo usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}
