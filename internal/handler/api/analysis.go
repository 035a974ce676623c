package api

import (
	"net/http"

	models "WhaleEye/internal/domain/models"
	domsvc "WhaleEye/internal/domain/service"
	"WhaleEye/internal/usecase"
	xhttp "WhaleEye/pkg/http"
	"WhaleEye/pkg/http/middleware"
	xlogger "WhaleEye/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ProviderModes maps an upstream provider name to "live" or "mock".
type ProviderModes map[string]string

// AnalysisHandler serves the three analysis endpoints.
type AnalysisHandler struct {
	logger    *xlogger.Logger
	whale     domsvc.WhaleAnalyzer
	news      domsvc.NewsAnalyst
	orch      *usecase.Orchestrator
	providers ProviderModes
}

func NewAnalysisHandler(
	logger *xlogger.Logger,
	whale domsvc.WhaleAnalyzer,
	news domsvc.NewsAnalyst,
	orch *usecase.Orchestrator,
	providers ProviderModes,
) *AnalysisHandler {
	return &AnalysisHandler{logger: logger, whale: whale, news: news, orch: orch, providers: providers}
}

// RegisterRoutes mounts the POST endpoints. Other methods on these paths get
// 405 from the router; preflights are answered by the CORS middleware.
func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/whale-analyzer", h.WhaleAnalyzer)
	e.POST("/news-analyst", h.NewsAnalyst)
	e.POST("/orchestrator", h.Orchestrator)
	e.GET("/healthz", h.Health)
}

func (h *AnalysisHandler) WhaleAnalyzer(c echo.Context) error {
	req := &models.WhaleAnalyzerRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.whale.Analyze(c.Request().Context(), req.WalletAddress, req.Role)
	if err != nil {
		h.logger.Error("whale analyzer error",
			xlogger.String("request_id", middleware.GetRequestID(c)),
			xlogger.Error(err),
		)
		return xhttp.InternalServerErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) NewsAnalyst(c echo.Context) error {
	req := &models.NewsAnalystRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.news.Analyze(c.Request().Context(), req.Role, req.Query)
	if err != nil {
		h.logger.Error("news analyst error",
			xlogger.String("request_id", middleware.GetRequestID(c)),
			xlogger.Error(err),
		)
		return xhttp.InternalServerErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) Orchestrator(c echo.Context) error {
	req := &models.OrchestratorRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	req.RequestID = middleware.GetRequestID(c)

	res, err := h.orch.Handle(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("orchestrator error",
			xlogger.String("request_id", req.RequestID),
			xlogger.Error(err),
		)
		return xhttp.InternalServerErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, xhttp.HealthResponse{Status: "ok", Providers: h.providers})
}
