package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uxrlab/uxr-backend/internal/apperr"
	"github.com/uxrlab/uxr-backend/internal/generation/service"
)

// Handler exposes the generation endpoint.
type Handler struct {
	svc *service.GenerateService
}

func New(svc *service.GenerateService) *Handler {
	return &Handler{svc: svc}
}

// Register attaches the generate route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.generate)
}

type generateReq struct {
	Files           []string `json:"files"`
	Context         string   `json:"context"`
	DeliverableType string   `json:"deliverableType"`
	ProjectName     string   `json:"projectName"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "InvalidBody", "message": "invalid json body"})
		return
	}

	res, err := h.svc.Generate(c.Request.Context(), service.GenerateRequest{
		FileIDs:         req.Files,
		Context:         req.Context,
		DeliverableType: req.DeliverableType,
		ProjectName:     req.ProjectName,
	})
	if err != nil {
		code := apperr.CodeOf(err)
		c.JSON(statusFor(code), gin.H{"error": code, "message": apperr.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, res)
}

// statusFor maps the stable error codes to HTTP status classes: validation
// and format errors are the client's fault, missing files are not-found,
// everything else is a server-side failure.
func statusFor(code string) int {
	switch code {
	case apperr.CodeNoFilesProvided, apperr.CodeInvalidDeliverableType,
		apperr.CodeUnsupportedFormat, apperr.CodeExtractionFailed:
		return http.StatusBadRequest
	case apperr.CodeFileNotFound:
		return http.StatusNotFound
	case apperr.CodeApiConfigurationError, apperr.CodeGenerationFailed,
		apperr.CodeEmptyResponse, apperr.CodeUnexpectedResponseShape,
		apperr.CodePersistenceFailed:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
