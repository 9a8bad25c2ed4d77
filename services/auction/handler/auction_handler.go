package handler

import (
	"fmt"
	"net/http"

	"vehicle-auction/internal/contract"
	"vehicle-auction/services/auction/helpers"
	"vehicle-auction/utils"

	"github.com/gin-gonic/gin"
)

// Invoker dispatches a named operation with string arguments.
type Invoker interface {
	Invoke(fn string, args []string) (any, error)
}

type AuctionHandler struct {
	registry Invoker
}

func NewAuctionHandler(registry Invoker) *AuctionHandler {
	return &AuctionHandler{registry: registry}
}

// InvokeHandler handles POST /invoke
func (h *AuctionHandler) InvokeHandler(c *gin.Context) {
	var req helpers.InvokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "InvokeHandler", err)
		return
	}

	payload, err := h.registry.Invoke(req.Function, req.Args)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("InvokeHandler: invocation failed", map[string]any{
			"handler":  "InvokeHandler",
			"function": req.Function,
			"args":     len(req.Args),
			"error":    err.Error(),
		})
		return
	}

	resp := helpers.InvokeResponse{
		Function: req.Function,
		Payload:  payload,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "invocation succeeded")
	helpers.LogSuccess("InvokeHandler", "invocation succeeded", map[string]any{
		"function": req.Function,
		"args":     len(req.Args),
	})
}

// QueryRecordHandler handles GET /records/:key
func (h *AuctionHandler) QueryRecordHandler(c *gin.Context) {
	key := c.Param("key")

	payload, err := h.registry.Invoke(contract.OpQuery, []string{key})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("QueryRecordHandler: query failed", map[string]any{"key": key, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, payload, "record retrieved successfully")
	helpers.LogSuccess("QueryRecordHandler", "record retrieved successfully", map[string]any{
		"key": key,
	})
}
