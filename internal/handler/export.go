/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package handler

import (
	"fmt"
	"net/http"

	"github.com/jl91/aws-gateway-editor/internal/constants"
	"github.com/jl91/aws-gateway-editor/internal/service"
	"github.com/jl91/aws-gateway-editor/internal/utils"

	"github.com/gin-gonic/gin"
)

// ExportHandler handles HTTP requests for document export
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportDocument handles GET /api/v1/gateways/:configId/export?format=json|yaml
func (h *ExportHandler) ExportDocument(c *gin.Context) {
	configID := c.Param("configId")
	format := c.DefaultQuery("format", constants.ExportFormatJSON)

	result, err := h.exportService.ExportDocument(configID, format)
	if err != nil {
		utils.LogError("Failed to export document", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Header("X-Export-Cache", cacheHeader(result.FromCache))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

// ExportStatus handles GET /api/v1/gateways/:configId/export/status
func (h *ExportHandler) ExportStatus(c *gin.Context) {
	configID := c.Param("configId")

	status, err := h.exportService.ExportStatus(configID)
	if err != nil {
		utils.LogError("Failed to get export status", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, status)
}

func cacheHeader(fromCache bool) string {
	if fromCache {
		return "hit"
	}
	return "miss"
}

// RegisterRoutes registers export routes with the router
func (h *ExportHandler) RegisterRoutes(r *gin.Engine) {
	exportGroup := r.Group("/api/v1/gateways/:configId/export")
	{
		exportGroup.GET("", h.ExportDocument)
		exportGroup.GET("/status", h.ExportStatus)
	}
}
