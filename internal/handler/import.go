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
	"os"
	"path/filepath"
	"strconv"

	"github.com/jl91/aws-gateway-editor/internal/middleware"
	"github.com/jl91/aws-gateway-editor/internal/service"
	"github.com/jl91/aws-gateway-editor/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ImportHandler handles HTTP requests for document import
type ImportHandler struct {
	importService *service.ImportService
	tempDir       string
	maxFileSize   int64 // bytes
	historyLimit  int
}

// NewImportHandler creates a new import handler. tempDir empty means the OS
// default temp directory.
func NewImportHandler(importService *service.ImportService, tempDir string, maxFileSizeMB, historyLimit int) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		tempDir:       tempDir,
		maxFileSize:   int64(maxFileSizeMB) * 1024 * 1024,
		historyLimit:  historyLimit,
	}
}

// ImportDocument handles POST /api/v1/gateways/import. The uploaded file is
// spooled to a temp file which the import pipeline removes when done.
func (h *ImportHandler) ImportDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request",
			"multipart field 'file' is required"))
		return
	}

	if h.maxFileSize > 0 && fileHeader.Size > h.maxFileSize {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request",
			fmt.Sprintf("file exceeds the %d MB upload limit", h.maxFileSize/(1024*1024))))
		return
	}

	tempPath := filepath.Join(h.tempDirOrDefault(), "upload-"+uuid.New().String()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		utils.LogError("Failed to spool uploaded file", err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(500, "Internal Server Error",
			"failed to store uploaded file"))
		return
	}

	importedBy, _ := middleware.GetUserIDFromContext(c)

	result, err := h.importService.ImportDocument(tempPath, fileHeader.Filename, fileHeader.Size, importedBy)
	if err != nil {
		utils.LogError("Failed to import document", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListImportHistory handles GET /api/v1/gateways/import/history
func (h *ImportHandler) ListImportHistory(c *gin.Context) {
	limit := h.historyLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "limit must be an integer"))
			return
		}
		limit = parsed
	}

	records, err := h.importService.ListHistory(limit)
	if err != nil {
		utils.LogError("Failed to list import history", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *ImportHandler) tempDirOrDefault() string {
	if h.tempDir != "" {
		return h.tempDir
	}
	return os.TempDir()
}

// RegisterRoutes registers import routes with the router
func (h *ImportHandler) RegisterRoutes(r *gin.Engine) {
	importGroup := r.Group("/api/v1/gateways/import")
	{
		importGroup.POST("", h.ImportDocument)
		importGroup.GET("/history", h.ListImportHistory)
	}
}
