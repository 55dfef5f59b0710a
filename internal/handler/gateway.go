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
	"net/http"
	"strconv"

	"github.com/jl91/aws-gateway-editor/internal/constants"
	"github.com/jl91/aws-gateway-editor/internal/dto"
	"github.com/jl91/aws-gateway-editor/internal/service"
	"github.com/jl91/aws-gateway-editor/internal/utils"

	"github.com/gin-gonic/gin"
)

// GatewayHandler handles HTTP requests for gateway configuration operations
type GatewayHandler struct {
	gatewayService *service.GatewayService
}

// NewGatewayHandler creates a new gateway handler
func NewGatewayHandler(gatewayService *service.GatewayService) *GatewayHandler {
	return &GatewayHandler{
		gatewayService: gatewayService,
	}
}

// CreateGateway handles POST /api/v1/gateways
func (h *GatewayHandler) CreateGateway(c *gin.Context) {
	var req dto.CreateGatewayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", utils.FormatValidationError(err)))
		return
	}

	config, err := h.gatewayService.CreateGateway(&req)
	if err != nil {
		utils.LogError("Failed to create gateway configuration", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, config)
}

// ListGateways handles GET /api/v1/gateways
func (h *GatewayHandler) ListGateways(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "page must be an integer"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultLimit)))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", "limit must be an integer"))
		return
	}

	listResponse, err := h.gatewayService.ListGateways(page, limit)
	if err != nil {
		utils.LogError("Failed to list gateway configurations", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, listResponse)
}

// GetGateway handles GET /api/v1/gateways/:configId
func (h *GatewayHandler) GetGateway(c *gin.Context) {
	configID := c.Param("configId")

	config, err := h.gatewayService.GetGateway(configID)
	if err != nil {
		utils.LogError("Failed to get gateway configuration", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, config)
}

// UpdateGateway handles PUT /api/v1/gateways/:configId
func (h *GatewayHandler) UpdateGateway(c *gin.Context) {
	configID := c.Param("configId")

	var req dto.UpdateGatewayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", utils.FormatValidationError(err)))
		return
	}

	config, err := h.gatewayService.UpdateGateway(configID, &req)
	if err != nil {
		utils.LogError("Failed to update gateway configuration", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, config)
}

// DeleteGateway handles DELETE /api/v1/gateways/:configId
func (h *GatewayHandler) DeleteGateway(c *gin.Context) {
	configID := c.Param("configId")

	if err := h.gatewayService.DeleteGateway(configID); err != nil {
		utils.LogError("Failed to delete gateway configuration", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// ActivateGateway handles POST /api/v1/gateways/:configId/activate
func (h *GatewayHandler) ActivateGateway(c *gin.Context) {
	configID := c.Param("configId")

	config, err := h.gatewayService.ActivateGateway(configID)
	if err != nil {
		utils.LogError("Failed to activate gateway configuration", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, config)
}

// DeactivateGateway handles POST /api/v1/gateways/:configId/deactivate
func (h *GatewayHandler) DeactivateGateway(c *gin.Context) {
	configID := c.Param("configId")

	config, err := h.gatewayService.DeactivateGateway(configID)
	if err != nil {
		utils.LogError("Failed to deactivate gateway configuration", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, config)
}

// RegisterRoutes registers gateway configuration routes with the router
func (h *GatewayHandler) RegisterRoutes(r *gin.Engine) {
	gatewayGroup := r.Group("/api/v1/gateways")
	{
		gatewayGroup.POST("", h.CreateGateway)
		gatewayGroup.GET("", h.ListGateways)
		gatewayGroup.GET("/:configId", h.GetGateway)
		gatewayGroup.PUT("/:configId", h.UpdateGateway)
		gatewayGroup.DELETE("/:configId", h.DeleteGateway)
		gatewayGroup.POST("/:configId/activate", h.ActivateGateway)
		gatewayGroup.POST("/:configId/deactivate", h.DeactivateGateway)
	}
}
