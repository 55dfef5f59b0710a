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

	"github.com/jl91/aws-gateway-editor/internal/dto"
	"github.com/jl91/aws-gateway-editor/internal/service"
	"github.com/jl91/aws-gateway-editor/internal/utils"

	"github.com/gin-gonic/gin"
)

// EndpointHandler handles HTTP requests for endpoint operations
type EndpointHandler struct {
	endpointService *service.EndpointService
}

// NewEndpointHandler creates a new endpoint handler
func NewEndpointHandler(endpointService *service.EndpointService) *EndpointHandler {
	return &EndpointHandler{
		endpointService: endpointService,
	}
}

// CreateEndpoint handles POST /api/v1/gateways/:configId/endpoints
func (h *EndpointHandler) CreateEndpoint(c *gin.Context) {
	configID := c.Param("configId")

	var req dto.CreateEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", utils.FormatValidationError(err)))
		return
	}

	endpoint, err := h.endpointService.AddEndpoint(configID, &req)
	if err != nil {
		utils.LogError("Failed to create endpoint", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, endpoint)
}

// ListEndpoints handles GET /api/v1/gateways/:configId/endpoints
func (h *EndpointHandler) ListEndpoints(c *gin.Context) {
	configID := c.Param("configId")

	endpoints, err := h.endpointService.ListEndpoints(configID)
	if err != nil {
		utils.LogError("Failed to list endpoints", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, endpoints)
}

// GetEndpoint handles GET /api/v1/gateways/:configId/endpoints/:endpointId
func (h *EndpointHandler) GetEndpoint(c *gin.Context) {
	configID := c.Param("configId")
	endpointID := c.Param("endpointId")

	endpoint, err := h.endpointService.GetEndpoint(configID, endpointID)
	if err != nil {
		utils.LogError("Failed to get endpoint", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, endpoint)
}

// UpdateEndpoint handles PUT /api/v1/gateways/:configId/endpoints/:endpointId
func (h *EndpointHandler) UpdateEndpoint(c *gin.Context) {
	configID := c.Param("configId")
	endpointID := c.Param("endpointId")

	var req dto.UpdateEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", utils.FormatValidationError(err)))
		return
	}

	endpoint, err := h.endpointService.UpdateEndpoint(configID, endpointID, &req)
	if err != nil {
		utils.LogError("Failed to update endpoint", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, endpoint)
}

// DeleteEndpoint handles DELETE /api/v1/gateways/:configId/endpoints/:endpointId
func (h *EndpointHandler) DeleteEndpoint(c *gin.Context) {
	configID := c.Param("configId")
	endpointID := c.Param("endpointId")

	if err := h.endpointService.DeleteEndpoint(configID, endpointID); err != nil {
		utils.LogError("Failed to delete endpoint", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// ReorderEndpoints handles PUT /api/v1/gateways/:configId/endpoints/reorder
func (h *EndpointHandler) ReorderEndpoints(c *gin.Context) {
	configID := c.Param("configId")

	var req dto.ReorderEndpointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(400, "Bad Request", utils.FormatValidationError(err)))
		return
	}

	endpoints, err := h.endpointService.ReorderEndpoints(configID, &req)
	if err != nil {
		utils.LogError("Failed to reorder endpoints", err)
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, endpoints)
}

// RegisterRoutes registers endpoint routes with the router
func (h *EndpointHandler) RegisterRoutes(r *gin.Engine) {
	endpointGroup := r.Group("/api/v1/gateways/:configId/endpoints")
	{
		endpointGroup.POST("", h.CreateEndpoint)
		endpointGroup.GET("", h.ListEndpoints)
		// reorder is registered before the parameterized routes so gin does
		// not treat "reorder" as an endpoint id
		endpointGroup.PUT("/reorder", h.ReorderEndpoints)
		endpointGroup.GET("/:endpointId", h.GetEndpoint)
		endpointGroup.PUT("/:endpointId", h.UpdateEndpoint)
		endpointGroup.DELETE("/:endpointId", h.DeleteEndpoint)
	}
}
