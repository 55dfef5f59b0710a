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

package dto

import "github.com/jl91/aws-gateway-editor/internal/model"

// CreateGatewayRequest is the payload for creating a gateway configuration
type CreateGatewayRequest struct {
	Name           string                 `json:"name" binding:"required,min=1,max=255"`
	Version        string                 `json:"version" binding:"required,max=50"`
	Description    string                 `json:"description,omitempty"`
	OpenAPIVersion string                 `json:"openapiVersion,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// UpdateGatewayRequest is a partial update of a gateway configuration.
// Nil fields are left untouched.
type UpdateGatewayRequest struct {
	Name           *string                 `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Version        *string                 `json:"version,omitempty" binding:"omitempty,max=50"`
	Description    *string                 `json:"description,omitempty"`
	OpenAPIVersion *string                 `json:"openapiVersion,omitempty"`
	Metadata       *map[string]interface{} `json:"metadata,omitempty"`
}

// GatewayListResponse is the paginated listing envelope for configurations
type GatewayListResponse struct {
	Data  []*model.GatewayConfig `json:"data"`
	Total int                    `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
	Pages int                    `json:"pages"`
}
