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

// CreateEndpointRequest is the payload for adding an endpoint to a configuration
type CreateEndpointRequest struct {
	Method      string   `json:"method" binding:"required,oneof=GET POST PUT DELETE PATCH OPTIONS HEAD"`
	Path        string   `json:"path" binding:"required,max=500"`
	OperationID string   `json:"operationId,omitempty" binding:"omitempty,max=255"`
	Summary     string   `json:"summary,omitempty" binding:"omitempty,max=500"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	TargetURL   string   `json:"targetUrl,omitempty"`

	PathParams  map[string]interface{} `json:"pathParams,omitempty"`
	QueryParams map[string]interface{} `json:"queryParams,omitempty"`
	Headers     map[string]interface{} `json:"headers,omitempty"`
	RequestBody map[string]interface{} `json:"requestBody,omitempty"`
	Responses   map[string]interface{} `json:"responses,omitempty"`
	Security    []interface{}          `json:"security,omitempty"`

	Authentication    map[string]interface{} `json:"authentication,omitempty"`
	RateLimiting      map[string]interface{} `json:"rateLimiting,omitempty"`
	CacheConfig       map[string]interface{} `json:"cacheConfig,omitempty"`
	CORSConfig        map[string]interface{} `json:"corsConfig,omitempty"`
	IntegrationType   string                 `json:"integrationType,omitempty" binding:"omitempty,max=50"`
	IntegrationConfig map[string]interface{} `json:"integrationConfig,omitempty"`

	XExtensions map[string]interface{} `json:"xExtensions,omitempty"`
}

// UpdateEndpointRequest is a partial update of an endpoint. Nil fields are
// left untouched.
type UpdateEndpointRequest struct {
	Method      *string   `json:"method,omitempty" binding:"omitempty,oneof=GET POST PUT DELETE PATCH OPTIONS HEAD"`
	Path        *string   `json:"path,omitempty" binding:"omitempty,max=500"`
	OperationID *string   `json:"operationId,omitempty" binding:"omitempty,max=255"`
	Summary     *string   `json:"summary,omitempty" binding:"omitempty,max=500"`
	Description *string   `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	TargetURL   *string   `json:"targetUrl,omitempty"`

	PathParams  *map[string]interface{} `json:"pathParams,omitempty"`
	QueryParams *map[string]interface{} `json:"queryParams,omitempty"`
	Headers     *map[string]interface{} `json:"headers,omitempty"`
	RequestBody *map[string]interface{} `json:"requestBody,omitempty"`
	Responses   *map[string]interface{} `json:"responses,omitempty"`
	Security    *[]interface{}          `json:"security,omitempty"`

	Authentication    *map[string]interface{} `json:"authentication,omitempty"`
	RateLimiting      *map[string]interface{} `json:"rateLimiting,omitempty"`
	CacheConfig       *map[string]interface{} `json:"cacheConfig,omitempty"`
	CORSConfig        *map[string]interface{} `json:"corsConfig,omitempty"`
	IntegrationType   *string                 `json:"integrationType,omitempty" binding:"omitempty,max=50"`
	IntegrationConfig *map[string]interface{} `json:"integrationConfig,omitempty"`

	XExtensions *map[string]interface{} `json:"xExtensions,omitempty"`
}

// ReorderEndpointsRequest carries the new relative order for a subset of a
// configuration's endpoints
type ReorderEndpointsRequest struct {
	EndpointIDs []string `json:"endpointIds" binding:"required,min=1,dive,required"`
}
