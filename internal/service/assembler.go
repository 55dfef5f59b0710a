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

package service

import (
	"sort"
	"strings"

	"github.com/jl91/aws-gateway-editor/internal/constants"
	"github.com/jl91/aws-gateway-editor/internal/model"
)

// BuildOpenAPIDocument assembles a configuration and its endpoints into an
// OpenAPI document tree. It is a pure function: no I/O, deterministic for a
// given input. Endpoints must already be in ascending sequence order; the
// assembler preserves the order it is given.
func BuildOpenAPIDocument(config *model.GatewayConfig, endpoints []*model.GatewayEndpoint) map[string]interface{} {
	openapiVersion := config.OpenAPIVersion
	if openapiVersion == "" {
		openapiVersion = constants.DefaultOpenAPIVersion
	}

	info := map[string]interface{}{
		"title":   config.Name,
		"version": config.Version,
	}
	if config.Description != "" {
		info["description"] = config.Description
	}

	paths := map[string]interface{}{}
	for _, endpoint := range endpoints {
		pathItem, ok := paths[endpoint.Path].(map[string]interface{})
		if !ok {
			pathItem = map[string]interface{}{}
			paths[endpoint.Path] = pathItem
		}
		pathItem[strings.ToLower(endpoint.Method)] = buildOperation(endpoint)
	}

	doc := map[string]interface{}{
		"openapi": openapiVersion,
		"info":    info,
		"paths":   paths,
	}

	// Root-level OpenAPI fragments carried verbatim in configuration metadata
	for _, key := range []string{"servers", "security", "tags", "externalDocs"} {
		if value, ok := config.Metadata[key]; ok && value != nil {
			doc[key] = value
		}
	}

	return doc
}

// buildOperation converts one endpoint into an OpenAPI operation object
func buildOperation(endpoint *model.GatewayEndpoint) map[string]interface{} {
	operation := map[string]interface{}{}

	if endpoint.OperationID != "" {
		operation["operationId"] = endpoint.OperationID
	}
	if endpoint.Summary != "" {
		operation["summary"] = endpoint.Summary
	}
	if endpoint.Description != "" {
		operation["description"] = endpoint.Description
	}
	if len(endpoint.Tags) > 0 {
		operation["tags"] = endpoint.Tags
	}

	if parameters := buildParameters(endpoint); len(parameters) > 0 {
		operation["parameters"] = parameters
	}

	if endpoint.RequestBody != nil {
		operation["requestBody"] = endpoint.RequestBody
	}

	if endpoint.Responses != nil {
		operation["responses"] = endpoint.Responses
	} else {
		operation["responses"] = map[string]interface{}{
			"200": map[string]interface{}{"description": "Successful response"},
		}
	}

	if endpoint.Security != nil {
		operation["security"] = endpoint.Security
	}

	// Vendor extensions merge flat into the operation, winning on conflict
	for key, value := range endpoint.XExtensions {
		operation[key] = value
	}

	return operation
}

// buildParameters concatenates path, query, and header parameters, in that
// order. Each stored map entry regains the name and location the ingester
// stripped off.
func buildParameters(endpoint *model.GatewayEndpoint) []interface{} {
	var parameters []interface{}
	parameters = appendParameters(parameters, endpoint.PathParams, "path")
	parameters = appendParameters(parameters, endpoint.QueryParams, "query")
	parameters = appendParameters(parameters, endpoint.Headers, "header")
	return parameters
}

func appendParameters(parameters []interface{}, params map[string]interface{}, location string) []interface{} {
	for _, name := range sortedKeys(params) {
		parameter := map[string]interface{}{
			"name": name,
			"in":   location,
		}
		if attrs, ok := params[name].(map[string]interface{}); ok {
			for key, value := range attrs {
				parameter[key] = value
			}
		}
		// Path parameters are always required per the OpenAPI schema
		if location == "path" {
			if _, ok := parameter["required"]; !ok {
				parameter["required"] = true
			}
		}
		parameters = append(parameters, parameter)
	}
	return parameters
}

// sortedKeys makes parameter emission order deterministic across runs
func sortedKeys(m map[string]interface{}) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
