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
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jl91/aws-gateway-editor/internal/constants"
	"github.com/jl91/aws-gateway-editor/internal/dto"
	"github.com/jl91/aws-gateway-editor/internal/model"
	"github.com/jl91/aws-gateway-editor/internal/repository"
	"github.com/jl91/aws-gateway-editor/internal/utils"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-openapi/loads"
	"gopkg.in/yaml.v3"
)

// ImportService ingests uploaded OpenAPI documents and decomposes them into a
// configuration plus endpoint rows
type ImportService struct {
	configRepo   repository.GatewayConfigRepository
	endpointRepo repository.GatewayEndpointRepository
	historyRepo  repository.ImportHistoryRepository
	events       EventPublisher
}

// NewImportService creates a new import service
func NewImportService(configRepo repository.GatewayConfigRepository,
	endpointRepo repository.GatewayEndpointRepository,
	historyRepo repository.ImportHistoryRepository, events EventPublisher) *ImportService {
	return &ImportService{
		configRepo:   configRepo,
		endpointRepo: endpointRepo,
		historyRepo:  historyRepo,
		events:       events,
	}
}

// ImportDocument runs the full import pipeline against an uploaded file that
// has been spooled to filePath: classify, parse, validate, dedup by content
// hash, decompose into endpoints, persist, and record the outcome in the
// import history. The spooled file is removed afterward on every path;
// failure to remove it is logged, never reported.
func (s *ImportService) ImportDocument(filePath, fileName string, fileSize int64, importedBy string) (*dto.ImportResult, error) {
	started := time.Now()

	history := &model.ImportHistory{
		FileName:     fileName,
		FileSize:     fileSize,
		FileType:     classifyFormat(fileName),
		ImportStatus: constants.ImportStatusProcessing,
		ImportedBy:   importedBy,
	}
	if err := s.historyRepo.Create(history); err != nil {
		utils.LogError("failed to create import history record", err)
	}

	defer func() {
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			utils.LogError("failed to remove uploaded file "+filePath, err)
		}
	}()

	result, err := s.runImport(filePath, fileName)

	history.ProcessingTimeMs = time.Since(started).Milliseconds()
	if err != nil {
		history.ImportStatus = constants.ImportStatusFailed
		history.ErrorDetails = err.Error()
	} else {
		history.ImportStatus = constants.ImportStatusSuccess
		history.ConfigID = result.ConfigID
		history.EndpointsCount = result.EndpointsCount
	}
	if updateErr := s.historyRepo.Update(history); updateErr != nil {
		utils.LogError("failed to update import history record", updateErr)
	}

	if err != nil {
		return nil, err
	}

	result.ProcessingTimeMs = history.ProcessingTimeMs
	publish(s.events, EventGatewayImported, result.ConfigID)
	return result, nil
}

// ListHistory returns the most recent import attempts, newest first
func (s *ImportService) ListHistory(limit int) ([]*model.ImportHistory, error) {
	if limit < 1 {
		limit = constants.DefaultLimit
	}
	records, err := s.historyRepo.List(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list import history: %w", err)
	}
	if records == nil {
		records = []*model.ImportHistory{}
	}
	return records, nil
}

func (s *ImportService) runImport(filePath, fileName string) (*dto.ImportResult, error) {
	document, err := parseUpload(filePath, fileName)
	if err != nil {
		return nil, err
	}

	if err := validateOpenAPIDocument(document); err != nil {
		return nil, err
	}

	fileHash, err := utils.HashJSON(document)
	if err != nil {
		return nil, err
	}

	existing, err := s.configRepo.GetByFileHash(fileHash)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate import: %w", err)
	}
	if existing != nil {
		// Same document imported before: reuse the configuration instead of
		// creating a twin, and leave its endpoints untouched.
		count, err := s.endpointRepo.CountByConfig(existing.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count endpoints: %w", err)
		}
		return &dto.ImportResult{
			Success:        true,
			ConfigID:       existing.ID,
			EndpointsCount: count,
			Reused:         true,
		}, nil
	}

	config := configFromDocument(document, fileHash)
	if err := s.configRepo.Create(config); err != nil {
		return nil, fmt.Errorf("failed to persist configuration: %w", err)
	}

	endpoints := decomposeEndpoints(config.ID, document)
	if err := s.endpointRepo.CreateBatch(endpoints); err != nil {
		return nil, fmt.Errorf("failed to persist endpoints: %w", err)
	}

	return &dto.ImportResult{
		Success:        true,
		ConfigID:       config.ID,
		EndpointsCount: len(endpoints),
	}, nil
}

// classifyFormat maps a filename to the parse format it implies
func classifyFormat(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".zip":
		return "zip"
	default:
		return strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	}
}

// parseUpload reads and parses the uploaded file into a document tree
func parseUpload(filePath, fileName string) (map[string]interface{}, error) {
	switch classifyFormat(fileName) {
	case "yaml":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read uploaded file: %w", err)
		}
		return parseDocument(data, "yaml")
	case "json":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read uploaded file: %w", err)
		}
		return parseDocument(data, "json")
	case "zip":
		return parseZipUpload(filePath)
	default:
		return nil, fmt.Errorf("%w: %s", constants.ErrUnsupportedImportFormat, filepath.Ext(fileName))
	}
}

// parseZipUpload scans the archive for the first entry that looks like an
// OpenAPI document and parses it per its own extension
func parseZipUpload(filePath string) (map[string]interface{}, error) {
	reader, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable zip archive", constants.ErrUnsupportedImportFormat)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		name := strings.ToLower(file.Name)
		isSpecName := strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") ||
			strings.HasSuffix(name, ".json") ||
			strings.Contains(name, "openapi") || strings.Contains(name, "swagger")
		if !isSpecName {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open zip entry %s: %w", file.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read zip entry %s: %w", file.Name, err)
		}

		format := "yaml"
		if strings.HasSuffix(name, ".json") {
			format = "json"
		}
		return parseDocument(data, format)
	}

	return nil, constants.ErrNoSpecInArchive
}

func parseDocument(data []byte, format string) (map[string]interface{}, error) {
	document := map[string]interface{}{}
	var err error
	if format == "json" {
		err = json.Unmarshal(data, &document)
	} else {
		err = yaml.Unmarshal(data, &document)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constants.ErrInvalidOpenAPIDocument, err)
	}
	return document, nil
}

// validateOpenAPIDocument checks structural correctness against the declared
// specification version: kin-openapi for 3.x, go-openapi for Swagger 2.0
func validateOpenAPIDocument(document map[string]interface{}) error {
	data, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("%w: %v", constants.ErrInvalidOpenAPIDocument, err)
	}

	if _, isSwagger := document["swagger"]; isSwagger {
		specDoc, err := loads.Analyzed(json.RawMessage(data), "2.0")
		if err != nil {
			return fmt.Errorf("%w: %v", constants.ErrInvalidOpenAPIDocument, err)
		}
		if specDoc.Spec() == nil {
			return fmt.Errorf("%w: empty swagger document", constants.ErrInvalidOpenAPIDocument)
		}
		return nil
	}

	if _, hasOpenAPI := document["openapi"]; !hasOpenAPI {
		return fmt.Errorf("%w: missing openapi version field", constants.ErrInvalidOpenAPIDocument)
	}

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("%w: %v", constants.ErrInvalidOpenAPIDocument, err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return fmt.Errorf("%w: %v", constants.ErrInvalidOpenAPIDocument, err)
	}
	return nil
}

// configFromDocument lifts the configuration fields off the document root
func configFromDocument(document map[string]interface{}, fileHash string) *model.GatewayConfig {
	name := "Imported API"
	version := "1.0.0"
	description := ""

	if info, ok := document["info"].(map[string]interface{}); ok {
		if title, ok := info["title"].(string); ok && title != "" {
			name = title
		}
		if v, ok := info["version"].(string); ok && v != "" {
			version = v
		}
		if d, ok := info["description"].(string); ok {
			description = d
		}
	}

	openapiVersion := constants.DefaultOpenAPIVersion
	if v, ok := document["openapi"].(string); ok && v != "" {
		openapiVersion = v
	} else if v, ok := document["swagger"].(string); ok && v != "" {
		openapiVersion = v
	}

	var metadata map[string]interface{}
	for _, key := range []string{"servers", "security", "tags", "externalDocs"} {
		if value, ok := document[key]; ok && value != nil {
			if metadata == nil {
				metadata = map[string]interface{}{}
			}
			metadata[key] = value
		}
	}

	return &model.GatewayConfig{
		Name:           name,
		Version:        version,
		Description:    description,
		FileHash:       fileHash,
		OpenAPIVersion: openapiVersion,
		Metadata:       metadata,
	}
}

// decomposeEndpoints splits the document's paths into endpoint rows. Paths
// are walked in sorted order and methods in the canonical method order, so
// the assigned sequence values (10, 20, 30, ...) are stable across imports
// of the same document.
func decomposeEndpoints(configID string, document map[string]interface{}) []*model.GatewayEndpoint {
	paths, ok := document["paths"].(map[string]interface{})
	if !ok {
		return nil
	}

	pathKeys := make([]string, 0, len(paths))
	for path := range paths {
		pathKeys = append(pathKeys, path)
	}
	sort.Strings(pathKeys)

	var endpoints []*model.GatewayEndpoint
	sequence := 0
	for _, path := range pathKeys {
		pathItem, ok := paths[path].(map[string]interface{})
		if !ok {
			continue
		}
		for _, method := range constants.HTTPMethods {
			operation, ok := pathItem[method].(map[string]interface{})
			if !ok {
				continue
			}
			sequence += constants.SequenceStep
			endpoints = append(endpoints, endpointFromOperation(configID, path, method, sequence, operation))
		}
	}

	return endpoints
}

// endpointFromOperation converts one OpenAPI operation into an endpoint row
func endpointFromOperation(configID, path, method string, sequence int, operation map[string]interface{}) *model.GatewayEndpoint {
	endpoint := &model.GatewayEndpoint{
		ConfigID:      configID,
		SequenceOrder: sequence,
		Method:        method,
		Path:          path,
	}

	if v, ok := operation["operationId"].(string); ok {
		endpoint.OperationID = v
	}
	if v, ok := operation["summary"].(string); ok {
		endpoint.Summary = v
	}
	if v, ok := operation["description"].(string); ok {
		endpoint.Description = v
	}
	if tags, ok := operation["tags"].([]interface{}); ok {
		for _, tag := range tags {
			if s, ok := tag.(string); ok {
				endpoint.Tags = append(endpoint.Tags, s)
			}
		}
	}
	if v, ok := operation["requestBody"].(map[string]interface{}); ok {
		endpoint.RequestBody = v
	}
	if v, ok := operation["responses"].(map[string]interface{}); ok {
		endpoint.Responses = v
	}
	if v, ok := operation["security"].([]interface{}); ok {
		endpoint.Security = v
	}

	endpoint.PathParams, endpoint.QueryParams, endpoint.Headers = splitParameters(operation["parameters"])

	for key, value := range operation {
		if strings.HasPrefix(key, "x-") {
			if endpoint.XExtensions == nil {
				endpoint.XExtensions = map[string]interface{}{}
			}
			endpoint.XExtensions[key] = value
		}
	}

	return endpoint
}

// splitParameters regroups an operation's parameters array into per-location
// maps keyed by parameter name. The name and in keys are dropped; everything
// else (description, required, schema, example, ...) is retained, so the
// assembler can rebuild the original entries.
func splitParameters(raw interface{}) (pathParams, queryParams, headers map[string]interface{}) {
	parameters, ok := raw.([]interface{})
	if !ok {
		return nil, nil, nil
	}

	for _, entry := range parameters {
		parameter, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := parameter["name"].(string)
		location, _ := parameter["in"].(string)
		if name == "" {
			continue
		}

		attrs := map[string]interface{}{}
		for key, value := range parameter {
			if key == "name" || key == "in" {
				continue
			}
			attrs[key] = value
		}

		switch location {
		case "path":
			if pathParams == nil {
				pathParams = map[string]interface{}{}
			}
			pathParams[name] = attrs
		case "query":
			if queryParams == nil {
				queryParams = map[string]interface{}{}
			}
			queryParams[name] = attrs
		case "header":
			if headers == nil {
				headers = map[string]interface{}{}
			}
			headers[name] = attrs
		}
	}

	return pathParams, queryParams, headers
}
