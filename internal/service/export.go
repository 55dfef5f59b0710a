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
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jl91/aws-gateway-editor/internal/constants"
	"github.com/jl91/aws-gateway-editor/internal/dto"
	"github.com/jl91/aws-gateway-editor/internal/model"
	"github.com/jl91/aws-gateway-editor/internal/repository"
	"github.com/jl91/aws-gateway-editor/internal/utils"

	"gopkg.in/yaml.v3"
)

// ExportService serializes assembled documents and memoizes them per
// (configuration, format) with a TTL. Expired entries are purged lazily when
// a lookup finds them; there is no background sweeper.
type ExportService struct {
	configRepo   repository.GatewayConfigRepository
	endpointRepo repository.GatewayEndpointRepository
	cacheRepo    repository.ExportCacheRepository
	cacheTTL     time.Duration
}

// NewExportService creates a new export service
func NewExportService(configRepo repository.GatewayConfigRepository,
	endpointRepo repository.GatewayEndpointRepository,
	cacheRepo repository.ExportCacheRepository, cacheTTL time.Duration) *ExportService {
	return &ExportService{
		configRepo:   configRepo,
		endpointRepo: endpointRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
	}
}

// ExportDocument returns the serialized OpenAPI document of a configuration
// in the requested format, serving from cache when a live entry exists
func (s *ExportService) ExportDocument(configID, format string) (*dto.ExportResult, error) {
	if format != constants.ExportFormatJSON && format != constants.ExportFormatYAML {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnsupportedExportFormat, format)
	}

	config, err := s.configRepo.GetByUUID(configID)
	if err != nil {
		return nil, fmt.Errorf("failed to query configuration: %w", err)
	}
	if config == nil {
		return nil, constants.ErrConfigNotFound
	}

	now := time.Now()

	entry, err := s.cacheRepo.GetLatest(configID, format)
	if err != nil {
		return nil, fmt.Errorf("failed to query export cache: %w", err)
	}
	if entry != nil {
		if now.Before(entry.ExpiresAt) {
			if err := s.cacheRepo.TouchAccess(entry.ID, now); err != nil {
				utils.LogError("failed to record export cache access", err)
			}
			return s.result(configID, format, entry.FileContent, true), nil
		}
		// Stale entry found: purge it and fall through to regeneration
		if err := s.cacheRepo.Delete(entry.ID); err != nil {
			utils.LogError("failed to purge expired export cache entry", err)
		}
	}

	endpoints, err := s.endpointRepo.ListByConfig(configID)
	if err != nil {
		return nil, fmt.Errorf("failed to query endpoints: %w", err)
	}

	content, err := serializeDocument(BuildOpenAPIDocument(config, endpoints), format)
	if err != nil {
		return nil, err
	}

	cacheEntry := &model.ExportCache{
		ConfigID:    configID,
		FileHash:    utils.HashContent(string(content)),
		FileFormat:  format,
		FileContent: content,
		FileSize:    int64(len(content)),
		GeneratedAt: now,
		ExpiresAt:   now.Add(s.cacheTTL),
	}
	if err := s.cacheRepo.Create(cacheEntry); err != nil {
		utils.LogError("failed to store export cache entry", err)
	}

	return s.result(configID, format, content, false), nil
}

// ExportStatus reports which formats currently have a live cache entry.
// Expired entries are not counted, so a true here means the next export in
// that format will be a cache hit.
func (s *ExportService) ExportStatus(configID string) (*dto.ExportStatusResponse, error) {
	config, err := s.configRepo.GetByUUID(configID)
	if err != nil {
		return nil, fmt.Errorf("failed to query configuration: %w", err)
	}
	if config == nil {
		return nil, constants.ErrConfigNotFound
	}

	entries, err := s.cacheRepo.ListByConfig(configID)
	if err != nil {
		return nil, fmt.Errorf("failed to query export cache: %w", err)
	}

	now := time.Now()
	seen := map[string]bool{}
	formats := []string{}
	for _, entry := range entries {
		if !now.Before(entry.ExpiresAt) || seen[entry.FileFormat] {
			continue
		}
		seen[entry.FileFormat] = true
		formats = append(formats, entry.FileFormat)
	}

	return &dto.ExportStatusResponse{
		Cached:  len(formats) > 0,
		Formats: formats,
	}, nil
}

func (s *ExportService) result(configID, format string, content []byte, fromCache bool) *dto.ExportResult {
	contentType := "application/json"
	extension := "json"
	if format == constants.ExportFormatYAML {
		contentType = "application/yaml"
		extension = "yaml"
	}
	return &dto.ExportResult{
		Content:     content,
		FileName:    fmt.Sprintf("openapi-%s.%s", configID, extension),
		Format:      format,
		ContentType: contentType,
		FromCache:   fromCache,
	}
}

// serializeDocument renders a document tree as indented JSON or YAML.
// encoding/json emits map keys in sorted order, so the JSON bytes for a given
// tree are stable; the YAML encoder walks the same marshaled structure.
func serializeDocument(document map[string]interface{}, format string) ([]byte, error) {
	if format == constants.ExportFormatJSON {
		content, err := json.MarshalIndent(document, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to serialize document as json: %w", err)
		}
		return content, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(document); err != nil {
		return nil, fmt.Errorf("failed to serialize document as yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to serialize document as yaml: %w", err)
	}
	return buf.Bytes(), nil
}
