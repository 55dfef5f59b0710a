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
	"fmt"

	"github.com/jl91/aws-gateway-editor/internal/constants"
	"github.com/jl91/aws-gateway-editor/internal/dto"
	"github.com/jl91/aws-gateway-editor/internal/model"
	"github.com/jl91/aws-gateway-editor/internal/repository"
	"github.com/jl91/aws-gateway-editor/internal/utils"
)

// GatewayService handles gateway configuration business logic
type GatewayService struct {
	configRepo   repository.GatewayConfigRepository
	endpointRepo repository.GatewayEndpointRepository
	events       EventPublisher
}

// NewGatewayService creates a new gateway configuration service
func NewGatewayService(configRepo repository.GatewayConfigRepository,
	endpointRepo repository.GatewayEndpointRepository, events EventPublisher) *GatewayService {
	return &GatewayService{
		configRepo:   configRepo,
		endpointRepo: endpointRepo,
		events:       events,
	}
}

// CreateGateway creates a new gateway configuration. The content hash of the
// request is checked against existing configurations first; a match is
// rejected rather than silently creating a twin.
func (s *GatewayService) CreateGateway(req *dto.CreateGatewayRequest) (*model.GatewayConfig, error) {
	openapiVersion := req.OpenAPIVersion
	if openapiVersion == "" {
		openapiVersion = constants.DefaultOpenAPIVersion
	}
	if !isSupportedOpenAPIVersion(openapiVersion) {
		return nil, fmt.Errorf("%w: %s", constants.ErrInvalidOpenAPIVersion, openapiVersion)
	}

	fileHash, err := utils.ConfigContentHash(req.Name, req.Version, req.Description, openapiVersion, req.Metadata)
	if err != nil {
		return nil, err
	}

	existing, err := s.configRepo.GetByFileHash(fileHash)
	if err != nil {
		return nil, fmt.Errorf("failed to check configuration uniqueness: %w", err)
	}
	if existing != nil {
		return nil, constants.ErrDuplicateConfigContent
	}

	config := &model.GatewayConfig{
		Name:           req.Name,
		Version:        req.Version,
		Description:    req.Description,
		FileHash:       fileHash,
		OpenAPIVersion: openapiVersion,
		Metadata:       req.Metadata,
	}

	if err := s.configRepo.Create(config); err != nil {
		return nil, fmt.Errorf("failed to create configuration: %w", err)
	}

	publish(s.events, EventGatewayCreated, config.ID)
	return config, nil
}

// GetGateway retrieves a configuration with its endpoints in sequence order
func (s *GatewayService) GetGateway(configID string) (*model.GatewayConfig, error) {
	config, err := s.configRepo.GetByUUID(configID)
	if err != nil {
		return nil, fmt.Errorf("failed to query configuration: %w", err)
	}
	if config == nil {
		return nil, constants.ErrConfigNotFound
	}

	endpoints, err := s.endpointRepo.ListByConfig(configID)
	if err != nil {
		return nil, fmt.Errorf("failed to query endpoints: %w", err)
	}
	config.Endpoints = endpoints

	return config, nil
}

// ListGateways retrieves a page of configurations, newest first
func (s *GatewayService) ListGateways(page, limit int) (*dto.GatewayListResponse, error) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit < 1 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}

	total, err := s.configRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count configurations: %w", err)
	}

	configs, err := s.configRepo.List(limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list configurations: %w", err)
	}
	if configs == nil {
		configs = []*model.GatewayConfig{}
	}

	pages := (total + limit - 1) / limit

	return &dto.GatewayListResponse{
		Data:  configs,
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}, nil
}

// UpdateGateway applies a partial update and recomputes the content hash when
// any hashed field changed
func (s *GatewayService) UpdateGateway(configID string, req *dto.UpdateGatewayRequest) (*model.GatewayConfig, error) {
	config, err := s.configRepo.GetByUUID(configID)
	if err != nil {
		return nil, fmt.Errorf("failed to query configuration: %w", err)
	}
	if config == nil {
		return nil, constants.ErrConfigNotFound
	}

	if req.Name != nil {
		config.Name = *req.Name
	}
	if req.Version != nil {
		config.Version = *req.Version
	}
	if req.Description != nil {
		config.Description = *req.Description
	}
	if req.OpenAPIVersion != nil {
		if !isSupportedOpenAPIVersion(*req.OpenAPIVersion) {
			return nil, fmt.Errorf("%w: %s", constants.ErrInvalidOpenAPIVersion, *req.OpenAPIVersion)
		}
		config.OpenAPIVersion = *req.OpenAPIVersion
	}
	if req.Metadata != nil {
		config.Metadata = *req.Metadata
	}

	fileHash, err := utils.ConfigContentHash(config.Name, config.Version, config.Description,
		config.OpenAPIVersion, config.Metadata)
	if err != nil {
		return nil, err
	}

	if fileHash != config.FileHash {
		existing, err := s.configRepo.GetByFileHash(fileHash)
		if err != nil {
			return nil, fmt.Errorf("failed to check configuration uniqueness: %w", err)
		}
		if existing != nil && existing.ID != config.ID {
			return nil, constants.ErrDuplicateConfigContent
		}
		config.FileHash = fileHash
	}

	if err := s.configRepo.Update(config); err != nil {
		return nil, fmt.Errorf("failed to update configuration: %w", err)
	}

	publish(s.events, EventGatewayUpdated, config.ID)
	return config, nil
}

// DeleteGateway soft-deletes a configuration. Its endpoints stay in place but
// become unreachable because every endpoint operation resolves the
// configuration first.
func (s *GatewayService) DeleteGateway(configID string) error {
	config, err := s.configRepo.GetByUUID(configID)
	if err != nil {
		return fmt.Errorf("failed to query configuration: %w", err)
	}
	if config == nil {
		return constants.ErrConfigNotFound
	}

	if err := s.configRepo.SoftDelete(configID); err != nil {
		return fmt.Errorf("failed to delete configuration: %w", err)
	}

	publish(s.events, EventGatewayDeleted, configID)
	return nil
}

// ActivateGateway makes the configuration the single active one. Activation
// and the demotion of the previous holder happen in one statement, so no
// reader ever observes two active configurations.
func (s *GatewayService) ActivateGateway(configID string) (*model.GatewayConfig, error) {
	config, err := s.configRepo.GetByUUID(configID)
	if err != nil {
		return nil, fmt.Errorf("failed to query configuration: %w", err)
	}
	if config == nil {
		return nil, constants.ErrConfigNotFound
	}

	if err := s.configRepo.ActivateExclusive(configID); err != nil {
		return nil, fmt.Errorf("failed to activate configuration: %w", err)
	}
	config.IsActive = true

	publish(s.events, EventGatewayActivated, configID)
	return config, nil
}

// DeactivateGateway clears the active flag of a configuration. Deactivating
// an already inactive configuration is a no-op, not an error.
func (s *GatewayService) DeactivateGateway(configID string) (*model.GatewayConfig, error) {
	config, err := s.configRepo.GetByUUID(configID)
	if err != nil {
		return nil, fmt.Errorf("failed to query configuration: %w", err)
	}
	if config == nil {
		return nil, constants.ErrConfigNotFound
	}

	if err := s.configRepo.SetActive(configID, false); err != nil {
		return nil, fmt.Errorf("failed to deactivate configuration: %w", err)
	}
	config.IsActive = false

	publish(s.events, EventGatewayDeactivated, configID)
	return config, nil
}

func isSupportedOpenAPIVersion(version string) bool {
	for _, v := range constants.SupportedOpenAPIVersions {
		if v == version {
			return true
		}
	}
	return false
}
