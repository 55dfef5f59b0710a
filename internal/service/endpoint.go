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
	"strings"

	"github.com/jl91/aws-gateway-editor/internal/constants"
	"github.com/jl91/aws-gateway-editor/internal/dto"
	"github.com/jl91/aws-gateway-editor/internal/model"
	"github.com/jl91/aws-gateway-editor/internal/repository"
)

// EndpointService handles endpoint business logic within a configuration
type EndpointService struct {
	configRepo   repository.GatewayConfigRepository
	endpointRepo repository.GatewayEndpointRepository
	events       EventPublisher
}

// NewEndpointService creates a new endpoint service
func NewEndpointService(configRepo repository.GatewayConfigRepository,
	endpointRepo repository.GatewayEndpointRepository, events EventPublisher) *EndpointService {
	return &EndpointService{
		configRepo:   configRepo,
		endpointRepo: endpointRepo,
		events:       events,
	}
}

// AddEndpoint appends an endpoint to a configuration. The new endpoint lands
// at the end of the sequence: highest existing sequence_order plus the step.
func (s *EndpointService) AddEndpoint(configID string, req *dto.CreateEndpointRequest) (*model.GatewayEndpoint, error) {
	if err := s.requireConfig(configID); err != nil {
		return nil, err
	}

	method := strings.ToLower(req.Method)

	existing, err := s.endpointRepo.GetByMethodAndPath(configID, method, req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to check endpoint uniqueness: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s %s", constants.ErrDuplicateEndpoint, strings.ToUpper(method), req.Path)
	}

	maxOrder, err := s.endpointRepo.MaxSequenceOrder(configID)
	if err != nil {
		return nil, fmt.Errorf("failed to determine sequence order: %w", err)
	}

	endpoint := &model.GatewayEndpoint{
		ConfigID:          configID,
		SequenceOrder:     maxOrder + constants.SequenceStep,
		Method:            method,
		Path:              req.Path,
		OperationID:       req.OperationID,
		Summary:           req.Summary,
		Description:       req.Description,
		Tags:              req.Tags,
		TargetURL:         req.TargetURL,
		PathParams:        req.PathParams,
		QueryParams:       req.QueryParams,
		Headers:           req.Headers,
		RequestBody:       req.RequestBody,
		Responses:         req.Responses,
		Security:          req.Security,
		Authentication:    req.Authentication,
		RateLimiting:      req.RateLimiting,
		CacheConfig:       req.CacheConfig,
		CORSConfig:        req.CORSConfig,
		IntegrationType:   req.IntegrationType,
		IntegrationConfig: req.IntegrationConfig,
		XExtensions:       req.XExtensions,
	}

	if err := s.endpointRepo.Create(endpoint); err != nil {
		return nil, fmt.Errorf("failed to create endpoint: %w", err)
	}

	publish(s.events, EventEndpointCreated, configID)
	return endpoint, nil
}

// GetEndpoint retrieves one endpoint of a configuration
func (s *EndpointService) GetEndpoint(configID, endpointID string) (*model.GatewayEndpoint, error) {
	if err := s.requireConfig(configID); err != nil {
		return nil, err
	}

	endpoint, err := s.endpointRepo.GetByUUID(configID, endpointID)
	if err != nil {
		return nil, fmt.Errorf("failed to query endpoint: %w", err)
	}
	if endpoint == nil {
		return nil, constants.ErrEndpointNotFound
	}
	return endpoint, nil
}

// ListEndpoints retrieves a configuration's endpoints in sequence order
func (s *EndpointService) ListEndpoints(configID string) ([]*model.GatewayEndpoint, error) {
	if err := s.requireConfig(configID); err != nil {
		return nil, err
	}

	endpoints, err := s.endpointRepo.ListByConfig(configID)
	if err != nil {
		return nil, fmt.Errorf("failed to list endpoints: %w", err)
	}
	if endpoints == nil {
		endpoints = []*model.GatewayEndpoint{}
	}
	return endpoints, nil
}

// UpdateEndpoint applies a partial update. Changing method or path re-checks
// uniqueness against the configuration's other live endpoints.
func (s *EndpointService) UpdateEndpoint(configID, endpointID string, req *dto.UpdateEndpointRequest) (*model.GatewayEndpoint, error) {
	endpoint, err := s.GetEndpoint(configID, endpointID)
	if err != nil {
		return nil, err
	}

	method := endpoint.Method
	path := endpoint.Path
	if req.Method != nil {
		method = strings.ToLower(*req.Method)
	}
	if req.Path != nil {
		path = *req.Path
	}

	if method != endpoint.Method || path != endpoint.Path {
		existing, err := s.endpointRepo.GetByMethodAndPath(configID, method, path)
		if err != nil {
			return nil, fmt.Errorf("failed to check endpoint uniqueness: %w", err)
		}
		if existing != nil && existing.ID != endpoint.ID {
			return nil, fmt.Errorf("%w: %s %s", constants.ErrDuplicateEndpoint, strings.ToUpper(method), path)
		}
	}

	endpoint.Method = method
	endpoint.Path = path
	if req.OperationID != nil {
		endpoint.OperationID = *req.OperationID
	}
	if req.Summary != nil {
		endpoint.Summary = *req.Summary
	}
	if req.Description != nil {
		endpoint.Description = *req.Description
	}
	if req.Tags != nil {
		endpoint.Tags = *req.Tags
	}
	if req.TargetURL != nil {
		endpoint.TargetURL = *req.TargetURL
	}
	if req.PathParams != nil {
		endpoint.PathParams = *req.PathParams
	}
	if req.QueryParams != nil {
		endpoint.QueryParams = *req.QueryParams
	}
	if req.Headers != nil {
		endpoint.Headers = *req.Headers
	}
	if req.RequestBody != nil {
		endpoint.RequestBody = *req.RequestBody
	}
	if req.Responses != nil {
		endpoint.Responses = *req.Responses
	}
	if req.Security != nil {
		endpoint.Security = *req.Security
	}
	if req.Authentication != nil {
		endpoint.Authentication = *req.Authentication
	}
	if req.RateLimiting != nil {
		endpoint.RateLimiting = *req.RateLimiting
	}
	if req.CacheConfig != nil {
		endpoint.CacheConfig = *req.CacheConfig
	}
	if req.CORSConfig != nil {
		endpoint.CORSConfig = *req.CORSConfig
	}
	if req.IntegrationType != nil {
		endpoint.IntegrationType = *req.IntegrationType
	}
	if req.IntegrationConfig != nil {
		endpoint.IntegrationConfig = *req.IntegrationConfig
	}
	if req.XExtensions != nil {
		endpoint.XExtensions = *req.XExtensions
	}

	if err := s.endpointRepo.Update(endpoint); err != nil {
		return nil, fmt.Errorf("failed to update endpoint: %w", err)
	}

	publish(s.events, EventEndpointUpdated, configID)
	return endpoint, nil
}

// DeleteEndpoint soft-deletes one endpoint. Remaining endpoints keep their
// sequence values; the gaps are harmless because only relative order matters.
func (s *EndpointService) DeleteEndpoint(configID, endpointID string) error {
	if _, err := s.GetEndpoint(configID, endpointID); err != nil {
		return err
	}

	if err := s.endpointRepo.SoftDelete(configID, endpointID); err != nil {
		return fmt.Errorf("failed to delete endpoint: %w", err)
	}

	publish(s.events, EventEndpointDeleted, configID)
	return nil
}

// ReorderEndpoints renumbers the listed endpoints to (position+1)*10 in list
// order. Ids that do not belong to the configuration's live endpoints reject
// the whole request.
func (s *EndpointService) ReorderEndpoints(configID string, req *dto.ReorderEndpointsRequest) ([]*model.GatewayEndpoint, error) {
	if err := s.requireConfig(configID); err != nil {
		return nil, err
	}

	if err := s.endpointRepo.ReorderSequence(configID, req.EndpointIDs); err != nil {
		return nil, err
	}

	endpoints, err := s.endpointRepo.ListByConfig(configID)
	if err != nil {
		return nil, fmt.Errorf("failed to list endpoints: %w", err)
	}

	publish(s.events, EventEndpointsReordered, configID)
	return endpoints, nil
}

func (s *EndpointService) requireConfig(configID string) error {
	config, err := s.configRepo.GetByUUID(configID)
	if err != nil {
		return fmt.Errorf("failed to query configuration: %w", err)
	}
	if config == nil {
		return constants.ErrConfigNotFound
	}
	return nil
}
