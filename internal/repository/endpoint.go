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

package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jl91/aws-gateway-editor/internal/constants"
	"github.com/jl91/aws-gateway-editor/internal/database"
	"github.com/jl91/aws-gateway-editor/internal/model"

	"github.com/google/uuid"
)

// GatewayEndpointRepo implements GatewayEndpointRepository
type GatewayEndpointRepo struct {
	db *database.DB
}

// NewGatewayEndpointRepo creates a new endpoint repository
func NewGatewayEndpointRepo(db *database.DB) GatewayEndpointRepository {
	return &GatewayEndpointRepo{db: db}
}

const endpointColumns = `uuid, config_uuid, sequence_order, method, path, operation_id, summary,
	description, tags, target_url, path_params, query_params, headers, request_body, responses,
	security, authentication, rate_limiting, cache_config, cors_config, integration_type,
	integration_config, x_extensions, created_at, updated_at`

const endpointInsert = `
	INSERT INTO gateway_endpoints (uuid, config_uuid, sequence_order, method, path, operation_id,
		summary, description, tags, target_url, path_params, query_params, headers, request_body,
		responses, security, authentication, rate_limiting, cache_config, cors_config,
		integration_type, integration_config, x_extensions, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Create inserts a single endpoint
func (r *GatewayEndpointRepo) Create(endpoint *model.GatewayEndpoint) error {
	endpoint.ID = uuid.New().String()
	endpoint.CreatedAt = time.Now()
	endpoint.UpdatedAt = time.Now()

	args, err := endpointInsertArgs(endpoint)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(r.db.Rebind(endpointInsert), args...)
	return err
}

// CreateBatch inserts a set of endpoints inside one transaction. Used by the
// import pipeline, which persists a whole document's endpoints at once.
func (r *GatewayEndpointRepo) CreateBatch(endpoints []*model.GatewayEndpoint) error {
	if len(endpoints) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, endpoint := range endpoints {
		endpoint.ID = uuid.New().String()
		endpoint.CreatedAt = time.Now()
		endpoint.UpdatedAt = time.Now()

		args, err := endpointInsertArgs(endpoint)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(r.db.Rebind(endpointInsert), args...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByUUID retrieves a non-deleted endpoint of a configuration
func (r *GatewayEndpointRepo) GetByUUID(configUUID, endpointUUID string) (*model.GatewayEndpoint, error) {
	query := `
		SELECT ` + endpointColumns + `
		FROM gateway_endpoints
		WHERE uuid = ? AND config_uuid = ? AND deleted_at IS NULL
	`

	endpoint, err := scanEndpoint(r.db.QueryRow(r.db.Rebind(query), endpointUUID, configUUID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return endpoint, nil
}

// GetByMethodAndPath retrieves the non-deleted endpoint matching method+path
// within a configuration, if any
func (r *GatewayEndpointRepo) GetByMethodAndPath(configUUID, method, path string) (*model.GatewayEndpoint, error) {
	query := `
		SELECT ` + endpointColumns + `
		FROM gateway_endpoints
		WHERE config_uuid = ? AND method = ? AND path = ? AND deleted_at IS NULL
	`

	endpoint, err := scanEndpoint(r.db.QueryRow(r.db.Rebind(query), configUUID, method, path))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return endpoint, nil
}

// ListByConfig retrieves non-deleted endpoints of a configuration in
// ascending sequence order
func (r *GatewayEndpointRepo) ListByConfig(configUUID string) ([]*model.GatewayEndpoint, error) {
	query := `
		SELECT ` + endpointColumns + `
		FROM gateway_endpoints
		WHERE config_uuid = ? AND deleted_at IS NULL
		ORDER BY sequence_order ASC
	`

	rows, err := r.db.Query(r.db.Rebind(query), configUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var endpoints []*model.GatewayEndpoint
	for rows.Next() {
		endpoint, err := scanEndpoint(rows)
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, endpoint)
	}

	return endpoints, rows.Err()
}

// CountByConfig returns the number of non-deleted endpoints of a configuration
func (r *GatewayEndpointRepo) CountByConfig(configUUID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM gateway_endpoints WHERE config_uuid = ? AND deleted_at IS NULL`
	err := r.db.QueryRow(r.db.Rebind(query), configUUID).Scan(&count)
	return count, err
}

// MaxSequenceOrder returns the highest sequence_order among a configuration's
// non-deleted endpoints, or 0 when it has none
func (r *GatewayEndpointRepo) MaxSequenceOrder(configUUID string) (int, error) {
	var max int
	query := `
		SELECT COALESCE(MAX(sequence_order), 0)
		FROM gateway_endpoints WHERE config_uuid = ? AND deleted_at IS NULL
	`
	err := r.db.QueryRow(r.db.Rebind(query), configUUID).Scan(&max)
	return max, err
}

// Update modifies an existing endpoint
func (r *GatewayEndpointRepo) Update(endpoint *model.GatewayEndpoint) error {
	endpoint.UpdatedAt = time.Now()

	query := `
		UPDATE gateway_endpoints
		SET sequence_order = ?, method = ?, path = ?, operation_id = ?, summary = ?,
			description = ?, tags = ?, target_url = ?, path_params = ?, query_params = ?,
			headers = ?, request_body = ?, responses = ?, security = ?, authentication = ?,
			rate_limiting = ?, cache_config = ?, cors_config = ?, integration_type = ?,
			integration_config = ?, x_extensions = ?, updated_at = ?
		WHERE uuid = ? AND config_uuid = ? AND deleted_at IS NULL
	`

	tagsJSON, err := serializeJSON(endpoint.Tags)
	if err != nil {
		return err
	}
	pathParams, err := serializeJSON(endpoint.PathParams)
	if err != nil {
		return err
	}
	queryParams, err := serializeJSON(endpoint.QueryParams)
	if err != nil {
		return err
	}
	headers, err := serializeJSON(endpoint.Headers)
	if err != nil {
		return err
	}
	requestBody, err := serializeJSON(endpoint.RequestBody)
	if err != nil {
		return err
	}
	responses, err := serializeJSON(endpoint.Responses)
	if err != nil {
		return err
	}
	security, err := serializeJSON(endpoint.Security)
	if err != nil {
		return err
	}
	authentication, err := serializeJSON(endpoint.Authentication)
	if err != nil {
		return err
	}
	rateLimiting, err := serializeJSON(endpoint.RateLimiting)
	if err != nil {
		return err
	}
	cacheConfig, err := serializeJSON(endpoint.CacheConfig)
	if err != nil {
		return err
	}
	corsConfig, err := serializeJSON(endpoint.CORSConfig)
	if err != nil {
		return err
	}
	integrationConfig, err := serializeJSON(endpoint.IntegrationConfig)
	if err != nil {
		return err
	}
	xExtensions, err := serializeJSON(endpoint.XExtensions)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(r.db.Rebind(query),
		endpoint.SequenceOrder, endpoint.Method, endpoint.Path,
		nullString(endpoint.OperationID), nullString(endpoint.Summary), nullString(endpoint.Description),
		tagsJSON, nullString(endpoint.TargetURL), pathParams, queryParams, headers, requestBody,
		responses, security, authentication, rateLimiting, cacheConfig, corsConfig,
		nullString(endpoint.IntegrationType), integrationConfig, xExtensions,
		endpoint.UpdatedAt, endpoint.ID, endpoint.ConfigID)
	return err
}

// SoftDelete marks an endpoint as deleted without removing the row
func (r *GatewayEndpointRepo) SoftDelete(configUUID, endpointUUID string) error {
	query := `
		UPDATE gateway_endpoints SET deleted_at = ?, updated_at = ?
		WHERE uuid = ? AND config_uuid = ? AND deleted_at IS NULL
	`
	now := time.Now()
	_, err := r.db.Exec(r.db.Rebind(query), now, now, endpointUUID, configUUID)
	return err
}

// ReorderSequence assigns sequence_order = (position+1)*10 to the listed
// endpoints, in list order. Every id must belong to a live endpoint of the
// configuration; the whole operation runs in one transaction so a failed
// validation leaves all sequence values unchanged.
func (r *GatewayEndpointRepo) ReorderSequence(configUUID string, endpointUUIDs []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows, err := tx.Query(r.db.Rebind(
		`SELECT uuid FROM gateway_endpoints WHERE config_uuid = ? AND deleted_at IS NULL`), configUUID)
	if err != nil {
		return err
	}

	existing := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		existing[id] = true
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	var invalid []string
	for _, id := range endpointUUIDs {
		if !existing[id] {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%w: %s", constants.ErrInvalidEndpointIDs, strings.Join(invalid, ", "))
	}

	updateQuery := r.db.Rebind(`
		UPDATE gateway_endpoints SET sequence_order = ?, updated_at = ?
		WHERE uuid = ? AND config_uuid = ?
	`)
	now := time.Now()
	for i, id := range endpointUUIDs {
		if _, err := tx.Exec(updateQuery, (i+1)*constants.SequenceStep, now, id, configUUID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// endpointInsertArgs builds the argument list matching endpointInsert
func endpointInsertArgs(endpoint *model.GatewayEndpoint) ([]interface{}, error) {
	tagsJSON, err := serializeJSON(endpoint.Tags)
	if err != nil {
		return nil, err
	}
	pathParams, err := serializeJSON(endpoint.PathParams)
	if err != nil {
		return nil, err
	}
	queryParams, err := serializeJSON(endpoint.QueryParams)
	if err != nil {
		return nil, err
	}
	headers, err := serializeJSON(endpoint.Headers)
	if err != nil {
		return nil, err
	}
	requestBody, err := serializeJSON(endpoint.RequestBody)
	if err != nil {
		return nil, err
	}
	responses, err := serializeJSON(endpoint.Responses)
	if err != nil {
		return nil, err
	}
	security, err := serializeJSON(endpoint.Security)
	if err != nil {
		return nil, err
	}
	authentication, err := serializeJSON(endpoint.Authentication)
	if err != nil {
		return nil, err
	}
	rateLimiting, err := serializeJSON(endpoint.RateLimiting)
	if err != nil {
		return nil, err
	}
	cacheConfig, err := serializeJSON(endpoint.CacheConfig)
	if err != nil {
		return nil, err
	}
	corsConfig, err := serializeJSON(endpoint.CORSConfig)
	if err != nil {
		return nil, err
	}
	integrationConfig, err := serializeJSON(endpoint.IntegrationConfig)
	if err != nil {
		return nil, err
	}
	xExtensions, err := serializeJSON(endpoint.XExtensions)
	if err != nil {
		return nil, err
	}

	return []interface{}{
		endpoint.ID, endpoint.ConfigID, endpoint.SequenceOrder, endpoint.Method, endpoint.Path,
		nullString(endpoint.OperationID), nullString(endpoint.Summary), nullString(endpoint.Description),
		tagsJSON, nullString(endpoint.TargetURL), pathParams, queryParams, headers, requestBody,
		responses, security, authentication, rateLimiting, cacheConfig, corsConfig,
		nullString(endpoint.IntegrationType), integrationConfig, xExtensions,
		endpoint.CreatedAt, endpoint.UpdatedAt,
	}, nil
}

// scanEndpoint reads one endpoint row in endpointColumns order
func scanEndpoint(row rowScanner) (*model.GatewayEndpoint, error) {
	endpoint := &model.GatewayEndpoint{}
	var operationID, summary, description, tagsJSON, targetURL sql.NullString
	var pathParams, queryParams, headers, requestBody, responses, security sql.NullString
	var authentication, rateLimiting, cacheConfig, corsConfig sql.NullString
	var integrationType, integrationConfig, xExtensions sql.NullString

	err := row.Scan(&endpoint.ID, &endpoint.ConfigID, &endpoint.SequenceOrder, &endpoint.Method,
		&endpoint.Path, &operationID, &summary, &description, &tagsJSON, &targetURL,
		&pathParams, &queryParams, &headers, &requestBody, &responses, &security,
		&authentication, &rateLimiting, &cacheConfig, &corsConfig,
		&integrationType, &integrationConfig, &xExtensions,
		&endpoint.CreatedAt, &endpoint.UpdatedAt)
	if err != nil {
		return nil, err
	}

	endpoint.OperationID = operationID.String
	endpoint.Summary = summary.String
	endpoint.Description = description.String
	endpoint.TargetURL = targetURL.String
	endpoint.IntegrationType = integrationType.String

	if err := deserializeJSON(tagsJSON, &endpoint.Tags); err != nil {
		return nil, err
	}
	if err := deserializeJSON(pathParams, &endpoint.PathParams); err != nil {
		return nil, err
	}
	if err := deserializeJSON(queryParams, &endpoint.QueryParams); err != nil {
		return nil, err
	}
	if err := deserializeJSON(headers, &endpoint.Headers); err != nil {
		return nil, err
	}
	if err := deserializeJSON(requestBody, &endpoint.RequestBody); err != nil {
		return nil, err
	}
	if err := deserializeJSON(responses, &endpoint.Responses); err != nil {
		return nil, err
	}
	if err := deserializeJSON(security, &endpoint.Security); err != nil {
		return nil, err
	}
	if err := deserializeJSON(authentication, &endpoint.Authentication); err != nil {
		return nil, err
	}
	if err := deserializeJSON(rateLimiting, &endpoint.RateLimiting); err != nil {
		return nil, err
	}
	if err := deserializeJSON(cacheConfig, &endpoint.CacheConfig); err != nil {
		return nil, err
	}
	if err := deserializeJSON(corsConfig, &endpoint.CORSConfig); err != nil {
		return nil, err
	}
	if err := deserializeJSON(integrationConfig, &endpoint.IntegrationConfig); err != nil {
		return nil, err
	}
	if err := deserializeJSON(xExtensions, &endpoint.XExtensions); err != nil {
		return nil, err
	}

	return endpoint, nil
}
