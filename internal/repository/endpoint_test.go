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
	"errors"
	"strings"
	"testing"

	"github.com/jl91/aws-gateway-editor/internal/constants"
	"github.com/jl91/aws-gateway-editor/internal/model"
)

func newTestEndpoint(t *testing.T, repo GatewayEndpointRepository, configID, method, path string, order int) *model.GatewayEndpoint {
	t.Helper()
	endpoint := &model.GatewayEndpoint{
		ConfigID:      configID,
		SequenceOrder: order,
		Method:        method,
		Path:          path,
	}
	if err := repo.Create(endpoint); err != nil {
		t.Fatalf("failed to create endpoint %s %s: %v", method, path, err)
	}
	return endpoint
}

func TestEndpointCreateRoundTrip(t *testing.T) {
	db := newTestDB(t)
	configRepo := NewGatewayConfigRepo(db)
	endpointRepo := NewGatewayEndpointRepo(db)

	cfg := newTestConfig(t, configRepo, "Pet Store", "hash-ep")

	created := &model.GatewayEndpoint{
		ConfigID:      cfg.ID,
		SequenceOrder: 10,
		Method:        "get",
		Path:          "/pets/{petId}",
		OperationID:   "getPet",
		Summary:       "Get one pet",
		Tags:          []string{"pets"},
		TargetURL:     "https://backend.example.com/pets",
		PathParams: map[string]interface{}{
			"petId": map[string]interface{}{
				"required": true,
				"schema":   map[string]interface{}{"type": "string"},
			},
		},
		Responses: map[string]interface{}{
			"200": map[string]interface{}{"description": "A pet"},
		},
		RateLimiting: map[string]interface{}{"requestsPerMinute": 60.0},
		XExtensions:  map[string]interface{}{"x-internal": true},
	}
	if err := endpointRepo.Create(created); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := endpointRepo.GetByUUID(cfg.ID, created.ID)
	if err != nil {
		t.Fatalf("GetByUUID error: %v", err)
	}
	if got == nil {
		t.Fatal("GetByUUID returned nil for existing endpoint")
	}
	if got.Method != "get" || got.Path != "/pets/{petId}" || got.OperationID != "getPet" {
		t.Errorf("unexpected endpoint: %+v", got)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "pets" {
		t.Errorf("tags not round-tripped: %v", got.Tags)
	}
	if got.PathParams == nil || got.PathParams["petId"] == nil {
		t.Error("pathParams not round-tripped")
	}
	if got.RateLimiting == nil {
		t.Error("rateLimiting not round-tripped")
	}
	if got.XExtensions["x-internal"] != true {
		t.Errorf("extensions not round-tripped: %v", got.XExtensions)
	}
	if got.Responses == nil {
		t.Error("responses not round-tripped")
	}
}

func TestEndpointMaxSequenceOrder(t *testing.T) {
	db := newTestDB(t)
	configRepo := NewGatewayConfigRepo(db)
	endpointRepo := NewGatewayEndpointRepo(db)

	cfg := newTestConfig(t, configRepo, "Pet Store", "hash-seq")

	max, err := endpointRepo.MaxSequenceOrder(cfg.ID)
	if err != nil {
		t.Fatalf("MaxSequenceOrder error: %v", err)
	}
	if max != 0 {
		t.Errorf("MaxSequenceOrder on empty configuration = %d, want 0", max)
	}

	newTestEndpoint(t, endpointRepo, cfg.ID, "get", "/pets", 10)
	newTestEndpoint(t, endpointRepo, cfg.ID, "post", "/pets", 20)

	max, err = endpointRepo.MaxSequenceOrder(cfg.ID)
	if err != nil {
		t.Fatalf("MaxSequenceOrder error: %v", err)
	}
	if max != 20 {
		t.Errorf("MaxSequenceOrder = %d, want 20", max)
	}
}

func TestEndpointListByConfigOrder(t *testing.T) {
	db := newTestDB(t)
	configRepo := NewGatewayConfigRepo(db)
	endpointRepo := NewGatewayEndpointRepo(db)

	cfg := newTestConfig(t, configRepo, "Pet Store", "hash-order")

	// Insert out of order; the listing must come back sorted by sequence
	newTestEndpoint(t, endpointRepo, cfg.ID, "post", "/pets", 30)
	newTestEndpoint(t, endpointRepo, cfg.ID, "get", "/pets", 10)
	newTestEndpoint(t, endpointRepo, cfg.ID, "get", "/pets/{petId}", 20)

	endpoints, err := endpointRepo.ListByConfig(cfg.ID)
	if err != nil {
		t.Fatalf("ListByConfig error: %v", err)
	}
	if len(endpoints) != 3 {
		t.Fatalf("ListByConfig returned %d endpoints, want 3", len(endpoints))
	}
	for i, want := range []int{10, 20, 30} {
		if endpoints[i].SequenceOrder != want {
			t.Errorf("endpoints[%d].SequenceOrder = %d, want %d", i, endpoints[i].SequenceOrder, want)
		}
	}
}

func TestEndpointGetByMethodAndPath(t *testing.T) {
	db := newTestDB(t)
	configRepo := NewGatewayConfigRepo(db)
	endpointRepo := NewGatewayEndpointRepo(db)

	cfg := newTestConfig(t, configRepo, "Pet Store", "hash-mp")
	created := newTestEndpoint(t, endpointRepo, cfg.ID, "get", "/pets", 10)

	got, err := endpointRepo.GetByMethodAndPath(cfg.ID, "get", "/pets")
	if err != nil {
		t.Fatalf("GetByMethodAndPath error: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Fatalf("GetByMethodAndPath returned %+v, want id %s", got, created.ID)
	}

	// Soft-deleted endpoints free up their method+path pair
	if err := endpointRepo.SoftDelete(cfg.ID, created.ID); err != nil {
		t.Fatalf("SoftDelete error: %v", err)
	}
	got, err = endpointRepo.GetByMethodAndPath(cfg.ID, "get", "/pets")
	if err != nil {
		t.Fatalf("GetByMethodAndPath error: %v", err)
	}
	if got != nil {
		t.Error("soft-deleted endpoint still matched by method+path")
	}

	// And a new endpoint may reclaim the pair
	replacement := newTestEndpoint(t, endpointRepo, cfg.ID, "get", "/pets", 20)
	got, err = endpointRepo.GetByMethodAndPath(cfg.ID, "get", "/pets")
	if err != nil {
		t.Fatalf("GetByMethodAndPath error: %v", err)
	}
	if got == nil || got.ID != replacement.ID {
		t.Error("replacement endpoint not found by method+path")
	}
}

func TestEndpointCreateBatch(t *testing.T) {
	db := newTestDB(t)
	configRepo := NewGatewayConfigRepo(db)
	endpointRepo := NewGatewayEndpointRepo(db)

	cfg := newTestConfig(t, configRepo, "Pet Store", "hash-batch")

	batch := []*model.GatewayEndpoint{
		{ConfigID: cfg.ID, SequenceOrder: 10, Method: "get", Path: "/pets"},
		{ConfigID: cfg.ID, SequenceOrder: 20, Method: "post", Path: "/pets"},
		{ConfigID: cfg.ID, SequenceOrder: 30, Method: "get", Path: "/pets/{petId}"},
	}
	if err := endpointRepo.CreateBatch(batch); err != nil {
		t.Fatalf("CreateBatch error: %v", err)
	}

	count, err := endpointRepo.CountByConfig(cfg.ID)
	if err != nil {
		t.Fatalf("CountByConfig error: %v", err)
	}
	if count != 3 {
		t.Errorf("CountByConfig = %d, want 3", count)
	}
}

func TestEndpointReorderSequence(t *testing.T) {
	db := newTestDB(t)
	configRepo := NewGatewayConfigRepo(db)
	endpointRepo := NewGatewayEndpointRepo(db)

	cfg := newTestConfig(t, configRepo, "Pet Store", "hash-reorder")
	first := newTestEndpoint(t, endpointRepo, cfg.ID, "get", "/pets", 10)
	second := newTestEndpoint(t, endpointRepo, cfg.ID, "post", "/pets", 20)

	if err := endpointRepo.ReorderSequence(cfg.ID, []string{second.ID, first.ID}); err != nil {
		t.Fatalf("ReorderSequence error: %v", err)
	}

	endpoints, err := endpointRepo.ListByConfig(cfg.ID)
	if err != nil {
		t.Fatalf("ListByConfig error: %v", err)
	}
	if endpoints[0].ID != second.ID || endpoints[0].SequenceOrder != 10 {
		t.Errorf("first endpoint after reorder: id=%s order=%d, want id=%s order=10",
			endpoints[0].ID, endpoints[0].SequenceOrder, second.ID)
	}
	if endpoints[1].ID != first.ID || endpoints[1].SequenceOrder != 20 {
		t.Errorf("second endpoint after reorder: id=%s order=%d, want id=%s order=20",
			endpoints[1].ID, endpoints[1].SequenceOrder, first.ID)
	}
}

func TestEndpointReorderRejectsForeignIDs(t *testing.T) {
	db := newTestDB(t)
	configRepo := NewGatewayConfigRepo(db)
	endpointRepo := NewGatewayEndpointRepo(db)

	cfg := newTestConfig(t, configRepo, "Pet Store", "hash-reorder-bad")
	endpoint := newTestEndpoint(t, endpointRepo, cfg.ID, "get", "/pets", 10)

	err := endpointRepo.ReorderSequence(cfg.ID, []string{endpoint.ID, "not-an-endpoint"})
	if err == nil {
		t.Fatal("ReorderSequence accepted an unknown id")
	}
	if !errors.Is(err, constants.ErrInvalidEndpointIDs) {
		t.Errorf("ReorderSequence error = %v, want ErrInvalidEndpointIDs", err)
	}
	if !strings.Contains(err.Error(), "not-an-endpoint") {
		t.Errorf("error does not name the offending id: %v", err)
	}

	// Validation failed before any write: the sequence value must be intact
	got, err := endpointRepo.GetByUUID(cfg.ID, endpoint.ID)
	if err != nil {
		t.Fatalf("GetByUUID error: %v", err)
	}
	if got.SequenceOrder != 10 {
		t.Errorf("SequenceOrder = %d after failed reorder, want 10", got.SequenceOrder)
	}
}

func TestEndpointReorderPartialLeavesOthersUntouched(t *testing.T) {
	db := newTestDB(t)
	configRepo := NewGatewayConfigRepo(db)
	endpointRepo := NewGatewayEndpointRepo(db)

	cfg := newTestConfig(t, configRepo, "Pet Store", "hash-reorder-part")
	a := newTestEndpoint(t, endpointRepo, cfg.ID, "get", "/a", 10)
	b := newTestEndpoint(t, endpointRepo, cfg.ID, "get", "/b", 20)
	c := newTestEndpoint(t, endpointRepo, cfg.ID, "get", "/c", 30)

	// Reorder only b and a; c keeps its old sequence value
	if err := endpointRepo.ReorderSequence(cfg.ID, []string{b.ID, a.ID}); err != nil {
		t.Fatalf("ReorderSequence error: %v", err)
	}

	gotC, err := endpointRepo.GetByUUID(cfg.ID, c.ID)
	if err != nil {
		t.Fatalf("GetByUUID error: %v", err)
	}
	if gotC.SequenceOrder != 30 {
		t.Errorf("untouched endpoint sequence changed to %d", gotC.SequenceOrder)
	}
}

func TestEndpointUpdate(t *testing.T) {
	db := newTestDB(t)
	configRepo := NewGatewayConfigRepo(db)
	endpointRepo := NewGatewayEndpointRepo(db)

	cfg := newTestConfig(t, configRepo, "Pet Store", "hash-ep-upd")
	endpoint := newTestEndpoint(t, endpointRepo, cfg.ID, "get", "/pets", 10)

	endpoint.Summary = "List pets"
	endpoint.QueryParams = map[string]interface{}{
		"limit": map[string]interface{}{"schema": map[string]interface{}{"type": "integer"}},
	}
	if err := endpointRepo.Update(endpoint); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	got, err := endpointRepo.GetByUUID(cfg.ID, endpoint.ID)
	if err != nil {
		t.Fatalf("GetByUUID error: %v", err)
	}
	if got.Summary != "List pets" {
		t.Errorf("Summary = %q, want %q", got.Summary, "List pets")
	}
	if got.QueryParams == nil || got.QueryParams["limit"] == nil {
		t.Error("queryParams not persisted by Update")
	}
}
