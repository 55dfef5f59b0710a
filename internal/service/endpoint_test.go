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
	"errors"
	"testing"

	"github.com/jl91/aws-gateway-editor/internal/constants"
	"github.com/jl91/aws-gateway-editor/internal/dto"
	"github.com/jl91/aws-gateway-editor/internal/model"
)

func newTestGateway(t *testing.T, repos *testRepos, name string) *model.GatewayConfig {
	t.Helper()
	svc := NewGatewayService(repos.configs, repos.endpoints, nil)
	config, err := svc.CreateGateway(&dto.CreateGatewayRequest{Name: name, Version: "1.0.0"})
	if err != nil {
		t.Fatalf("CreateGateway error: %v", err)
	}
	return config
}

// Covers the create-create-reorder flow end to end: sequence values start at
// 10, step by 10, and a reorder renumbers from 10 in list order.
func TestEndpointSequencingScenario(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewEndpointService(repos.configs, repos.endpoints, nil)
	config := newTestGateway(t, repos, "Pet Store")

	getPets, err := svc.AddEndpoint(config.ID, &dto.CreateEndpointRequest{Method: "GET", Path: "/pets"})
	if err != nil {
		t.Fatalf("AddEndpoint error: %v", err)
	}
	if getPets.SequenceOrder != 10 {
		t.Errorf("first endpoint SequenceOrder = %d, want 10", getPets.SequenceOrder)
	}

	postPets, err := svc.AddEndpoint(config.ID, &dto.CreateEndpointRequest{Method: "POST", Path: "/pets"})
	if err != nil {
		t.Fatalf("AddEndpoint error: %v", err)
	}
	if postPets.SequenceOrder != 20 {
		t.Errorf("second endpoint SequenceOrder = %d, want 20", postPets.SequenceOrder)
	}

	reordered, err := svc.ReorderEndpoints(config.ID, &dto.ReorderEndpointsRequest{
		EndpointIDs: []string{postPets.ID, getPets.ID},
	})
	if err != nil {
		t.Fatalf("ReorderEndpoints error: %v", err)
	}
	if len(reordered) != 2 {
		t.Fatalf("reorder returned %d endpoints, want 2", len(reordered))
	}
	if reordered[0].ID != postPets.ID || reordered[0].SequenceOrder != 10 {
		t.Errorf("first after reorder: id=%s order=%d, want POST /pets at 10",
			reordered[0].ID, reordered[0].SequenceOrder)
	}
	if reordered[1].ID != getPets.ID || reordered[1].SequenceOrder != 20 {
		t.Errorf("second after reorder: id=%s order=%d, want GET /pets at 20",
			reordered[1].ID, reordered[1].SequenceOrder)
	}
}

func TestAddEndpointNormalizesMethod(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewEndpointService(repos.configs, repos.endpoints, nil)
	config := newTestGateway(t, repos, "Pet Store")

	endpoint, err := svc.AddEndpoint(config.ID, &dto.CreateEndpointRequest{Method: "GET", Path: "/pets"})
	if err != nil {
		t.Fatalf("AddEndpoint error: %v", err)
	}
	if endpoint.Method != "get" {
		t.Errorf("Method = %q, want lower-cased %q", endpoint.Method, "get")
	}
}

func TestAddEndpointRejectsDuplicateMethodPath(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewEndpointService(repos.configs, repos.endpoints, nil)
	config := newTestGateway(t, repos, "Pet Store")

	if _, err := svc.AddEndpoint(config.ID, &dto.CreateEndpointRequest{Method: "GET", Path: "/pets"}); err != nil {
		t.Fatalf("AddEndpoint error: %v", err)
	}

	_, err := svc.AddEndpoint(config.ID, &dto.CreateEndpointRequest{Method: "GET", Path: "/pets"})
	if !errors.Is(err, constants.ErrDuplicateEndpoint) {
		t.Errorf("err = %v, want ErrDuplicateEndpoint", err)
	}

	// Same path, different method is fine
	if _, err := svc.AddEndpoint(config.ID, &dto.CreateEndpointRequest{Method: "POST", Path: "/pets"}); err != nil {
		t.Errorf("AddEndpoint with different method failed: %v", err)
	}
}

func TestAddEndpointUnknownConfig(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewEndpointService(repos.configs, repos.endpoints, nil)

	_, err := svc.AddEndpoint("missing-config", &dto.CreateEndpointRequest{Method: "GET", Path: "/pets"})
	if !errors.Is(err, constants.ErrConfigNotFound) {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestUpdateEndpointPathCollision(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewEndpointService(repos.configs, repos.endpoints, nil)
	config := newTestGateway(t, repos, "Pet Store")

	if _, err := svc.AddEndpoint(config.ID, &dto.CreateEndpointRequest{Method: "GET", Path: "/pets"}); err != nil {
		t.Fatalf("AddEndpoint error: %v", err)
	}
	other, err := svc.AddEndpoint(config.ID, &dto.CreateEndpointRequest{Method: "GET", Path: "/owners"})
	if err != nil {
		t.Fatalf("AddEndpoint error: %v", err)
	}

	collidingPath := "/pets"
	_, err = svc.UpdateEndpoint(config.ID, other.ID, &dto.UpdateEndpointRequest{Path: &collidingPath})
	if !errors.Is(err, constants.ErrDuplicateEndpoint) {
		t.Errorf("err = %v, want ErrDuplicateEndpoint", err)
	}

	// Colliding with a soft-deleted endpoint's former pair is allowed
	if err := svc.DeleteEndpoint(config.ID, other.ID); err != nil {
		t.Fatalf("DeleteEndpoint error: %v", err)
	}
	if _, err := svc.AddEndpoint(config.ID, &dto.CreateEndpointRequest{Method: "GET", Path: "/owners"}); err != nil {
		t.Errorf("reusing soft-deleted method+path failed: %v", err)
	}
}

func TestUpdateEndpointPatchesFields(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewEndpointService(repos.configs, repos.endpoints, nil)
	config := newTestGateway(t, repos, "Pet Store")

	endpoint, err := svc.AddEndpoint(config.ID, &dto.CreateEndpointRequest{
		Method:  "GET",
		Path:    "/pets",
		Summary: "original",
	})
	if err != nil {
		t.Fatalf("AddEndpoint error: %v", err)
	}

	summary := "List all pets"
	target := "https://backend.example.com/pets"
	updated, err := svc.UpdateEndpoint(config.ID, endpoint.ID, &dto.UpdateEndpointRequest{
		Summary:   &summary,
		TargetURL: &target,
	})
	if err != nil {
		t.Fatalf("UpdateEndpoint error: %v", err)
	}
	if updated.Summary != summary || updated.TargetURL != target {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.Method != "get" || updated.Path != "/pets" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestReorderEndpointsRejectsUnknownIDs(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewEndpointService(repos.configs, repos.endpoints, nil)
	config := newTestGateway(t, repos, "Pet Store")

	endpoint, err := svc.AddEndpoint(config.ID, &dto.CreateEndpointRequest{Method: "GET", Path: "/pets"})
	if err != nil {
		t.Fatalf("AddEndpoint error: %v", err)
	}

	_, err = svc.ReorderEndpoints(config.ID, &dto.ReorderEndpointsRequest{
		EndpointIDs: []string{endpoint.ID, "bogus-id"},
	})
	if !errors.Is(err, constants.ErrInvalidEndpointIDs) {
		t.Errorf("err = %v, want ErrInvalidEndpointIDs", err)
	}
}

func TestGetEndpointScopedToConfig(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewEndpointService(repos.configs, repos.endpoints, nil)
	first := newTestGateway(t, repos, "First")
	second := newTestGateway(t, repos, "Second")

	endpoint, err := svc.AddEndpoint(first.ID, &dto.CreateEndpointRequest{Method: "GET", Path: "/pets"})
	if err != nil {
		t.Fatalf("AddEndpoint error: %v", err)
	}

	// The endpoint is not reachable through another configuration
	_, err = svc.GetEndpoint(second.ID, endpoint.ID)
	if !errors.Is(err, constants.ErrEndpointNotFound) {
		t.Errorf("err = %v, want ErrEndpointNotFound", err)
	}
}
