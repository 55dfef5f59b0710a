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
)

func TestCreateGatewayAssignsDefaults(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGatewayService(repos.configs, repos.endpoints, nil)

	config, err := svc.CreateGateway(&dto.CreateGatewayRequest{
		Name:    "Pet Store",
		Version: "1.0.0",
	})
	if err != nil {
		t.Fatalf("CreateGateway error: %v", err)
	}
	if config.ID == "" {
		t.Error("no id assigned")
	}
	if config.OpenAPIVersion != constants.DefaultOpenAPIVersion {
		t.Errorf("OpenAPIVersion = %q, want %q", config.OpenAPIVersion, constants.DefaultOpenAPIVersion)
	}
	if config.FileHash == "" {
		t.Error("no content hash assigned")
	}
	if config.IsActive {
		t.Error("new configuration should not be active")
	}
}

func TestCreateGatewayRejectsDuplicateContent(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGatewayService(repos.configs, repos.endpoints, nil)

	req := &dto.CreateGatewayRequest{Name: "Pet Store", Version: "1.0.0", Description: "demo"}
	if _, err := svc.CreateGateway(req); err != nil {
		t.Fatalf("CreateGateway error: %v", err)
	}

	_, err := svc.CreateGateway(req)
	if !errors.Is(err, constants.ErrDuplicateConfigContent) {
		t.Errorf("second identical create: err = %v, want ErrDuplicateConfigContent", err)
	}

	// A different version is different content
	req.Version = "1.0.1"
	if _, err := svc.CreateGateway(req); err != nil {
		t.Errorf("create with changed version failed: %v", err)
	}
}

func TestCreateGatewayRejectsUnknownSpecVersion(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGatewayService(repos.configs, repos.endpoints, nil)

	_, err := svc.CreateGateway(&dto.CreateGatewayRequest{
		Name:           "Pet Store",
		Version:        "1.0.0",
		OpenAPIVersion: "4.0.0",
	})
	if !errors.Is(err, constants.ErrInvalidOpenAPIVersion) {
		t.Errorf("err = %v, want ErrInvalidOpenAPIVersion", err)
	}
}

func TestUpdateGatewayRecomputesHash(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGatewayService(repos.configs, repos.endpoints, nil)

	created, err := svc.CreateGateway(&dto.CreateGatewayRequest{Name: "Pet Store", Version: "1.0.0"})
	if err != nil {
		t.Fatalf("CreateGateway error: %v", err)
	}
	originalHash := created.FileHash

	newVersion := "2.0.0"
	updated, err := svc.UpdateGateway(created.ID, &dto.UpdateGatewayRequest{Version: &newVersion})
	if err != nil {
		t.Fatalf("UpdateGateway error: %v", err)
	}
	if updated.Version != "2.0.0" {
		t.Errorf("Version = %q, want 2.0.0", updated.Version)
	}
	if updated.FileHash == originalHash {
		t.Error("content hash unchanged after a semantic update")
	}

	// A no-op patch keeps the hash stable
	same, err := svc.UpdateGateway(created.ID, &dto.UpdateGatewayRequest{})
	if err != nil {
		t.Fatalf("UpdateGateway error: %v", err)
	}
	if same.FileHash != updated.FileHash {
		t.Error("content hash changed on a no-op update")
	}
}

func TestUpdateGatewayNotFound(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGatewayService(repos.configs, repos.endpoints, nil)

	name := "whatever"
	_, err := svc.UpdateGateway("missing-id", &dto.UpdateGatewayRequest{Name: &name})
	if !errors.Is(err, constants.ErrConfigNotFound) {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestActivateGatewayIsExclusive(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGatewayService(repos.configs, repos.endpoints, nil)

	first, err := svc.CreateGateway(&dto.CreateGatewayRequest{Name: "First", Version: "1.0.0"})
	if err != nil {
		t.Fatalf("CreateGateway error: %v", err)
	}
	second, err := svc.CreateGateway(&dto.CreateGatewayRequest{Name: "Second", Version: "1.0.0"})
	if err != nil {
		t.Fatalf("CreateGateway error: %v", err)
	}

	if _, err := svc.ActivateGateway(first.ID); err != nil {
		t.Fatalf("ActivateGateway error: %v", err)
	}
	if _, err := svc.ActivateGateway(second.ID); err != nil {
		t.Fatalf("ActivateGateway error: %v", err)
	}

	listing, err := svc.ListGateways(1, 10)
	if err != nil {
		t.Fatalf("ListGateways error: %v", err)
	}

	activeCount := 0
	for _, cfg := range listing.Data {
		if cfg.IsActive {
			activeCount++
			if cfg.ID != second.ID {
				t.Errorf("wrong configuration active: %s", cfg.ID)
			}
		}
	}
	if activeCount != 1 {
		t.Errorf("found %d active configurations, want exactly 1", activeCount)
	}
}

func TestDeactivateGatewayIdempotent(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGatewayService(repos.configs, repos.endpoints, nil)

	created, err := svc.CreateGateway(&dto.CreateGatewayRequest{Name: "Pet Store", Version: "1.0.0"})
	if err != nil {
		t.Fatalf("CreateGateway error: %v", err)
	}

	// Deactivating an inactive configuration is a no-op, not an error
	if _, err := svc.DeactivateGateway(created.ID); err != nil {
		t.Errorf("DeactivateGateway on inactive config: %v", err)
	}
}

func TestDeleteGatewayHidesIt(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGatewayService(repos.configs, repos.endpoints, nil)

	created, err := svc.CreateGateway(&dto.CreateGatewayRequest{Name: "Pet Store", Version: "1.0.0"})
	if err != nil {
		t.Fatalf("CreateGateway error: %v", err)
	}

	if err := svc.DeleteGateway(created.ID); err != nil {
		t.Fatalf("DeleteGateway error: %v", err)
	}

	if _, err := svc.GetGateway(created.ID); !errors.Is(err, constants.ErrConfigNotFound) {
		t.Errorf("GetGateway after delete: err = %v, want ErrConfigNotFound", err)
	}
	if err := svc.DeleteGateway(created.ID); !errors.Is(err, constants.ErrConfigNotFound) {
		t.Errorf("second delete: err = %v, want ErrConfigNotFound", err)
	}
}

func TestListGatewaysPagination(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGatewayService(repos.configs, repos.endpoints, nil)

	for i := 0; i < 5; i++ {
		_, err := svc.CreateGateway(&dto.CreateGatewayRequest{
			Name:    "Config",
			Version: "1.0." + string(rune('0'+i)),
		})
		if err != nil {
			t.Fatalf("CreateGateway error: %v", err)
		}
	}

	listing, err := svc.ListGateways(2, 2)
	if err != nil {
		t.Fatalf("ListGateways error: %v", err)
	}
	if listing.Total != 5 || listing.Page != 2 || listing.Limit != 2 {
		t.Errorf("unexpected envelope: %+v", listing)
	}
	if listing.Pages != 3 {
		t.Errorf("Pages = %d, want 3", listing.Pages)
	}
	if len(listing.Data) != 2 {
		t.Errorf("page has %d rows, want 2", len(listing.Data))
	}
}
