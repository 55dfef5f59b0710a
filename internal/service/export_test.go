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
	"errors"
	"testing"
	"time"

	"github.com/jl91/aws-gateway-editor/internal/constants"
	"github.com/jl91/aws-gateway-editor/internal/dto"

	"gopkg.in/yaml.v3"
)

func newExportFixture(t *testing.T, repos *testRepos, ttl time.Duration) (*ExportService, string) {
	t.Helper()
	gatewaySvc := NewGatewayService(repos.configs, repos.endpoints, nil)
	endpointSvc := NewEndpointService(repos.configs, repos.endpoints, nil)

	config, err := gatewaySvc.CreateGateway(&dto.CreateGatewayRequest{
		Name:    "Export Fixture",
		Version: "1.0.0",
	})
	if err != nil {
		t.Fatalf("CreateGateway error: %v", err)
	}
	if _, err := endpointSvc.AddEndpoint(config.ID, &dto.CreateEndpointRequest{
		Method:      "GET",
		Path:        "/pets",
		OperationID: "listPets",
	}); err != nil {
		t.Fatalf("AddEndpoint error: %v", err)
	}

	return NewExportService(repos.configs, repos.endpoints, repos.cache, ttl), config.ID
}

func TestExportCacheMissThenHit(t *testing.T) {
	repos := newTestRepos(t)
	svc, configID := newExportFixture(t, repos, time.Hour)

	first, err := svc.ExportDocument(configID, constants.ExportFormatJSON)
	if err != nil {
		t.Fatalf("first ExportDocument error: %v", err)
	}
	if first.FromCache {
		t.Error("first export served from cache")
	}
	if first.FileName != "openapi-"+configID+".json" {
		t.Errorf("FileName = %q", first.FileName)
	}
	if first.ContentType != "application/json" {
		t.Errorf("ContentType = %q", first.ContentType)
	}

	var document map[string]interface{}
	if err := json.Unmarshal(first.Content, &document); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if document["openapi"] != "3.0.0" {
		t.Errorf("openapi = %v", document["openapi"])
	}

	second, err := svc.ExportDocument(configID, constants.ExportFormatJSON)
	if err != nil {
		t.Fatalf("second ExportDocument error: %v", err)
	}
	if !second.FromCache {
		t.Error("second export not served from cache")
	}
	if !bytes.Equal(first.Content, second.Content) {
		t.Error("cached content differs from generated content")
	}

	// Each hit bumps the access counter on the stored entry
	entry, err := repos.cache.GetLatest(configID, constants.ExportFormatJSON)
	if err != nil {
		t.Fatalf("GetLatest error: %v", err)
	}
	if entry == nil {
		t.Fatal("no cache entry stored")
	}
	if entry.AccessedCount != 1 {
		t.Errorf("AccessedCount = %d, want 1", entry.AccessedCount)
	}
	if entry.LastAccessedAt == nil {
		t.Error("LastAccessedAt not set after hit")
	}
}

func TestExportYAMLFormat(t *testing.T) {
	repos := newTestRepos(t)
	svc, configID := newExportFixture(t, repos, time.Hour)

	result, err := svc.ExportDocument(configID, constants.ExportFormatYAML)
	if err != nil {
		t.Fatalf("ExportDocument error: %v", err)
	}
	if result.FileName != "openapi-"+configID+".yaml" {
		t.Errorf("FileName = %q", result.FileName)
	}
	if result.ContentType != "application/yaml" {
		t.Errorf("ContentType = %q", result.ContentType)
	}

	var document map[string]interface{}
	if err := yaml.Unmarshal(result.Content, &document); err != nil {
		t.Fatalf("export is not valid yaml: %v", err)
	}
	if document["openapi"] != "3.0.0" {
		t.Errorf("openapi = %v", document["openapi"])
	}
}

func TestExportTTLExpiry(t *testing.T) {
	repos := newTestRepos(t)
	// Entries are born expired, so every export is a regeneration
	svc, configID := newExportFixture(t, repos, -time.Second)

	if _, err := svc.ExportDocument(configID, constants.ExportFormatJSON); err != nil {
		t.Fatalf("first ExportDocument error: %v", err)
	}
	second, err := svc.ExportDocument(configID, constants.ExportFormatJSON)
	if err != nil {
		t.Fatalf("second ExportDocument error: %v", err)
	}
	if second.FromCache {
		t.Error("expired entry served from cache")
	}

	// The stale entry was purged before regeneration, so only the fresh one
	// remains
	entries, err := repos.cache.ListByConfig(configID)
	if err != nil {
		t.Fatalf("ListByConfig error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("found %d cache entries after expiry purge, want 1", len(entries))
	}
}

func TestExportInvalidatesAfterContentChange(t *testing.T) {
	repos := newTestRepos(t)
	svc, configID := newExportFixture(t, repos, -time.Second)
	endpointSvc := NewEndpointService(repos.configs, repos.endpoints, nil)

	first, err := svc.ExportDocument(configID, constants.ExportFormatJSON)
	if err != nil {
		t.Fatalf("first ExportDocument error: %v", err)
	}

	if _, err := endpointSvc.AddEndpoint(configID, &dto.CreateEndpointRequest{
		Method: "POST",
		Path:   "/pets",
	}); err != nil {
		t.Fatalf("AddEndpoint error: %v", err)
	}

	second, err := svc.ExportDocument(configID, constants.ExportFormatJSON)
	if err != nil {
		t.Fatalf("second ExportDocument error: %v", err)
	}
	if bytes.Equal(first.Content, second.Content) {
		t.Error("regenerated export does not reflect the new endpoint")
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	repos := newTestRepos(t)
	svc, configID := newExportFixture(t, repos, time.Hour)

	_, err := svc.ExportDocument(configID, "xml")
	if !errors.Is(err, constants.ErrUnsupportedExportFormat) {
		t.Errorf("err = %v, want ErrUnsupportedExportFormat", err)
	}
}

func TestExportUnknownConfig(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewExportService(repos.configs, repos.endpoints, repos.cache, time.Hour)

	_, err := svc.ExportDocument("no-such-config", constants.ExportFormatJSON)
	if !errors.Is(err, constants.ErrConfigNotFound) {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestExportStatus(t *testing.T) {
	repos := newTestRepos(t)
	svc, configID := newExportFixture(t, repos, time.Hour)

	status, err := svc.ExportStatus(configID)
	if err != nil {
		t.Fatalf("ExportStatus error: %v", err)
	}
	if status.Cached || len(status.Formats) != 0 {
		t.Errorf("fresh configuration reports cache: %+v", status)
	}

	if _, err := svc.ExportDocument(configID, constants.ExportFormatJSON); err != nil {
		t.Fatalf("ExportDocument error: %v", err)
	}

	status, err = svc.ExportStatus(configID)
	if err != nil {
		t.Fatalf("ExportStatus error: %v", err)
	}
	if !status.Cached || len(status.Formats) != 1 || status.Formats[0] != constants.ExportFormatJSON {
		t.Errorf("status after json export: %+v", status)
	}
}

func TestExportStatusIgnoresExpiredEntries(t *testing.T) {
	repos := newTestRepos(t)
	svc, configID := newExportFixture(t, repos, -time.Second)

	if _, err := svc.ExportDocument(configID, constants.ExportFormatJSON); err != nil {
		t.Fatalf("ExportDocument error: %v", err)
	}

	status, err := svc.ExportStatus(configID)
	if err != nil {
		t.Fatalf("ExportStatus error: %v", err)
	}
	if status.Cached || len(status.Formats) != 0 {
		t.Errorf("expired entries counted as cached: %+v", status)
	}
}
