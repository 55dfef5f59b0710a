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

package constants

import "errors"

var (
	ErrConfigNotFound         = errors.New("gateway configuration not found")
	ErrDuplicateConfigContent = errors.New("a configuration with the same content already exists")
	ErrInvalidOpenAPIVersion  = errors.New("unsupported openapi specification version")
)

var (
	ErrEndpointNotFound   = errors.New("endpoint not found")
	ErrDuplicateEndpoint  = errors.New("endpoint with this method and path already exists")
	ErrInvalidEndpointIDs = errors.New("invalid endpoint ids")
)

var (
	ErrUnsupportedImportFormat = errors.New("unsupported file format")
	ErrNoSpecInArchive         = errors.New("no openapi specification found in zip file")
	ErrInvalidOpenAPIDocument  = errors.New("invalid openapi specification")
)

var (
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
