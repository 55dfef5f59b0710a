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

package dto

// ExportResult carries the serialized document bytes plus download metadata
type ExportResult struct {
	Content     []byte `json:"-"`
	FileName    string `json:"fileName"`
	Format      string `json:"format"`
	ContentType string `json:"contentType"`
	FromCache   bool   `json:"fromCache"`
}

// ExportStatusResponse reports which formats currently have a live cache entry
type ExportStatusResponse struct {
	Cached  bool     `json:"cached"`
	Formats []string `json:"formats"`
}
