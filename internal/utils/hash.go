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

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// HashContent returns the SHA-256 digest of the UTF-8 encoding of content as a
// 64-character lowercase hex string.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// HashJSON hashes the canonical JSON encoding of v. encoding/json serializes
// map keys in sorted order at every nesting level, so two structurally equal
// documents produce the same digest regardless of their original key order.
func HashJSON(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to serialize content for hashing: %w", err)
	}
	return HashContent(string(data)), nil
}

// ConfigContentHash fingerprints the semantic identity of a gateway
// configuration. Create, update, and import dedup all hash this same
// projection so their hashes stay comparable.
func ConfigContentHash(name, version, description, openapiVersion string, metadata map[string]interface{}) (string, error) {
	projection := map[string]interface{}{
		"name":           name,
		"version":        version,
		"description":    description,
		"openapiVersion": openapiVersion,
		"metadata":       metadata,
	}
	return HashJSON(projection)
}
