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
	"encoding/json"
	"fmt"
)

// serializeJSON marshals an OpenAPI fragment into a nullable text column.
// nil maps/slices become SQL NULL rather than the string "null".
func serializeJSON(v interface{}) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	switch val := v.(type) {
	case map[string]interface{}:
		if val == nil {
			return sql.NullString{}, nil
		}
	case []interface{}:
		if val == nil {
			return sql.NullString{}, nil
		}
	case []string:
		if val == nil {
			return sql.NullString{}, nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to serialize json column: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// deserializeJSON unmarshals a nullable text column into out (a pointer to a
// map or slice). A NULL column leaves out untouched.
func deserializeJSON(column sql.NullString, out interface{}) error {
	if !column.Valid || column.String == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(column.String), out); err != nil {
		return fmt.Errorf("failed to deserialize json column: %w", err)
	}
	return nil
}

// nullString converts an optional string field to its nullable column form
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
