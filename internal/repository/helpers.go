package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// recordID builds a full "table:key" record id from a public key.
// Keys containing anything but ASCII letters, digits and underscores are
// rejected, so a caller cannot address a record in another table.
func recordID(table, key string) (string, bool) {
	if key == "" {
		return "", false
	}
	for _, c := range key {
		isAlnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		if !isAlnum && c != '_' {
			return "", false
		}
	}
	return table + ":" + key, true
}

// publicID strips the table prefix and any ⟨⟩ escaping from a record id
func publicID(id interface{}) string {
	full := extractRecordID(id)
	if i := strings.Index(full, ":"); i >= 0 {
		full = full[i+1:]
	}
	full = strings.TrimPrefix(full, "⟨")
	full = strings.TrimSuffix(full, "⟩")
	return full
}

// extractRecordID extracts a "table:key" string from a SurrealDB id value
func extractRecordID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return fmt.Sprintf("%s:%v", v.Table, v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%s:%v", v.Table, v.ID)
		}
	case map[string]interface{}:
		// {"tb": "genre", "id": "xxx"} or {"tb": ..., "id": {"String": "xxx"}}
		tb, _ := v["tb"].(string)
		if tb == "" {
			tb, _ = v["Table"].(string)
		}
		if idVal, ok := v["id"]; ok && tb != "" {
			return tb + ":" + extractIDValue(idVal)
		}
	}
	return ""
}

func extractIDValue(val interface{}) string {
	if str, ok := val.(string); ok {
		return str
	}
	if m, ok := val.(map[string]interface{}); ok {
		if s, ok := m["String"].(string); ok {
			return s
		}
	}
	return fmt.Sprintf("%v", val)
}

// extractQueryResults returns the records of the first statement of a
// Query response
func extractQueryResults(results []interface{}) []map[string]interface{} {
	if len(results) == 0 {
		return nil
	}

	rows := results
	if resp, ok := results[0].(map[string]interface{}); ok {
		if arr, ok := resp["result"].([]interface{}); ok {
			rows = arr
		} else if _, wrapped := resp["status"]; wrapped {
			return nil
		}
	}

	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		if m, ok := row.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// firstRecord returns the first record of a CREATE/UPDATE response
func firstRecord(results []interface{}) (map[string]interface{}, error) {
	rows := extractQueryResults(results)
	if len(rows) == 0 {
		return nil, errors.New("no result returned")
	}
	return rows[0], nil
}

// asRecord asserts a QueryOne result is a record map
func asRecord(result interface{}) (map[string]interface{}, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected result format %T", result)
	}
	return data, nil
}

// parseTime parses time from the formats SurrealDB returns
func parseTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	}
	return time.Time{}
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getStringPtr extracts an optional string value from a map
func getStringPtr(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

// getTime extracts an optional time value from a map
func getTime(m map[string]interface{}, key string) *time.Time {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	t := parseTime(v)
	if t.IsZero() {
		return nil
	}
	return &t
}

func nilIfEmpty(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func formatDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
