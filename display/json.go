package display

import (
	"encoding/json"
	"os"
)

// MarshalJSON marshals JSON with pretty formatting for humans, compact when
// UVAL_JSON_COMPACT is set so one result fits on one line for pipelines
func MarshalJSON(v interface{}) ([]byte, error) {
	if os.Getenv("UVAL_JSON_COMPACT") != "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}
