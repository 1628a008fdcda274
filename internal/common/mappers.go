package common

import "encoding/json"

// ConvertMapToInterface decodes a generic JSON mapping into a typed value
// via a JSON round-trip. Unknown keys in the source are dropped on the
// typed side but never touched in the source itself.
func ConvertMapToInterface(data map[string]any, out any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// ConvertSliceToInterface decodes a sequence of JSON mappings into a typed
// slice the same way.
func ConvertSliceToInterface(data []map[string]any, out any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
