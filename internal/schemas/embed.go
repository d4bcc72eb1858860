// Package schemas embeds the JSON schemas handed to hosted models for structured output.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
)

// AnalysisSchema is the response schema for an investment analysis
const AnalysisSchema = "analysis.schema.json"

//go:embed *.json
var fs embed.FS

// GetSchema returns the content of a schema file by name
func GetSchema(name string) ([]byte, error) {
	return fs.ReadFile(name)
}

// LoadSchema decodes a schema file into a generic map
func LoadSchema(name string) (map[string]interface{}, error) {
	data, err := GetSchema(name)
	if err != nil {
		return nil, err
	}
	var schema map[string]interface{}
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("invalid schema %s: %w", name, err)
	}
	return schema, nil
}
