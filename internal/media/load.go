package media

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadMetrics reads a metrics JSON document from disk and validates it.
func LoadMetrics(path string) (Metrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metrics{}, fmt.Errorf("read metrics file: %w", err)
	}
	return ParseMetrics(data)
}

// ParseMetrics decodes a metrics JSON document and validates it.
func ParseMetrics(data []byte) (Metrics, error) {
	var m Metrics
	if err := json.Unmarshal(data, &m); err != nil {
		return Metrics{}, fmt.Errorf("decode metrics: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Metrics{}, err
	}
	return m, nil
}
