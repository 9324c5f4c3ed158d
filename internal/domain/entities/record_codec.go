package entities

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const recordIndent = 2

// RecordCodec converts project records to and from their YAML form.
type RecordCodec struct{}

// NewRecordCodec creates a RecordCodec.
func NewRecordCodec() *RecordCodec {
	return &RecordCodec{}
}

// Decode parses a YAML project record. A missing project type defaults to application.
func (c *RecordCodec) Decode(data []byte) (*ProjectRecord, error) {
	var record ProjectRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse project record: %w", err)
	}
	if record.ProjectType == "" {
		record.ProjectType = ProjectTypeApplication
	}
	return &record, nil
}

// Encode renders a project record as YAML.
func (c *RecordCodec) Encode(record *ProjectRecord) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(recordIndent)
	if err := encoder.Encode(record); err != nil {
		return nil, fmt.Errorf("failed to encode project record: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode project record: %w", err)
	}
	return buf.Bytes(), nil
}
