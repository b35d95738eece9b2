package config

import (
	"fmt"
	"os"
)

type DynamoConfig struct {
	DocumentsTable    string
	ChunksTable       string
	AudioOutputsTable string
}

func GetDynamoConfig() (*DynamoConfig, error) {
	documentsTable := os.Getenv("DYNAMO_DOCUMENTS_TABLE")
	if documentsTable == "" {
		return nil, fmt.Errorf("DYNAMO_DOCUMENTS_TABLE must be set")
	}
	chunksTable := os.Getenv("DYNAMO_CHUNKS_TABLE")
	if chunksTable == "" {
		return nil, fmt.Errorf("DYNAMO_CHUNKS_TABLE must be set")
	}
	audioOutputsTable := os.Getenv("DYNAMO_AUDIO_OUTPUTS_TABLE")
	if audioOutputsTable == "" {
		return nil, fmt.Errorf("DYNAMO_AUDIO_OUTPUTS_TABLE must be set")
	}

	return &DynamoConfig{
		DocumentsTable:    documentsTable,
		ChunksTable:       chunksTable,
		AudioOutputsTable: audioOutputsTable,
	}, nil
}
