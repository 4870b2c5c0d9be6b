package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverDynamoDB = "dynamodb"
)

// Config holds the process-level settings. Per-table names stay with the
// DynamoDB repositories, which default them individually.
type Config struct {
	App struct {
		Port int `envconfig:"PORT" default:"8080"`
	}

	Storage struct {
		// memory (default) or dynamodb.
		Driver       string `envconfig:"STORAGE_DRIVER" default:"memory"`
		SeedDemoData bool   `envconfig:"SEED_DEMO_DATA" default:"false"`
	}

	AWS struct {
		Region           string `envconfig:"AWS_REGION" default:"us-east-1"`
		AccessKeyID      string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
		SecretAccessKey  string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
		DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT"`
	}

	MercadoPago struct {
		AccessToken string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	switch cfg.Storage.Driver {
	case StorageDriverMemory, StorageDriverDynamoDB:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	return &cfg, nil
}
