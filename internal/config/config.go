package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageFile     = "file"
)

// Config is read once at startup. Every field has a local-friendly default.
type Config struct {
	Port string

	StorageDriver string
	DataDir       string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	DynamoDBTable      string

	CatalogFile string
	// ExportFontPath points at a UTF-8 TTF. When empty PDFs fall back to the
	// built-in font, which has no Hangul glyphs; Build logs a warning.
	ExportFontPath string
	CurrencySymbol string

	MercadoPagoAccessToken string
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:                   getenvDefault("PORT", "8080"),
		StorageDriver:          strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageFile)),
		DataDir:                getenvDefault("DATA_DIR", "./data"),
		AWSRegion:              getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:         getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey:     getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:       os.Getenv("DYNAMODB_ENDPOINT"),
		DynamoDBTable:          getenvDefault("ESTIMATES_TABLE", "ucraft_estimates"),
		CatalogFile:            os.Getenv("CATALOG_FILE"),
		ExportFontPath:         os.Getenv("EXPORT_FONT_PATH"),
		CurrencySymbol:         getenvDefault("CURRENCY_SYMBOL", "₩"),
		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		log.Printf("[config] invalid PORT=%q, falling back to 8080", cfg.Port)
		cfg.Port = "8080"
	}
	switch cfg.StorageDriver {
	case StorageDynamoDB, StorageFile:
	default:
		log.Printf("[config] unknown STORAGE_DRIVER=%q, falling back to %s", cfg.StorageDriver, StorageFile)
		cfg.StorageDriver = StorageFile
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
