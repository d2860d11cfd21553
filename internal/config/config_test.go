package config

import "testing"

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "STORAGE_DRIVER", "DATA_DIR", "ESTIMATES_TABLE", "CURRENCY_SYMBOL", "MERCADOPAGO_ACCESS_TOKEN"} {
			t.Setenv(k, "")
		}
		cfg := LoadConfig()
		if cfg.Port != "8080" || cfg.StorageDriver != StorageFile || cfg.DataDir != "./data" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.DynamoDBTable != "ucraft_estimates" || cfg.CurrencySymbol != "₩" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("STORAGE_DRIVER", "DynamoDB")
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", " TEST-abc ")
		cfg := LoadConfig()
		if cfg.Port != "9090" || cfg.StorageDriver != StorageDynamoDB || cfg.MercadoPagoAccessToken != "TEST-abc" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		t.Setenv("PORT", "http")
		t.Setenv("STORAGE_DRIVER", "postgres")
		cfg := LoadConfig()
		if cfg.Port != "8080" || cfg.StorageDriver != StorageFile {
			t.Fatalf("expected fallbacks, got %+v", cfg)
		}
	})
}
