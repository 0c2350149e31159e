package config

import "github.com/kelseyhightower/envconfig"

// DefaultDetailAssetURL is the host the news detail view loads images from.
const DefaultDetailAssetURL = "https://api-negociacion.vercel.app"

// Config holds admin client configuration loaded from environment variables.
type Config struct {
	APIURL         string `envconfig:"API_URL" required:"true"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"warn"`
	SessionBackend string `envconfig:"SESSION_BACKEND" default:"file"`
	SessionPath    string `envconfig:"SESSION_PATH" default:""`
	DetailAssetURL string `envconfig:"DETAIL_ASSET_URL" default:"https://api-negociacion.vercel.app"`
	Version        string `envconfig:"VERSION" default:"dev"`
}

// MockConfig holds configuration for the in-memory mock API server.
type MockConfig struct {
	Port          int    `envconfig:"PORT" default:"8081"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@negociacion.local"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" required:"true"`
	BcryptCost    int    `envconfig:"BCRYPT_COST" default:"12"`
	RequireAuth   bool   `envconfig:"REQUIRE_AUTH" default:"false"`
}

// Load reads admin configuration from ADMIN_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("admin", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadMock reads mock server configuration from MOCKAPI_* environment variables.
func LoadMock() (*MockConfig, error) {
	var cfg MockConfig
	if err := envconfig.Process("mockapi", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
