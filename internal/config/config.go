package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	WordPress WordPressConfig `mapstructure:"wordpress"`
	Site      SiteConfig      `mapstructure:"site"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Port string    `mapstructure:"port"`
	TLS  TLSConfig `mapstructure:"tls"`
}

// TLSConfig holds TLS-specific configuration.
type TLSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	CertFile string `mapstructure:"certFile"`
	KeyFile  string `mapstructure:"keyFile"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // e.g., "debug", "info", "warn", "error"
	Format string `mapstructure:"format"` // e.g., "json", "console"
}

// WordPressConfig holds the connection details for the upstream WordPress
// REST API. Username and Password are optional; when both are set they are
// sent as an HTTP Basic header (application passwords work here), which is
// required for preview mode and the authenticated settings endpoint.
type WordPressConfig struct {
	SiteURL  string `mapstructure:"site_url"`
	APIURL   string `mapstructure:"api_url"`
	MenusURL string `mapstructure:"menus_url"`
	// ACFURL is the Advanced Custom Fields REST base. Carried as
	// connection surface alongside the other endpoint URLs; ACF data
	// itself arrives inline via the acf_format query parameter.
	ACFURL   string `mapstructure:"acf_url"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// HasCredentials reports whether both halves of the Basic auth pair are set.
func (w WordPressConfig) HasCredentials() bool {
	return w.Username != "" && w.Password != ""
}

// SiteConfig holds presentation-side settings for the rendered site.
type SiteConfig struct {
	// PublicURL is the externally visible base URL, used for canonical
	// links and the sitemap.
	PublicURL        string `mapstructure:"public_url"`
	PostsPerPage     int    `mapstructure:"posts_per_page"`
	PlaceholderImage string `mapstructure:"placeholder_image"`
	MenuSlug         string `mapstructure:"menu_slug"`
	MenuLocation     string `mapstructure:"menu_location"`
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	// Set default values. The WordPress defaults point at a local
	// development instance.
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("wordpress.site_url", "http://localhost:8000")
	viper.SetDefault("wordpress.api_url", "http://localhost:8000/wp-json/wp/v2")
	viper.SetDefault("wordpress.menus_url", "http://localhost:8000/wp-json/wp/v2/menus")
	viper.SetDefault("wordpress.acf_url", "http://localhost:8000/wp-json/acf/v3")
	viper.SetDefault("site.public_url", "http://localhost:8080")
	viper.SetDefault("site.posts_per_page", 6)
	viper.SetDefault("site.placeholder_image", "/static/placeholder.svg")
	viper.SetDefault("site.menu_slug", "main")
	viper.SetDefault("site.menu_location", "primary")

	// Set up viper to read from config file
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("/etc/go-wp-front/")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return nil, err
		}
		// Config file not found; proceed with defaults and env vars
	}

	// Set up viper to read from environment variables
	viper.SetEnvPrefix("WPFRONT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Unmarshal the config into the Config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
