package config

// Config represents the complete configuration structure
type Config struct {
	Uber    UberConfig    `mapstructure:"uber"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UberConfig holds the application credentials and API endpoints
type UberConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ServerToken  string `mapstructure:"server_token"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURI  string `mapstructure:"redirect_uri"`
	APIURL       string `mapstructure:"api_url"`
	AuthURL      string `mapstructure:"auth_url"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
