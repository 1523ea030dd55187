package config

// MetricsConfig holds metrics collection and exposure configuration
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active
	Enabled bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`

	// Port for the HTTP metrics server (Prometheus endpoint)
	Port int `mapstructure:"port" yaml:"port" json:"port" validate:"omitempty,min=1024,max=65535"`

	// Host to bind the metrics HTTP server (default: localhost for security)
	Host string `mapstructure:"host" yaml:"host" json:"host"`

	// Path for the metrics endpoint (default: /metrics)
	Path string `mapstructure:"path" yaml:"path" json:"path" validate:"omitempty,startswith=/"`
}
