package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config is the full configuration surface. DatabaseURL kosong atau koneksi
// gagal berarti aplikasi jalan dalam mode lokal (state di memori), bukan
// error fatal.
type Config struct {
	Port        string `envconfig:"PORT" default:"3000"`
	DatabaseURL string `envconfig:"DATABASE_URL"`

	JWTSecret     string `envconfig:"JWT_SECRET" default:"your-super-secret-key-change-in-production"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@example.com"`
	AdminName     string `envconfig:"ADMIN_NAME" default:"Administrator"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
