package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-service/app/config"
)

func TestConfig_Load(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    *config.Config
		wantErr bool
	}{
		{
			name: "default configuration",
			envVars: map[string]string{
				"DB_PASSWORD": "test_password",
			},
			want: &config.Config{
				Port:                "3000",
				Host:                "0.0.0.0",
				LogLevel:            "info",
				DatabaseHost:        "localhost",
				DatabasePort:        "10708",
				DatabaseName:        "content_db",
				DatabaseUser:        "content_user",
				DatabasePassword:    "test_password",
				DatabaseSSLEnabled:  false,
				DatabaseSSLRootCert: "./ca-certificate.crt",
				EnableMetrics:       true,
			},
			wantErr: false,
		},
		{
			name: "custom configuration",
			envVars: map[string]string{
				"PORT":             "8080",
				"HOST":             "127.0.0.1",
				"LOG_LEVEL":        "debug",
				"DB_HOST":          "custom-host",
				"DB_PORT":          "5433",
				"DB_NAME":          "custom_db",
				"DB_USER":          "custom_user",
				"DB_PASSWORD":      "custom_pass",
				"DB_SSL_ENABLED":   "true",
				"DB_SSL_ROOT_CERT": "/etc/ssl/certs/db-ca.crt",
				"ENABLE_METRICS":   "false",
			},
			want: &config.Config{
				Port:                "8080",
				Host:                "127.0.0.1",
				LogLevel:            "debug",
				DatabaseHost:        "custom-host",
				DatabasePort:        "5433",
				DatabaseName:        "custom_db",
				DatabaseUser:        "custom_user",
				DatabasePassword:    "custom_pass",
				DatabaseSSLEnabled:  true,
				DatabaseSSLRootCert: "/etc/ssl/certs/db-ca.crt",
				EnableMetrics:       false,
			},
			wantErr: false,
		},
		{
			name: "missing required fields",
			envVars: map[string]string{
				"PORT": "3000",
				// Missing DB_PASSWORD
			},
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup environment variables
			for key, value := range tt.envVars {
				os.Setenv(key, value)
				defer os.Unsetenv(key)
			}

			got, err := config.Load()

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *config.Config
		wantErr bool
	}{
		{
			name: "valid configuration",
			config: &config.Config{
				Port:                "3000",
				Host:                "0.0.0.0",
				LogLevel:            "info",
				DatabaseHost:        "localhost",
				DatabasePort:        "10708",
				DatabaseName:        "content_db",
				DatabaseUser:        "content_user",
				DatabasePassword:    "password",
				DatabaseSSLRootCert: "./ca-certificate.crt",
				EnableMetrics:       true,
			},
			wantErr: false,
		},
		{
			name: "invalid port",
			config: &config.Config{
				Port:             "invalid_port",
				LogLevel:         "info",
				DatabasePort:     "10708",
				DatabasePassword: "password",
			},
			wantErr: true,
		},
		{
			name: "port out of range",
			config: &config.Config{
				Port:             "70000",
				LogLevel:         "info",
				DatabasePort:     "10708",
				DatabasePassword: "password",
			},
			wantErr: true,
		},
		{
			name: "invalid database port",
			config: &config.Config{
				Port:             "3000",
				LogLevel:         "info",
				DatabasePort:     "not_a_port",
				DatabasePassword: "password",
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: &config.Config{
				Port:             "3000",
				LogLevel:         "invalid_level",
				DatabasePort:     "10708",
				DatabasePassword: "password",
			},
			wantErr: true,
		},
		{
			name: "ssl enabled without root cert",
			config: &config.Config{
				Port:                "3000",
				LogLevel:            "info",
				DatabasePort:        "10708",
				DatabasePassword:    "password",
				DatabaseSSLEnabled:  true,
				DatabaseSSLRootCert: "   ",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
