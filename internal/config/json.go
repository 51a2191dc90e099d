package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations accept either Go duration strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		ResetTokenTTL    Duration `json:"reset_token_ttl"`
		PasswordHashCost int      `json:"password_hash_cost"`
		FrontendURL      string   `json:"frontend_url"`
		LogLevel         string   `json:"log_level"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN            string `json:"dsn"`
			Name           string `json:"name"`
			ConnectRetries uint64 `json:"connect_retries"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Mail struct {
		Transport    string `json:"transport"`
		SMTPHost     string `json:"smtp_host"`
		SMTPPort     int    `json:"smtp_port"`
		SMTPUser     string `json:"smtp_user"`
		SMTPPassword string `json:"smtp_password"`
		SMTPSecure   bool   `json:"smtp_secure"`
		From         string `json:"from"`
		APIURL       string `json:"api_url"`
		APIKey       string `json:"api_key"`
	} `json:"mail,omitempty"`

	Workers struct {
		ResetTokenCleanupInterval Duration `json:"reset_token_cleanup_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			ResetTokenTTL:    time.Duration(jsonCfg.App.ResetTokenTTL),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			FrontendURL:      jsonCfg.App.FrontendURL,
			LogLevel:         jsonCfg.App.LogLevel,
			Version:          jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:            jsonCfg.Storage.DB.DSN,
				Name:           jsonCfg.Storage.DB.Name,
				ConnectRetries: jsonCfg.Storage.DB.ConnectRetries,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Mail: Mail{
			Transport:    jsonCfg.Mail.Transport,
			SMTPHost:     jsonCfg.Mail.SMTPHost,
			SMTPPort:     jsonCfg.Mail.SMTPPort,
			SMTPUser:     jsonCfg.Mail.SMTPUser,
			SMTPPassword: jsonCfg.Mail.SMTPPassword,
			SMTPSecure:   jsonCfg.Mail.SMTPSecure,
			From:         jsonCfg.Mail.From,
			APIURL:       jsonCfg.Mail.APIURL,
			APIKey:       jsonCfg.Mail.APIKey,
		},
		Workers: Workers{
			ResetTokenCleanupInterval: time.Duration(jsonCfg.Workers.ResetTokenCleanupInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
