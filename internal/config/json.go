package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Environment string `json:"environment"`
		Version     string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			Host     string `json:"host"`
			User     string `json:"user"`
			Password string `json:"password"`
			Name     string `json:"name"`
			Port     int    `json:"port"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Sessions struct {
		Secret          string   `json:"secret"`
		CookieName      string   `json:"cookie_name"`
		TTL             Duration `json:"ttl"`
		CleanupInterval Duration `json:"cleanup_interval"`
	} `json:"sessions,omitempty"`

	Auth struct {
		BcryptCost        int      `json:"bcrypt_cost"`
		RateLimitAttempts int      `json:"rate_limit_attempts"`
		RateLimitWindow   Duration `json:"rate_limit_window"`
	} `json:"auth,omitempty"`

	Assets struct {
		CSSDir          string `json:"css_dir"`
		ImagesDir       string `json:"images_dir"`
		HTMLDir         string `json:"html_dir"`
		ReleaseNotesDir string `json:"release_notes_dir"`
	} `json:"assets,omitempty"`
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
			Environment: jsonCfg.App.Environment,
			Version:     jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				Host:     jsonCfg.Storage.DB.Host,
				User:     jsonCfg.Storage.DB.User,
				Password: jsonCfg.Storage.DB.Password,
				Name:     jsonCfg.Storage.DB.Name,
				Port:     jsonCfg.Storage.DB.Port,
			},
		},
		Sessions: Sessions{
			Secret:          jsonCfg.Sessions.Secret,
			CookieName:      jsonCfg.Sessions.CookieName,
			TTL:             time.Duration(jsonCfg.Sessions.TTL),
			CleanupInterval: time.Duration(jsonCfg.Sessions.CleanupInterval),
		},
		Auth: Auth{
			BcryptCost:        jsonCfg.Auth.BcryptCost,
			RateLimitAttempts: jsonCfg.Auth.RateLimitAttempts,
			RateLimitWindow:   time.Duration(jsonCfg.Auth.RateLimitWindow),
		},
		Assets: Assets{
			CSSDir:          jsonCfg.Assets.CSSDir,
			ImagesDir:       jsonCfg.Assets.ImagesDir,
			HTMLDir:         jsonCfg.Assets.HTMLDir,
			ReleaseNotesDir: jsonCfg.Assets.ReleaseNotesDir,
		},
		JSONFilePath: "",
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
