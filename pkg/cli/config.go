package cli

import (
	"fmt"
	"strings"

	"photo-vault-go/pkg/config"

	"github.com/pelletier/go-toml/v2"
)

// ShowConfig displays the current configuration
func (a *App) ShowConfig() {
	data, err := toml.Marshal(a.cfg)
	if err != nil {
		fmt.Printf("Error marshaling config: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// SetConfig sets a configuration value
// Format: section.key=value (e.g., "database.url=postgres://...")
func (a *App) SetConfig(setStr string) error {
	parts := strings.SplitN(setStr, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid format: expected 'section.key=value'")
	}

	keyPath := strings.Split(parts[0], ".")
	value := parts[1]

	if len(keyPath) != 2 {
		return fmt.Errorf("invalid key format: expected 'section.key'")
	}

	section := keyPath[0]
	key := keyPath[1]

	switch section {
	case "database":
		switch key {
		case "url":
			a.cfg.Database.URL = value
		default:
			return fmt.Errorf("unknown database key: %s", key)
		}
	case "api":
		switch key {
		case "host":
			a.cfg.API.Host = value
		case "port":
			var port int
			if _, err := fmt.Sscanf(value, "%d", &port); err != nil {
				return fmt.Errorf("invalid port value: %s", value)
			}
			a.cfg.API.Port = port
		default:
			return fmt.Errorf("unknown api key: %s", key)
		}
	case "storage":
		switch key {
		case "region":
			a.cfg.Storage.Region = value
		case "bucket":
			a.cfg.Storage.Bucket = value
		case "access_key_id":
			a.cfg.Storage.AccessKeyID = value
		case "secret_access_key":
			a.cfg.Storage.SecretAccessKey = value
		case "endpoint":
			a.cfg.Storage.Endpoint = value
		case "presign_put_ttl":
			var ttl int
			if _, err := fmt.Sscanf(value, "%d", &ttl); err != nil {
				return fmt.Errorf("invalid presign_put_ttl value: %s", value)
			}
			a.cfg.Storage.PresignPutTTLSeconds = ttl
		default:
			return fmt.Errorf("unknown storage key: %s", key)
		}
	case "cli":
		switch key {
		case "base_url":
			a.cfg.CLI.BaseURL = value
		case "share_base_url":
			a.cfg.CLI.ShareBaseURL = value
		case "api_key":
			a.cfg.CLI.APIKey = value
		case "poll_interval":
			var interval int
			if _, err := fmt.Sscanf(value, "%d", &interval); err != nil {
				return fmt.Errorf("invalid poll_interval value: %s", value)
			}
			a.cfg.CLI.PollInterval = interval
		default:
			return fmt.Errorf("unknown cli key: %s", key)
		}
	default:
		return fmt.Errorf("unknown section: %s", section)
	}

	return config.Save(a.cfg)
}
