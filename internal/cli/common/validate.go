package common

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

func fileExists(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return nil
}

func ValidateAddr(addr string) error {
	if addr == "" {
		return fmt.Errorf("empty address")
	}
	if _, err := net.ResolveTCPAddr("tcp", addr); err != nil {
		return err
	}
	return nil
}

var knownDrivers = map[string]bool{
	"":         true,
	"sqlite":   true,
	"postgres": true,
}

// ValidateAdminConfig checks the admin service config for mistakes that
// otherwise only surface at boot time. strict additionally requires the
// audit directory to exist when an audit path is set.
func ValidateAdminConfig(v *viper.Viper, strict bool) error {
	if v.GetString("Name") == "" {
		return fmt.Errorf("Name missing")
	}
	if port := v.GetInt("Port"); port <= 0 || port > 65535 {
		return fmt.Errorf("Port: out of range: %d", port)
	}
	driver := v.GetString("database.driver")
	if !knownDrivers[driver] {
		return fmt.Errorf("database.driver: unknown driver %q", driver)
	}
	if driver == "postgres" && v.GetString("database.datasource") == "" {
		return fmt.Errorf("database.datasource missing for postgres")
	}
	if addr := v.GetString("redis.addr"); addr != "" {
		if err := ValidateAddr(addr); err != nil {
			return fmt.Errorf("redis.addr: %w", err)
		}
	}
	if ttl := v.GetInt("redis.ttl_seconds"); ttl < 0 {
		return fmt.Errorf("redis.ttl_seconds: must not be negative")
	}
	if p := v.GetString("audit.path"); p != "" && strict {
		if err := fileExists(filepath.Dir(filepath.Clean(p))); err != nil {
			return fmt.Errorf("audit.path: %w", err)
		}
	}
	return nil
}
