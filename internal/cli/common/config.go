package common

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadWithIncludes reads the base config file and merges includes in order.
// Later includes win on key conflicts.
func LoadWithIncludes(base string, includes []string) (*viper.Viper, error) {
	v := viper.New()
	if base != "" {
		v.SetConfigFile(base)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	for _, inc := range includes {
		iv := viper.New()
		iv.SetConfigFile(inc)
		if err := iv.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("include %s: %w", inc, err)
		}
		v.MergeConfigMap(iv.AllSettings())
	}
	return v, nil
}
