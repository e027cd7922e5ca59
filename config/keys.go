package config

import (
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/teranos/ddgen/errors"
)

// CheckUnknownKeys decodes a TOML file against the Config schema and
// returns the keys it does not recognise, sorted. Viper ignores such keys
// when loading.
func CheckUnknownKeys(path string) ([]string, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	sort.Strings(unknown)
	return unknown, nil
}
