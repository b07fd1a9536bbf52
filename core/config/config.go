package config

import (
	mlog "github.com/wlynxg/ifaddr/pkgs/log"

	"github.com/gogf/gf/v2/encoding/gjson"
	"github.com/gogf/gf/v2/os/gfile"
)

type Config struct {
	// Interface is used when the command line omits the interface
	// argument.
	Interface  string
	LogConfigs []mlog.CoreConfig
}

// Load reads the config from path. A missing or empty path yields the
// defaults; the file is never written back.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" && gfile.Exists(path) {
		load, err := gjson.Load(path)
		if err != nil {
			return nil, err
		}
		if err := load.Scan(&cfg); err != nil {
			return nil, err
		}
	}
	defaultConfig(cfg)
	return cfg, nil
}

func defaultConfig(cfg *Config) {
	if len(cfg.LogConfigs) == 0 {
		cfg.LogConfigs = []mlog.CoreConfig{{
			OutputType:  "console",
			OutputPath:  "stderr",
			Level:       "info",
			EncodeColor: true,
		}}
	}
}
