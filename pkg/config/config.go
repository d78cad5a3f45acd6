package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataPath     = "list/byte.data"
	DefaultSortedSuffix = ".sorted"
	DefaultTreeDegree   = 32
)

type Config struct {
	Data     DataConfig     `yaml:"data"`
	Run      RunConfig      `yaml:"run"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

type DataConfig struct {
	Path         string `yaml:"path"`          // input file, one value per line
	SortedSuffix string `yaml:"sorted_suffix"` // appended to Path for the sorted output
}

type RunConfig struct {
	Representations []string `yaml:"representations"` // array, list, btree
	TreeDegree      int      `yaml:"tree_degree"`
}

type SnapshotConfig struct {
	Path string `yaml:"path"` // SQLite file; empty disables the snapshot
}

// SortedPath is where the sorted record set is written.
func (c *Config) SortedPath() string {
	return c.Data.Path + c.Data.SortedSuffix
}

func Load(configPath string) (*Config, error) {
	cfg := &Config{
		Data: DataConfig{
			Path:         DefaultDataPath,
			SortedSuffix: DefaultSortedSuffix,
		},
		Run: RunConfig{
			Representations: []string{"array", "list"},
			TreeDegree:      DefaultTreeDegree,
		},
	}

	if configPath == "" {
		for _, p := range []string{"configs/bytedata.yaml", "bytedata.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Data.Path == "" {
		cfg.Data.Path = DefaultDataPath
	}
	if cfg.Data.SortedSuffix == "" {
		cfg.Data.SortedSuffix = DefaultSortedSuffix
	}
	if len(cfg.Run.Representations) == 0 {
		cfg.Run.Representations = []string{"array", "list"}
	}
	if cfg.Run.TreeDegree < 2 {
		cfg.Run.TreeDegree = DefaultTreeDegree
	}
}
