package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/deepch/mkv/utils/timescale"
)

type Config struct {
	Path string `yaml:"path"`

	// Offset and Length locate one Cluster element inside the file.
	// A zero Length runs to the end of the file.
	Offset int64 `yaml:"offset"`
	Length int64 `yaml:"length"`

	Capacity int `yaml:"capacity"`

	// Track selects the blocks to dump, 0 dumps every track.
	Track uint64 `yaml:"track"`
	// Codec is the Matroska CodecID of Track, e.g. V_VP8.
	Codec string `yaml:"codec"`

	TimecodeScale uint64 `yaml:"timecode_scale"`

	// Listen enables /metrics and /relay when set.
	Listen string `yaml:"listen"`

	LogLevel LogLevel `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Capacity:      8,
		Track:         1,
		TimecodeScale: timescale.DefaultTimecodeScale,
		LogLevel:      LogLevelInfo,
	}
}

// LoadConfig reads the optional YAML file named by -config, then applies
// the flags set on the command line on top of it.
func LoadConfig(args []string) (*Config, error) {
	cfg := DefaultConfig()
	flags := *cfg

	fs := flag.NewFlagSet("mkvdump", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to YAML config file")
	fs.StringVar(&flags.Path, "file", cfg.Path, "Matroska file to read")
	fs.Int64Var(&flags.Offset, "offset", cfg.Offset, "Byte offset of the cluster")
	fs.Int64Var(&flags.Length, "length", cfg.Length, "Byte length of the cluster, 0 for the rest of the file")
	fs.IntVar(&flags.Capacity, "capacity", cfg.Capacity, "Maximum simple blocks per cluster")
	fs.Uint64Var(&flags.Track, "track", cfg.Track, "Track number to dump, 0 for all")
	fs.StringVar(&flags.Codec, "codec", cfg.Codec, "Matroska CodecID of the track")
	fs.Uint64Var(&flags.TimecodeScale, "timecode-scale", cfg.TimecodeScale, "Segment TimecodeScale in nanoseconds")
	fs.StringVar(&flags.Listen, "listen", cfg.Listen, "Address serving /metrics and /relay")
	logLevel := fs.String("log-level", cfg.LogLevel.String(), "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", *configPath, err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", *configPath, err)
		}
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.Path = flags.Path
		case "offset":
			cfg.Offset = flags.Offset
		case "length":
			cfg.Length = flags.Length
		case "capacity":
			cfg.Capacity = flags.Capacity
		case "track":
			cfg.Track = flags.Track
		case "codec":
			cfg.Codec = flags.Codec
		case "timecode-scale":
			cfg.TimecodeScale = flags.TimecodeScale
		case "listen":
			cfg.Listen = flags.Listen
		case "log-level":
			cfg.LogLevel, err = ParseLogLevel(*logLevel)
		}
	})
	if err != nil {
		return nil, err
	}

	if cfg.Path == "" && fs.NArg() > 0 {
		cfg.Path = fs.Arg(0)
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	var problems []string
	if c.Path == "" {
		problems = append(problems, "no input file")
	}
	if c.Offset < 0 {
		problems = append(problems, "negative offset")
	}
	if c.Length < 0 {
		problems = append(problems, "negative length")
	}
	if c.Capacity < 0 {
		problems = append(problems, "negative capacity")
	}
	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, ", "))
	}
	return nil
}

// Cluster returns the configured window of data.
func (c *Config) Cluster(data []byte) ([]byte, error) {
	size := int64(len(data))
	if c.Offset > size {
		return nil, fmt.Errorf("offset %d beyond end of file (%d bytes)", c.Offset, size)
	}
	end := size
	if c.Length > 0 {
		end = c.Offset + c.Length
		if end > size {
			return nil, fmt.Errorf("cluster %d+%d beyond end of file (%d bytes)", c.Offset, c.Length, size)
		}
	}
	return data[c.Offset:end], nil
}
