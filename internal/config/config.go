package configs

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	"xmirrord/internal/log"
)

const EnvPrefix = "XMIRRORD_"

// DefaultPaths are tried in order when XMIRRORD_CONFIG does not name a
// readable file. JSON documents are valid YAML, so both go through yaml.v3.
var DefaultPaths = []string{
	"/etc/xmirror/xmirrord.yml",
	"/etc/xmirror/xmirrord.json",
}

type ServerConf struct {
	BindAddr             string        `yaml:"bind_addr" json:"bind_addr"`
	DatabaseUrl          string        `yaml:"database_url" json:"database_url"`
	DatabasePoolSize     int           `yaml:"database_pool_size" json:"database_pool_size"`
	DatabaseFetchWorkers int           `yaml:"database_fetch_workers" json:"database_fetch_workers"`
	FilesDir             string        `yaml:"files_dir" json:"files_dir"`
	LogLevel             string        `yaml:"log_level" json:"log_level"`
	AllowOrigin          []string      `yaml:"allow_origin" json:"allow_origin"`
	ReadTimeout          time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout         time.Duration `yaml:"write_timeout" json:"write_timeout"`
}

func DefaultServerConf() ServerConf {
	return ServerConf{
		BindAddr:             "localhost:8080",
		DatabaseUrl:          "redis://localhost:6379",
		DatabasePoolSize:     8,
		DatabaseFetchWorkers: 1,
		FilesDir:             ".",
		LogLevel:             "INFO",
		ReadTimeout:          15 * time.Second,
		WriteTimeout:         15 * time.Second,
	}
}

func ErrHandler(op string, err error) {
	if err != nil {
		log.Fatalf("%s found error: %v", op, err)
	}
}

// NewServerConfig loads the configuration and exits the process on failure.
func NewServerConfig() *ServerConf {
	conf, err := Load()
	ErrHandler("loading config", err)
	return conf
}

// Load applies, lowest precedence first: built-in defaults, the first existing
// file among $XMIRRORD_CONFIG and DefaultPaths, then XMIRRORD_* variables.
func Load() (*ServerConf, error) {
	paths := append([]string{os.Getenv(EnvPrefix + "CONFIG")}, DefaultPaths...)
	return LoadFrom(paths, os.LookupEnv)
}

func LoadFrom(paths []string, lookup func(string) (string, bool)) (*ServerConf, error) {
	conf := DefaultServerConf()
	for _, p := range paths {
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		log.Infof("Loading configs from %s", p)
		ymlFile, err := ioutil.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", p, err)
		}
		if err := yaml.Unmarshal(ymlFile, &conf); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", p, err)
		}
		break
	}
	if err := conf.applyEnv(lookup); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *ServerConf) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("env %s%s: %w", EnvPrefix, name, err)
		}
		*dst = n
		return nil
	}
	dur := func(name string, dst *time.Duration) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("env %s%s: %w", EnvPrefix, name, err)
		}
		*dst = d
		return nil
	}

	str("BIND_ADDR", &c.BindAddr)
	str("DATABASE_URL", &c.DatabaseUrl)
	str("FILES_DIR", &c.FilesDir)
	str("LOG_LEVEL", &c.LogLevel)
	if v, ok := lookup(EnvPrefix + "ALLOW_ORIGIN"); ok {
		c.AllowOrigin = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.AllowOrigin = append(c.AllowOrigin, o)
			}
		}
	}
	if err := num("DATABASE_POOL_SIZE", &c.DatabasePoolSize); err != nil {
		return err
	}
	if err := num("DATABASE_FETCH_WORKERS", &c.DatabaseFetchWorkers); err != nil {
		return err
	}
	if err := dur("READ_TIMEOUT", &c.ReadTimeout); err != nil {
		return err
	}
	return dur("WRITE_TIMEOUT", &c.WriteTimeout)
}

func (c *ServerConf) Validate() error {
	if c.BindAddr == "" {
		return errors.New("bind_addr must not be empty")
	}
	if c.DatabaseUrl == "" {
		return errors.New("database_url must not be empty")
	}
	if c.DatabasePoolSize < 1 {
		return fmt.Errorf("database_pool_size must be positive, got %d", c.DatabasePoolSize)
	}
	if c.DatabaseFetchWorkers < 1 {
		return fmt.Errorf("database_fetch_workers must be positive, got %d", c.DatabaseFetchWorkers)
	}
	return nil
}
