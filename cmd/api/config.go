package main

import (
	"log"
	"os"

	"github.com/go-yaml/yaml"
	"github.com/kelseyhightower/envconfig"

	"github.com/totegamma/rolegate/core"
)

type Config struct {
	Server    Server           `yaml:"server"`
	Rolegate  core.ConfigInput `yaml:"rolegate"`
	Bootstrap Bootstrap        `yaml:"bootstrap"`
}

type Server struct {
	Dsn           string `yaml:"dsn" envconfig:"DSN"`
	RedisAddr     string `yaml:"redisAddr" envconfig:"REDIS_ADDR"`
	RedisDB       int    `yaml:"redisDB" envconfig:"REDIS_DB"`
	MemcachedAddr string `yaml:"memcachedAddr" envconfig:"MEMCACHED_ADDR"`
	ListenAddr    string `yaml:"listenAddr" envconfig:"LISTEN_ADDR"`
	EnableTrace   bool   `yaml:"enableTrace" envconfig:"ENABLE_TRACE"`
	TraceEndpoint string `yaml:"traceEndpoint" envconfig:"TRACE_ENDPOINT"`
}

// Bootstrap creates the first administrator when the user table is empty
type Bootstrap struct {
	Account  string `yaml:"account" envconfig:"BOOTSTRAP_ACCOUNT"`
	Password string `yaml:"password" envconfig:"BOOTSTRAP_PASSWORD"`
	Name     string `yaml:"name" envconfig:"BOOTSTRAP_NAME"`
	RoleName string `yaml:"roleName" envconfig:"BOOTSTRAP_ROLE"`
}

// Load loads config from given path, then applies ROLEGATE_* environment overrides
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatal("failed to open configuration file:", err)
			return err
		}
	} else {
		defer f.Close()

		err = yaml.NewDecoder(f).Decode(&c)
		if err != nil {
			log.Fatal("failed to load configuration file:", err)
			return err
		}
	}

	for _, section := range []any{&c.Server, &c.Rolegate, &c.Bootstrap} {
		if err := envconfig.Process("rolegate", section); err != nil {
			return err
		}
	}

	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = ":8000"
	}
	if c.Bootstrap.RoleName == "" {
		c.Bootstrap.RoleName = "admin"
	}
	if c.Bootstrap.Name == "" {
		c.Bootstrap.Name = c.Bootstrap.Account
	}

	return nil
}
