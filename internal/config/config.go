package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string          `yaml:"env" env:"ENV" env-default:"local"`
	DatabaseUrl string          `yaml:"database_url" env:"DATABASE_URL" env-required:"true"`
	Server      ServerConfig    `yaml:"rest"`
	JWT         JWTSecret       `yaml:"jwt"`
	Scheduler   SchedulerConfig `yaml:"scheduler"`
	Report      ReportConfig    `yaml:"report"`
}

type ServerConfig struct {
	Port           string   `yaml:"port" env:"REST_PORT" env-default:"8080"`
	AllowedOrigins []string `yaml:"allowed_origins" env-default:"http://localhost:3000"`
}

type JWTSecret struct {
	Secret string `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
}

type SchedulerConfig struct {
	SessionPurgeInterval time.Duration `yaml:"session_purge_interval" env-default:"1h"`
}

type ReportConfig struct {
	FetchTimeout time.Duration `yaml:"fetch_timeout" env-default:"5s"`
}

func MustLoad() *Config {
	path := fetchConfigPath()

	if path == "" {
		panic("Config file not found in path")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		panic("Config file not found in path")
	}

	var config Config
	log.Printf("Loading config from %s", path)
	if err := cleanenv.ReadConfig(path, &config); err != nil {
		panic(err)
	}
	return &config
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "./config/local.yaml", "config path")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
