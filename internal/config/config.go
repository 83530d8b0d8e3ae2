package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Storage    Storage `yaml:"storage"`
	Redis      Redis   `yaml:"redis"`
	AI         AI      `yaml:"ai"`
}

type Storage struct {
	Driver     string        `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"STORAGE_SESSION_TTL" env-default:"24h"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type AI struct {
	Difficulty float64       `yaml:"difficulty" env:"AI_DIFFICULTY" env-default:"0.9"`
	MoveDelay  time.Duration `yaml:"move-delay" env:"AI_MOVE_DELAY" env-default:"500ms"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	if that.Storage.Driver != StorageMemory && that.Storage.Driver != StorageRedis {
		return fmt.Errorf("unknown storage driver %q", that.Storage.Driver)
	}

	if that.AI.Difficulty < 0 || that.AI.Difficulty > 1 {
		return fmt.Errorf("ai difficulty %v is out of [0, 1]", that.AI.Difficulty)
	}

	if that.AI.MoveDelay < 0 {
		return fmt.Errorf("ai move delay %v is negative", that.AI.MoveDelay)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
