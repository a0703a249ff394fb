package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const defaultEnvPath = "./configs/.env"

// Config reads settings from process env. Values from the dotenv file never override
// variables already set in the environment.
type Config struct {
}

func New() *Config {
	once.Do(func() {
		instance = load(os.Getenv("CONFIG_PATH"))
	})
	return instance
}

func load(path string) *Config {
	if path == "" {
		path = defaultEnvPath
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal("loading envs error: ", err)
	}
	return &Config{}
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (c *Config) GetIntOr(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
