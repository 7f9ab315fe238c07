package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

// Public holds settings safe to log or expose.
type Public struct {
	Port              int           `yaml:"port"`
	LogLevel          string        `yaml:"log_level"`
	LogJSON           bool          `yaml:"log_json"`
	CorsOrigins       []string      `yaml:"cors_origins"`
	JwtTTL            time.Duration `yaml:"jwt_ttl"`
	BcryptCost        int           `yaml:"bcrypt_cost"`
	DefaultPageSize   int           `yaml:"default_page_size"`
	MaxPageSize       int           `yaml:"max_page_size"`
	MaxImageBytes     int64         `yaml:"max_image_bytes"`
	MaxImageDimension int           `yaml:"max_image_dimension"`
	DefaultProfileImg string        `yaml:"default_profile_img"` // url served when a user has no uploaded image
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
	Pg     Pg     `yaml:"pg"`
	S3     S3     `yaml:"s3"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type S3 struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
	// PublicBaseUrl is prepended to object keys to build client-facing urls.
	PublicBaseUrl string `yaml:"public_base_url"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
