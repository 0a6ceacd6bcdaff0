package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Service    ServiceConfig    `mapstructure:"service"`
	DataSource DataSourceConfig `mapstructure:"dataSource"`
	Databases  DatabasesConfig  `mapstructure:"databases"`
	AWS        AWSConfig        `mapstructure:"aws"`
}

type ServiceConfig struct {
	Port        string   `mapstructure:"port"`
	LogLevel    string   `mapstructure:"logLevel"`
	LogFile     string   `mapstructure:"logFile"`
	CorsOrigins []string `mapstructure:"corsOrigins"`
}

type SourceDriver string

const (
	CSV      SourceDriver = "csv"
	S3       SourceDriver = "s3"
	POSTGRES SourceDriver = "postgres"
)

type DataSourceConfig struct {
	Driver      SourceDriver     `mapstructure:"driver"`
	CSV         CSVSourceConfig  `mapstructure:"csv"`
	S3          S3SourceConfig   `mapstructure:"s3"`
	RefreshCron string           `mapstructure:"refreshCron"`
	RedisCache  RedisCacheConfig `mapstructure:"redisCache"`
}

type CSVSourceConfig struct {
	Path string `mapstructure:"path"`
}

type S3SourceConfig struct {
	Bucket          string `mapstructure:"bucket"`
	Key             string `mapstructure:"key"`
	Endpoint        string `mapstructure:"endpoint"`
	PathStyle       bool   `mapstructure:"pathStyle"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
}

type RedisCacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	PasswordSecretID string `mapstructure:"passwordSecretId"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
	TLS      bool   `mapstructure:"tls"`
}

type AWSConfig struct {
	Region string `mapstructure:"region"`
}

// LoadConfig reads appsettings.yaml from path and, when env is set, merges
// appsettings.<env>.yaml on top. Environment variables override both, with dots replaced by
// underscores (DATASOURCE_CSV_PATH overrides dataSource.csv.path).
func LoadConfig(path string, env string) (*Config, error) {
	var cfg Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("appsettings")
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	if env != "" {
		v.SetConfigName("appsettings." + env)
		if err := v.MergeInConfig(); err != nil {
			return nil, err
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.port", "8080")
	v.SetDefault("service.logLevel", "info")
	v.SetDefault("service.corsOrigins", []string{"*"})
	v.SetDefault("dataSource.driver", string(CSV))
	v.SetDefault("dataSource.csv.path", "rent_roll.csv")
	v.SetDefault("dataSource.redisCache.ttl", "5m")
	v.SetDefault("aws.region", "us-east-1")
}
