package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bnb-chain/subgraph-store/cache"
	"github.com/bnb-chain/subgraph-store/types"
)

type Config struct {
	LogConfig     LogConfig     `json:"log_config"`
	DBConfig      DBConfig      `json:"db_config"`
	CacheConfig   CacheConfig   `json:"cache_config"`
	MetricsConfig MetricsConfig `json:"metrics_config"`
	ServerConfig  ServerConfig  `json:"server_config"`
	Sites         []SiteConfig  `json:"sites"` // Sites is the deployment to shard mapping of the deployments served by this process
}

func (c *Config) Validate() {
	c.LogConfig.Validate()
	c.DBConfig.Validate()
	seen := make(map[string]bool, len(c.Sites))
	for i := range c.Sites {
		c.Sites[i].Validate()
		if seen[c.Sites[i].Deployment] {
			panic(fmt.Sprintf("deployment %s is listed in sites more than once", c.Sites[i].Deployment))
		}
		seen[c.Sites[i].Deployment] = true
	}
}

type SiteConfig struct {
	ID         int32  `json:"id"`         // ID is the id of the deployment's rows in its shard
	Deployment string `json:"deployment"` // Deployment is the deployment hash
	Network    string `json:"network"`
	Shard      string `json:"shard"`
}

func (cfg *SiteConfig) Validate() {
	if err := types.ValidateDeploymentHash(cfg.Deployment); err != nil {
		panic(fmt.Sprintf("invalid site: %s", err.Error()))
	}
	if cfg.Network == "" || cfg.Shard == "" {
		panic(fmt.Sprintf("site of %s must have a network and a shard", cfg.Deployment))
	}
}

type ServerConfig struct {
	Address string `json:"address"`
}

func (cfg *ServerConfig) GetAddress() string {
	if cfg.Address != "" {
		return cfg.Address
	}
	return DefaultServerAddress
}

type MetricsConfig struct {
	Enable      bool   `json:"enable"`
	HttpAddress string `json:"http_address"`
}

type CacheConfig struct {
	CacheSize uint64 `json:"cache_size"`
}

func (c *CacheConfig) GetCacheSize() uint64 {
	if c.CacheSize != 0 {
		return c.CacheSize
	}
	return cache.DefaultCacheSize
}

type DBConfig struct {
	Dialect       string `json:"dialect"`
	KeyType       string `json:"key_type"`
	AWSRegion     string `json:"aws_region"`
	AWSSecretName string `json:"aws_secret_name"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	Url           string `json:"url"`
	MaxIdleConns  int    `json:"max_idle_conns"`
	MaxOpenConns  int    `json:"max_open_conns"`
}

func (cfg *DBConfig) Validate() {
	if cfg.Dialect != DBDialectMysql && cfg.Dialect != DBDialectSqlite3 && cfg.Dialect != DBDialectPostgres {
		panic(fmt.Sprintf("only %s, %s and %s supported", DBDialectMysql, DBDialectSqlite3, DBDialectPostgres))
	}
	if cfg.Dialect != DBDialectSqlite3 && (cfg.Username == "" || cfg.Url == "") {
		panic("db config is not correct, missing username and/or url")
	}
	if cfg.Dialect == DBDialectSqlite3 && cfg.Url == "" {
		panic("db config is not correct, missing url")
	}
	if cfg.MaxIdleConns == 0 || cfg.MaxOpenConns == 0 {
		panic("db connections is not correct")
	}
	if cfg.KeyType == KeyTypeAWSPrivateKey && (cfg.AWSRegion == "" || cfg.AWSSecretName == "") {
		panic("aws_region and aws_secret_name are required for aws_private_key")
	}
}

type LogConfig struct {
	Level                        string `json:"level"`
	Filename                     string `json:"filename"`
	MaxFileSizeInMB              int    `json:"max_file_size_in_mb"`
	MaxBackupsOfLogFiles         int    `json:"max_backups_of_log_files"`
	MaxAgeToRetainLogFilesInDays int    `json:"max_age_to_retain_log_files_in_days"`
	UseConsoleLogger             bool   `json:"use_console_logger"`
	UseFileLogger                bool   `json:"use_file_logger"`
	Compress                     bool   `json:"compress"`
}

func (cfg *LogConfig) Validate() {
	if cfg.UseFileLogger {
		if cfg.Filename == "" {
			panic("filename should not be empty if use file logger")
		}
		if cfg.MaxFileSizeInMB <= 0 {
			panic("max_file_size_in_mb should be larger than 0 if use file logger")
		}
		if cfg.MaxBackupsOfLogFiles <= 0 {
			panic("max_backups_off_log_files should be larger than 0 if use file logger")
		}
	}
}

func ParseConfigFromJson(content string) *Config {
	var config Config
	if err := json.Unmarshal([]byte(content), &config); err != nil {
		panic(err)
	}
	return &config
}

func ParseConfigFromFile(filePath string) *Config {
	bz, err := os.ReadFile(filePath)
	if err != nil {
		panic(err)
	}
	return ParseConfigFromJson(string(bz))
}
