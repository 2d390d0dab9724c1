package config

import (
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	Database DatabaseConfig `json:"database" yaml:"database"`
	Redis    RedisConfig    `json:"redis,optional" yaml:"redis,optional"`
	Audit    AuditConfig    `json:"audit,optional" yaml:"audit,optional"`
}

type DatabaseConfig struct {
	Driver     string `json:"driver,optional" yaml:"driver,optional"`
	DataSource string `json:"datasource,optional" yaml:"datasource,optional"`
}

type RedisConfig struct {
	Addr       string `json:"addr,optional" yaml:"addr,optional"`
	Password   string `json:"password,optional" yaml:"password,optional"`
	DB         int    `json:"db,optional" yaml:"db,optional"`
	TTLSeconds int    `json:"ttl_seconds,optional" yaml:"ttl_seconds,optional"`
}

type AuditConfig struct {
	Path string `json:"path,optional" yaml:"path,optional"`
}
