package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App    *App       `json:"app" yaml:"app"`
	Server *Server    `json:"server" yaml:"server"`
	Redis  *Redis     `json:"redis" yaml:"redis"`
	MySQL  *MySQL     `json:"mysql" yaml:"mysql"`
	Jwt    *Jwt       `json:"jwt" yaml:"jwt"`
	Cursor *Cursor    `json:"cursor" yaml:"cursor"`
	Log    *Log       `json:"log" yaml:"log"`
	Oss    *OssConfig `json:"oss" yaml:"oss"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	return conf
}

// Parse 解析 yaml 内容并补全缺省值
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}

	if conf.App == nil {
		conf.App = &App{Env: "dev"}
	}
	if conf.Server == nil {
		conf.Server = &Server{}
	}
	if conf.Server.Http == 0 {
		conf.Server.Http = 8080
	}
	if conf.Jwt == nil {
		conf.Jwt = &Jwt{}
	}
	if conf.Jwt.ExpiresIn <= 0 {
		conf.Jwt.ExpiresIn = 7 * 24 * 3600
	}
	if conf.Cursor == nil {
		conf.Cursor = &Cursor{}
	}
	if conf.Log == nil {
		conf.Log = &Log{}
	}
	if conf.Oss == nil {
		conf.Oss = &OssConfig{}
	}

	return &conf, nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
