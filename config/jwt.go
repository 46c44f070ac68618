package config

import "time"

type Jwt struct {
	Secret       string `json:"secret" yaml:"secret"`
	ExpiresIn    int64  `json:"expires_in" yaml:"expires_in"` // 秒
	CookieSecure bool   `json:"cookie_secure" yaml:"cookie_secure"`
}

func (j *Jwt) Expire() time.Duration {
	return time.Duration(j.ExpiresIn) * time.Second
}

// Cursor 分页游标编码配置
type Cursor struct {
	Salt string `json:"salt" yaml:"salt"`
}

func ProvideCursorConfig(cfg *Config) *Cursor {
	return cfg.Cursor
}
