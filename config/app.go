package config

type App struct {
	Env          string `json:"env" yaml:"env"`
	Debug        bool   `json:"debug" yaml:"debug"`
	ClientOrigin string `json:"client_origin" yaml:"client_origin"` // 前端地址, 用于 CORS
}
