//go:build wireinject
// +build wireinject

package main

import (
	"Orbit/config"
	"Orbit/dao"
	"Orbit/dao/cache"
	"Orbit/handler"
	"Orbit/pkg/client"
	"Orbit/pkg/database"
	"Orbit/pkg/oss"
	"Orbit/pkg/presence"
	"Orbit/pkg/server"
	"Orbit/pkg/socket"
	"Orbit/service"
	"Orbit/socket/process"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		config.ProvideCursorConfig,
		config.ProvideOssConfig,
		client.NewRedisClient,
		oss.NewClient,
		database.NewDB,

		presence.NewRegistry,
		socket.NewHub,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Story), "*"),
		wire.Struct(new(handler.Message), "*"),
		wire.Struct(new(handler.Media), "*"),
		wire.Struct(new(handler.Socket), "*"),
		wire.Struct(new(server.Handlers), "*"),
		server.NewGinEngine,

		wire.Struct(new(process.Heartbeat), "*"),
		wire.Bind(new(process.ExpiredCleaner), new(*service.StoryService)),
		process.NewStoryCleaner,
		wire.Struct(new(process.SubServers), "*"),
		process.NewServer,

		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil, nil
}
