package log

import (
	"os"
	"strconv"
	"strings"

	"Orbit/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var L *zap.Logger

func init() {
	L = zap.New(newCore(zapcore.AddSync(os.Stdout)), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

// Setup 按配置追加滚动文件输出, 未配置文件时保持 stdout
func Setup(conf *config.Log) {
	if conf == nil || conf.File == "" {
		return
	}

	file := zapcore.AddSync(&lumberjack.Logger{
		Filename:   conf.File,
		MaxSize:    conf.MaxSize,
		MaxBackups: conf.MaxBackups,
		MaxAge:     conf.MaxAge,
		Compress:   true,
	})

	core := zapcore.NewTee(newCore(zapcore.AddSync(os.Stdout)), newCore(file))
	L = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

func newCore(ws zapcore.WriteSyncer) zapcore.Core {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		projectName := "Orbit"

		index := strings.Index(caller.File, projectName)
		if index != -1 {
			enc.AppendString(caller.File[index:] + ":" + strconv.Itoa(caller.Line))
		} else {
			enc.AppendString(caller.TrimmedPath())
		}
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), ws, zap.InfoLevel)
}
