package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	Level    string
	JSON     bool
	FileName string // empty -> stdout only
	Stdout   io.Writer
}

// New builds the process logger. With a file name set, entries go to the
// writer and to a rotating log file.
func New(params SetupParams) *zap.Logger {
	var encoder zapcore.Encoder
	if params.JSON {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	var out io.Writer = os.Stdout
	if params.Stdout != nil {
		out = params.Stdout
	}
	sink := zapcore.AddSync(out)

	if params.FileName != "" {
		if !strings.HasSuffix(params.FileName, ".log") {
			params.FileName += ".log"
		}
		file := &lumberjack.Logger{
			Filename:   params.FileName,
			MaxSize:    50, // megabytes
			MaxBackups: 10,
			LocalTime:  false, // false -> use UTC
			Compress:   true,
		}
		sink = zapcore.NewMultiWriteSyncer(sink, zapcore.AddSync(file))
	}

	core := zapcore.NewCore(encoder, sink, GetLevel(params.Level))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

func GetLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
