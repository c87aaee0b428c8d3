package logx

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})
}

type Logx struct {
	level   zapcore.Level
	dev     bool
	console bool
	sugar   *zap.SugaredLogger
}

func NewLogx(lvl zapcore.Level, dev bool, console bool) *Logx {
	return &Logx{level: lvl, dev: dev, console: console}
}

func LevelFromString(lvl string) zapcore.Level {
	switch lvl {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.DebugLevel
	}
}

// InitLogger wires the zap core. With console enabled, log lines go to
// stdout in console encoding; otherwise JSON lines go to w.
func (l *Logx) InitLogger(w io.Writer) {
	var sink zapcore.WriteSyncer
	if l.console {
		sink = zapcore.AddSync(os.Stdout)
	} else {
		sink = zapcore.AddSync(w)
	}

	var encCfg zapcore.EncoderConfig
	if l.dev {
		encCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.LevelKey = "LEVEL"
	encCfg.CallerKey = "CALLER"
	encCfg.TimeKey = "TIME"
	encCfg.NameKey = "NAME"
	encCfg.MessageKey = "MESSAGE"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if l.console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, sink, zap.NewAtomicLevelAt(l.level))
	l.sugar = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

func (l *Logx) Debug(args ...interface{}) { l.sugar.Debug(args...) }
func (l *Logx) Info(args ...interface{})  { l.sugar.Info(args...) }
func (l *Logx) Warn(args ...interface{})  { l.sugar.Warn(args...) }
func (l *Logx) Error(args ...interface{}) { l.sugar.Error(args...) }
func (l *Logx) Fatal(args ...interface{}) { l.sugar.Fatal(args...) }

func (l *Logx) Debugf(template string, args ...interface{}) { l.sugar.Debugf(template, args...) }
func (l *Logx) Infof(template string, args ...interface{})  { l.sugar.Infof(template, args...) }
func (l *Logx) Warnf(template string, args ...interface{})  { l.sugar.Warnf(template, args...) }
func (l *Logx) Errorf(template string, args ...interface{}) { l.sugar.Errorf(template, args...) }
func (l *Logx) Fatalf(template string, args ...interface{}) { l.sugar.Fatalf(template, args...) }

// Nop discards everything; front-ends use it when no logger was wired.
type Nop struct{}

func (Nop) Debug(args ...interface{})                    {}
func (Nop) Debugf(template string, args ...interface{})  {}
func (Nop) Info(args ...interface{})                     {}
func (Nop) Infof(template string, args ...interface{})   {}
func (Nop) Warn(args ...interface{})                     {}
func (Nop) Warnf(template string, args ...interface{})   {}
func (Nop) Error(args ...interface{})                    {}
func (Nop) Errorf(template string, args ...interface{})  {}
func (Nop) Fatal(args ...interface{})                    {}
func (Nop) Fatalf(template string, args ...interface{})  {}
