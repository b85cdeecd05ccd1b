package logx

import (
	"io"
	"os"
	"sort"

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
	// Named returns a child logger tagged with a component name
	Named(name string) Logger
	// With returns a child logger carrying key/value pairs
	With(args ...interface{}) Logger
	Sync() error
}

type Logx struct {
	level       zapcore.Level
	dev         bool
	console     bool
	sugarLogger *zap.SugaredLogger
}

func NewLogx(lvl zapcore.Level, dev bool, console bool) *Logx {
	return &Logx{level: lvl, dev: dev, console: console}
}

// NewNop discards everything; used by tests and when no log file can be opened
func NewNop() *Logx {
	return &Logx{level: zapcore.FatalLevel, sugarLogger: zap.NewNop().Sugar()}
}

var loggerLevelMap = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

func GetLoggerLevelByString(lvl string) zapcore.Level {
	level, exist := loggerLevelMap[lvl]
	if !exist {
		return zapcore.DebugLevel
	}
	return level
}

func LevelNames() []string {
	out := make([]string, 0, len(loggerLevelMap))
	for k := range loggerLevelMap {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return loggerLevelMap[out[i]] < loggerLevelMap[out[j]]
	})
	return out
}

func (l *Logx) InitLogger(w io.Writer) {
	var logWriter zapcore.WriteSyncer
	if l.console || w == nil {
		logWriter = zapcore.AddSync(os.Stdout)
	} else {
		logWriter = zapcore.AddSync(w)
	}

	var encoderCfg zapcore.EncoderConfig
	if l.dev {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderCfg = zap.NewProductionEncoderConfig()
	}
	encoderCfg.LevelKey = "LEVEL"
	encoderCfg.CallerKey = "CALLER"
	encoderCfg.TimeKey = "TIME"
	encoderCfg.NameKey = "NAME"
	encoderCfg.MessageKey = "MESSAGE"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if l.console {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, logWriter, zap.NewAtomicLevelAt(l.level))
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	l.sugarLogger = logger.Sugar()
}

func (l *Logx) sugar() *zap.SugaredLogger {
	if l.sugarLogger == nil {
		l.sugarLogger = zap.NewNop().Sugar()
	}
	return l.sugarLogger
}

func (l *Logx) Named(name string) Logger {
	return &Logx{level: l.level, dev: l.dev, console: l.console, sugarLogger: l.sugar().Named(name)}
}

func (l *Logx) With(args ...interface{}) Logger {
	return &Logx{level: l.level, dev: l.dev, console: l.console, sugarLogger: l.sugar().With(args...)}
}

func (l *Logx) Sync() error {
	return l.sugar().Sync()
}

func (l *Logx) Debug(args ...interface{}) {
	l.sugar().Debug(args...)
}

func (l *Logx) Debugf(template string, args ...interface{}) {
	l.sugar().Debugf(template, args...)
}

func (l *Logx) Info(args ...interface{}) {
	l.sugar().Info(args...)
}

func (l *Logx) Infof(template string, args ...interface{}) {
	l.sugar().Infof(template, args...)
}

func (l *Logx) Warn(args ...interface{}) {
	l.sugar().Warn(args...)
}

func (l *Logx) Warnf(template string, args ...interface{}) {
	l.sugar().Warnf(template, args...)
}

func (l *Logx) Error(args ...interface{}) {
	l.sugar().Error(args...)
}

func (l *Logx) Errorf(template string, args ...interface{}) {
	l.sugar().Errorf(template, args...)
}
