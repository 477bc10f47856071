// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	logfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultFileName   = "graphd.log"
	defaultMaxSize    = 50 // MB
	defaultMaxAge     = 30 // days
	defaultMaxBackups = 3
)

// Supported stdout encodings.
const (
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

// LogOpts configures New.
type LogOpts struct {
	Level         string
	Format        string
	File          bool
	FileName      string
	MaxFileSizeMB int
	MaxBackups    int
	MaxAgeDays    int

	// Output replaces stdout; used by tests.
	Output io.Writer
}

// GetDefaultLogOpts returns info-level logfmt logging to stdout only.
func GetDefaultLogOpts() *LogOpts {
	return &LogOpts{
		Level:  "info",
		Format: FormatLogfmt,
	}
}

// ZapLogger is a *zap.Logger with a runtime-adjustable level.
type ZapLogger struct {
	*zap.Logger
	atom zap.AtomicLevel
	opts *LogOpts
}

// ParseLevel maps a level name to a zapcore.Level.
func ParseLevel(lvl string) (zapcore.Level, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("log: level %q not supported", lvl)
	}
}

// EncoderConfig is the production encoder config with ISO8601 timestamps.
func EncoderConfig() zapcore.EncoderConfig {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return encoderCfg
}

// New builds a logger writing to stdout (logfmt or JSON) and, when File is set,
// to a rotating JSON file as well.
func New(lOpts *LogOpts) (*ZapLogger, error) {
	if lOpts == nil {
		lOpts = GetDefaultLogOpts()
	}
	if err := lOpts.validate(); err != nil {
		return nil, err
	}

	lvl, _ := ParseLevel(lOpts.Level)
	atom := zap.NewAtomicLevelAt(lvl)
	encoderCfg := EncoderConfig()

	var out zapcore.WriteSyncer = zapcore.Lock(os.Stdout)
	if lOpts.Output != nil {
		out = zapcore.AddSync(lOpts.Output)
	}

	var enc zapcore.Encoder
	if lOpts.Format == FormatJSON {
		enc = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		enc = logfmt.NewEncoder(encoderCfg)
	}
	cores := []zapcore.Core{zapcore.NewCore(enc, out, atom)}

	if lOpts.File {
		// lumberjack is Zap endorsed logger rotation library
		fw := zapcore.AddSync(&lumberjack.Logger{
			Filename:   lOpts.FileName,
			MaxSize:    lOpts.MaxFileSizeMB, // megabytes
			MaxBackups: lOpts.MaxBackups,
			MaxAge:     lOpts.MaxAgeDays, // days
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), fw, atom))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller()).With(
		zap.String("goversion", runtime.Version()),
		zap.String("os", runtime.GOOS),
		zap.String("arch", runtime.GOARCH),
	)

	return &ZapLogger{Logger: logger, atom: atom, opts: lOpts}, nil
}

// SetLevel changes the level of every sink.
func (l *ZapLogger) SetLevel(lvl string) error {
	parsed, err := ParseLevel(lvl)
	if err != nil {
		return err
	}
	l.atom.SetLevel(parsed)

	return nil
}

// Level returns the current level.
func (l *ZapLogger) Level() zapcore.Level {
	return l.atom.Level()
}

// Close flushes buffered entries.
func (l *ZapLogger) Close() {
	_ = l.Logger.Sync()
}

// Named returns a child logger sharing the level.
func (l *ZapLogger) Named(name string) *ZapLogger {
	return &ZapLogger{
		Logger: l.Logger.Named(name),
		atom:   l.atom,
		opts:   l.opts,
	}
}

// Middleware logs one line per HTTP request.
func (l *ZapLogger) Middleware() func(next http.Handler) http.Handler {
	return l.zappedMiddleware
}

func (l *ZapLogger) zappedMiddleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		latency := time.Since(start)
		fields := []zapcore.Field{
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("took", latency),
			zap.String("remote", r.RemoteAddr),
			zap.String("request", r.RequestURI),
			zap.String("method", r.Method),
		}
		if requestID := middleware.GetReqID(r.Context()); requestID != "" {
			fields = append(fields, zap.String("request-id", requestID))
		}
		l.Logger.Info("request completed", fields...)
	}

	return http.HandlerFunc(fn)
}

func (lOpts *LogOpts) validate() error {
	if lOpts.Level == "" {
		lOpts.Level = "info"
	}
	if _, err := ParseLevel(lOpts.Level); err != nil {
		return err
	}
	switch lOpts.Format {
	case "":
		lOpts.Format = FormatLogfmt
	case FormatLogfmt, FormatJSON:
	default:
		return fmt.Errorf("log: format %q not supported", lOpts.Format)
	}
	if lOpts.File {
		if lOpts.FileName == "" {
			lOpts.FileName = defaultFileName
		}
		if lOpts.MaxFileSizeMB == 0 {
			lOpts.MaxFileSizeMB = defaultMaxSize
		}
		if lOpts.MaxBackups == 0 {
			lOpts.MaxBackups = defaultMaxBackups
		}
		if lOpts.MaxAgeDays == 0 {
			lOpts.MaxAgeDays = defaultMaxAge
		}
	}

	return nil
}
