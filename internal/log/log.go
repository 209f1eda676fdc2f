package log

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var base = zap.Must(zap.NewProduction())

// Init rebuilds the logger, optionally teeing output into logFile.
func Init(logFile string) {
	cfg := zap.NewProductionConfig()
	if logFile != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, logFile)
	}
	base = zap.Must(cfg.Build())
}

// Sync flushes buffered entries; call on shutdown.
func Sync() { _ = base.Sync() }

func fieldsFor(c *fiber.Ctx, err error, fields map[string]any) []zap.Field {
	out := make([]zap.Field, 0, 8)
	if c != nil {
		out = append(out,
			zap.String("ip", c.IP()),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
		)
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			out = append(out, zap.String("req_id", rid))
		}
	}
	if err != nil {
		out = append(out, zap.Error(err))
	}
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	base.Info(action, fieldsFor(c, nil, fields)...)
}

// Audit marks actions that change business state (logins, bill creation).
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	base.Info(action, append(fieldsFor(c, nil, fields), zap.Bool("audit", true))...)
}

// Security marks rejected requests: bad tokens, failed logins, bad input.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	base.Warn(action, fieldsFor(c, nil, fields)...)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	base.Error(action, fieldsFor(c, err, fields)...)
}

// L exposes the underlying zap logger for components that log outside a
// request context.
func L() *zap.Logger { return base }
