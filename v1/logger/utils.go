package logger

import "go.uber.org/zap"

// Debug logs a message at debug level with optional error and fields.
func (l *Logger) Debug(msg string, err error, fields map[string]interface{}) {
	l.Zap.Debug(msg, toZapFields(err, fields)...)
}

// Info logs a message at info level with optional error and fields.
func (l *Logger) Info(msg string, err error, fields map[string]interface{}) {
	l.Zap.Info(msg, toZapFields(err, fields)...)
}

// Warn logs a message at warning level with optional error and fields.
func (l *Logger) Warn(msg string, err error, fields map[string]interface{}) {
	l.Zap.Warn(msg, toZapFields(err, fields)...)
}

// Error logs a message at error level with the given error and optional fields.
func (l *Logger) Error(msg string, err error, fields map[string]interface{}) {
	l.Zap.Error(msg, toZapFields(err, fields)...)
}

// toZapFields converts the generic error/fields pair used by the wrapper
// methods into strongly typed zap fields.
func toZapFields(err error, fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields)+1)
	if err != nil {
		out = append(out, zap.Error(err))
	}
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
