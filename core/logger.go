package core

// Logger is implemented by the logging adapters in services/logger.
// expected args: error, map[string]interface{}, or any value worth dumping.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
