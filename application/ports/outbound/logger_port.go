package outbound

// LoggerPort keeps the services free of a concrete logging library. The
// zerolog-backed implementation lives in infrastructure/adapters.
type LoggerPort interface {
	Info(msg string)
	InfoWithFields(msg string, fields map[string]interface{})
	Error(err error, msg string)
	ErrorWithFields(err error, msg string, fields map[string]interface{})
	Debug(msg string)
	DebugWithFields(msg string, fields map[string]interface{})
	Warn(msg string)
	WarnWithFields(msg string, fields map[string]interface{})
}
