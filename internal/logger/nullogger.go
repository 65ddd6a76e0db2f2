package logger

// NullLogger discards everything. Services fall back to it when no logger
// is wired, and tests use it directly.
type NullLogger struct{}

var _ Logger = NullLogger{}

func NewNullLogger() NullLogger { return NullLogger{} }

func (NullLogger) Info(string, map[string]interface{})  {}
func (NullLogger) Error(error, map[string]interface{})  {}
func (NullLogger) Fatal(error, map[string]interface{})  {}
func (NullLogger) Debug(string, map[string]interface{}) {}
func (NullLogger) SetLevel(Level)                       {}
