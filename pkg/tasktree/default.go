package tasktree

// std is the process-wide tree behind the package-level helpers, for
// callers that do not construct their own instance.
var std = New()

// Start begins a task on the default tree.
func Start(format string, args ...any) {
	std.Start(format, args...)
}

// Pass resolves the deepest open task on the default tree as succeeded.
func Pass(format string, args ...any) {
	std.Pass(format, args...)
}

// Warn resolves the deepest open task on the default tree with a warning.
func Warn(format string, args ...any) {
	std.Warn(format, args...)
}

// Fail resolves the deepest open task on the default tree as failed.
func Fail(format string, args ...any) {
	std.Fail(format, args...)
}
