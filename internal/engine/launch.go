package engine

import (
	"context"
	"runtime"
	"strings"
)

// Browser launch for the play-in-browser mode. One command shape per OS,
// built as an argv vector so the URL is never interpolated into a shell
// string.

// LaunchCommand returns the program and arguments that open url on the given
// GOOS. Exposed as a pure function so each platform branch is testable
// without spawning anything.
func LaunchCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		// The URL lands inside an AppleScript string literal, so quote and
		// backslash characters must be escaped or the script breaks.
		return "osascript", []string{"-e", `open location "` + escapeAppleScript(url) + `"`}
	case "windows":
		// start treats its first quoted argument as a window title.
		return "cmd", []string{"/c", "start", "", url}
	default:
		return "xdg-open", []string{url}
	}
}

// escapeAppleScript escapes backslashes and double quotes for embedding in an
// AppleScript string literal.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// OpenURL opens url in the local default browser. Failures are wrapped in a
// *LaunchError, never swallowed.
func OpenURL(ctx context.Context, url string) error {
	IncrLaunch()
	name, args := LaunchCommand(runtime.GOOS, url)
	if _, err := RunCommand(ctx, name, args...); err != nil {
		return &LaunchError{URL: url, Err: err}
	}
	return nil
}
