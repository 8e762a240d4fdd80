package feedback

import (
	"errors"
	"fmt"
	"strings"
)

const FeedbackPkg = Package("feedback")

var ErrInvalidSeverity = errors.New("invalid severity")

type Package string

type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// ParseSeverity parses the lower case name of a severity, e.g. "warn".
func ParseSeverity(name string) (Severity, error) {
	for s := SeverityDebug; s <= SeverityFatal; s++ {
		if strings.EqualFold(strings.TrimSpace(name), s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: '%s'", ErrInvalidSeverity, name)
}

type FeedbackReceiver interface {
	Log(pkg Package, severity Severity, message string)
	Progress(pkg Package, process, message string, current, total int64)
}

var (
	feedbackReceiver    FeedbackReceiver
	enabled             bool
	disabledLogPackages = make(map[Package]int)
)

func Progress(pkg Package, process, message string, current, total int64) {
	if !enabled {
		return
	}
	feedbackReceiver.Progress(pkg, process, message, current, total)
}

func Debug(pkg Package, msgFormat string, msgArgs ...any) {
	Log(pkg, SeverityDebug, msgFormat, msgArgs...)
}

func Info(pkg Package, msgFormat string, msgArgs ...any) {
	Log(pkg, SeverityInfo, msgFormat, msgArgs...)
}

func Warn(pkg Package, msgFormat string, msgArgs ...any) {
	Log(pkg, SeverityWarn, msgFormat, msgArgs...)
}

func Error(pkg Package, msgFormat string, msgArgs ...any) {
	Log(pkg, SeverityError, msgFormat, msgArgs...)
}

func Fatal(pkg Package, msgFormat string, msgArgs ...any) {
	Log(pkg, SeverityFatal, msgFormat, msgArgs...)
}

func Log(pkg Package, severity Severity, msgFormat string, msgArgs ...any) {
	if !enabled || (severity != SeverityDebug && disabledLogPackages[pkg] > 0) {
		return
	}
	feedbackReceiver.Log(pkg, severity, fmt.Sprintf(msgFormat, msgArgs...))
}

// Enable routes all feedback to receiver. A nil receiver disables feedback.
func Enable(receiver FeedbackReceiver) {
	enabled = receiver != nil
	feedbackReceiver = receiver
}

func Disable() {
	enabled = false
}

func Reenable() {
	if feedbackReceiver != nil {
		enabled = true
	}
}

func DisableLog(pkg Package) {
	disabledLogPackages[pkg] += 1
}

func ReenableLog(pkg Package) {
	disabledLogPackages[pkg] -= 1
	if disabledLogPackages[pkg] <= 0 {
		delete(disabledLogPackages, pkg)
	}
}
