package feedback

import (
	"github.com/code-game-project/text-utils/cli"
)

type CLIFeedback struct {
	severity Severity
}

func NewCLIFeedback(minSeverity Severity) *CLIFeedback {
	return &CLIFeedback{
		severity: minSeverity,
	}
}

func (c *CLIFeedback) Log(pkg Package, severity Severity, message string) {
	if severity < c.severity {
		return
	}
	switch severity {
	case SeverityDebug:
		cli.PrintColor(cli.WhiteDim, "[DEBUG] %s: %s", pkg, message)
	case SeverityInfo:
		cli.Print("%s", message)
	case SeverityWarn:
		cli.Warn("%s", message)
	case SeverityError:
		cli.Error("%s", message)
	case SeverityFatal:
		cli.PrintColor(cli.RedBold, "[FATAL] %s", message)
	}
}

func (c *CLIFeedback) Progress(pkg Package, process, message string, current, total int64) {
	cli.Progress(process, message, current, total)
}
