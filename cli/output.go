package cli

import (
	"fmt"
	"io"

	"github.com/mattn/go-colorable"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type Color string

const (
	Reset    Color = "\x1b[0m"
	Green    Color = "\x1b[32m"
	Yellow   Color = "\x1b[33m"
	RedBold  Color = "\x1b[1;31m"
	WhiteDim Color = "\x1b[2;37m"
)

var out io.Writer = colorable.NewColorableStderr()

// SetOutput redirects all output of this package to w.
// Color escape sequences are stripped if color is false.
func SetOutput(w io.Writer, color bool) {
	if !color {
		w = colorable.NewNonColorable(w)
	}
	out = w
}

type progressBar struct {
	progress *mpb.Progress
	bar      *mpb.Bar
}

var progressBars = make(map[string]progressBar)

// Progress creates or advances the progress bar identified by key.
// The bar is removed once current reaches total.
func Progress(key, message string, current, total int64) {
	b, ok := progressBars[key]
	if !ok {
		p := mpb.New(mpb.WithWidth(64), mpb.WithOutput(out))
		b = progressBar{
			progress: p,
			bar: p.New(total,
				mpb.BarStyle(),
				mpb.PrependDecorators(decor.Name(message)),
				mpb.AppendDecorators(decor.CountersNoUnit("  %d / %d"), decor.NewPercentage("  %.2f")),
			),
		}
		progressBars[key] = b
	}
	b.bar.SetCurrent(current)
	if current >= total {
		b.progress.Wait()
		delete(progressBars, key)
	}
}

func CancelProgressBars() {
	for _, b := range progressBars {
		b.bar.Abort(false)
		b.progress.Wait()
	}
	progressBars = make(map[string]progressBar)
}

func Print(format string, a ...any) {
	fmt.Fprintf(out, "%s\n", fmt.Sprintf(format, a...))
}

func PrintColor(color Color, format string, a ...any) {
	fmt.Fprintf(out, "%s%s%s\n", color, fmt.Sprintf(format, a...), Reset)
}

func Success(format string, a ...any) {
	PrintColor(Green, format, a...)
}

func Warn(format string, a ...any) {
	Print(string(Yellow)+"WARNING: "+string(Reset)+format, a...)
}

func Error(format string, a ...any) {
	Print(string(RedBold)+"ERROR: "+string(Reset)+format, a...)
}
