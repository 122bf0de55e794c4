package contract

import (
	"fmt"
	"os"

	"github.com/ElleNealAI/code-health-report/schema"
	"github.com/fatih/color"
)

// Color variables for console output.
var (
	GoodColor = color.New(color.FgGreen)              // healthy score
	FairColor = color.New(color.FgYellow)             // needs attention
	PoorColor = color.New(color.FgRed, color.Bold)    // unhealthy score
	DimColor  = color.New(color.FgWhite, color.Faint) // neutral detail
)

// GetColorLabel returns a colored status label for console output.
// It uses schema.ScoreLabel to determine the string, then applies the color.
func GetColorLabel(score int) string {
	text := schema.ScoreLabel(score)
	switch {
	case score >= schema.GoodScoreMin:
		return GoodColor.Sprint(text)
	case score >= schema.FairScoreMin:
		return FairColor.Sprint(text)
	default:
		return PoorColor.Sprint(text)
	}
}

// FormatDelta renders a score delta with a direction marker.
func FormatDelta(delta int) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("+%d", delta)
	case delta < 0:
		return fmt.Sprintf("%d", delta)
	default:
		return "0"
	}
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and
// at least one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}
