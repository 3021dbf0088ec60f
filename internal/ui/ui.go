package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	domainErrors "github.com/Tomas-vilte/MateRelay/internal/domain/errors"
	"github.com/Tomas-vilte/MateRelay/internal/i18n"
	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	SuccessEmoji = Success.Sprint("✅")
	WarningEmoji = Warning.Sprint("⚠️")
)

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", SuccessEmoji, Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("❌"), Error.Sprint(msg))
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", WarningEmoji, Warning.Sprint(msg))
}

func PrintKeyValue(w io.Writer, key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	_, _ = fmt.Fprintf(w, "   %s %s\n", keyColored, valueColored)
}

// HandleAppError muestra un error de forma amigable. Sin traducciones usa los textos en inglés.
func HandleAppError(w io.Writer, err error, t *i18n.Translations) {
	if err == nil {
		return
	}

	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) {
		PrintError(w, err.Error())
		return
	}

	_, _ = fmt.Fprintln(w)
	_, _ = Error.Fprintf(w, "❌ %s: %s\n", appErr.Type, appErr.Message)

	if field, ok := appErr.Context["field"]; ok {
		_, _ = Dim.Fprintf(w, "   Field: %v\n", field)
	}
	if appErr.Err != nil {
		_, _ = Dim.Fprintf(w, "   Details: %v\n", appErr.Err)
	}

	if appErr.Suggestion != "" {
		tryPrefix := "💡 Try: "
		if t != nil {
			tryPrefix = t.GetMessage("ui_error.try_suggestion", 0, nil)
		}
		_, _ = fmt.Fprintln(w)
		_, _ = color.New(color.FgCyan).Fprint(w, tryPrefix)
		for i, line := range strings.Split(appErr.Suggestion, "\n") {
			if i == 0 {
				_, _ = fmt.Fprintln(w, line)
			} else {
				_, _ = fmt.Fprintf(w, "       %s\n", line)
			}
		}
	}
	_, _ = fmt.Fprintln(w)
}
