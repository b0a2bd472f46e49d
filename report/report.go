// report/report.go

// Package report turns engine results and errors into the text printed by
// statcli. Wording lives here so the engine stays free of presentation.
package report

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/statcli/dataset"
	"github.com/mwiater/statcli/stats"
)

// DefaultPrecision is the number of significant digits printed for results.
const DefaultPrecision = 6

type messages struct {
	labels       map[stats.Operation]string
	descriptions map[stats.Operation]string
	errorPrefix  string
	emptyInput   string
	unknownOp    string
	openFailed   string
	notEnough    string
	usageLine    string
	operations   string
	helpHint     string
}

var catalog = map[Language]messages{
	English: {
		labels: map[stats.Operation]string{
			stats.OpMean:              "Mean",
			stats.OpVariance:          "Variance",
			stats.OpStandardDeviation: "Standard deviation",
		},
		descriptions: map[stats.Operation]string{
			stats.OpMean:              "Compute the arithmetic mean",
			stats.OpVariance:          "Compute the population variance",
			stats.OpStandardDeviation: "Compute the population standard deviation",
		},
		errorPrefix: "Error",
		emptyInput:  "the list of numbers is empty",
		unknownOp:   "Unknown operation: %s",
		openFailed:  "could not open file %s",
		notEnough:   "Not enough arguments.",
		usageLine:   "Usage: statcli --input <file> --operation <operation>",
		operations:  "Operations:",
		helpHint:    "Use --help to show this message.",
	},
	Russian: {
		labels: map[stats.Operation]string{
			stats.OpMean:              "Среднее",
			stats.OpVariance:          "Дисперсия",
			stats.OpStandardDeviation: "Среднеквадратичное отклонение",
		},
		descriptions: map[stats.Operation]string{
			stats.OpMean:              "Вычисление среднего",
			stats.OpVariance:          "Вычисление дисперсии",
			stats.OpStandardDeviation: "Вычисление среднеквадратичного отклонения",
		},
		errorPrefix: "Ошибка",
		emptyInput:  "Список чисел пуст.",
		unknownOp:   "Неизвестная операция: %s",
		openFailed:  "Ошибка открытия файла: %s",
		notEnough:   "Недостаточно аргументов.",
		usageLine:   "Использование: statcli --input <файл> --operation <операция>",
		operations:  "Операции:",
		helpHint:    "Ключ --help для отображения этой справки.",
	},
}

func text(lang Language) messages {
	if m, ok := catalog[lang]; ok {
		return m
	}
	return catalog[English]
}

// Label returns the result label for op, falling back to the operation name.
func Label(lang Language, op stats.Operation) string {
	if l, ok := text(lang).labels[op]; ok {
		return l
	}
	return string(op)
}

// Description returns the one-line help text for op.
func Description(lang Language, op stats.Operation) string {
	return text(lang).descriptions[op]
}

// NotEnoughArguments is printed before the usage block when input or
// operation is missing.
func NotEnoughArguments(lang Language) string {
	return text(lang).notEnough
}


// FormatValue formats v with the given number of significant digits using
// the shortest of fixed and exponent notation. A non-positive precision
// selects DefaultPrecision.
func FormatValue(v float64, precision int) string {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}

// Message returns the user-facing text for err.
func Message(lang Language, err error) string {
	m := text(lang)
	switch {
	case errors.Is(err, stats.ErrEmptyInput):
		return m.emptyInput
	case errors.Is(err, dataset.ErrOpen):
		var pe *fs.PathError
		if errors.As(err, &pe) {
			return fmt.Sprintf(m.openFailed, pe.Path) + " (" + pe.Err.Error() + ")"
		}
		return err.Error()
	default:
		return err.Error()
	}
}

// Result writes "<label>: <value>" followed by a newline.
func Result(w io.Writer, lang Language, op stats.Operation, v float64, precision int) error {
	label := lipgloss.NewRenderer(w).NewStyle().Bold(true).Render(Label(lang, op) + ":")
	_, err := fmt.Fprintf(w, "%s %s\n", label, FormatValue(v, precision))
	return err
}

// ErrorLine writes a localised "Error: <message>" line styled in red.
func ErrorLine(w io.Writer, lang Language, err error) {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("9"))
	fmt.Fprintln(w, style.Render(fmt.Sprintf("%s: %s", text(lang).errorPrefix, Message(lang, err))))
}

// UnknownOperationLine writes the error line for an unrecognised operation
// name.
func UnknownOperationLine(w io.Writer, lang Language, name string) {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("9"))
	fmt.Fprintln(w, style.Render(fmt.Sprintf(text(lang).unknownOp, name)))
}

// Usage writes the usage block listing every operation.
func Usage(w io.Writer, lang Language) {
	m := text(lang)
	r := lipgloss.NewRenderer(w)
	heading := r.NewStyle().Bold(true)
	name := r.NewStyle().Width(20)

	fmt.Fprintln(w, heading.Render(m.usageLine))
	fmt.Fprintln(w, m.operations)
	for _, op := range stats.Operations() {
		fmt.Fprintf(w, "  %s%s\n", name.Render(string(op)), m.descriptions[op])
	}
	fmt.Fprintln(w, m.helpHint)
}
