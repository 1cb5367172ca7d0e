// Package format holds the pure derived-value helpers shared by the
// store and the presentation surface: currency rounding and parsing,
// progress and date formatting, and schedule classification. Output is
// localized for Brazilian Portuguese, matching the shipped app.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ScheduleState classifies a scheduled date relative to today.
type ScheduleState int

const (
	ScheduleToday ScheduleState = iota
	ScheduleUpcoming
	ScheduleOverdue
)

var currencyPrinter = message.NewPrinter(language.BrazilianPortuguese)

// RoundCurrency rounds a monetary value to cents using round half away
// from zero on the pre-multiplied float (Math.round(v*100)/100 in the
// shipped app). Exact .005 boundaries are float-representation-dependent
// and deliberately kept that way.
func RoundCurrency(value float64) float64 {
	return math.Round(value*100) / 100
}

// FormatCurrency renders a value as Brazilian reais, e.g. "R$ 1.234,56".
func FormatCurrency(value float64) string {
	return currencyPrinter.Sprintf("R$ %v",
		number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// ParseCurrencyInput parses user-typed Brazilian currency text
// ("1.234,56" -> 1234.56). Empty or unparseable input yields nil.
func ParseCurrencyInput(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	normalized := strings.ReplaceAll(value, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	parsed, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return nil
	}

	rounded := RoundCurrency(parsed)
	return &rounded
}

// ParseQuantityInput parses a user-typed quantity, flooring fractional
// input and clamping to at least 1. Empty or unparseable input yields 1.
func ParseQuantityInput(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 1
	}

	parsed, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
	if err != nil || math.IsNaN(parsed) {
		return 1
	}

	quantity := int(math.Floor(parsed))
	if quantity < 1 {
		return 1
	}
	return quantity
}

// FormatProgress renders completion as "completed/total".
func FormatProgress(completed, total int) string {
	return fmt.Sprintf("%d/%d", completed, total)
}

// StartOfDay truncates a time to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfDayMillis truncates an epoch-milliseconds timestamp to local
// midnight, still in epoch milliseconds.
func StartOfDayMillis(ms int64) int64 {
	return StartOfDay(time.UnixMilli(ms)).UnixMilli()
}

// DaysBetween returns the whole-day difference between two timestamps,
// comparing local calendar days rather than 24h spans. Positive means
// to falls after from.
func DaysBetween(fromMs, toMs int64) int {
	from := StartOfDay(time.UnixMilli(fromMs))
	to := StartOfDay(time.UnixMilli(toMs))
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// ClassifySchedule classifies a scheduled day against the current time.
func ClassifySchedule(nowMs, scheduledMs int64) ScheduleState {
	diff := DaysBetween(nowMs, scheduledMs)
	switch {
	case diff == 0:
		return ScheduleToday
	case diff > 0:
		return ScheduleUpcoming
	default:
		return ScheduleOverdue
	}
}

// ScheduleLabel renders the schedule state the way the detail screen
// shows it: "Hoje", "Amanhã"/"Em N dias", "N dia(s) em atraso".
func ScheduleLabel(nowMs, scheduledMs int64) string {
	diff := DaysBetween(nowMs, scheduledMs)
	switch {
	case diff == 0:
		return "Hoje"
	case diff == 1:
		return "Amanhã"
	case diff > 1:
		return fmt.Sprintf("Em %d dias", diff)
	case diff == -1:
		return "1 dia em atraso"
	default:
		return fmt.Sprintf("%d dias em atraso", -diff)
	}
}

var shortMonths = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

var longMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatDate renders a timestamp as a compact day-and-month label,
// e.g. "02 jan".
func FormatDate(ms int64) string {
	t := time.UnixMilli(ms)
	return fmt.Sprintf("%02d %s", t.Day(), shortMonths[t.Month()-1])
}

// FormatFullDate renders a timestamp long-form, e.g. "2 de janeiro de 2026".
func FormatFullDate(ms int64) string {
	t := time.UnixMilli(ms)
	return fmt.Sprintf("%d de %s de %d", t.Day(), longMonths[t.Month()-1], t.Year())
}
