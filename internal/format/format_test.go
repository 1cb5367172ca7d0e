package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaia/checkme/internal/format"
)

func millis(year int, month time.Month, day, hour int) int64 {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local).UnixMilli()
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 11.0, format.RoundCurrency(10.999))
	assert.Equal(t, 10.01, format.RoundCurrency(10.006))
	assert.Equal(t, -2.35, format.RoundCurrency(-2.345))
	// 10.005 is represented just under the boundary; the pre-multiplied
	// float rule keeps the shipped behavior rather than half-up on decimals.
	assert.Equal(t, 10.0, format.RoundCurrency(10.005))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 11,00", format.FormatCurrency(11))
	assert.Equal(t, "R$ 1.234,56", format.FormatCurrency(1234.56))
	assert.Equal(t, "R$ 0,00", format.FormatCurrency(0))
}

func TestParseCurrencyInput(t *testing.T) {
	parsed := format.ParseCurrencyInput("1.234,56")
	require.NotNil(t, parsed)
	assert.Equal(t, 1234.56, *parsed)

	parsed = format.ParseCurrencyInput("5,5")
	require.NotNil(t, parsed)
	assert.Equal(t, 5.5, *parsed)

	assert.Nil(t, format.ParseCurrencyInput(""))
	assert.Nil(t, format.ParseCurrencyInput("   "))
	assert.Nil(t, format.ParseCurrencyInput("abc"))
	// strconv accepts these spellings; only finite numbers are valid input.
	assert.Nil(t, format.ParseCurrencyInput("nan"))
	assert.Nil(t, format.ParseCurrencyInput("inf"))
}

func TestParseQuantityInput(t *testing.T) {
	assert.Equal(t, 2, format.ParseQuantityInput("2"))
	assert.Equal(t, 2, format.ParseQuantityInput("2,7"))
	assert.Equal(t, 1, format.ParseQuantityInput("0"))
	assert.Equal(t, 1, format.ParseQuantityInput("-4"))
	assert.Equal(t, 1, format.ParseQuantityInput(""))
	assert.Equal(t, 1, format.ParseQuantityInput("x"))
}

func TestFormatProgress(t *testing.T) {
	assert.Equal(t, "2/5", format.FormatProgress(2, 5))
	assert.Equal(t, "0/0", format.FormatProgress(0, 0))
}

func TestStartOfDay(t *testing.T) {
	noon := time.Date(2026, 9, 1, 12, 34, 56, 789, time.Local)
	midnight := format.StartOfDay(noon)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), midnight)

	ms := format.StartOfDayMillis(noon.UnixMilli())
	assert.Equal(t, midnight.UnixMilli(), ms)
}

func TestDaysBetween(t *testing.T) {
	// Calendar days, not 24h spans: late evening to early morning of the
	// next day still counts as one day.
	assert.Equal(t, 1, format.DaysBetween(millis(2026, 9, 1, 23), millis(2026, 9, 2, 1)))
	assert.Equal(t, 0, format.DaysBetween(millis(2026, 9, 1, 0), millis(2026, 9, 1, 23)))
	assert.Equal(t, -3, format.DaysBetween(millis(2026, 9, 10, 8), millis(2026, 9, 7, 20)))
}

func TestClassifySchedule(t *testing.T) {
	now := millis(2026, 9, 1, 15)
	assert.Equal(t, format.ScheduleToday, format.ClassifySchedule(now, millis(2026, 9, 1, 8)))
	assert.Equal(t, format.ScheduleUpcoming, format.ClassifySchedule(now, millis(2026, 9, 4, 8)))
	assert.Equal(t, format.ScheduleOverdue, format.ClassifySchedule(now, millis(2026, 8, 30, 8)))
}

func TestScheduleLabel(t *testing.T) {
	now := millis(2026, 9, 1, 15)
	assert.Equal(t, "Hoje", format.ScheduleLabel(now, millis(2026, 9, 1, 8)))
	assert.Equal(t, "Amanhã", format.ScheduleLabel(now, millis(2026, 9, 2, 8)))
	assert.Equal(t, "Em 3 dias", format.ScheduleLabel(now, millis(2026, 9, 4, 8)))
	assert.Equal(t, "1 dia em atraso", format.ScheduleLabel(now, millis(2026, 8, 31, 8)))
	assert.Equal(t, "2 dias em atraso", format.ScheduleLabel(now, millis(2026, 8, 30, 8)))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "02 jan", format.FormatDate(millis(2026, 1, 2, 10)))
	assert.Equal(t, "24 dez", format.FormatDate(millis(2026, 12, 24, 10)))
}

func TestFormatFullDate(t *testing.T) {
	assert.Equal(t, "2 de janeiro de 2026", format.FormatFullDate(millis(2026, 1, 2, 10)))
	assert.Equal(t, "24 de dezembro de 2026", format.FormatFullDate(millis(2026, 12, 24, 10)))
}
