package expect_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/expect"
	"github.com/roach88/expect/internal/check"
)

type suit int

const (
	clubs suit = iota
	diamonds
	hearts
	spades
)

type weekday uint8

func (d weekday) String() string {
	return [...]string{"Sun", "Mon", "Tue"}[d]
}

type card struct {
	Rank int
	Suit suit
}

type internalName struct{}

var (
	_ = expect.Enum(map[suit]string{clubs: "Clubs", diamonds: "Diamonds", hearts: "Hearts", spades: "Spades"})
	_ = expect.StringerEnum[weekday]()
	_ = expect.Name[internalName]("Renamed")
)

var ran []string

var _ = expect.Examples(func() {
	ran = append(ran, "first")
	expect.Equal(3, 3)
	expect.Equal([]string{"a", "bb"}, []string{"a", "bb"})
	expect.Equal([]int{}, []int{})
})

var _ = expect.Examples(func() {
	ran = append(ran, "second")
	expect.Within(1.0, 1.05, 0.1)
	expect.Within(1.0, 1.2, 0.1)
	expect.Equal(card{12, hearts}, card{12, spades})
})

func reset(t *testing.T) {
	t.Helper()
	check.Default().Reset()
	ran = nil
}

func TestRun(t *testing.T) {
	reset(t)
	var buf bytes.Buffer

	result, err := expect.Run(&buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, ran)
	assert.Equal(t, 2, result.Examples)
	assert.Equal(t, 6, result.Checks)
	assert.Equal(t, 4, result.Passed)
	require.Len(t, result.Failures, 2)

	out := buf.String()
	assert.Contains(t, out, "Ran 6 checks.\n4 of the 6 checks passed.\nFailures:\n")
	assert.Contains(t, out, "expect_test.go at line")
	assert.Contains(t, out, "the absolute difference is not within 0.1\n    left: 1\n    right: 1.2")
	assert.Contains(t, out, "left: expect_test.card {12, expect_test.suit::Hearts}\n    right: expect_test.card {12, expect_test.suit::Spades}")
}

func TestEqual_RecordsCallerLocation(t *testing.T) {
	reset(t)

	expect.Equal(1, 2)

	_, failures := check.Default().Snapshot()
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0].Location.File, "expect_test.go")
	assert.Contains(t, failures[0].Text, "expect_test.go at line ")
}

func TestEqual_Incomparable(t *testing.T) {
	reset(t)

	expect.Equal(3, "3")

	_, failures := check.Default().Snapshot()
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0].Text, "cannot compare values of types int and string.")
}

func TestWithin_Integers(t *testing.T) {
	reset(t)

	expect.Within(10, 12, 2)
	expect.Within(10, 13, 2)

	checks, failures := check.Default().Snapshot()
	assert.Equal(t, 2, checks)
	assert.Len(t, failures, 1)
}

func TestNames(t *testing.T) {
	reset(t)

	expect.Equal(weekday(1), weekday(2))
	expect.Equal(internalName{}, struct{ X int }{})
	expect.Equal(expect.NewSet(3, 1), expect.NewSet(1, 2))
	expect.Equal(expect.Char('a'), expect.Char('b'))

	_, failures := check.Default().Snapshot()
	require.Len(t, failures, 4)
	assert.Contains(t, failures[0].Text, "left: expect_test.weekday::Mon\n    right: expect_test.weekday::Tue")
	assert.Contains(t, failures[1].Text, "cannot compare values of types Renamed and struct{X int}.")
	assert.Contains(t, failures[2].Text, "left: Set[int] {1, 3}\n    right: Set[int] {1, 2}")
	assert.Contains(t, failures[3].Text, "left: 'a'\n    right: 'b'")
}

func TestEqual_TypesWithEqualMethod(t *testing.T) {
	reset(t)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	expect.Equal(at, at.In(time.FixedZone("CET", 3600)))

	checks, failures := check.Default().Snapshot()
	assert.Equal(t, 1, checks)
	assert.Empty(t, failures)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRun_ReportsWriteError(t *testing.T) {
	reset(t)

	result, err := expect.Run(brokenWriter{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write summary: disk full")
	require.NotNil(t, result)
	assert.Equal(t, 6, result.Checks)
}
