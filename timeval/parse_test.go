package timeval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_CanonicalForms(t *testing.T) {
	t.Parallel()
	m := New(Options{ShowSeconds: true})
	for _, in := range []string{
		"2026-08-31 14:30:05",
		"2026/08/31 14:30:05",
		"2026.08.31  14:30:05",
	} {
		got, err := m.Parse(in)
		require.NoError(t, err, in)
		require.Equal(t, ms(2026, 8, 31, 14, 30, 5), got, in)
	}
}

func TestParse_DateOrderFollowsOptions(t *testing.T) {
	t.Parallel()
	m := New(Options{Style: DateOnly, DateOrder: DMY})
	got, err := m.Parse("31-08-2026")
	require.NoError(t, err)
	require.Equal(t, ms(2026, 8, 31, 0, 0, 0), got)
}

func TestParse_MeridiemTokens(t *testing.T) {
	t.Parallel()
	m := New(Options{HourStyle: Hour12})
	for _, tc := range []struct {
		in   string
		hour int
	}{
		{"2026-08-31 2:30 PM", 14},
		{"2026-08-31 2:30 pm", 14},
		{"2026-08-31 2:30 p.m.", 14},
		{"2026-08-31 2:30 AM", 2},
		{"2026-08-31 12:30 AM", 0},
	} {
		got, err := m.Parse(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, ms(2026, 8, 31, tc.hour, 30, 0), got, tc.in)
	}
}

func TestParse_Rejections(t *testing.T) {
	t.Parallel()
	m := New(Options{ShowSeconds: true})
	for _, in := range []string{
		"",
		"next tuesday",
		"2026-08-31",          // missing clock runs
		"2026-08-31 14:30",    // seconds are shown, so expected
		"2026-08-31 14:30:05 extra 7",
		"2026-13-31 14:30:05", // month out of calendar
		"2026-02-30 14:30:05", // day out of calendar
	} {
		_, err := m.Parse(in)
		require.Error(t, err, "%q should not parse", in)
	}
}

func TestParse_UnknownTokenRejected(t *testing.T) {
	t.Parallel()
	m := New(Options{HourStyle: Hour12})
	_, err := m.Parse("2026-08-31 2:30 XQ")
	require.Error(t, err)
}

func TestParse_ComponentWiderThanFields(t *testing.T) {
	t.Parallel()
	m := New(Options{Style: DateOnly})
	_, err := m.Parse("2026-08-315")
	require.Error(t, err)
}
