package angleval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_DecimalForms(t *testing.T) {
	t.Parallel()
	m := New(Options{Style: Decimal, DecimalPrecision: 6})
	for _, tc := range []struct {
		in   string
		want float64
	}{
		{"-45.500000°", -45.5},
		{"-45.5", -45.5},
		{"+45.5", 45.5},
		{"170", 170},
	} {
		got, err := m.Parse(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, Units(tc.want), got, tc.in)
	}
}

func TestParse_SexagesimalForms(t *testing.T) {
	t.Parallel()
	m := New(Options{Style: DegMinSec, Compass: CompassNS})
	got, err := m.Parse("45°30′00″ S")
	require.NoError(t, err)
	require.Equal(t, Units(-45.5), got)

	got, err = m.Parse("45 30 00 n")
	require.NoError(t, err)
	require.Equal(t, Units(45.5), got)

	dm := New(Options{Style: DegMin, Compass: CompassEW})
	got, err = dm.Parse("012°30′ W")
	require.NoError(t, err)
	require.Equal(t, Units(-12.5), got)
}

func TestParse_FractionPadsAndTruncatesToPrecision(t *testing.T) {
	t.Parallel()
	m := New(Options{Style: DegMinSec, SecondsPrecision: 3})
	got, err := m.Parse("10°00′00.2″")
	require.NoError(t, err)
	require.Equal(t, Units(10)+200*(unitsPerSecond/1000), got)

	got, err = m.Parse("10°00′00.123456″")
	require.NoError(t, err)
	require.Equal(t, Units(10)+123*(unitsPerSecond/1000), got)
}

func TestParse_Rejections(t *testing.T) {
	t.Parallel()
	m := New(Options{Style: DegMinSec})
	for _, in := range []string{
		"",
		"north",
		"45°30′",       // missing seconds run
		"45°70′00″",    // arcminutes out of range
		"45°30′00″ Q",  // unknown hemisphere
		"1 2 3 4",      // too many runs
	} {
		_, err := m.Parse(in)
		require.Error(t, err, "%q should not parse", in)
	}

	u := New(Options{Style: Decimal, Unsigned: true})
	_, err := u.Parse("-45.5")
	require.Error(t, err, "unsigned editor rejects a negative paste")
}
