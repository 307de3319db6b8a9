package angleval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/segedit/engine"
)

func decoded(m *Model, v int64) []engine.Field {
	fs := m.BuildFields()
	for i := range fs {
		fs[i].Index = i
	}
	m.Decode(v, fs)
	return fs
}

func joinText(fs []engine.Field) string {
	out := ""
	for _, f := range fs {
		if !f.Hidden {
			out += f.Text
		}
	}
	return out
}

func TestUnitsDegreesRoundTrip(t *testing.T) {
	t.Parallel()
	for _, deg := range []float64{0, 45.5, -45.5, 179.999999, -90, 359.25} {
		require.Equal(t, deg, Degrees(Units(deg)), "%v degrees", deg)
	}
}

func TestFixedPointDigitTicksAreExact(t *testing.T) {
	t.Parallel()
	// Six decimal places and milliarcseconds both divide the unit scale.
	require.Equal(t, int64(36), UnitsPerDegree/1e6)
	require.Equal(t, int64(0), UnitsPerDegree%(60*60*1000))
}

func TestDecode_RendersNotation(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		opts Options
		deg  float64
		want string
	}{
		{Options{Style: Decimal, DecimalPrecision: 6}, -45.5, "-045.500000°"},
		{Options{Style: Decimal, DecimalPrecision: 2, Unsigned: true}, 310.25, "310.25°"},
		{Options{Style: DegMin}, 12.5, "+012°30′"},
		{Options{Style: DegMinSec, Compass: CompassNS}, -45.5, "45°30′00″ S"},
		{Options{Style: DegMinSec, SecondsPrecision: 3, Compass: CompassEW}, 2.2501, "002°15′00.360″ E"},
	} {
		got := joinText(decoded(New(tc.opts), Units(tc.deg)))
		require.Equal(t, tc.want, got, "%+v at %v", tc.opts, tc.deg)
	}
}

func TestEncode_RoundTripsDecode(t *testing.T) {
	t.Parallel()
	m := New(Options{Style: DegMinSec, SecondsPrecision: 3, Compass: CompassNS})
	want := Units(-89.123456) / (UnitsPerDegree / (60 * 60 * 1000)) * (UnitsPerDegree / (60 * 60 * 1000))
	got, err := m.Encode(decoded(m, want))
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestEncode_RejectsOverflowingMinutesSeconds(t *testing.T) {
	t.Parallel()
	m := New(Options{Style: DegMinSec})
	fs := decoded(m, Units(10))
	for i := range fs {
		if fs[i].Group == GroupMin && fs[i].Place == 1 {
			fs[i].Digit = 7
			fs[i].Text = "7"
		}
	}
	_, err := m.Encode(fs)
	require.Error(t, err, "arcminutes 70 must not encode")
	require.Equal(t, Units(10)+59*unitsPerMinute, m.Normalize(fs))
}

func TestShift_MagnitudeSpace(t *testing.T) {
	t.Parallel()
	m := New(Options{Style: DegMinSec})
	minOnes := engine.Field{Group: GroupMin, Place: 0}

	require.Equal(t, Units(10)+unitsPerMinute, m.Shift(Units(10), minOnes, 1))
	// On a negative angle the displayed magnitude grows as the value falls.
	require.Equal(t, Units(-10)-unitsPerMinute, m.Shift(Units(-10), minOnes, 1))
	require.Equal(t, Units(-10)+unitsPerMinute, m.Shift(Units(-10), minOnes, -1))

	degTens := engine.Field{Group: GroupDeg, Place: 1}
	require.Equal(t, Units(55.5), m.Shift(Units(45.5), degTens, 1))
}

func TestShift_CarriesThroughSexagesimalPlaces(t *testing.T) {
	t.Parallel()
	m := New(Options{Style: DegMinSec})
	secOnes := engine.Field{Group: GroupSec, Place: 0}
	v := Units(45) + 59*unitsPerMinute + 59*unitsPerSecond
	got := m.Shift(v, secOnes, 1)
	require.Equal(t, Units(46), got, "59′59″ + 1″ carries to the next degree")
}

func TestRangeByConfiguration(t *testing.T) {
	t.Parallel()
	lo, hi, wrap := New(Options{Unsigned: true, WrapAround: true}).Range()
	require.Equal(t, int64(0), lo)
	require.Equal(t, 360*UnitsPerDegree-1, hi)
	require.True(t, wrap)

	lo, hi, wrap = New(Options{Compass: CompassNS, WrapAround: true}).Range()
	require.Equal(t, -90*UnitsPerDegree, lo)
	require.Equal(t, 90*UnitsPerDegree, hi)
	require.False(t, wrap, "latitudes never wrap")

	lo, hi, _ = New(Options{}).Range()
	require.Equal(t, -180*UnitsPerDegree, lo)
	require.Equal(t, 180*UnitsPerDegree-1, hi)
}

func TestGroupSpans(t *testing.T) {
	t.Parallel()
	m := New(Options{Style: DegMinSec, Compass: CompassNS, SecondsPrecision: 2})
	lo, hi := m.GroupSpan(GroupDeg, nil)
	require.Equal(t, 0, lo)
	require.Equal(t, 90, hi)
	_, hi = m.GroupSpan(GroupMin, nil)
	require.Equal(t, 59, hi)
	_, hi = m.GroupSpan(GroupFrac, nil)
	require.Equal(t, 99, hi)

	u := New(Options{Unsigned: true})
	_, hi = u.GroupSpan(GroupDeg, nil)
	require.Equal(t, 359, hi)
}

func TestInitialSelection_LastDigit(t *testing.T) {
	t.Parallel()
	m := New(Options{Style: DegMinSec, Compass: CompassNS})
	fs := decoded(m, Units(-45.5))
	idx := m.InitialSelection(fs)
	require.Equal(t, GroupSec, fs[idx].Group)
	require.Equal(t, 0, fs[idx].Place)
}

func TestBound(t *testing.T) {
	t.Parallel()
	m := New(Options{})
	l := m.Bound(engine.High, 45.5)
	require.Equal(t, Units(45.5), l.Resolve())
	require.Equal(t, 1, l.Compare(Units(46)))
}
