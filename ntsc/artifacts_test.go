package ntsc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ntsc/dsp/signal"
)

func ramp(scale int32) func(plane, x, y int) int32 {
	return func(plane, x, _ int) int32 {
		return int32(plane+1) * scale * int32(x+1)
	}
}

func TestColorBleed(t *testing.T) {
	base := planes(6, 6, func(plane, x, y int) int32 { return int32(100*plane + 10*y + x) })
	p := clonePlanes(base)
	require.NoError(t, ColorBleed(p, 0, 1, 2))

	require.Equal(t, base.Y, p.Y)
	for _, pl := range [][2][]int32{{base.I, p.I}, {base.Q, p.Q}} {
		before, after := pl[0], pl[1]
		// Field rows 0, 2, 4: row 0 is uncovered, row 2 holds row 0 moved right by 2.
		require.Equal(t, make([]int32, 6), p.Row(after, 0))
		require.Equal(t, []int32{0, 0, before[0], before[1], before[2], before[3]}, p.Row(after, 2))
		want := base.Row(before, 2)
		require.Equal(t, []int32{0, 0, want[0], want[1], want[2], want[3]}, p.Row(after, 4))
		for y := 1; y < 6; y += 2 {
			require.Equal(t, base.Row(before, y), p.Row(after, y))
		}
	}
}

func TestColorBleedNegative(t *testing.T) {
	base := planes(4, 4, func(plane, x, y int) int32 { return int32(10*y + x + 1) })
	p := clonePlanes(base)
	require.NoError(t, ColorBleed(p, 1, -1, -1))

	require.Equal(t, []int32{32, 33, 34, 0}, p.Row(p.I, 1))
	require.Equal(t, make([]int32, 4), p.Row(p.I, 3))
	require.Equal(t, base.Row(base.I, 0), p.Row(p.I, 0))
}

func TestEdgeWave(t *testing.T) {
	const w = 40
	base := planes(w, 20, ramp(1))
	p := clonePlanes(base)
	require.NoError(t, EdgeWave(p, 0, 5, 2.4e6, signal.NewSource(21)))

	shifted := 0
	for y := 0; y < 20; y += 2 {
		row := p.Row(p.Y, y)
		s := 0
		for s < w && row[s] == 0 {
			s++
		}
		require.Less(t, s, 5)
		if s > 0 {
			shifted++
		}
		for i, pl := range [][2][]int32{{base.Y, p.Y}, {base.I, p.I}, {base.Q, p.Q}} {
			got, orig := p.Row(pl[1], y), base.Row(pl[0], y)
			require.Equal(t, orig[:w-s], got[s:], "plane %d row %d", i, y)
		}
	}
	require.Positive(t, shifted)

	for y := 1; y < 20; y += 2 {
		require.Equal(t, base.Row(base.Y, y), p.Row(p.Y, y))
	}
}

func TestEdgeWaveBadCutoff(t *testing.T) {
	p := planes(8, 4, ramp(1))
	require.Error(t, EdgeWave(p, 0, 3, 0, testSource()))
}

func TestHeadSwitching(t *testing.T) {
	const w, h = 100, 480
	hs := HeadSwitch{
		Point: DefaultParams().VHSHeadSwitchingPoint,
		Phase: DefaultParams().VHSHeadSwitchingPhase,
	}

	tests := []struct {
		field int
		first int
	}{
		{0, 472},
		{1, 473},
	}
	for _, tt := range tests {
		base := planes(w, h, ramp(1))
		p := clonePlanes(base)
		require.NoError(t, HeadSwitching(p, tt.field, hs, true, nil))

		for y := range h {
			got, want := p.Row(p.Y, y), base.Row(base.Y, y)
			switch y {
			case tt.first:
				require.Equal(t, append([]int32{0, 0}, want[:w-2]...), got)
			case tt.first + 2:
				require.Equal(t, append([]int32{0}, want[:w-1]...), got)
			default:
				require.Equal(t, want, got, "row %d", y)
			}
		}
		require.Equal(t, base.I, p.I)
		require.Equal(t, base.Q, p.Q)
	}
}

func TestHeadSwitchingPhaseNoiseIsSeeded(t *testing.T) {
	hs := HeadSwitch{Point: 0.9, Phase: 0.3, PhaseNoise: 0.05}
	a, b := planes(64, 300, ramp(3)), planes(64, 300, ramp(3))
	require.NoError(t, HeadSwitching(a, 0, hs, false, signal.NewSource(8)))
	require.NoError(t, HeadSwitching(b, 0, hs, false, signal.NewSource(8)))
	require.Equal(t, a.Y, b.Y)
}

func TestHeadSwitchingEmptyFrame(t *testing.T) {
	p := planes(0, 0, ramp(1))
	require.NoError(t, HeadSwitching(p, 0, HeadSwitch{Point: 0.5}, true, nil))
}
