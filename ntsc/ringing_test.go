package ntsc

import (
	"bytes"
	"math"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/sbinet/npyio"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ntsc/dsp/signal"
	"github.com/cwbudde/algo-ntsc/internal/npy"
	"github.com/cwbudde/algo-ntsc/internal/testutil"
	"github.com/cwbudde/algo-ntsc/video"
)

func noisyPlanes(w, h int, seed int64) *video.YIQ {
	src := signal.NewSource(seed)
	return planes(w, h, func(plane, _, _ int) int32 {
		return int32(src.Noise(4000)) + int32(plane)*100
	})
}

func TestRingingConstantPlaneUnchanged(t *testing.T) {
	cfg := RingingConfig{Mode: RingingSpectralMask, Alpha: 0.4, NoiseSize: 0.7, NoiseAmplitude: 2}
	p := planes(30, 14, constant(12800, -300, 45))
	want := clonePlanes(p)

	require.NoError(t, Ringing(p, 1, cfg, nil, testSource()))
	require.Equal(t, want.Y, p.Y)
	require.Equal(t, want.I, p.I)
	require.Equal(t, want.Q, p.Q)
}

func TestRingingClipsToInputRange(t *testing.T) {
	for _, mode := range []RingingMode{RingingSpectralMask, RingingPatternPower} {
		cfg := RingingConfig{Mode: mode, Alpha: 0.3, NoiseSize: 0.6, NoiseAmplitude: 1.5, Power: 4, Shift: 0.2}
		pattern, err := RingPattern()
		require.NoError(t, err)

		base := noisyPlanes(33, 18, 4)
		p := clonePlanes(base)
		require.NoError(t, Ringing(p, 0, cfg, pattern, testSource()))

		for i, pl := range [][2][]int32{{base.Y, p.Y}, {base.I, p.I}, {base.Q, p.Q}} {
			lo, hi := pl[0][0], pl[0][0]
			for y := 0; y < 18; y += 2 {
				for _, v := range base.Row(pl[0], y) {
					lo, hi = min(lo, v), max(hi, v)
				}
			}
			for y := 0; y < 18; y += 2 {
				for _, v := range p.Row(pl[1], y) {
					require.GreaterOrEqual(t, v, lo, "mode %s plane %d", mode, i)
					require.LessOrEqual(t, v, hi, "mode %s plane %d", mode, i)
				}
			}
			for y := 1; y < 18; y += 2 {
				require.Equal(t, base.Row(pl[0], y), p.Row(pl[1], y))
			}
		}
		require.NotEqual(t, base.Y, p.Y)
	}
}

func TestRingingFlatPatternPassesThrough(t *testing.T) {
	flat := make([]float64, 64)
	for i := range flat {
		flat[i] = 1
	}
	cfg := RingingConfig{Mode: RingingPatternPower, Power: 3}

	base := noisyPlanes(24, 10, 2)
	p := clonePlanes(base)
	require.NoError(t, Ringing(p, 0, cfg, flat, nil))

	testutil.RequireCodesWithin(t, p.Y, base.Y, 1)
	testutil.RequireCodesWithin(t, p.I, base.I, 1)
	testutil.RequireCodesWithin(t, p.Q, base.Q, 1)
}

func TestRingingSpectralMaskSoftensEdges(t *testing.T) {
	p := planes(32, 8, func(plane, x, _ int) int32 {
		if plane == 0 && x >= 16 {
			return 1000
		}
		return 0
	})
	require.NoError(t, Ringing(p, 0, RingingConfig{Mode: RingingSpectralMask, Alpha: 0.2}, nil, nil))

	between := 0
	for _, v := range p.Row(p.Y, 0) {
		if v > 0 && v < 1000 {
			between++
		}
	}
	require.Positive(t, between)
}

func TestRingingNoiseDraws(t *testing.T) {
	const w, h = 10, 6
	cfg := RingingConfig{Mode: RingingSpectralMask, Alpha: 0.5, NoiseSize: 0.5, NoiseAmplitude: 1}

	a, b := noisyPlanes(w, h, 1), noisyPlanes(w, h, 1)
	sa, sb := signal.NewSource(17), signal.NewSource(17)
	require.NoError(t, Ringing(a, 0, cfg, nil, sa))
	require.NoError(t, Ringing(b, 0, cfg, nil, sb))
	require.Equal(t, a.Y, b.Y)

	ref := signal.NewSource(17)
	for range 3 * 2 * w * h / 2 {
		ref.Float64()
	}
	require.Equal(t, ref.Float64(), sa.Float64(), "one draw per mask value and part")
}

func TestRingingErrors(t *testing.T) {
	p := planes(8, 4, constant(1, 2, 3))
	require.ErrorIs(t, Ringing(p, 0, RingingConfig{Mode: 9}, nil, nil), ErrRingingMode)
	require.ErrorIs(t, Ringing(p, -1, RingingConfig{}, nil, nil), ErrInvalidField)

	empty := planes(8, 1, constant(1, 2, 3))
	require.NoError(t, Ringing(empty, 1, RingingConfig{Alpha: 0.5}, nil, nil))
}

func TestRingPatternAsset(t *testing.T) {
	p, err := RingPattern()
	require.NoError(t, err)
	require.Len(t, p, 1024)
	require.Equal(t, 1.0, p[512])
	for _, v := range p {
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}

	p[512] = 7
	again, err := RingPattern()
	require.NoError(t, err)
	require.Equal(t, 1.0, again[512], "callers get a copy")
}

func compressed(t *testing.T, raw []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(raw, nil)
}

func TestDecodeRingPattern(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, npyio.Write(&buf, []float64{0, 0.5, 1, 0.5}))

	p, err := decodeRingPattern(compressed(t, buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.5, 1, 0.5}, p)
}

func TestDecodeRingPatternRejectsGarbage(t *testing.T) {
	_, err := decodeRingPattern([]byte("not zstd"))
	require.ErrorIs(t, err, ErrRingPattern)

	_, err = decodeRingPattern(compressed(t, []byte("not an array")))
	require.ErrorIs(t, err, ErrRingPattern)
	require.ErrorIs(t, err, npy.ErrFormat)
}

func TestMaskPow(t *testing.T) {
	tests := []struct {
		x     float64
		power int
		want  float64
	}{
		{1, 7, 1},
		{0.5, 2, 0.25},
		{0.9, 3, 0.729},
		{0, 4, 0},
	}
	for _, tt := range tests {
		if got := maskPow(tt.x, tt.power); math.Abs(got-tt.want) > 1e-3 {
			t.Errorf("maskPow(%v, %d) = %v, want %v", tt.x, tt.power, got, tt.want)
		}
	}
}
