package ntsc

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ntsc/internal/testutil"
	"github.com/cwbudde/algo-ntsc/video"
)

func barsFrame(w, h int) *video.Frame {
	return &video.Frame{Width: w, Height: h, Pix: testutil.ColorBars(w, h)}
}

func noisyParams() Params {
	p := DefaultParams()
	p.VideoNoise = 300
	p.VideoChromaNoise = 400
	p.VideoChromaPhaseNoise = 10
	p.VideoChromaLoss = 3000
	p.CompositePreemphasis = 2
	p.Ringing = 0.5
	p.RingingNoiseSize = 0.8
	p.EmulatingVHS = true
	p.VHSEdgeWave = 3
	p.VHSHeadSwitching = true
	p.VHSHeadSwitchingSpeed = 5
	p.ColorBleedHoriz = 2
	p.ColorBleedVert = 1
	return p
}

func TestNewRejectsInvalidParams(t *testing.T) {
	p := DefaultParams()
	p.VideoScanlinePhaseShift = 45
	_, err := New(p)
	require.ErrorIs(t, err, ErrPhaseShift)

	_, err = New(DefaultParams(), WithRingPattern(nil))
	require.ErrorIs(t, err, ErrRingPattern)
}

func TestCompositeLayerPreconditions(t *testing.T) {
	e, err := New(DefaultParams(), WithSeed(1))
	require.NoError(t, err)

	src := barsFrame(16, 8)
	tests := []struct {
		name  string
		dst   *video.Frame
		src   *video.Frame
		field int
		want  error
	}{
		{"field", video.NewFrame(16, 8), src, 2, ErrInvalidField},
		{"negative field", video.NewFrame(16, 8), src, -1, ErrInvalidField},
		{"shape", video.NewFrame(16, 9), src, 0, ErrShapeMismatch},
		{"nil", nil, src, 0, ErrShapeMismatch},
		{"short buffer", &video.Frame{Width: 16, Height: 8, Pix: make([]uint8, 10)}, src, 0, ErrShapeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before []uint8
			if tt.dst != nil {
				before = append(before, tt.dst.Pix...)
			}
			err := e.CompositeLayer(tt.dst, tt.src, tt.field, 0)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, ErrInvalidArgument)
			if tt.dst != nil {
				require.Equal(t, before, tt.dst.Pix, "dst untouched on failure")
			}
		})
	}
	require.Equal(t, DefaultParams().VHSHeadSwitchingPoint, e.SwitchingPoint())
}

func TestCompositeLayerDeterministic(t *testing.T) {
	render := func(seed int64) ([][]uint8, float64) {
		e, err := New(noisyParams(), WithSeed(seed))
		require.NoError(t, err)
		src := barsFrame(64, 48)
		var out [][]uint8
		for n := range 4 {
			dst := video.NewFrame(64, 48)
			require.NoError(t, e.CompositeLayer(dst, src, n%2, n))
			out = append(out, dst.Pix)
		}
		return out, e.SwitchingPoint()
	}

	a, pa := render(42)
	b, pb := render(42)
	require.Equal(t, a, b)
	require.Equal(t, pa, pb)

	c, _ := render(43)
	require.NotEqual(t, a, c)
}

func TestCompositeLayerKeepsSourceAndOtherField(t *testing.T) {
	p := noisyParams()
	p.BlackLineCut = true
	e, err := New(p, WithSeed(3))
	require.NoError(t, err)

	src := barsFrame(60, 20)
	orig := append([]uint8(nil), src.Pix...)
	dst := video.NewFrame(60, 20)
	for i := range dst.Pix {
		dst.Pix[i] = 77
	}

	require.NoError(t, e.CompositeLayer(dst, src, 1, 0))
	require.Equal(t, orig, src.Pix)
	for y := 0; y < 20; y += 2 {
		require.Equal(t, bytes.Repeat([]uint8{77}, 180), dst.Row(y))
	}
	require.NotEqual(t, bytes.Repeat([]uint8{77}, 180), dst.Row(1))
}

func TestCompositeLayerGrayStaysGray(t *testing.T) {
	p := DefaultParams()
	p.VideoNoise = 0
	p.VideoChromaPhaseNoise = 20
	p.VideoChromaLoss = 5000
	p.Ringing = 0.5
	p.RingingNoiseSize = 0.9
	p.ColorBleedHoriz = 2
	p.ColorBleedVert = 3
	p.SubcarrierAmplitude = 40
	p.SubcarrierAmplitudeBack = 40

	for _, mode := range []RingingMode{RingingSpectralMask, RingingPatternPower} {
		p.RingingMode = mode
		e, err := New(p, WithSeed(9))
		require.NoError(t, err)

		const w, h = 192, 24
		src := &video.Frame{Width: w, Height: h, Pix: testutil.Solid(w, h, 200, 200, 200)}
		dst := video.NewFrame(w, h)
		for field := range 2 {
			require.NoError(t, e.CompositeLayer(dst, src, field, field))
		}

		for y := range h {
			row := dst.Row(y)
			for x := 48; x < w-48; x++ {
				require.Equal(t, []uint8{200, 200, 200}, row[3*x:3*x+3], "%s y=%d x=%d", mode, y, x)
			}
		}
	}
}

func TestCompositeLayerGrayStaysGrayThroughVHS(t *testing.T) {
	p := DefaultParams()
	p.VideoNoise = 0
	p.VideoChromaPhaseNoise = 20
	p.VideoChromaLoss = 5000
	p.Ringing = 0.5
	p.RingingNoiseSize = 0.9
	p.ColorBleedHoriz = 2
	p.ColorBleedVert = 3
	p.EmulatingVHS = true
	p.VHSEdgeWave = 0

	for _, svideo := range []bool{false, true} {
		p.VHSSVideoOut = svideo
		e, err := New(p, WithSeed(9))
		require.NoError(t, err)

		// The slow VHS chroma cascade stretches the left-edge transient far
		// into the line, so only the middle of the frame is checked.
		const w, h = 192, 24
		src := &video.Frame{Width: w, Height: h, Pix: testutil.Solid(w, h, 200, 200, 200)}
		dst := video.NewFrame(w, h)
		for field := range 2 {
			require.NoError(t, e.CompositeLayer(dst, src, field, field))
		}

		for y := range h {
			row := dst.Row(y)
			for x := 100; x < 132; x++ {
				require.Equal(t, []uint8{200, 200, 200}, row[3*x:3*x+3], "svideo=%t y=%d x=%d", svideo, y, x)
			}
		}
	}
}

func TestCompositeLayerExtremeParams(t *testing.T) {
	p := noisyParams()
	p.VideoNoise = 4200
	p.VideoChromaNoise = 16384
	p.CompositePreemphasis = 8
	p.VHSOutSharpen = 5
	p.SubcarrierAmplitude = 0
	p.SubcarrierAmplitudeBack = 0
	p.RingingMode = RingingPatternPower
	p.RingingPower = 7
	p.RingingShift = -0.5
	p.ColorBleedVert = -4
	p.ColorBleedHoriz = 300
	p.OutputNTSC = false

	e, err := New(p, WithSeed(2))
	require.NoError(t, err)
	for _, size := range [][2]int{{1, 1}, {2, 3}, {7, 5}, {50, 31}} {
		src := barsFrame(size[0], size[1])
		dst := video.NewFrame(size[0], size[1])
		for field := range 2 {
			require.NoError(t, e.CompositeLayer(dst, src, field, 0), "%v", size)
		}
		require.Len(t, dst.Pix, size[0]*size[1]*3)
	}
}

func TestSwitchingPointDrift(t *testing.T) {
	p := DefaultParams()
	p.VHSHeadSwitching = true
	p.VHSHeadSwitchingSpeed = 5
	e, err := New(p, WithSeed(1))
	require.NoError(t, err)

	start := e.SwitchingPoint()
	src := barsFrame(20, 10)
	dst := video.NewFrame(20, 10)
	for n := 1; n <= 7; n++ {
		require.NoError(t, e.CompositeLayer(dst, src, n%2, n))
		want := start + float64(n)*0.005
		want -= float64(int(want))
		require.InDelta(t, want, e.SwitchingPoint(), 1e-12, "call %d", n)
	}
}

func TestSetParams(t *testing.T) {
	e, err := New(DefaultParams(), WithSeed(1))
	require.NoError(t, err)

	p := DefaultParams()
	p.VHSHeadSwitchingSpeed = 20
	require.NoError(t, e.SetParams(p))
	require.Equal(t, DefaultParams().VHSHeadSwitchingPoint, e.SwitchingPoint())

	p.VHSHeadSwitchingPoint = 0.99
	require.NoError(t, e.SetParams(p))
	require.Equal(t, 0.99, e.SwitchingPoint())
	require.NoError(t, e.CompositeLayer(video.NewFrame(4, 4), barsFrame(4, 4), 0, 0))
	require.InDelta(t, 0.01, e.SwitchingPoint(), 1e-12)

	bad := p
	bad.VHSTapeSpeed = 9
	require.ErrorIs(t, e.SetParams(bad), ErrTapeSpeed)
	require.Equal(t, p, e.Params())
}

func TestStageHook(t *testing.T) {
	var got []Stage
	hook := func(s Stage, d time.Duration) {
		require.GreaterOrEqual(t, d, time.Duration(0))
		got = append(got, s)
	}
	e, err := New(DefaultParams(), WithSeed(1), WithStageHook(hook))
	require.NoError(t, err)
	require.NoError(t, e.CompositeLayer(video.NewFrame(16, 8), barsFrame(16, 8), 0, 0))

	require.Equal(t, []Stage{
		StageToYIQ,
		StageInChromaLowpass,
		StageChromaIntoLuma,
		StageLumaNoise,
		StageChromaFromLuma,
		StageOutChromaLowpass,
		StageChromaBlur,
		StageFromYIQ,
	}, got)

	got = got[:0]
	require.NoError(t, e.SetParams(noisyParams()))
	require.NoError(t, e.CompositeLayer(video.NewFrame(16, 8), barsFrame(16, 8), 1, 0))
	require.Contains(t, got, StageRinging)
	require.Contains(t, got, StageVHS)
	require.Contains(t, got, StageBleedBefore)
	require.NotContains(t, got, StageBleedAfter)
}

func TestStages(t *testing.T) {
	stages := Stages()
	require.Len(t, stages, 18)
	for i, s := range stages {
		require.Equal(t, Stage(i), s)
		require.NotContains(t, s.String(), "Stage(")
	}
	require.Equal(t, "Stage(99)", Stage(99).String())
}

func TestCompositeLayerCrossColor(t *testing.T) {
	const w, h = 64, 8
	p := DefaultParams()
	p.VideoNoise = 0
	e, err := New(p, WithSeed(1))
	require.NoError(t, err)

	// Stripes two pixels wide sit on the subcarrier and decode as colour.
	src := &video.Frame{Width: w, Height: h, Pix: testutil.Stripes(w, h, 2, 0, 255)}
	dst := video.NewFrame(w, h)
	require.NoError(t, e.CompositeLayer(dst, src, 0, 0))

	row := dst.Row(2)[16*3 : 48*3]
	b, r := make([]uint8, 0, 32), make([]uint8, 0, 32)
	for i := 0; i < len(row); i += 3 {
		b, r = append(b, row[i]), append(r, row[i+2])
	}
	d, err := testutil.MaxAbsDiff(b, r)
	require.NoError(t, err)
	require.Positive(t, d)
}

func TestReseedReplaysNoise(t *testing.T) {
	p := noisyParams()
	p.VHSHeadSwitching = false
	e, err := New(p, WithSeed(5))
	require.NoError(t, err)

	src := barsFrame(40, 12)
	first, again := video.NewFrame(40, 12), video.NewFrame(40, 12)
	require.NoError(t, e.CompositeLayer(first, src, 0, 0))

	e.Reseed(5)
	require.Equal(t, int64(5), e.Seed())
	require.NoError(t, e.CompositeLayer(again, src, 0, 0))
	require.Equal(t, first.Pix, again.Pix)
}
