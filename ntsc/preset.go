package ntsc

import "github.com/cwbudde/algo-ntsc/dsp/signal"

// RandomParams draws a plausible parameter set from seed, leaning towards
// the defaults. The same seed always yields the same Params.
func RandomParams(seed int64) Params {
	rnd := signal.NewSource(seed)
	p := DefaultParams()

	p.CompositePreemphasis = rnd.Triangular(0, 8, 0)
	p.VHSOutSharpen = rnd.Triangular(1, 5, 1.5)
	p.CompositeInChromaLowpass = rnd.Bool(0.8)
	p.CompositeOutChromaLowpass = rnd.Bool(0.8)
	p.CompositeOutChromaLowpassLite = rnd.Bool(0.8)
	p.VideoChromaNoise = int(rnd.Triangular(0, 16384, 2))
	p.VideoChromaPhaseNoise = int(rnd.Triangular(0, 50, 2))
	p.VideoChromaLoss = int(rnd.Triangular(0, 800, 10))
	p.VideoNoise = int(rnd.Triangular(0, 4200, 2))
	p.EmulatingVHS = rnd.Bool(0.2)
	p.VHSEdgeWave = int(rnd.Triangular(0, 5, 0))

	shifts := []PhaseShift{Phase0, Phase90, Phase180, Phase270}
	p.VideoScanlinePhaseShift = shifts[rnd.IntN(len(shifts))]
	p.VideoScanlinePhaseShiftOffset = rnd.IntRange(0, 3)
	speeds := TapeSpeeds()
	p.VHSTapeSpeed = speeds[rnd.IntN(len(speeds))]

	if rnd.Bool(0.8) {
		p.Ringing = rnd.Uniform(0.3, 0.7)
		if rnd.Bool(0.8) {
			p.RingingNoiseSize = rnd.Uniform(0.5, 0.99)
			p.RingingNoiseAmplitude = rnd.Uniform(0.5, 2.0)
		}
		if rnd.Bool(0.5) {
			p.RingingMode = RingingPatternPower
		}
		p.RingingPower = rnd.IntRange(2, 7)
	}

	p.ColorBleedBefore = rnd.IntRange(0, 1) == 1
	p.ColorBleedHoriz = int(rnd.Triangular(0, 8, 0))
	p.ColorBleedVert = int(rnd.Triangular(0, 8, 0))
	return p
}
