package ntsc

import (
	"fmt"

	"github.com/cwbudde/algo-ntsc/video"
)

// Stage identifies one step of CompositeLayer.
type Stage int

// Stages in execution order.
const (
	StageBlackLineCut Stage = iota
	StageToYIQ
	StageBleedBefore
	StageInChromaLowpass
	StageRinging
	StageChromaIntoLuma
	StagePreemphasis
	StageLumaNoise
	StageHeadSwitching
	StageChromaFromLuma
	StageChromaNoise
	StageChromaPhaseNoise
	StageVHS
	StageChromaLoss
	StageOutChromaLowpass
	StageBleedAfter
	StageChromaBlur
	StageFromYIQ
)

var stageNames = [...]string{
	StageBlackLineCut:     "black-line-cut",
	StageToYIQ:            "to-yiq",
	StageBleedBefore:      "bleed-before",
	StageInChromaLowpass:  "in-chroma-lowpass",
	StageRinging:          "ringing",
	StageChromaIntoLuma:   "chroma-into-luma",
	StagePreemphasis:      "preemphasis",
	StageLumaNoise:        "luma-noise",
	StageHeadSwitching:    "head-switching",
	StageChromaFromLuma:   "chroma-from-luma",
	StageChromaNoise:      "chroma-noise",
	StageChromaPhaseNoise: "chroma-phase-noise",
	StageVHS:              "vhs",
	StageChromaLoss:       "chroma-loss",
	StageOutChromaLowpass: "out-chroma-lowpass",
	StageBleedAfter:       "bleed-after",
	StageChromaBlur:       "chroma-blur",
	StageFromYIQ:          "from-yiq",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Stages returns every stage in execution order.
func Stages() []Stage {
	out := make([]Stage, len(pipeline))
	for i, st := range pipeline {
		out[i] = st.id
	}
	return out
}

// call is the per-invocation state threaded through the stages.
type call struct {
	dst, src *video.Frame
	in       *video.Frame
	field    int
	fieldNo  int
}

type stage struct {
	id      Stage
	enabled func(*Params) bool // nil: always runs
	run     func(*Engine, *call) error
}

func bleeds(p *Params) bool {
	return p.ColorBleedVert != 0 || p.ColorBleedHoriz != 0
}

var pipeline = [...]stage{
	{StageBlackLineCut, func(p *Params) bool { return p.BlackLineCut }, (*Engine).blackLineCut},
	{StageToYIQ, nil, (*Engine).toYIQ},
	{StageBleedBefore, func(p *Params) bool { return p.ColorBleedBefore && bleeds(p) }, (*Engine).colorBleed},
	{StageInChromaLowpass, func(p *Params) bool { return p.CompositeInChromaLowpass }, (*Engine).inChromaLowpass},
	{StageRinging, func(p *Params) bool { return p.Ringing != 1.0 }, (*Engine).ringing},
	{StageChromaIntoLuma, nil, (*Engine).chromaIntoLuma},
	{StagePreemphasis, func(p *Params) bool {
		return p.CompositePreemphasis != 0 && p.CompositePreemphasisCut > 0
	}, (*Engine).preemphasis},
	{StageLumaNoise, func(p *Params) bool { return p.VideoNoise != 0 }, (*Engine).lumaNoise},
	{StageHeadSwitching, func(p *Params) bool { return p.VHSHeadSwitching }, (*Engine).headSwitching},
	{StageChromaFromLuma, func(p *Params) bool { return !p.NoColorSubcarrier }, (*Engine).chromaFromLuma},
	{StageChromaNoise, func(p *Params) bool { return p.VideoChromaNoise != 0 }, (*Engine).chromaNoise},
	{StageChromaPhaseNoise, func(p *Params) bool { return p.VideoChromaPhaseNoise != 0 }, (*Engine).chromaPhaseNoise},
	{StageVHS, func(p *Params) bool { return p.EmulatingVHS }, (*Engine).vhs},
	{StageChromaLoss, func(p *Params) bool { return p.VideoChromaLoss != 0 }, (*Engine).chromaLoss},
	{StageOutChromaLowpass, func(p *Params) bool { return p.CompositeOutChromaLowpass }, (*Engine).outChromaLowpass},
	{StageBleedAfter, func(p *Params) bool { return !p.ColorBleedBefore && bleeds(p) }, (*Engine).colorBleed},
	{StageChromaBlur, nil, (*Engine).chromaBlur},
	{StageFromYIQ, nil, (*Engine).fromYIQ},
}

func (e *Engine) blackLineCut(c *call) error {
	e.work.CopyFrom(c.src)
	video.CutRightBorder(e.work, video.BlackLineWidth(e.work.Width))
	c.in = e.work
	return nil
}

func (e *Engine) toYIQ(c *call) error {
	in := c.in
	if in == nil {
		in = c.src
	}
	return video.ToYIQInto(e.yiq, in)
}

func (e *Engine) colorBleed(c *call) error {
	return ColorBleed(e.yiq, c.field, e.params.ColorBleedVert, e.params.ColorBleedHoriz)
}

func (e *Engine) inChromaLowpass(c *call) error {
	return CompositeChromaLowpass(e.yiq, c.field)
}

func (e *Engine) ringing(c *call) error {
	p := &e.params
	cfg := RingingConfig{
		Mode:           p.RingingMode,
		Alpha:          p.Ringing,
		NoiseSize:      p.RingingNoiseSize,
		NoiseAmplitude: p.RingingNoiseAmplitude,
		Power:          p.RingingPower,
		Shift:          p.RingingShift,
	}
	return e.ring.apply(e.yiq, c.field, cfg, e.pattern, e.src)
}

func (e *Engine) chromaIntoLuma(c *call) error {
	p := &e.params
	return ChromaIntoLuma(e.yiq, c.field, c.fieldNo, p.SubcarrierAmplitude, p.VideoScanlinePhaseShift, p.VideoScanlinePhaseShiftOffset)
}

func (e *Engine) preemphasis(c *call) error {
	return Preemphasis(e.yiq, c.field, e.params.CompositePreemphasis, e.params.CompositePreemphasisCut)
}

func (e *Engine) lumaNoise(c *call) error {
	return LumaNoise(e.yiq, c.field, e.params.VideoNoise, e.src, e.params.PreciseNoise)
}

func (e *Engine) headSwitching(c *call) error {
	p := &e.params
	hs := HeadSwitch{
		Point:      e.switchingPoint,
		Phase:      p.VHSHeadSwitchingPhase,
		PhaseNoise: p.VHSHeadSwitchingPhaseNoise,
	}
	return HeadSwitching(e.yiq, c.field, hs, p.OutputNTSC, e.src)
}

func (e *Engine) chromaFromLuma(c *call) error {
	p := &e.params
	return ChromaFromLuma(e.yiq, c.field, c.fieldNo, p.SubcarrierAmplitudeBack, p.VideoScanlinePhaseShift, p.VideoScanlinePhaseShiftOffset)
}

func (e *Engine) chromaNoise(c *call) error {
	return ChromaNoise(e.yiq, c.field, e.params.VideoChromaNoise, e.src, e.params.PreciseNoise)
}

func (e *Engine) chromaPhaseNoise(c *call) error {
	return ChromaPhaseNoise(e.yiq, c.field, e.params.VideoChromaPhaseNoise, e.src)
}

func (e *Engine) vhs(c *call) error {
	p := &e.params
	cfg := VHSConfig{
		Speed:               p.VHSTapeSpeed,
		EdgeWave:            p.VHSEdgeWave,
		Sharpen:             p.VHSOutSharpen,
		ChromaVertBlend:     p.VHSChromaVertBlend,
		SVideoOut:           p.VHSSVideoOut,
		NTSC:                p.OutputNTSC,
		SubcarrierAmplitude: p.SubcarrierAmplitude,
		PhaseShift:          p.VideoScanlinePhaseShift,
		PhaseOffset:         p.VideoScanlinePhaseShiftOffset,
	}
	return EmulateVHS(e.yiq, c.field, c.fieldNo, cfg, e.src)
}

func (e *Engine) chromaLoss(c *call) error {
	return ChromaLoss(e.yiq, c.field, e.params.VideoChromaLoss, e.src)
}

func (e *Engine) outChromaLowpass(c *call) error {
	if e.params.CompositeOutChromaLowpassLite {
		return TVChromaLowpass(e.yiq, c.field)
	}
	return CompositeChromaLowpass(e.yiq, c.field)
}

func (e *Engine) chromaBlur(c *call) error {
	return BlurChroma(e.yiq, c.field)
}

func (e *Engine) fromYIQ(c *call) error {
	return video.FromYIQ(c.dst, e.yiq, c.field)
}
