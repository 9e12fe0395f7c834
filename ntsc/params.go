package ntsc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// TapeSpeed selects the VHS recording speed.
type TapeSpeed int

const (
	TapeSP TapeSpeed = iota
	TapeLP
	TapeEP
)

// TapeProfile holds the channel bandwidth of a tape speed.
type TapeProfile struct {
	LumaCut     float64 // Hz
	ChromaCut   float64 // Hz
	ChromaDelay int     // samples
}

var tapeProfiles = [...]TapeProfile{
	TapeSP: {LumaCut: 2400000, ChromaCut: 320000, ChromaDelay: 9},
	TapeLP: {LumaCut: 1900000, ChromaCut: 300000, ChromaDelay: 12},
	TapeEP: {LumaCut: 1400000, ChromaCut: 280000, ChromaDelay: 14},
}

var tapeNames = [...]string{TapeSP: "sp", TapeLP: "lp", TapeEP: "ep"}

// TapeSpeeds lists every supported tape speed.
func TapeSpeeds() []TapeSpeed {
	return []TapeSpeed{TapeSP, TapeLP, TapeEP}
}

// Profile returns the bandwidth profile of s.
func (s TapeSpeed) Profile() (TapeProfile, error) {
	if s < TapeSP || s > TapeEP {
		return TapeProfile{}, fmt.Errorf("%w: %d", ErrTapeSpeed, int(s))
	}
	return tapeProfiles[s], nil
}

func (s TapeSpeed) String() string {
	if s < TapeSP || s > TapeEP {
		return fmt.Sprintf("TapeSpeed(%d)", int(s))
	}
	return strings.ToUpper(tapeNames[s])
}

// ParseTapeSpeed parses "sp", "lp" or "ep" (case-insensitive).
func ParseTapeSpeed(name string) (TapeSpeed, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range tapeNames {
		if n == name {
			return TapeSpeed(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrTapeSpeed, name)
}

func (s TapeSpeed) MarshalText() ([]byte, error) {
	if _, err := s.Profile(); err != nil {
		return nil, err
	}
	return []byte(tapeNames[s]), nil
}

func (s *TapeSpeed) UnmarshalText(b []byte) error {
	v, err := ParseTapeSpeed(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// PhaseShift is the per-scanline subcarrier phase behaviour in degrees.
// Zero keeps a fixed phase given by the offset alone.
type PhaseShift int

const (
	Phase0   PhaseShift = 0
	Phase90  PhaseShift = 90
	Phase180 PhaseShift = 180
	Phase270 PhaseShift = 270
)

// Validate reports ErrPhaseShift for unsupported values.
func (p PhaseShift) Validate() error {
	switch p {
	case Phase0, Phase90, Phase180, Phase270:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrPhaseShift, int(p))
}

func (p *PhaseShift) UnmarshalJSON(b []byte) error {
	var deg int
	if err := json.Unmarshal(b, &deg); err != nil {
		return fmt.Errorf("%w: %s", ErrPhaseShift, b)
	}
	if err := PhaseShift(deg).Validate(); err != nil {
		return err
	}
	*p = PhaseShift(deg)
	return nil
}

// RingingMode selects the frequency-domain ringing variant.
type RingingMode int

const (
	// RingingSpectralMask keeps a rectangular band of horizontal
	// frequencies, optionally perturbed by random noise.
	RingingSpectralMask RingingMode = iota
	// RingingPatternPower shapes the spectrum with the ring pattern raised
	// to an integer power.
	RingingPatternPower
)

var ringingNames = [...]string{
	RingingSpectralMask: "spectral_mask",
	RingingPatternPower: "pattern_power",
}

func (m RingingMode) String() string {
	if m < RingingSpectralMask || m > RingingPatternPower {
		return fmt.Sprintf("RingingMode(%d)", int(m))
	}
	return ringingNames[m]
}

// Validate reports ErrRingingMode for unknown modes.
func (m RingingMode) Validate() error {
	if m < RingingSpectralMask || m > RingingPatternPower {
		return fmt.Errorf("%w: %d", ErrRingingMode, int(m))
	}
	return nil
}

func (m RingingMode) MarshalText() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return []byte(ringingNames[m]), nil
}

func (m *RingingMode) UnmarshalText(b []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(b)))
	for i, n := range ringingNames {
		if n == name {
			*m = RingingMode(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrRingingMode, name)
}

// Params is the full parameter block of the engine. The zero value is not
// useful; start from DefaultParams. Only the enumerations are validated.
type Params struct {
	// Composite pre-emphasis of luma before noise, 0 disables.
	CompositePreemphasis    float64 `json:"composite_preemphasis"`
	CompositePreemphasisCut float64 `json:"composite_preemphasis_cut"`

	// Chroma low-pass before encoding and after decoding.
	CompositeInChromaLowpass      bool `json:"composite_in_chroma_lowpass"`
	CompositeOutChromaLowpass     bool `json:"composite_out_chroma_lowpass"`
	CompositeOutChromaLowpassLite bool `json:"composite_out_chroma_lowpass_lite"`

	// VHS channel.
	EmulatingVHS       bool      `json:"emulating_vhs"`
	VHSTapeSpeed       TapeSpeed `json:"vhs_tape_speed"`
	VHSOutSharpen      float64   `json:"vhs_out_sharpen"`
	VHSEdgeWave        int       `json:"vhs_edge_wave"`
	VHSChromaVertBlend bool      `json:"vhs_chroma_vert_blend"`
	VHSSVideoOut       bool      `json:"vhs_svideo_out"`

	// Head switching. Point and phase are fractions of a field.
	VHSHeadSwitching           bool    `json:"vhs_head_switching"`
	VHSHeadSwitchingSpeed      float64 `json:"vhs_head_switching_speed"`
	VHSHeadSwitchingPoint      float64 `json:"vhs_head_switching_point"`
	VHSHeadSwitchingPhase      float64 `json:"vhs_head_switching_phase"`
	VHSHeadSwitchingPhaseNoise float64 `json:"vhs_head_switching_phase_noise"`

	// Colour bleed in field rows and samples.
	ColorBleedBefore bool `json:"color_bleed_before"`
	ColorBleedHoriz  int  `json:"color_bleed_horiz"`
	ColorBleedVert   int  `json:"color_bleed_vert"`

	// Ringing; 1.0 disables.
	Ringing               float64     `json:"ringing"`
	RingingMode           RingingMode `json:"ringing_mode"`
	RingingPower          int         `json:"ringing_power"`
	RingingShift          float64     `json:"ringing_shift"`
	RingingNoiseSize      float64     `json:"freq_noise_size"`
	RingingNoiseAmplitude float64     `json:"freq_noise_amplitude"`

	// Noise and dropout amplitudes.
	VideoNoise            int `json:"video_noise"`
	VideoChromaNoise      int `json:"video_chroma_noise"`
	VideoChromaPhaseNoise int `json:"video_chroma_phase_noise"`
	VideoChromaLoss       int `json:"video_chroma_loss"`
	// PreciseNoise selects the sequential random walk over the filtered
	// block form. Both consume the same draws.
	PreciseNoise bool `json:"precise_noise"`

	// Subcarrier.
	SubcarrierAmplitude     int  `json:"subcarrier_amplitude"`
	SubcarrierAmplitudeBack int  `json:"subcarrier_amplitude_back"`
	NoColorSubcarrier       bool `json:"nocolor_subcarrier"`

	OutputNTSC                    bool       `json:"output_ntsc"`
	VideoScanlinePhaseShift       PhaseShift `json:"video_scanline_phase_shift"`
	VideoScanlinePhaseShiftOffset int        `json:"video_scanline_phase_shift_offset"`

	BlackLineCut bool `json:"black_line_cut"`
}

// DefaultParams returns a mild composite look: light luma noise, chroma
// low-pass on both ends, no VHS channel.
func DefaultParams() Params {
	return Params{
		CompositePreemphasis:          0,
		CompositePreemphasisCut:       1000000,
		CompositeInChromaLowpass:      true,
		CompositeOutChromaLowpass:     true,
		CompositeOutChromaLowpassLite: true,

		VHSTapeSpeed:       TapeSP,
		VHSOutSharpen:      1.5,
		VHSChromaVertBlend: true,

		VHSHeadSwitchingPoint:      1.0 - (4.5+0.01)/262.5,
		VHSHeadSwitchingPhase:      (1.0 - 0.01) / 262.5,
		VHSHeadSwitchingPhaseNoise: 1.0 / 500 / 262.5,

		ColorBleedBefore: true,

		Ringing:               1.0,
		RingingMode:           RingingSpectralMask,
		RingingPower:          2,
		RingingNoiseAmplitude: 2,

		VideoNoise: 2,

		SubcarrierAmplitude:     50,
		SubcarrierAmplitudeBack: 50,

		OutputNTSC:              true,
		VideoScanlinePhaseShift: Phase180,
	}
}

// Validate checks the enumerated fields.
func (p *Params) Validate() error {
	if _, err := p.VHSTapeSpeed.Profile(); err != nil {
		return err
	}
	if err := p.VideoScanlinePhaseShift.Validate(); err != nil {
		return err
	}
	return p.RingingMode.Validate()
}

// ParseParams decodes a JSON parameter block on top of DefaultParams, so
// omitted keys keep their defaults. Unknown keys are rejected.
func ParseParams(data []byte) (Params, error) {
	p := DefaultParams()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Params{}, fmt.Errorf("ntsc: decode params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
