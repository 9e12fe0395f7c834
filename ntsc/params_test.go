package ntsc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultParamsValidate(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Validate())
	require.Equal(t, 1.0, p.Ringing)
	require.Equal(t, Phase180, p.VideoScanlinePhaseShift)
	require.InDelta(t, 1-4.51/262.5, p.VHSHeadSwitchingPoint, 1e-15)
}

func TestTapeProfiles(t *testing.T) {
	tests := []struct {
		speed TapeSpeed
		want  TapeProfile
	}{
		{TapeSP, TapeProfile{LumaCut: 2.4e6, ChromaCut: 320e3, ChromaDelay: 9}},
		{TapeLP, TapeProfile{LumaCut: 1.9e6, ChromaCut: 300e3, ChromaDelay: 12}},
		{TapeEP, TapeProfile{LumaCut: 1.4e6, ChromaCut: 280e3, ChromaDelay: 14}},
	}
	for _, tt := range tests {
		t.Run(tt.speed.String(), func(t *testing.T) {
			got, err := tt.speed.Profile()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := TapeSpeed(7).Profile()
	require.ErrorIs(t, err, ErrTapeSpeed)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseTapeSpeed(t *testing.T) {
	s, err := ParseTapeSpeed(" LP ")
	require.NoError(t, err)
	require.Equal(t, TapeLP, s)

	_, err = ParseTapeSpeed("slp")
	require.ErrorIs(t, err, ErrTapeSpeed)
}

func TestParamsValidateEnumerations(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
		want   error
	}{
		{"tape speed", func(p *Params) { p.VHSTapeSpeed = -1 }, ErrTapeSpeed},
		{"phase shift", func(p *Params) { p.VideoScanlinePhaseShift = 45 }, ErrPhaseShift},
		{"ringing mode", func(p *Params) { p.RingingMode = 5 }, ErrRingingMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			err := p.Validate()
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestParamsJSON(t *testing.T) {
	p := DefaultParams()
	p.VHSTapeSpeed = TapeEP
	p.RingingMode = RingingPatternPower
	p.VideoScanlinePhaseShift = Phase90

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	require.Equal(t, "ep", fields["vhs_tape_speed"])
	require.Equal(t, "pattern_power", fields["ringing_mode"])
	require.EqualValues(t, 90, fields["video_scanline_phase_shift"])

	got, err := ParseParams(data)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestParseParams(t *testing.T) {
	got, err := ParseParams([]byte(`{"video_noise": 100, "vhs_tape_speed": "lp"}`))
	require.NoError(t, err)
	require.Equal(t, 100, got.VideoNoise)
	require.Equal(t, TapeLP, got.VHSTapeSpeed)
	require.Equal(t, DefaultParams().VHSOutSharpen, got.VHSOutSharpen)

	tests := []struct {
		name string
		json string
		want error
	}{
		{"tape speed", `{"vhs_tape_speed": "xp"}`, ErrTapeSpeed},
		{"phase shift", `{"video_scanline_phase_shift": 45}`, ErrPhaseShift},
		{"ringing mode", `{"ringing_mode": "fancy"}`, ErrRingingMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseParams([]byte(tt.json))
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err = ParseParams([]byte(`{"no_such_key": 1}`))
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrInvalidArgument))
}
