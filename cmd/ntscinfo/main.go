// Command ntscinfo prints the filter and pattern tables behind the composite
// video emulator and can render or benchmark frames through it.
//
// Usage:
//
//	ntscinfo [flags]
//
// Without flags it prints the tape profiles, the ring pattern summary and
// the detected CPU features.
//
// Examples:
//
//	ntscinfo
//	ntscinfo -params vhs.json -bench -size 720x480 -frames 30
//	ntscinfo -params vhs.json -in still.png -out still_vhs.png
//	ntscinfo -random 7 -in still.png -out still_vhs.png -progressive
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-ntsc/dsp/core"
	"github.com/cwbudde/algo-ntsc/dsp/filter/onepole"
	"github.com/cwbudde/algo-ntsc/dsp/spectrum"
	"github.com/cwbudde/algo-ntsc/measure/quality"
	"github.com/cwbudde/algo-ntsc/ntsc"
	"github.com/cwbudde/algo-ntsc/ntsc/render"
	"github.com/cwbudde/algo-ntsc/video"
)

// Every VHS filter chain runs three sections.
const chainPasses = 3

func main() {
	paramsFile := flag.String("params", "", "JSON parameter file (omitted keys keep their defaults)")
	random := flag.Int64("random", -1, "use randomized parameters from this seed instead of -params")
	seed := flag.Int64("seed", 1, "engine noise seed")
	bench := flag.Bool("bench", false, "time the pipeline per stage")
	size := flag.String("size", "720x480", "benchmark frame size as WxH")
	frames := flag.Int("frames", 10, "number of benchmark frames")
	in := flag.String("in", "", "render this PNG or JPEG image")
	out := flag.String("out", "out.png", "PNG output path for -in")
	progressive := flag.Bool("progressive", false, "render -in from a single field")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ntscinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints tape profiles, ring pattern and CPU info for the NTSC emulator.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ntscinfo -params vhs.json -bench -size 720x480\n")
		fmt.Fprintf(os.Stderr, "  ntscinfo -params vhs.json -in still.png -out still_vhs.png\n")
	}
	flag.Parse()

	params, err := loadParams(*paramsFile, *random)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *in != "":
		err = renderFile(params, *seed, *in, *out, *progressive)
	case *bench:
		var w, h int
		w, h, err = parseSize(*size)
		if err == nil {
			err = runBench(params, *seed, w, h, *frames)
		}
	default:
		printProfiles()
		printRingPattern()
		printCPU()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadParams(path string, random int64) (ntsc.Params, error) {
	if random >= 0 {
		return ntsc.RandomParams(random), nil
	}
	if path == "" {
		return ntsc.DefaultParams(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ntsc.Params{}, err
	}
	return ntsc.ParseParams(data)
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: dimensions must be > 0", s)
	}
	return w, h, nil
}

// cutoff3dB bisects for the frequency where the cascade falls 3 dB below DC.
func cutoff3dB(c *onepole.Cascade) float64 {
	lo, hi := 0.0, core.NTSCRate/2
	if c.MagnitudeDB(hi) > -3 {
		return math.Inf(1)
	}
	for range 60 {
		mid := (lo + hi) / 2
		if c.MagnitudeDB(mid) > -3 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func printProfiles() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Tape\tLuma Cut [MHz]\tLuma -3dB [MHz]\tChroma Cut [kHz]\tChroma -3dB [kHz]\tChroma Delay\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "----\t--------------\t---------------\t----------------\t-----------------\t------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, s := range ntsc.TapeSpeeds() {
		prof, err := s.Profile()
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		luma, err := onepole.NewCascade(chainPasses, prof.LumaCut, 0)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		chroma, err := onepole.NewCascade(chainPasses, prof.ChromaCut, 0)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}

		if _, err := fmt.Fprintf(tw, "%s\t%.2f\t%.3f\t%.0f\t%.1f\t%d\n",
			s,
			prof.LumaCut/1e6,
			cutoff3dB(luma)/1e6,
			prof.ChromaCut/1e3,
			cutoff3dB(chroma)/1e3,
			prof.ChromaDelay,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Println()
}

// powerDB converts a power ratio to decibels.
func powerDB(ratio float64) float64 {
	if ratio <= 0 {
		return math.Inf(-1)
	}
	return 10 * approx.FastLog(ratio) / math.Ln10
}

func printRingPattern() {
	pattern, err := ntsc.RingPattern()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}

	peak, peakAt := 0.0, 0
	for i, v := range pattern {
		if v > peak {
			peak, peakAt = v, i
		}
	}

	plan, err := spectrum.NewPlan(len(pattern))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	freq := make([]complex128, len(pattern))
	spectrum.FromReal(freq, pattern)
	if err := plan.Forward(freq, freq); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	half := freq[:len(freq)/2+1]
	mag := spectrum.Magnitude(half)
	total, ac := 0.0, 0.0
	for i, p := range spectrum.Power(half) {
		total += p
		if i > 0 {
			ac += p
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	rows := []struct {
		key string
		val string
	}{
		{"Ring pattern length", strconv.Itoa(len(pattern))},
		{"Peak", fmt.Sprintf("%.4f at %d", peak, peakAt)},
		{"DC magnitude", fmt.Sprintf("%.3f", mag[0])},
		{"AC/total energy", fmt.Sprintf("%.2f dB", powerDB(ac/total))},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", r.key, r.val); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Println()
}

func printCPU() {
	f := cpu.DetectFeatures()
	fmt.Printf("CPU: %s (SSE2 %t, AVX2 %t, NEON %t)\n", f.Architecture, f.HasSSE2, f.HasAVX2, f.HasNEON)
}

func runBench(params ntsc.Params, seed int64, w, h, frames int) error {
	spent := make(map[ntsc.Stage]time.Duration)
	e, err := ntsc.New(params, ntsc.WithSeed(seed), ntsc.WithStageHook(func(s ntsc.Stage, d time.Duration) {
		spent[s] += d
	}))
	if err != nil {
		return err
	}

	src, dst := testFrame(w, h), video.NewFrame(w, h)
	start := time.Now()
	for n := range frames {
		if err := render.Interlaced(e, dst, src, nil, 2*n); err != nil {
			return err
		}
	}
	total := time.Since(start)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Stage\tTotal\tPer Frame\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t-----\t---------\n"); err != nil {
		return err
	}
	for _, s := range ntsc.Stages() {
		d, ok := spent[s]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(tw, "%s\t%v\t%v\n", s, d.Round(time.Microsecond), (d / time.Duration(max(frames, 1))).Round(time.Microsecond)); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fps := 0.0
	if total > 0 {
		fps = float64(frames) / total.Seconds()
	}
	fmt.Printf("\n%d frames of %dx%d in %v (%.1f fps)\n", frames, w, h, total.Round(time.Millisecond), fps)
	return nil
}

// testFrame draws a horizontal hue sweep over a vertical luma ramp.
func testFrame(w, h int) *video.Frame {
	f := video.NewFrame(w, h)
	for y := range h {
		row := f.Row(y)
		level := 255 * (y + 1) / h
		for x := range w {
			phase := 2 * math.Pi * float64(x) / float64(w)
			for c := range 3 {
				v := float64(level) * (0.5 + 0.5*math.Cos(phase+float64(c)*2*math.Pi/3))
				row[3*x+c] = uint8(v)
			}
		}
	}
	return f
}

func renderFile(params ntsc.Params, seed int64, in, out string, progressive bool) error {
	r, err := os.Open(in)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(r)
	_ = r.Close()
	if err != nil {
		return fmt.Errorf("decode %s: %w", in, err)
	}

	e, err := ntsc.New(params, ntsc.WithSeed(seed))
	if err != nil {
		return err
	}

	src := video.FromImage(img)
	dst := video.NewFrame(src.Width, src.Height)
	if progressive {
		err = render.Progressive(e, dst, src, 0)
	} else {
		err = render.Interlaced(e, dst, src, nil, 0)
	}
	if err != nil {
		return err
	}

	w, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(w, dst.ToImage()); err != nil {
		_ = w.Close()
		return fmt.Errorf("encode %s: %w", out, err)
	}
	if err := w.Close(); err != nil {
		return err
	}
	return printQuality(src, dst)
}

func printQuality(src, dst *video.Frame) error {
	r, err := quality.Compare(src, dst)
	if err != nil {
		return err
	}
	yiq, err := video.ToYIQ(dst)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Channel\tMSE\tPSNR [dB]\n"); err != nil {
		return err
	}
	for i, name := range []string{"B", "G", "R"} {
		if _, err := fmt.Fprintf(tw, "%s\t%.2f\t%.2f\n", name, r.MSE[i], r.PSNR[i]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(tw, "all\t%.2f\t%.2f\n\nPlane\tMean\tStdDev\tMin\tMax\n", r.TotalMSE, r.PSNRdB); err != nil {
		return err
	}
	for i, s := range quality.Planes(yiq) {
		if _, err := fmt.Fprintf(tw, "%c\t%.1f\t%.1f\t%.0f\t%.0f\n", "YIQ"[i], s.Mean, s.StdDev, s.Min, s.Max); err != nil {
			return err
		}
	}
	return tw.Flush()
}
