package ntsc_test

import (
	"fmt"

	"github.com/cwbudde/algo-ntsc/ntsc"
	"github.com/cwbudde/algo-ntsc/video"
)

func ExampleTapeSpeed_Profile() {
	for _, s := range ntsc.TapeSpeeds() {
		prof, _ := s.Profile()
		fmt.Printf("%s luma %.1f MHz, chroma %.0f kHz, delay %d\n", s, prof.LumaCut/1e6, prof.ChromaCut/1e3, prof.ChromaDelay)
	}

	// Output:
	// SP luma 2.4 MHz, chroma 320 kHz, delay 9
	// LP luma 1.9 MHz, chroma 300 kHz, delay 12
	// EP luma 1.4 MHz, chroma 280 kHz, delay 14
}

func ExampleEngine_CompositeLayer() {
	params := ntsc.DefaultParams()
	params.VideoNoise = 0

	e, err := ntsc.New(params, ntsc.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}

	src := video.NewFrame(128, 4)
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	dst := video.NewFrame(128, 4)
	for field := range 2 {
		if err := e.CompositeLayer(dst, src, field, field); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Println(dst.Row(1)[3*64 : 3*64+3])

	// Output:
	// [200 200 200]
}
