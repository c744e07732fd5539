package harmonics_test

import (
	"fmt"

	"github.com/cwbudde/algo-synth/measure/harmonics"
)

func ExampleAnalyzer_AnalyzeCurve() {
	a, err := harmonics.NewAnalyzer(harmonics.DefaultConfig())
	if err != nil {
		panic(err)
	}

	curve, _ := harmonics.FindCurve("quicker-sin")

	p, err := a.AnalyzeCurve(curve)
	if err != nil {
		panic(err)
	}

	fmt.Printf("H3: %.2f dB\n", p.Harmonics[1])
	fmt.Printf("THD: %.2f%%\n", p.THD*100)
	// Output:
	// H3: -28.63 dB
	// THD: 3.80%
}

func ExampleAnalyzer_AnalyzeShaper() {
	a, err := harmonics.NewAnalyzer(harmonics.DefaultConfig())
	if err != nil {
		panic(err)
	}

	tanh, _ := harmonics.FindShaper("tanh")

	p, err := a.AnalyzeShaper(tanh, 2)
	if err != nil {
		panic(err)
	}

	fmt.Printf("THD: %.2f%%\n", p.THD*100)
	// Output:
	// THD: 17.34%
}
