// Command shuntcheck analyzes a recorded dialysis shunt sound.
//
// Usage:
//
//	shuntcheck [flags] file.wav
//
// It decodes the clip, prints the band-energy balance with its heuristic
// verdict, the spectral peak, and the dimensions of the time-frequency grid.
// With -review the raw clip is additionally sent to Gemini for a free-text
// assessment; the API key is read from GEMINI_API_KEY or GOOGLE_API_KEY.
//
// Examples:
//
//	shuntcheck recording.wav
//	shuntcheck -review recording.wav
//	shuntcheck -review -model gemini-2.5-pro recording.wav
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/shunt-dsp/analyze"
	"github.com/cwbudde/shunt-dsp/review"
)

func main() {
	withReview := flag.Bool("review", false, "send the clip to Gemini for a text assessment")
	model := flag.String("model", "", "override the Gemini model")
	timeout := flag.Duration("timeout", time.Minute, "timeout for the Gemini call")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: shuntcheck [flags] file.wav\n\n")
		fmt.Fprintf(os.Stderr, "Analyzes a recorded dialysis shunt sound.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *withReview, *model, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "shuntcheck: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, withReview bool, model string, timeout time.Duration) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	rep, err := analyze.Clip(data)
	if err != nil {
		return err
	}

	printReport(rep)

	if !withReview {
		return nil
	}

	return runReview(data, model, timeout)
}

func printReport(rep *analyze.Report) {
	peakFreq, _ := rep.Spectrum.Peak()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "duration\t%.2f s\n", rep.Waveform.Duration())
	fmt.Fprintf(w, "sample rate\t%d Hz\n", rep.Waveform.SampleRate)
	fmt.Fprintf(w, "spectral peak\t%.1f Hz\n", peakFreq)
	fmt.Fprintf(w, "low band (0-500 Hz)\t%.1f%%\n", rep.Ratios.LowRatio)
	fmt.Fprintf(w, "high band (1-3 kHz)\t%.1f%%\n", rep.Ratios.HighRatio)
	fmt.Fprintf(w, "verdict\t%s\n", rep.Ratios.Verdict)

	if sg := rep.Spectrogram; sg != nil {
		fmt.Fprintf(w, "spectrogram\t%d windows x %d frequency bins\n", len(sg.TimeBins), len(sg.FreqBins))
	} else {
		fmt.Fprintf(w, "spectrogram\tclip too short\n")
	}

	w.Flush()

	fmt.Println("\nHeuristic display aid only, not a medical diagnosis.")
}

func runReview(data []byte, model string, timeout time.Duration) error {
	apiKey := resolveAPIKey()
	if apiKey == "" {
		return fmt.Errorf("no API key found: set GEMINI_API_KEY or GOOGLE_API_KEY")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var opts []review.Option
	if model != "" {
		opts = append(opts, review.WithModel(model))
	}

	r, err := review.NewGemini(ctx, apiKey, opts...)
	if err != nil {
		return err
	}

	text, err := r.Review(ctx, data)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(text)

	return nil
}

func resolveAPIKey() string {
	for _, name := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}

	return ""
}
