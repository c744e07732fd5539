// Command curveinfo prints harmonic profiles of the synth approximation
// curves and a few pitch and backend tables.
//
// Usage:
//
//	curveinfo [flags] [curve-or-shaper ...]
//
// Without arguments it profiles every known curve and shaper.
//
// Examples:
//
//	curveinfo quick-sin quicker-sin
//	curveinfo -drive 4 tanh quick-tanh
//	curveinfo -size 4096 -cycles 3 -harmonics 15
//	curveinfo -notes
//	curveinfo -backend
//	curveinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/measure/harmonics"
)

var errNoMatches = errors.New("no matching curves or shapers")

type options struct {
	size      int
	rate      float64
	cycles    int
	harmonics int
	drive     float64
	names     []string
}

func main() {
	size := flag.Int("size", 1024, "FFT frame length in samples (power of two)")
	rate := flag.Float64("rate", 48000, "sample rate in Hz used to label the fundamental")
	cycles := flag.Int("cycles", 1, "periods rendered per frame")
	maxHarmonics := flag.Int("harmonics", 9, "number of harmonics above the fundamental")
	drive := flag.Float64("drive", 2, "peak amplitude of the sine driving each shaper")
	list := flag.Bool("list", false, "list available curve and shaper names")
	notes := flag.Bool("notes", false, "print the MIDI note / frequency table")
	backend := flag.Bool("backend", false, "print the extremum kernel and detected CPU features")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: curveinfo [flags] [curve-or-shaper ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints harmonic profiles of synth approximation curves.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, profiles every curve and shaper.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  curveinfo quick-sin quicker-sin\n")
		fmt.Fprintf(os.Stderr, "  curveinfo -drive 4 tanh quick-tanh\n")
		fmt.Fprintf(os.Stderr, "  curveinfo -notes\n")
		fmt.Fprintf(os.Stderr, "  curveinfo -list\n")
	}
	flag.Parse()

	var err error
	switch {
	case *list:
		err = printList(os.Stdout)
	case *notes:
		err = printNotes(os.Stdout)
	case *backend:
		err = printBackend(os.Stdout, cpu.DetectFeatures())
	default:
		err = printProfiles(os.Stdout, options{
			size:      *size,
			rate:      *rate,
			cycles:    *cycles,
			harmonics: *maxHarmonics,
			drive:     *drive,
			names:     flag.Args(),
		})
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) error {
	var names []string
	for _, c := range harmonics.Curves() {
		names = append(names, c.Name)
	}
	for _, s := range harmonics.Shapers() {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}

type profileRow struct {
	name    string
	kind    string
	profile harmonics.Profile
}

func printProfiles(w io.Writer, opts options) error {
	cfg := harmonics.DefaultConfig()
	cfg.Processor = core.ApplyProcessorOptions(
		core.WithBlockSize(opts.size),
		core.WithSampleRate(opts.rate),
	)
	cfg.Cycles = opts.cycles
	cfg.MaxHarmonics = opts.harmonics

	analyzer, err := harmonics.NewAnalyzer(cfg)
	if err != nil {
		return err
	}

	rows, err := collectProfiles(analyzer, opts)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Name\tKind\tFund [Hz]\tFund Amp\tDC\tH2 [dB]\tH3 [dB]\tH5 [dB]\tTHD [%%]\tTHD [dB]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t----\t---------\t--------\t--\t-------\t-------\t-------\t-------\t--------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, r := range rows {
		p := r.profile
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%.3f\t%.6f\t%.6f\t%s\t%s\t%s\t%.4f\t%.2f\n",
			r.name,
			r.kind,
			p.FundamentalHz,
			p.Fundamental,
			p.DC,
			harmonicCell(p, 2),
			harmonicCell(p, 3),
			harmonicCell(p, 5),
			p.THD*100,
			p.THDdB,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func collectProfiles(analyzer *harmonics.Analyzer, opts options) ([]profileRow, error) {
	names := opts.names
	if len(names) == 0 {
		for _, c := range harmonics.Curves() {
			names = append(names, c.Name)
		}
		for _, s := range harmonics.Shapers() {
			names = append(names, s.Name)
		}
	}

	var rows []profileRow
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))

		if curve, ok := harmonics.FindCurve(name); ok {
			p, err := analyzer.AnalyzeCurve(curve)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			rows = append(rows, profileRow{name, "curve", p})
			continue
		}

		if shaper, ok := harmonics.FindShaper(name); ok {
			p, err := analyzer.AnalyzeShaper(shaper, opts.drive)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			rows = append(rows, profileRow{fmt.Sprintf("%s (drive=%.2f)", name, opts.drive), "shaper", p})
			continue
		}

		fmt.Fprintf(os.Stderr, "warning: unknown curve %q (use -list to see available)\n", name)
	}

	if len(rows) == 0 {
		return nil, errNoMatches
	}
	return rows, nil
}

// harmonicCell formats harmonic k, or "-" when it was not measured.
func harmonicCell(p harmonics.Profile, k int) string {
	i := k - 2
	if i < 0 || i >= len(p.Harmonics) {
		return "-"
	}
	if p.Harmonics[i] < -200 {
		return "<-200"
	}
	return fmt.Sprintf("%.2f", p.Harmonics[i])
}

var noteNames = [core.NotesPerOctave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func noteName(note int) string {
	return fmt.Sprintf("%s%d", noteNames[note%core.NotesPerOctave], note/core.NotesPerOctave-1)
}

func printNotes(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Note\tName\tCents\tFrequency [Hz]\tRound Trip\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t----\t-----\t--------------\t----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for note := 0; note < core.MidiSize; note += core.NotesPerOctave {
		freq := core.MidiNoteToFrequency(core.Sample(note))
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%.0f\t%.4f\t%.6f\n",
			note,
			noteName(note),
			float64(note)*core.CentsPerNote,
			freq,
			core.FrequencyToMidiNote(freq),
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printBackend(w io.Writer, f cpu.Features) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		key   string
		value any
	}{
		{"sample", fmt.Sprintf("%T", core.Sample(0))},
		{"extremum kernel", core.ExtremumKernel()},
		{"architecture", f.Architecture},
		{"force generic", f.ForceGeneric},
		{"sse2", f.HasSSE2},
		{"avx2", f.HasAVX2},
		{"neon", f.HasNEON},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%v\n", r.key, r.value); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
