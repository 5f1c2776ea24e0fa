// cmd/simulate/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"balloon-tower-defense/internal/defs"
	"balloon-tower-defense/internal/sim"

	"gopkg.in/yaml.v3"
)

func main() {
	seed := flag.Int64("seed", 1, "random seed")
	defsPath := flag.String("defs", "", "path to a definitions YAML file (embedded defaults if empty)")
	scriptPath := flag.String("script", "", "path to a build script YAML file (built-in script if empty)")
	format := flag.String("format", "text", "output format: text or yaml")
	verbose := flag.Bool("v", false, "log engine events to stderr")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	lib := defs.Default()
	if *defsPath != "" {
		loaded, err := defs.LoadLibrary(*defsPath)
		if err != nil {
			fail(err)
		}
		lib = loaded
	}

	script := sim.DefaultScript()
	if *scriptPath != "" {
		loaded, err := sim.LoadScript(*scriptPath)
		if err != nil {
			fail(err)
		}
		script = loaded
	}

	report, err := sim.NewRunner(lib, *seed, script).Run()
	if err != nil {
		fail(err)
	}

	switch *format {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			fail(fmt.Errorf("failed to encode report: %w", err))
		}
		enc.Close()
	case "text":
		printText(os.Stdout, report)
	default:
		fail(fmt.Errorf("unknown format %q", *format))
	}
}

func printText(w io.Writer, report sim.Report) {
	fmt.Fprintf(w, "script %s, seed %d\n", report.Script, report.Seed)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "wave\tframes\tpopped\tescaped\tgold\tlives\ttowers\t")
	for _, wr := range report.Waves {
		fmt.Fprintf(tw, "%d\t%.0f\t%d\t%d\t%d\t%d\t%d\t\n",
			wr.Wave, wr.Frames, wr.Popped, wr.Escaped, wr.Gold, wr.Lives, wr.Towers)
	}
	tw.Flush()
	fmt.Fprintf(w, "outcome: %s\n", report.Outcome)
}

// fail пишет в stderr: обычный лог может быть отключён флагом -v.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
