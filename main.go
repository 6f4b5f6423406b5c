package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/relocbyte/ia32asm/assembler"
	"github.com/relocbyte/ia32asm/asmconfig"
	"github.com/relocbyte/ia32asm/report"
	"github.com/relocbyte/ia32asm/sourcefile"
	"github.com/relocbyte/ia32asm/view"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		inputFile   = flag.String("in", "", "Input assembly source (default: config Files.Source)")
		imageFile   = flag.String("out", "", "Output hex image (default: config Files.Image)")
		symbolsFile = flag.String("symbols", "", "Output symbol table report (default: config Files.Symbols)")
		refsFile    = flag.String("refs", "", "Output pending-reference report (default: config Files.References)")
		xref        = flag.Bool("xref", false, "Also print a cross-reference report to stdout")
		launchView  = flag.Bool("view", false, "Open a read-only terminal browser over the assembled image")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("ia32asm %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	cfg, err := asmconfig.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	source := firstNonEmpty(*inputFile, cfg.Files.Source)
	image := firstNonEmpty(*imageFile, cfg.Files.Image)
	symbols := firstNonEmpty(*symbolsFile, cfg.Files.Symbols)
	refs := firstNonEmpty(*refsFile, cfg.Files.References)

	lines, err := sourcefile.ReadLines(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := assembler.New()
	filename := sourcefile.BaseName(source)
	for i, raw := range lines {
		a.ProcessLine(filename, i+1, raw)
	}
	if err := a.Resolve(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving references: %v\n", err)
		os.Exit(1)
	}

	for _, diag := range a.Diagnostics() {
		fmt.Fprintln(os.Stderr, diag.Error())
	}

	ctx := a.Context()

	if err := sourcefile.WriteFile(image, []byte(report.HexDump(a.Image(), cfg.Report.HexBytesPerLine))); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", image, err)
		os.Exit(1)
	}
	if err := sourcefile.WriteFile(symbols, []byte(report.SymbolTable(ctx.Symbols))); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", symbols, err)
		os.Exit(1)
	}
	if err := sourcefile.WriteFile(refs, []byte(report.ReferenceReport(ctx.Fixups))); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", refs, err)
		os.Exit(1)
	}

	if *xref || cfg.Report.CrossReference {
		entries := report.CrossReference(ctx.Symbols, ctx.Fixups)
		fmt.Print(report.CrossReferenceReport(entries))
	}

	if *launchView {
		b := view.New(ctx, cfg.Report.HexBytesPerLine)
		if err := b.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Proceso finalizado correctamente. Revisa los archivos generados.")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func printHelp() {
	fmt.Println(`ia32asm - a single-pass IA-32 assembler

Usage:
  ia32asm [flags]

Flags:`)
	flag.PrintDefaults()
}
