// webspectra fetches seismic design parameters from the USGS design
// maps web service and renders them as labeled text tables.
//
// Usage:
//
//	webspectra [flags] <standard> <latitude> <longitude> <risk-category> <site-class>
//
// Output modes:
//
//	terminal — styled tables (default when stdout is a TTY)
//	plain    — unstyled tables (default when piped or writing a file)
//	raw      — the fetched JSON, byte for byte (-raw)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/structcalc/webspectra/internal/config"
	"github.com/structcalc/webspectra/internal/spinner"
	"github.com/structcalc/webspectra/internal/version"
	"github.com/structcalc/webspectra/pkg/designmaps"
	"github.com/structcalc/webspectra/pkg/extract"
	"github.com/structcalc/webspectra/pkg/labels"
	"github.com/structcalc/webspectra/pkg/table"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("webspectra", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs, stderr) }
	titleFlag := fs.String("title", cfg.Title, "Site title echoed in the request")
	outFlag := fs.String("o", cfg.OutputFile, "Write output to a file instead of stdout")
	appendFlag := fs.Bool("append", false, "Append to the output file instead of overwriting")
	rawFlag := fs.Bool("raw", false, "Emit the fetched JSON unmodified")
	themeFlag := fs.String("theme", cfg.Theme, "Theme for terminal output: default, mono")
	timeoutFlag := fs.Duration("timeout", time.Duration(cfg.TimeoutSec)*time.Second, "Fetch timeout")
	urlFlag := fs.String("url", cfg.BaseURL, "Service base URL override")
	verboseFlag := fs.Bool("verbose", false, "Echo the flattened request before the tables")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *versionFlag {
		fmt.Fprintf(stdout, "webspectra %s (%s, %s)\n", version.Version, version.CommitHash, version.BuildDate)
		return 0
	}

	req, code := parseRequest(fs.Args(), *titleFlag, stderr)
	if code >= 0 {
		return code
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeoutFlag)
	defer cancel()

	client := &designmaps.Client{BaseURL: *urlFlag}
	var spin *spinner.Spinner
	if isTTYWriter(stderr) {
		spin = spinner.New(stderr, "fetching "+req.Standard+" design parameters")
		spin.Start()
	}
	body, err := client.Fetch(ctx, req)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		fmt.Fprintf(stderr, "webspectra: %v\n", err)
		return 1
	}

	if *rawFlag {
		return writeRaw(body, *outFlag, *appendFlag, stdout, stderr)
	}

	ext, err := extract.New(body)
	if err != nil {
		fmt.Fprintf(stderr, "webspectra: %v\n", err)
		return 1
	}

	if *verboseFlag {
		printRequestEcho(ext, stdout)
	}

	tables, err := buildTables(ext)
	if err != nil {
		fmt.Fprintf(stderr, "webspectra: %v\n", err)
		return 1
	}

	if *outFlag != "" {
		for i, tbl := range tables {
			if err := tbl.WriteFile(*outFlag, *appendFlag || i > 0); err != nil {
				fmt.Fprintf(stderr, "webspectra: %v\n", err)
				return 1
			}
		}
		fmt.Fprintf(stderr, "webspectra: tables written to %s\n", *outFlag)
		return 0
	}

	theme := table.ThemeByName(*themeFlag)
	if os.Getenv("NO_COLOR") != "" {
		theme = table.MonoTheme()
	}
	styled := isTTYWriter(stdout)
	for i, tbl := range tables {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		if styled {
			fmt.Fprintln(stdout, tbl.RenderStyled(theme))
		} else if err := tbl.Fprint(stdout); err != nil {
			fmt.Fprintf(stderr, "webspectra: %v\n", err)
			return 1
		}
	}
	return 0
}

// parseRequest validates the positional arguments against the service
// enumerations. Returns (request, -1) on success; (zero, exitCode) on
// error.
func parseRequest(args []string, title string, stderr io.Writer) (designmaps.Request, int) {
	if len(args) != 5 {
		fmt.Fprintf(stderr, "webspectra: expected 5 arguments: <standard> <latitude> <longitude> <risk-category> <site-class>\n")
		return designmaps.Request{}, 2
	}
	if !designmaps.ValidStandard(args[0]) {
		fmt.Fprintf(stderr, "webspectra: unknown design standard %q (expected one of: %s)\n",
			args[0], strings.Join(designmaps.Standards, ", "))
		return designmaps.Request{}, 2
	}
	lat, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(stderr, "webspectra: invalid latitude %q\n", args[1])
		return designmaps.Request{}, 2
	}
	lon, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fmt.Fprintf(stderr, "webspectra: invalid longitude %q\n", args[2])
		return designmaps.Request{}, 2
	}
	if !designmaps.ValidRiskCategory(args[3]) {
		fmt.Fprintf(stderr, "webspectra: unknown risk category %q (expected one of: %s)\n",
			args[3], strings.Join(designmaps.RiskCategories, ", "))
		return designmaps.Request{}, 2
	}
	if !designmaps.ValidSiteClass(args[4]) {
		fmt.Fprintf(stderr, "webspectra: unknown site class %q (expected one of: %s)\n",
			args[4], strings.Join(designmaps.SiteClasses, ", "))
		return designmaps.Request{}, 2
	}
	return designmaps.Request{
		Standard:     args[0],
		Latitude:     lat,
		Longitude:    lon,
		RiskCategory: args[3],
		SiteClass:    args[4],
		Title:        title,
	}, -1
}

// buildTables assembles the input, parameter, spectrum, and metadata
// tables. Spectra and metadata are optional sections upstream; their
// absence skips the table rather than failing the run.
func buildTables(ext *extract.Extractor) ([]*table.Table, error) {
	var tables []*table.Table

	input, err := ext.Input()
	if err != nil {
		return nil, err
	}
	input = extract.FilterOutParameters(input, "status", "url")
	tbl, err := table.New([]string{"Input", "Values"}, input.Cells())
	if err != nil {
		return nil, err
	}
	tables = append(tables, tbl)

	svs, err := ext.SVS()
	if err != nil {
		return nil, err
	}
	described := extract.AppendOutputDescriptions(svs, labels.Descriptions)
	tbl, err = table.New([]string{"Parameters", "Values", "Description"}, described.Cells())
	if err != nil {
		return nil, err
	}
	tables = append(tables, tbl)

	spectra, err := ext.Spectra()
	if err != nil && !isMissingField(err) {
		return nil, err
	}
	if len(spectra) > 0 {
		described := extract.AppendOutputDescriptions(spectra, labels.Descriptions)
		tbl, err = table.New([]string{"Spectra", "Values", "Description"}, described.Cells())
		if err != nil {
			return nil, err
		}
		tables = append(tables, tbl)
	}

	meta, err := ext.MetadataSVS()
	if err != nil && !isMissingField(err) {
		return nil, err
	}
	if len(meta) > 0 {
		tbl, err = table.New([]string{"Metadata", "Values"}, meta.Cells())
		if err != nil {
			return nil, err
		}
		tables = append(tables, tbl)
	}

	return tables, nil
}

func isMissingField(err error) bool {
	var mf *extract.MissingFieldError
	return errors.As(err, &mf)
}

// printRequestEcho prints the flattened request subtree with humanized
// labels, mirroring the upstream echo of the query.
func printRequestEcho(ext *extract.Extractor, w io.Writer) {
	req := ext.Document().Get("request")
	if !req.IsObject() {
		return
	}
	fmt.Fprintln(w, "User request:")
	for _, entry := range extract.Flatten(req) {
		key := entry.Path[strings.LastIndex(entry.Path, ".")+1:]
		fmt.Fprintf(w, "  %s: %s\n", labels.Describe(key), entry.Value.String())
	}
	fmt.Fprintln(w)
}

// writeRaw emits the fetched document byte for byte.
func writeRaw(body []byte, path string, appendTo bool, stdout, stderr io.Writer) int {
	if path == "" {
		if _, err := stdout.Write(body); err != nil {
			fmt.Fprintf(stderr, "webspectra: writing output: %v\n", err)
			return 1
		}
		return 0
	}
	flags := os.O_CREATE | os.O_WRONLY
	if appendTo {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		fmt.Fprintf(stderr, "webspectra: open %s: %v\n", path, err)
		return 1
	}
	if _, err := f.Write(body); err != nil {
		f.Close()
		fmt.Fprintf(stderr, "webspectra: write %s: %v\n", path, err)
		return 1
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(stderr, "webspectra: close %s: %v\n", path, err)
		return 1
	}
	return 0
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Usage: webspectra [flags] <standard> <latitude> <longitude> <risk-category> <site-class>")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Standards:       %s\n", strings.Join(designmaps.Standards, ", "))
	fmt.Fprintf(w, "Risk categories: %s\n", strings.Join(designmaps.RiskCategories, ", "))
	fmt.Fprintf(w, "Site classes:    %s\n", strings.Join(designmaps.SiteClasses, ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}
