package main

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ja7ad/arenaplan/pkg/partition"
	"github.com/ja7ad/arenaplan/pkg/report"
	"github.com/ja7ad/arenaplan/pkg/types"
)

type opts struct {
	// rendering
	width   int
	noColor bool

	// model
	blocks string
	greedy bool

	// outputs
	jsonPath string
	htmlPath string
}

type sizeCount struct {
	Size  types.Bytes `json:"size_bytes"`
	Count int         `json:"count"`
}

type planRow struct {
	Arena    types.Bytes `json:"arena_bytes"`
	Counts   []sizeCount `json:"block_counts"`
	Gap      types.Bytes `json:"gap_bytes"`
	Used     types.Bytes `json:"used_bytes"`
	Blocks   int         `json:"blocks"`
	Util     float64     `json:"utilization"`
	Strategy string      `json:"strategy"`
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "arenaplan <size>...",
		Short: "Arena partition planning tool",
		Long: `arenaplan computes how to carve a memory arena of a given byte size into
counts of fixed, descending power-of-two block sizes plus an unavoidable
leftover gap, and renders the breakdown as totals and a proportional,
colorized visual strip.

It favors an even spread across many distinct block sizes over the naive
"largest block first" decomposition (available via --greedy for
comparison). Sizes accept binary suffixes: 4096, 64K, 2M, 1G.

* GitHub: https://github.com/ja7ad/arenaplan

Examples:
  arenaplan 2048
  arenaplan --blocks 4096,2048,1024,512 1M
  arenaplan --greedy --no-color 2048
  arenaplan --json plan.json --html plan.html 1M 512K 2048`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args)
		},
	}

	root.Flags().IntVarP(&o.width, "width", "w", report.DefaultWidth, "wrap budget for the visual strip, in display cells")
	root.Flags().BoolVar(&o.noColor, "no-color", false, "disable ANSI styling")

	root.Flags().StringVarP(&o.blocks, "blocks", "b", "1024,512,256,128,64,32", "comma-separated, strictly descending block sizes")
	root.Flags().BoolVar(&o.greedy, "greedy", false, "use the naive largest-block-first decomposition instead of the balanced walk")

	root.Flags().StringVar(&o.jsonPath, "json", "", "write plans to JSON file")
	root.Flags().StringVar(&o.htmlPath, "html", "", "write plans and summary to HTML file")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(o opts, args []string) error {
	set, err := parseSet(o.blocks)
	if err != nil {
		return err
	}
	if o.width <= 0 {
		return fmt.Errorf("width must be > 0")
	}

	strategy := "walk"
	if o.greedy {
		strategy = "greedy"
	}

	fmt.Printf(_console, o.blocks, strategy, time.Now().Format("2006-01-02 15:04:05"))

	ropt := report.Options{Width: o.width, NoColor: o.noColor}
	rows := make([]planRow, 0, len(args))

	for i, arg := range args {
		arena, err := types.ParseBytes(arg)
		if err != nil {
			return err
		}

		var res partition.Result
		if o.greedy {
			res, err = partition.Greedy(arena, set)
		} else {
			res, err = partition.Plan(arena, set)
		}
		if err != nil {
			return fmt.Errorf("plan %s: %w", arg, err)
		}

		if i > 0 {
			fmt.Println()
		}
		for _, line := range report.Lines(res, ropt) {
			fmt.Println(line)
		}

		rows = append(rows, newPlanRow(res, strategy))
	}

	if len(rows) > 1 {
		fmt.Println()
		printSummaryTable(rows)
	}

	if o.jsonPath != "" {
		if err := writeJSON(o.jsonPath, rows); err != nil {
			slog.Error("write json", "err", err)
		}
	}
	if o.htmlPath != "" {
		if err := writeHTML(o.htmlPath, rows); err != nil {
			slog.Error("write html", "err", err)
		}
	}

	return nil
}

// parseSet parses the --blocks flag into a validated block-size set.
func parseSet(blocks string) (partition.Set, error) {
	parts := strings.Split(blocks, ",")
	set := make(partition.Set, 0, len(parts))
	for _, p := range parts {
		sz, err := types.ParseBytes(p)
		if err != nil {
			return nil, fmt.Errorf("blocks: %w", err)
		}
		set = append(set, sz)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

func newPlanRow(res partition.Result, strategy string) planRow {
	counts := make([]sizeCount, 0, len(res.Sizes))
	for _, sz := range res.Sizes {
		counts = append(counts, sizeCount{Size: sz, Count: res.Counts[sz]})
	}
	return planRow{
		Arena:    res.Arena,
		Counts:   counts,
		Gap:      res.Gap,
		Used:     res.Used(),
		Blocks:   res.Blocks(),
		Util:     res.Utilization(),
		Strategy: strategy,
	}
}

func printSummaryTable(rows []planRow) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ARENA\tBLOCKS\tUSED\tGAP\tUTIL")
	fmt.Fprintln(tw, "-----\t------\t----\t---\t----")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d B\t%.2f%%\n",
			r.Arena.Humanized(), r.Blocks, r.Used.Humanized(), uint64(r.Gap), 100*r.Util)
	}
	tw.Flush()
}

func writeJSON(path string, rows []planRow) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

func writeHTML(path string, rows []planRow) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return tpl.Execute(f, rows)
}

var tpl = template.Must(template.New("rep").Funcs(template.FuncMap{
	"bytesOf": func(c sizeCount) uint64 { return uint64(c.Size) * uint64(c.Count) },
}).Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Arenaplan Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px;margin-bottom:16px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
.small{color:#555}
.gap{color:#c0392b}
</style>

<h1><a href="https://github.com/ja7ad/arenaplan" target="_blank" rel="noopener noreferrer" style="color:inherit;text-decoration:none;">Arenaplan Report</a></h1>

<p class="small">Plans: {{len .}}</p>

{{range .}}
<h2>Arena {{.Arena}} B ({{.Strategy}})</h2>
<table>
<thead>
<tr><th>block size (B)</th><th>count</th><th>bytes</th></tr>
</thead>
<tbody>
{{range .Counts}}
<tr><td>{{.Size}}</td><td>{{.Count}}</td><td>{{bytesOf .}}</td></tr>
{{end}}
<tr><td class="gap">gap</td><td></td><td class="gap">{{.Gap}}</td></tr>
<tr><td>used</td><td>{{.Blocks}}</td><td>{{.Used}}</td></tr>
</tbody>
</table>
{{end}}
</html>`))

const _console = `Arenaplan - Arena Partition Planning Tool

* GitHub: https://github.com/ja7ad/arenaplan

       Blocks: %s
       Strategy: %s

Partition plan as of %s:

`
