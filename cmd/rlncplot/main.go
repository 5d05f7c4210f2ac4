// Command rlncplot renders the wasted/blockcount/replenished series a
// rlncsparse RESULT line carries as an interactive HTML line chart, the
// same "sweep data in, go-echarts chart out" shape plot_pacs_sweep.go uses.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// resultRow holds one parsed RESULT line from rlncsparse.
type resultRow struct {
	id          string
	fname       string
	n           int
	deadAt      int // -1 when NULL
	wasted      []float64
	blockcount  []float64
	replenished []float64
}

func parseSeries(field string) []float64 {
	parts := strings.Split(field, ";")
	out := make([]float64, len(parts))
	for i, p := range parts {
		if p == "NULL" {
			out[i] = 0
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err == nil {
			out[i] = v
		}
	}
	return out
}

func parseResultLine(line string) (resultRow, error) {
	fields := strings.Fields(line)
	// RESULT id fname q N A T R F deadAt wasted blockcount replenished
	if len(fields) != 13 || fields[0] != "RESULT" {
		return resultRow{}, fmt.Errorf("rlncplot: malformed RESULT line: %q", line)
	}
	n, err := strconv.Atoi(fields[4])
	if err != nil {
		return resultRow{}, fmt.Errorf("rlncplot: bad N field: %w", err)
	}
	deadAt := -1
	if fields[9] != "NULL" {
		deadAt, err = strconv.Atoi(fields[9])
		if err != nil {
			return resultRow{}, fmt.Errorf("rlncplot: bad dead_at field: %w", err)
		}
	}
	return resultRow{
		id:          fields[1],
		fname:       fields[2],
		n:           n,
		deadAt:      deadAt,
		wasted:      parseSeries(fields[10]),
		blockcount:  parseSeries(fields[11]),
		replenished: parseSeries(fields[12]),
	}, nil
}

func readResultRows(path string) ([]resultRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rlncplot: open %q: %w", path, err)
	}
	defer f.Close()

	var rows []resultRow
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || !strings.HasPrefix(line, "RESULT") {
			continue
		}
		row, err := parseResultLine(line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("rlncplot: no RESULT lines found in %q", path)
	}
	return rows, nil
}

func buildLineItems(series []float64, upTo int) []opts.LineData {
	items := make([]opts.LineData, 0, len(series))
	for i, v := range series {
		if upTo >= 0 && i >= upTo {
			break
		}
		items = append(items, opts.LineData{Value: v})
	}
	return items
}

func main() {
	inPath := flag.String("in", "", "file containing one or more rlncsparse RESULT lines")
	outPath := flag.String("out", "rlncsparse_plot.html", "output HTML file")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "usage: rlncplot -in <result-lines-file> [-out <plot.html>]")
		os.Exit(1)
	}

	rows, err := readResultRows(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	row := rows[0]

	upTo := row.deadAt
	if upTo < 0 {
		upTo = len(row.blockcount)
	}

	steps := make([]string, len(row.blockcount))
	for i := range steps {
		steps[i] = strconv.Itoa(i)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("rlncsparse run %s (%s, N=%d)", row.id, row.fname, row.n),
			Subtitle: "wasted / blockcount / replenished per replenish step",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "step"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)
	line.SetXAxis(steps).
		AddSeries("wasted", buildLineItems(row.wasted, upTo)).
		AddSeries("blockcount", buildLineItems(row.blockcount, upTo)).
		AddSeries("replenished", buildLineItems(row.replenished, upTo)).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}))

	page := components.NewPage().SetPageTitle("RLNC sparse-coding sweep")
	page.AddCharts(line)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rlncplot: create %q: %v\n", *outPath, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "rlncplot: render: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *outPath)
}
