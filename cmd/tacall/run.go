package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/newthinker/tacall/internal/catalog"
	"github.com/newthinker/tacall/internal/core"
	"github.com/newthinker/tacall/internal/storage/archive"
	"github.com/newthinker/tacall/internal/ta"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var (
	runInputs  []string
	runParams  []string
	runCSV     string
	runXLSX    string
	runSheet   string
	runColumns map[string]string
	runArchive bool
	runFormat  string
)

var runCmd = &cobra.Command{
	Use:   "run FUNCTION",
	Short: "Compute one function",
	Long: `Compute one function over series given inline or read from a CSV file.

Inline series are comma separated:
  tacall run SMA --input real=1,2,3,4 --param timeperiod=2

A CSV file, or a sheet of an Excel workbook, needs a header with a close
column; open, high, low and volume are read when present. Inputs bind to the column of their kind, and plain
real inputs to close unless --column remaps them:
  tacall run RSI --csv bars.csv --column real=high`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringArrayVarP(&runInputs, "input", "i", nil, "input series as name=v1,v2,...")
	runCmd.Flags().StringArrayVarP(&runParams, "param", "p", nil, "parameter as name=value")
	runCmd.Flags().StringVar(&runCSV, "csv", "", "CSV file of bars")
	runCmd.Flags().StringVar(&runXLSX, "xlsx", "", "Excel workbook of bars")
	runCmd.Flags().StringVar(&runSheet, "sheet", "", "workbook sheet (default: the first)")
	runCmd.Flags().StringToStringVar(&runColumns, "column", nil, "bind an input to a CSV column, as input=column")
	runCmd.Flags().BoolVar(&runArchive, "archive", false, "store the result in the configured archive")
	runCmd.Flags().StringVarP(&runFormat, "output", "o", "table", "output format: table or json")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	adapter, err := newAdapter(cfg, log, nil)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}
	defer adapter.Close()

	fn, err := adapter.Catalog().Lookup(args[0])
	if err != nil {
		return err
	}

	inputs := make(map[string][]float64)
	if runCSV != "" || runXLSX != "" {
		bars, err := loadBars()
		if err != nil {
			return err
		}
		inputs, err = bindBars(fn, bars, runColumns)
		if err != nil {
			return err
		}
	}
	for _, s := range runInputs {
		name, values, err := parseSeries(s)
		if err != nil {
			return err
		}
		inputs[name] = values
	}

	params, err := parseParams(runParams)
	if err != nil {
		return err
	}

	res, err := adapter.CallNamed(fn.Name, inputs, params)
	if err != nil {
		return err
	}

	if runArchive {
		store, err := newResultStore(cfg, log)
		if err != nil {
			return err
		}
		if store == nil {
			return core.Errorf(core.ErrConfigMissing, "archive is disabled in the configuration")
		}
		defer closeResults(store, log)
		rec := &archive.Record{Func: res.Func, Params: params, Begin: res.Begin, Names: res.Names, Outputs: res.Outputs}
		if err := store.Save(cmd.Context(), rec); err != nil {
			return err
		}
		log.Info("result archived", zap.String("id", rec.ID))
	}

	switch runFormat {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "table":
		return writeTable(cmd.OutOrStdout(), res)
	default:
		return fmt.Errorf("unknown output format %q", runFormat)
	}
}

// parseSeries parses name=v1,v2,...
func parseSeries(s string) (string, []float64, error) {
	name, list, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return "", nil, core.Errorf(core.ErrInvalidInput, "input %q is not name=v1,v2,...", s)
	}
	if strings.TrimSpace(list) == "" {
		return name, []float64{}, nil
	}
	fields := strings.Split(list, ",")
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return "", nil, core.Errorf(core.ErrInvalidInput, "input %s[%d]: %v", name, i, err)
		}
		values[i] = v
	}
	return name, values, nil
}

// parseParams parses name=value pairs.
func parseParams(pairs []string) (map[string]float64, error) {
	params := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		name, raw, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, core.Errorf(core.ErrInvalidInput, "param %q is not name=value", p)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, core.Errorf(core.ErrInvalidInput, "param %s: %v", name, err)
		}
		params[name] = v
	}
	return params, nil
}

var timeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

func loadBars() (core.Bars, error) {
	if runCSV != "" && runXLSX != "" {
		return nil, core.Errorf(core.ErrInvalidInput, "--csv and --xlsx are exclusive")
	}
	if runXLSX != "" {
		bars, err := readSheet(runXLSX, runSheet)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", runXLSX, err)
		}
		return bars, nil
	}

	f, err := os.Open(runCSV)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()
	bars, err := readBars(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", runCSV, err)
	}
	return bars, nil
}

// readBars reads a CSV of bars.
func readBars(r io.Reader) (core.Bars, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	return parseBars(records)
}

// readSheet reads bars from one sheet of an Excel workbook.
func readSheet(path, sheet string) (core.Bars, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return parseBars(rows)
}

// parseBars turns a header row plus data rows into bars. The header must
// name a close column; missing open, high and low default to the close,
// missing volume to 0.
func parseBars(records [][]string) (core.Bars, error) {
	var err error
	if len(records) == 0 {
		return nil, errors.New("empty file")
	}

	cols := make(map[string]int)
	for i, h := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["close"]; !ok {
		return nil, errors.New("header has no close column")
	}

	bars := make(core.Bars, 0, len(records)-1)
	for line, row := range records[1:] {
		if len(row) == 0 {
			continue
		}
		num := func(col string, fallback float64) (float64, error) {
			i, ok := cols[col]
			if !ok {
				return fallback, nil
			}
			if i >= len(row) {
				return 0, fmt.Errorf("line %d: missing %s", line+2, col)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			if err != nil {
				return 0, fmt.Errorf("line %d, %s: %w", line+2, col, err)
			}
			return v, nil
		}

		var bar core.OHLCV
		if bar.Close, err = num("close", 0); err != nil {
			return nil, err
		}
		if bar.Open, err = num("open", bar.Close); err != nil {
			return nil, err
		}
		if bar.High, err = num("high", bar.Close); err != nil {
			return nil, err
		}
		if bar.Low, err = num("low", bar.Close); err != nil {
			return nil, err
		}
		if bar.Volume, err = num("volume", 0); err != nil {
			return nil, err
		}
		if bar.Time, err = parseTime(row, cols); err != nil {
			return nil, fmt.Errorf("line %d: %w", line+2, err)
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

func parseTime(row []string, cols map[string]int) (time.Time, error) {
	i, ok := cols["time"]
	if !ok {
		if i, ok = cols["date"]; !ok {
			return time.Time{}, nil
		}
	}
	if i >= len(row) {
		return time.Time{}, errors.New("missing time")
	}
	raw := strings.TrimSpace(row[i])
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", raw)
}

// bindBars picks one column of bars per function input. Price inputs
// take their own column, others the close, unless columns remaps them.
func bindBars(fn *catalog.Function, bars core.Bars, columns map[string]string) (map[string][]float64, error) {
	inputs := make(map[string][]float64, len(fn.Inputs))
	for _, in := range fn.Inputs {
		kind := in.Kind
		if col, ok := columns[in.Name]; ok {
			kind = core.SeriesKind(strings.ToLower(col))
			if !kind.IsPrice() {
				return nil, core.Errorf(core.ErrInvalidInput, "column %q is not open, high, low, close or volume", col)
			}
		}
		inputs[in.Name] = bars.Column(kind)
	}
	return inputs, nil
}

// writeTable prints one row per output position, indexed by the input
// position it aligns with.
func writeTable(w io.Writer, res *ta.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "index\t%s\t\n", strings.Join(res.Names, "\t"))
	for i := 0; i < res.Len(); i++ {
		fmt.Fprintf(tw, "%d", res.Begin+i)
		for _, out := range res.Outputs {
			fmt.Fprintf(tw, "\t%s", strconv.FormatFloat(out[i], 'g', 10, 64))
		}
		fmt.Fprint(tw, "\t\n")
	}
	return tw.Flush()
}
