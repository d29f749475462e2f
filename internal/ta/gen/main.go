// Command gen writes the typed indicator functions of package ta, one file
// per catalog group.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/newthinker/tacall/internal/catalog"
	"github.com/newthinker/tacall/internal/logger"
	"go.uber.org/zap"
)

const header = "// Code generated by gen from the function catalog; DO NOT EDIT.\n\npackage ta\n"

var funcTmpl = template.Must(template.New("func").Parse(`
// {{.Name}} computes {{.Hint}}
func {{.Name}}[T Real]({{.Params}}) ({{.Results}}) {
	r, err := Default().Call("{{.Name}}", [][]float64{ {{- .Inputs -}} }{{.Args}})
	if err != nil {
		return {{.Zero}}
	}
	return {{.Values}}
}
`))

type wrapper struct {
	Name    string
	Hint    string
	Params  string
	Results string
	Inputs  string
	Args    string
	Zero    string
	Values  string
}

func main() {
	out := flag.String("out", ".", "output directory")
	flag.Parse()

	log := logger.Must(true)
	defer log.Sync()

	files := make(map[string]*bytes.Buffer)
	for _, fn := range catalog.Default().All() {
		name := fileName(fn.Group)
		buf, ok := files[name]
		if !ok {
			buf = bytes.NewBufferString(header)
			files[name] = buf
		}
		if err := funcTmpl.Execute(buf, build(fn)); err != nil {
			log.Fatal("executing template", zap.String("function", fn.Name), zap.Error(err))
		}
	}

	for name, buf := range files {
		src, err := format.Source(buf.Bytes())
		if err != nil {
			log.Fatal("formatting", zap.String("file", name), zap.Error(err))
		}
		path := filepath.Join(*out, name)
		if err := os.WriteFile(path, src, 0o644); err != nil {
			log.Fatal("writing", zap.String("file", path), zap.Error(err))
		}
		log.Info("generated", zap.String("file", path))
	}
}

func fileName(group string) string {
	return strings.ToLower(strings.ReplaceAll(group, " ", "_")) + "_gen.go"
}

func build(fn *catalog.Function) wrapper {
	w := wrapper{Name: fn.Name, Hint: fn.Hint}
	if !strings.HasSuffix(w.Hint, ".") {
		w.Hint += "."
	}

	var params, args, inputs []string
	for _, opt := range fn.Options {
		name := goName(opt.Name)
		switch opt.Type {
		case catalog.OptionInteger:
			params = append(params, name+" int")
			args = append(args, "float64("+name+")")
		case catalog.OptionMAType:
			params = append(params, name+" MAType")
			args = append(args, "float64("+name+")")
		default:
			params = append(params, name+" float64")
			args = append(args, name)
		}
	}
	var names []string
	for _, in := range fn.Inputs {
		names = append(names, in.Name)
		inputs = append(inputs, "widen("+in.Name+")")
	}
	params = append(params, strings.Join(names, ", ")+" []T")

	w.Params = strings.Join(params, ", ")
	w.Inputs = strings.Join(inputs, ", ")
	if len(args) > 0 {
		w.Args = ", " + strings.Join(args, ", ")
	}

	nils := strings.Repeat("nil, ", len(fn.Outputs))
	w.Zero = nils + "0, err"
	var values []string
	for i := range fn.Outputs {
		values = append(values, fmt.Sprintf("r.Outputs[%d]", i))
	}
	w.Values = strings.Join(values, ", ") + ", r.Begin, nil"

	if len(fn.Outputs) == 1 {
		w.Results = "[]float64, int, error"
	} else {
		w.Results = strings.Join(fn.OutputNames(), ", ") + " []float64, begin int, err error"
	}
	return w
}

// goName turns a catalog option name into a Go identifier.
func goName(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
