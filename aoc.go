// Package aoc are quick & dirty utilities for solving Advent of Code
// problems: a runner that checks each solution against the sample in its doc
// comment before feeding it the real input, plus grid, graph and container
// helpers.
package aoc

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples collects the samples of every .go file in src, keyed by
// function name. A sample without input reuses the previous input in the
// same file.
func extractSamples(src fs.FS) map[string]sample {
	names := MustGet(fs.Glob(src, "*.go"))
	samples := make(map[string]sample)
	for _, name := range names {
		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, name, MustGet(fs.ReadFile(src, name)), parser.ParseComments)
		if err != nil {
			logrus.Fatalf("parsing %s to extract samples: %v", name, err)
		}
		var lastInput string
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			funcName := fd.Name.Name
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if ok {
					s.input = Or(s.input, lastInput)
					samples[funcName] = s
					lastInput = s.input
					break
				}
			}
		}
	}
	return samples
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample

	input []byte // fixed input; see SamplePuzzle
	real  []byte // real input, once read
}

// SamplePuzzle returns a puzzle in sample mode whose input is always input.
// It lets tests drive a solver directly.
func SamplePuzzle(input string) *Puzzle {
	return &Puzzle{
		SampleMode: true,
		input:      []byte(input),
	}
}

func (p *Puzzle) log() *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"year": p.year,
		"day":  p.day.day,
		"part": p.solver.Part,
	})
}

func (p *Puzzle) inputFile() string {
	return filepath.Join(flagInputs, fmt.Sprint(p.year), fmt.Sprintf("%d.input", p.day.day))
}

func (p *Puzzle) Input() []byte {
	if p.input != nil {
		return p.input
	}
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.real == nil {
		name := p.inputFile()
		b, err := os.ReadFile(name)
		if err != nil {
			p.log().Fatalf("reading puzzle input: %v (save it as %s)", err, name)
		}
		p.log().Debugf("read %s (%s)", name, humanize.Bytes(uint64(len(b))))
		p.real = b
	}
	return p.real
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns all lines of input.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return lines
}

// Records reads the input as delimited records, one per non-empty line,
// with fields separated by sep.
func (p *Puzzle) Records(sep rune) [][]string {
	r := csv.NewReader(bytes.NewReader(p.Input()))
	r.Comma = sep
	r.FieldsPerRecord = -1
	var out [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return out
		}
		if err != nil {
			p.log().Fatalf("reading records: %v", err)
		}
		out = append(out, rec)
	}
}

func (p *Puzzle) Debug(v ...any) {
	p.log().Debug(v...)
}

// Debugf logs at debug level, but only while running the sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.log().Debugf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		p.log().Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods finds the methods named D{day}p{part} on the struct x
// points to. The methods must have the signature func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		logrus.Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			logrus.Fatalf("%s has type %v; want func() any", mn, mt.Type)
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputs     string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputs, "inputs", ".", "directory holding <year>/<day>.input files")
}

var initFlags = sync.OnceFunc(func() {
	flag.Parse()
	if flagDebug {
		logrus.SetLevel(logrus.DebugLevel)
	}
})

// setPuzzle points the solver's embedded *Puzzle at p.
func setPuzzle(slvr any, p *Puzzle) {
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
}

// solve runs the current part. A panic inside the solver, such as one from
// MustGet, is returned as an error.
func (p *Puzzle) solve() (got any, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	return p.solver.fn(), nil
}

func runDay(slvr any, year int, day day, samples map[string]sample) {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	setPuzzle(slvr, &p)
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got, err := p.solve()
			if err != nil {
				p.log().WithField("sample", sm).Fatalf("%s failed: %v", ps.Name, err)
			}
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

// Run runs the solutions of the given year. src holds the solver's source
// files, from which the samples are read; slvr is a pointer to a struct
// embedding *Puzzle with one D{day}p{part} method per solution.
func Run(year int, src fs.FS, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			logrus.Fatalf("no day %d", flagCurDay)
		}
		runDay(slvr, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples)
		fmt.Println()
	}
}

// SampleResult is the outcome of running one solution on its sample.
type SampleResult struct {
	Day  int
	Part string
	Name string
	Got  string
	Want string
	Err  error
}

func (r SampleResult) OK() bool {
	return r.Err == nil && r.Got == r.Want
}

// CheckSamples runs every solution of slvr that has a sample in src and
// reports the results in day and part order. It ignores command-line flags
// and never reads real input.
func CheckSamples(year int, src fs.FS, slvr any) []SampleResult {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)

	var out []SampleResult
	for _, d := range dayNums {
		p := &Puzzle{
			year:       year,
			day:        days[d],
			samples:    samples,
			SampleMode: true,
		}
		setPuzzle(slvr, p)
		for _, ps := range days[d].parts {
			s, ok := samples[ps.Name]
			if !ok {
				continue
			}
			p.solver = ps
			r := SampleResult{Day: d, Part: ps.Part, Name: ps.Name, Want: s.want}
			got, err := p.solve()
			r.Got, r.Err = fmt.Sprint(got), err
			out = append(out, r)
		}
	}
	return out
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero element of list, or else returns the zero T.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Fold folds in from the left, starting with defVal.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}
