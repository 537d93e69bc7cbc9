package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/willbeason/mandel-explorer/pkg/config"
	"github.com/willbeason/mandel-explorer/pkg/explore"
	"github.com/willbeason/mandel-explorer/pkg/history"
)

// A Step is one action of an exploration script, written as name or
// name:arg,arg,...
type Step struct {
	Name string
	Args []float64
}

func (st Step) String() string {
	if len(st.Args) == 0 {
		return st.Name
	}

	args := make([]string, len(st.Args))
	for i, a := range st.Args {
		args[i] = strconv.FormatFloat(a, 'g', -1, 64)
	}
	return st.Name + ":" + strings.Join(args, ",")
}

// stepArity is the number of arguments each step takes.
var stepArity = map[string]int{
	"zoom":       3,
	"pan":        2,
	"drag-zoom":  4,
	"drag-pan":   4,
	"iterations": 1,
	"color":      0,
	"undo":       0,
	"redo":       0,
	"reset":      0,
}

func ParseStep(s string) (Step, error) {
	name, rawArgs, hasArgs := strings.Cut(strings.TrimSpace(s), ":")

	arity, ok := stepArity[name]
	if !ok {
		return Step{}, errors.Errorf("unknown step %q", name)
	}

	var fields []string
	if hasArgs {
		fields = strings.Split(rawArgs, ",")
	}
	if len(fields) != arity {
		return Step{}, errors.Errorf("step %q takes %d arguments, got %d", name, arity, len(fields))
	}

	step := Step{Name: name}
	for _, f := range fields {
		arg, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Step{}, errors.Wrapf(err, "step %q", s)
		}
		step.Args = append(step.Args, arg)
	}

	if name == "iterations" {
		n := step.Args[0]
		if n != math.Trunc(n) {
			return Step{}, errors.Errorf("step %q: iterations must be a whole number", s)
		}
		if n < 1 || n > config.MaxIterations {
			return Step{}, errors.Errorf("step %q: iterations must be between 1 and %d", s, config.MaxIterations)
		}
	}

	return step, nil
}

func ParseScript(args []string) ([]Step, error) {
	steps := make([]Step, 0, len(args))
	for _, arg := range args {
		step, err := ParseStep(arg)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Run applies the step to s. An undo or redo with nothing to do is not an
// error; skipped reports it instead.
func (st Step) Run(s *explore.Session) (skipped bool, err error) {
	a := st.Args

	switch st.Name {
	case "zoom":
		_, err = s.Zoom(a[0], a[1], a[2])
	case "pan":
		_, err = s.Pan(a[0], a[1])
	case "drag-zoom", "drag-pan":
		mode := explore.DragZoom
		if st.Name == "drag-pan" {
			mode = explore.DragPan
		}

		var g explore.Gesture
		g, err = explore.ResolveDrag(mode, a[0], a[1], a[2], a[3])
		if err == nil {
			_, err = s.Apply(g)
		}
	case "iterations":
		_, err = s.SetMaxIterations(int(a[0]))
	case "color":
		s.CycleColor()
	case "undo":
		_, err = s.Undo()
	case "redo":
		_, err = s.Redo()
	case "reset":
		_, err = s.Reset()
	default:
		err = errors.Errorf("unknown step %q", st.Name)
	}

	if errors.Is(err, history.ErrEmptyHistory) {
		return true, nil
	}

	return false, err
}
