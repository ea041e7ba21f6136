package batch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/annel0/enhance/internal/box"
	"github.com/annel0/enhance/internal/logging"
	"github.com/annel0/enhance/internal/vec"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ErrUnknownOp   = errors.New("unknown operation")
	ErrUnknownName = errors.New("unknown operand")
	ErrArity       = errors.New("wrong number of operands")
)

// Options настраивает Runner
type Options struct {
	StopOnError bool
	Tolerance   float64
	Registerer  prometheus.Registerer
	Logger      *logging.Logger
}

// Result - итог одного шага
type Result struct {
	Step  int
	Op    string
	Value string
	Err   error
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("#%d %s: error: %v", r.Step, r.Op, r.Err)
	}
	return fmt.Sprintf("#%d %s = %s", r.Step, r.Op, r.Value)
}

// Report - результаты одного запуска задания
type Report struct {
	RunID   string
	Results []Result
	Failed  int
}

// Runner выполняет шаги задания по порядку
type Runner struct {
	stopOnError bool
	tolerance   float64
	log         *logging.Logger
	metrics     *Metrics
}

// NewRunner создает исполнителя заданий
func NewRunner(opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = logging.GetBatchLogger()
	}
	tol := opts.Tolerance
	if tol <= 0 {
		tol = 1e-5
	}
	return &Runner{
		stopOnError: opts.StopOnError,
		tolerance:   tol,
		log:         logger,
		metrics:     NewMetrics(opts.Registerer),
	}
}

// Run выполняет задание. Векторные результаты сохраняются под именем Into
// и доступны следующим шагам. Ошибка возвращается только при отмене ctx
// или при остановке на первом неудачном шаге.
func (r *Runner) Run(ctx context.Context, job *Job) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	r.metrics.runs.Inc()
	r.log.Info("run %s: %d vectors, %d boxes, %d steps", report.RunID, len(job.Vectors), len(job.Boxes), len(job.Steps))

	vectors := make(map[string]vec.Vector3d[float64], len(job.Vectors))
	for name, v := range job.Vectors {
		vectors[name] = v
	}

	for i, step := range job.Steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		value, out, err := r.eval(step, vectors, job.Boxes)
		r.metrics.steps.WithLabelValues(step.Op).Inc()

		res := Result{Step: i, Op: step.Op, Value: value, Err: err}
		report.Results = append(report.Results, res)

		if err != nil {
			report.Failed++
			r.metrics.errors.WithLabelValues(step.Op, errorKind(err)).Inc()
			r.log.Warn("run %s: step %d %s failed: %v", report.RunID, i, step.Op, err)
			if r.stopOnError {
				return report, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
			}
			continue
		}

		r.log.Debug("run %s: %s", report.RunID, res)
		if out != nil && step.Into != "" {
			vectors[step.Into] = *out
		}
	}

	r.log.Info("run %s finished: %d steps, %d failed", report.RunID, len(report.Results), report.Failed)
	return report, nil
}

func (r *Runner) eval(step Step, vectors map[string]vec.Vector3d[float64], boxes map[string]box.Box3d[float64]) (string, *vec.Vector3d[float64], error) {
	vectorArgs := func(n int) ([]vec.Vector3d[float64], error) {
		if len(step.Args) != n {
			return nil, fmt.Errorf("%w: %s wants %d, got %d", ErrArity, step.Op, n, len(step.Args))
		}
		out := make([]vec.Vector3d[float64], n)
		for i, name := range step.Args {
			v, ok := vectors[name]
			if !ok {
				return nil, fmt.Errorf("%w: vector %q", ErrUnknownName, name)
			}
			out[i] = v
		}
		return out, nil
	}
	vector := func(v vec.Vector3d[float64]) (string, *vec.Vector3d[float64], error) {
		return v.String(), &v, nil
	}

	switch step.Op {
	case "add", "sub", "dot", "cross", "approx_equal":
		args, err := vectorArgs(2)
		if err != nil {
			return "", nil, err
		}
		a, b := args[0], args[1]
		switch step.Op {
		case "add":
			return vector(a.Add(b))
		case "sub":
			return vector(a.Sub(b))
		case "cross":
			return vector(a.Cross(b))
		case "approx_equal":
			return strconv.FormatBool(a.ApproxEqual(b, r.tolerance)), nil, nil
		default:
			return formatScalar(a.Dot(b)), nil, nil
		}

	case "neg", "norm", "normalize", "cast_int", "at":
		args, err := vectorArgs(1)
		if err != nil {
			return "", nil, err
		}
		a := args[0]
		switch step.Op {
		case "neg":
			return vector(a.Neg())
		case "norm":
			return formatScalar(a.Norm()), nil, nil
		case "normalize":
			n, err := a.Normalized()
			if err != nil {
				return "", nil, err
			}
			return vector(n)
		case "cast_int":
			truncated := vec.Cast[int](a)
			back := vec.Convert[float64](truncated)
			return truncated.String(), &back, nil
		default:
			c, err := a.At(step.Index)
			if err != nil {
				return "", nil, err
			}
			return formatScalar(c), nil, nil
		}

	case "corner", "face":
		if len(step.Args) != 1 {
			return "", nil, fmt.Errorf("%w: %s wants 1 box, got %d", ErrArity, step.Op, len(step.Args))
		}
		b, ok := boxes[step.Args[0]]
		if !ok {
			return "", nil, fmt.Errorf("%w: box %q", ErrUnknownName, step.Args[0])
		}
		if step.Op == "corner" {
			c, err := box.ParseCorner(step.Corner)
			if err != nil {
				return "", nil, err
			}
			v, err := b.Get(c)
			if err != nil {
				return "", nil, err
			}
			return vector(v)
		}
		f, err := box.ParseFace(step.Face)
		if err != nil {
			return "", nil, err
		}
		corners, err := b.FaceCorners(f)
		if err != nil {
			return "", nil, err
		}
		parts := make([]string, len(corners))
		for i, c := range corners {
			parts[i] = c.String()
		}
		return "[" + strings.Join(parts, " ") + "]", nil, nil

	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
}

func formatScalar(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// errorKind сводит ошибку к метке для метрик
func errorKind(err error) string {
	switch {
	case errors.Is(err, vec.ErrDegenerateVector):
		return "degenerate"
	case errors.Is(err, vec.ErrIndexOutOfRange):
		return "index"
	case errors.Is(err, ErrUnknownName):
		return "unknown_name"
	case errors.Is(err, ErrUnknownOp):
		return "unknown_op"
	case errors.Is(err, ErrArity):
		return "arity"
	case errors.Is(err, box.ErrUnknownCorner), errors.Is(err, box.ErrUnknownFace):
		return "enum"
	default:
		return "other"
	}
}
