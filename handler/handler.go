// Package handler serves the solver behind an AWS Lambda Function URL.
//
// Request body (JSON, optionally base64-encoded by the URL front end):
//
//	{"matrix": [[0, 3, 4], [3, 0, 5], [4, 5, 0]], "seed": 7}
//	{"points": [[0, 0], [3, 0], [3, 4]], "maxGenerations": 200, "polish": true}
//
// Optional fields: populationSize, crossoverRate, mutationRate,
// maxGenerations, seed, workers, strictEdges, polish.
//
// Status codes: 200 on success, 400 for malformed bodies and invalid
// parameters, 422 for matrices the solver cannot work with.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/tidwall/gjson"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/katalvlaran/gatsp/config"
	"github.com/katalvlaran/gatsp/matrix"
	"github.com/katalvlaran/gatsp/source"
	"github.com/katalvlaran/gatsp/tsp"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// Response is the success body.
type Response struct {
	Tour        []int   `json:"tour"`
	Cost        float64 `json:"cost"`
	Generations int     `json:"generations"`
	TimeMs      int64   `json:"timeMs"`
	Polished    bool    `json:"polished,omitempty"`
	// Partial is set when the invocation deadline stopped the run early.
	Partial bool `json:"partial,omitempty"`
}

// errBadRequest marks body problems detected before the solver runs.
var errBadRequest = errors.New("bad request")

// Handle solves the instance in the request body.
func Handle(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	logger := klog.FromContext(ctx).WithValues("requestID", event.RequestContext.RequestID)

	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, "invalid base64 body")
		}
		body = string(decoded)
	}
	if !gjson.Valid(body) {
		return errResp(http.StatusBadRequest, "invalid JSON")
	}

	dist, err := parseInstance(body)
	if err != nil {
		return errResp(statusFor(err), err.Error())
	}
	rc, err := parseRunConfig(body)
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}
	if err = config.ValidateRunConfig(rc); err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}
	config.SetDefaults_RunConfig(rc)

	opts := rc.ToOptions()
	cm, err := tsp.NewCostMatrix(dist)
	if err != nil {
		return errResp(statusFor(err), err.Error())
	}
	engine, err := tsp.NewEngine(cm, opts)
	if err != nil {
		return errResp(statusFor(err), err.Error())
	}

	start := time.Now()
	res, err := engine.Run(klog.NewContext(ctx, logger))
	partial := false
	if err != nil {
		if ctx.Err() == nil || res.Tour == nil {
			return errResp(statusFor(err), err.Error())
		}
		logger.Info("Run stopped early, returning best so far", "generations", res.Generations, "err", err)
		partial = true
	}

	resp := Response{
		Tour:        res.Tour,
		Cost:        res.Cost,
		Generations: res.Generations,
		Partial:     partial,
	}
	if *rc.Polish {
		tour, cost, perr := tsp.TwoOpt(cm, res.Tour, *rc.PolishMaxIters)
		if perr != nil {
			return errResp(http.StatusInternalServerError, perr.Error())
		}
		resp.Tour, resp.Cost, resp.Polished = tour, cost, true
	}
	resp.TimeMs = time.Since(start).Milliseconds()
	logger.V(1).Info("Solved", "locations", cm.Size(), "cost", resp.Cost, "timeMs", resp.TimeMs)

	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(respJSON)}, nil
}

// parseInstance reads the "matrix" or "points" field.
func parseInstance(body string) (matrix.Matrix, error) {
	var (
		m   = gjson.Get(body, "matrix")
		pts = gjson.Get(body, "points")
	)
	switch {
	case m.Exists() && pts.Exists():
		return nil, fmt.Errorf("%w: %v", errBadRequest, source.ErrAmbiguous)
	case m.Exists():
		rows, err := numberRows(m, "matrix")
		if err != nil {
			return nil, err
		}
		return matrix.NewDenseFrom(rows)
	case pts.Exists():
		pairs, err := numberRows(pts, "points")
		if err != nil {
			return nil, err
		}
		points, err := source.ToPoints(pairs)
		if err != nil {
			return nil, err
		}
		return matrix.NewEuclidean(points)
	default:
		return nil, fmt.Errorf("%w: missing matrix or points field", errBadRequest)
	}
}

// numberRows decodes an array of arrays of numbers.
func numberRows(v gjson.Result, field string) ([][]float64, error) {
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: %s must be an array of arrays", errBadRequest, field)
	}
	var (
		rows [][]float64
		err  error
	)
	v.ForEach(func(_, row gjson.Result) bool {
		i := len(rows)
		if !row.IsArray() {
			err = fmt.Errorf("%w: %s[%d] is not an array", errBadRequest, field, i)
			return false
		}
		var cells []float64
		row.ForEach(func(_, cell gjson.Result) bool {
			if cell.Type != gjson.Number {
				err = fmt.Errorf("%w: %s[%d][%d] is not a number", errBadRequest, field, i, len(cells))
				return false
			}
			cells = append(cells, cell.Float())
			return true
		})
		rows = append(rows, cells)
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// parseRunConfig reads the optional solver parameters; absent fields stay nil.
func parseRunConfig(body string) (*config.RunConfig, error) {
	var (
		rc  config.RunConfig
		err error
	)
	intField := func(name string) *int {
		v := gjson.Get(body, name)
		if !v.Exists() {
			return nil
		}
		if v.Type != gjson.Number || v.Float() != float64(v.Int()) {
			err = fmt.Errorf("%w: %s must be an integer", errBadRequest, name)
			return nil
		}
		return ptr.To(int(v.Int()))
	}
	floatField := func(name string) *float64 {
		v := gjson.Get(body, name)
		if !v.Exists() {
			return nil
		}
		if v.Type != gjson.Number {
			err = fmt.Errorf("%w: %s must be a number", errBadRequest, name)
			return nil
		}
		return ptr.To(v.Float())
	}
	boolField := func(name string) *bool {
		v := gjson.Get(body, name)
		if !v.Exists() {
			return nil
		}
		if !v.IsBool() {
			err = fmt.Errorf("%w: %s must be a boolean", errBadRequest, name)
			return nil
		}
		return ptr.To(v.Bool())
	}

	rc.PopulationSize = intField("populationSize")
	rc.CrossoverRate = floatField("crossoverRate")
	rc.MutationRate = floatField("mutationRate")
	rc.MaxGenerations = intField("maxGenerations")
	rc.Workers = intField("workers")
	rc.StrictEdges = boolField("strictEdges")
	rc.Polish = boolField("polish")
	if seed := intField("seed"); seed != nil {
		rc.Seed = ptr.To(int64(*seed))
	}
	// Per-generation progress has no reader behind a Function URL.
	rc.LogEvery = ptr.To(0)

	return &rc, err
}

// statusFor maps solver errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, errBadRequest), errors.Is(err, tsp.ErrConfiguration):
		return http.StatusBadRequest
	case errors.Is(err, tsp.ErrDegenerateInput),
		errors.Is(err, tsp.ErrInvalidMatrix),
		errors.Is(err, tsp.ErrDimensionMismatch),
		errors.Is(err, tsp.ErrAttemptsExhausted),
		errors.Is(err, source.ErrBadPoint),
		errors.Is(err, matrix.ErrDimensionMismatch),
		errors.Is(err, matrix.ErrInvalidDimensions),
		errors.Is(err, matrix.ErrNaNInf):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
