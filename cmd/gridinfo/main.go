package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/terrapix/gridmath"
	"github.com/terrapix/gridmath/affine"
	"github.com/terrapix/gridmath/internal/log"
	"github.com/terrapix/gridmath/internal/utils"
)

type config struct {
	xCoords    string
	yCoords    string
	resolution float64
	snap       bool
}

func newConfig() (*config, error) {
	cfg := config{}
	flag.StringVar(&cfg.xCoords, "x", "", "comma-separated pixel-center x coordinates")
	flag.StringVar(&cfg.yCoords, "y", "", "comma-separated pixel-center y coordinates")
	flag.Float64Var(&cfg.resolution, "resolution", 0, "fallback resolution for single-sample axes (0: none)")
	flag.BoolVar(&cfg.snap, "snap", false, "snap the scale and translation of the transform to clean values")
	console := flag.Bool("console", false, "human-readable logging")
	flag.Parse()

	if *console {
		log.Console()
	}
	if cfg.xCoords == "" || cfg.yCoords == "" {
		return nil, fmt.Errorf("missing -x or -y coordinates")
	}
	return &cfg, nil
}

func parseCoords(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	coords := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", f, err)
		}
		coords = append(coords, v)
	}
	return coords, nil
}

func run(ctx context.Context) error {
	cfg, err := newConfig()
	if err != nil {
		return err
	}

	xx, err := parseCoords(cfg.xCoords)
	if err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	yy, err := parseCoords(cfg.yCoords)
	if err != nil {
		return fmt.Errorf("y axis: %w", err)
	}

	var fallback *affine.Resolution
	if cfg.resolution != 0 {
		res := affine.Res(cfg.resolution)
		fallback = &res
	}

	a, err := affine.FromAxis(xx, yy, fallback)
	if err != nil {
		return err
	}
	if cfg.snap {
		snapped := affine.SnapAffine(a, gridmath.DefaultTranslationTol, gridmath.DefaultScaleTol)
		if snapped == a {
			log.Logger(ctx).Debug("transform already clean, nothing snapped")
		}
		a = snapped
	}

	log.Logger(ctx).Info("pixel-to-world transform",
		zap.Float64("rx", a.Rx()), zap.Float64("ry", a.Ry()))

	// GDAL GeoTransform order
	gt := make([]string, 6)
	for i, v := range a {
		gt[i] = utils.F64ToS(v)
	}
	fmt.Println(strings.Join(gt, " "))
	return nil
}

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		log.Logger(ctx).Fatal("gridinfo", zap.Error(err))
	}
}
