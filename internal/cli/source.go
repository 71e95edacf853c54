package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netgraph/builder"
	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/internal/config"
	"github.com/katalvlaran/netgraph/layout"
)

var (
	// errNoGraph is returned when neither --graph nor --edge is given.
	errNoGraph = errors.New("no graph: use --graph <kind> or --edge a:b[:weight]")
	// errBadEdge is returned for malformed --edge values.
	errBadEdge = errors.New("bad edge")
)

const (
	defaultN = 10
	defaultP = 0.2
)

// graphSource collects the flags shared by every command that needs a graph.
type graphSource struct {
	kind    string
	n       int
	p       float64
	seed    int64
	edges   []string
	uuids   bool
	weights string
}

// register attaches the graph flags to cmd.
func (s *graphSource) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&s.kind, "graph", "g", "", "topology: "+strings.Join(builder.Kinds, ", "))
	f.IntVar(&s.n, "n", defaultN, "topology size")
	f.Float64Var(&s.p, "p", defaultP, "edge probability for random graphs")
	f.Int64Var(&s.seed, "seed", 0, "random seed (default: layout.seed from config)")
	f.StringArrayVarP(&s.edges, "edge", "e", nil, "edge as from:to[:weight] (repeatable)")
	f.BoolVar(&s.uuids, "uuid", false, "name generated nodes with seeded UUIDs")
	f.StringVar(&s.weights, "weights", "", "edge weights for generated graphs: uniform, normal or a constant")
}

// build creates the graph with a spring layout configured from cfg. The
// topology (if any) is generated first; explicit edges are added after it.
func (s *graphSource) build(cmd *cobra.Command, cfg *config.Config) (*core.Graph, error) {
	if s.kind == "" && len(s.edges) == 0 {
		return nil, errNoGraph
	}

	seed := cfg.Layout.Seed
	if cmd.Flags().Changed("seed") {
		seed = s.seed
	}

	spring, err := layout.NewSpring(append(cfg.SpringOptions(), layout.WithSeed(seed))...)
	if err != nil {
		return nil, fmt.Errorf("spring layout: %w", err)
	}
	gopts := []core.GraphOption{core.WithDistance(cfg.Layout.Distance), core.WithLayout(spring)}

	bopts := []builder.BuilderOption{builder.WithSeed(seed)}
	if s.uuids {
		bopts = append(bopts, builder.WithUUIDs(seed))
	}
	wopt, err := weightOption(s.weights)
	if err != nil {
		return nil, err
	}
	if wopt != nil {
		bopts = append(bopts, wopt)
	}

	var cons []builder.Constructor
	if s.kind != "" {
		ctor, err := builder.ByKind(s.kind, s.n, s.p)
		if err != nil {
			return nil, err
		}
		cons = append(cons, ctor)
	}

	g, err := builder.BuildGraph(gopts, bopts, cons...)
	if err != nil {
		return nil, err
	}

	for _, raw := range s.edges {
		from, to, opts, err := parseEdge(raw)
		if err != nil {
			return nil, err
		}
		if _, err := g.AddEdge(from, to, opts...); err != nil {
			return nil, fmt.Errorf("edge %q: %w", raw, err)
		}
	}

	loggerFromContext(cmd.Context()).Debug("graph built", "nodes", g.Len(), "edges", g.EdgeLen(), "seed", seed)
	return g, nil
}

// weightOption maps the --weights flag onto a builder weight distribution.
func weightOption(spec string) (builder.BuilderOption, error) {
	switch spec {
	case "":
		return nil, nil
	case "uniform":
		return builder.WithUniformWeight(0, 1), nil
	case "normal":
		return builder.WithNormalWeight(0.5, 0.2), nil
	}
	w, err := strconv.ParseFloat(spec, 64)
	if err != nil || w < 0 {
		return nil, fmt.Errorf("--weights %q: want uniform, normal or a non-negative number", spec)
	}
	return builder.WithConstantWeight(w), nil
}

// parseEdge parses "from:to" or "from:to:weight".
func parseEdge(raw string) (string, string, []core.EdgeOption, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return "", "", nil, fmt.Errorf("%w %q: want from:to[:weight]", errBadEdge, raw)
	}
	from, to := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if from == "" || to == "" {
		return "", "", nil, fmt.Errorf("%w %q: empty node id", errBadEdge, raw)
	}
	if len(parts) == 2 {
		return from, to, nil, nil
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return "", "", nil, fmt.Errorf("%w %q: weight: %v", errBadEdge, raw, err)
	}
	return from, to, []core.EdgeOption{core.WithWeight(w)}, nil
}
