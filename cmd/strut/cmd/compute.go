package cmd

import (
	stderrors "errors"
	"fmt"

	"github.com/go-strut/strut/pkg/config"
	"github.com/go-strut/strut/pkg/errors"
	"github.com/go-strut/strut/pkg/layout"
	"github.com/go-strut/strut/pkg/layouttest"
)

func init() {
	RegisterCommand(&Command{
		Name:  "compute",
		Short: "Print widget geometries for a bar config",
		Long: `Load a bar description, lay it out with the stub extents from its
widgets section, and print one line per widget plus the consumed total.

The config must carry a widgets section; live widgets only exist
inside a running bar.`,
		Usage: "strut compute <bar.yaml>",
		Run:   runCompute,
	})
}

func runCompute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("config path is required\n\nUsage: strut compute <bar.yaml>")
	}

	bar, names, err := loadBar(args[0])
	if err != nil {
		return err
	}
	res, err := computeBar(bar)
	if err != nil {
		return err
	}

	fmt.Printf("bar: screen %d, %s, bounds %dx%d+%d+%d\n",
		bar.Screen, bar.Axis, bar.Bounds.Width, bar.Bounds.Height, bar.Bounds.X, bar.Bounds.Y)
	for i, r := range res.Widgets {
		if r.Empty() {
			fmt.Printf("  %-14s (hidden)\n", names[i])
			continue
		}
		fmt.Printf("  %-14s %dx%d+%d+%d\n", names[i], r.Width, r.Height, r.X, r.Y)
	}
	fmt.Printf("total: %dx%d+%d+%d\n", res.Total.Width, res.Total.Height, res.Total.X, res.Total.Y)
	return nil
}

// computeBar runs a layout pass and routes failures through the global
// error handler before surfacing them.
func computeBar(bar *config.Bar) (layout.Result, error) {
	res, err := bar.Compute()
	if err != nil {
		var se *errors.StrutError
		if stderrors.As(err, &se) {
			errors.Report(se)
		}
		return layout.Result{}, fmt.Errorf("layout failed: %w", err)
	}
	return res, nil
}

// loadBar loads a config, builds a stub registry from its widgets
// section, and returns the built bar plus leaf names in result order.
func loadBar(path string) (*config.Bar, []string, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if len(cfg.Widgets) == 0 {
		return nil, nil, fmt.Errorf("%s has no widgets section to take stub extents from", path)
	}

	registry := make(map[string]layout.Widget, len(cfg.Widgets))
	for name, wc := range cfg.Widgets {
		registry[name] = &layouttest.Stub{
			W:         wc.Width,
			H:         wc.Height,
			Hidden:    wc.Hidden,
			KeepRatio: wc.Resize,
		}
	}

	bar, err := cfg.Build(registry)
	if err != nil {
		return nil, nil, err
	}
	return bar, leafNames(&cfg.Tree), nil
}

// leafNames flattens the tree's widget names in the same pre-order the
// engine lists geometries in.
func leafNames(n *config.NodeConfig) []string {
	if n.Widget != "" {
		return []string{n.Widget}
	}
	var names []string
	for i := range n.Items {
		names = append(names, leafNames(&n.Items[i])...)
	}
	return names
}
