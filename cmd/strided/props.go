package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/strided/tensor"
)

type propsOptions struct {
	shape string
	slice string
}

func newPropsCmd() *cobra.Command {
	opts := &propsOptions{}
	cmd := &cobra.Command{
		Use:   "props",
		Short: "Build a counting tensor, optionally slice it, and print its layout",
		Example: `  strided props --shape 2,3,4
  strided props --shape 4,4 --slice 1:3,2:4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProps(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.shape, "shape", "2,3", "comma-separated extents")
	cmd.Flags().StringVar(&opts.slice, "slice", "", "comma-separated start:end ranges for the leading axes")
	return cmd
}

func runProps(w io.Writer, opts *propsOptions) error {
	shape, err := tensor.ParseShape(opts.shape)
	if err != nil {
		return errors.WithMessage(err, "--shape")
	}
	ranges, err := parseRanges(opts.slice)
	if err != nil {
		return errors.WithMessage(err, "--slice")
	}

	flat, err := tensor.Arange(0, shape.NumElements())
	if err != nil {
		return err
	}
	vals, err := flat.Values()
	if err != nil {
		return err
	}
	x, err := tensor.FromSlice(vals, shape)
	if err != nil {
		return err
	}
	defer x.Release()

	view := x
	if len(ranges) > 0 {
		if view, err = x.SliceMany(ranges...); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "%v\n\n%s\nraw: %s\n", view, view.Properties(), view.RawString())
	return nil
}

// parseRanges parses "1:3,0:2" into ranges. An empty string yields none.
func parseRanges(s string) ([]tensor.Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var ranges []tensor.Range
	for _, part := range strings.Split(s, ",") {
		lo, hi, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, errors.Errorf("range %q: want start:end", part)
		}
		start, err := strconv.Atoi(lo)
		if err != nil {
			return nil, errors.Wrapf(err, "range %q", part)
		}
		end, err := strconv.Atoi(hi)
		if err != nil {
			return nil, errors.Wrapf(err, "range %q", part)
		}
		ranges = append(ranges, tensor.Range{Start: start, End: end})
	}
	return ranges, nil
}
