package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/born-ml/strided/tensor"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the indexing, slicing and arithmetic walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	steps := []struct {
		title string
		run   func(io.Writer) error
	}{
		{"row view of a 2x3 matrix", demoRowView},
		{"element-wise addition", demoAdd},
		{"leading-axis slice", demoSlice},
		{"scalar division by zero", demoDivByZero},
	}
	for i, s := range steps {
		klog.V(2).Infof("demo: step %d: %s", i+1, s.title)
		fmt.Fprintf(w, "== %s\n", s.title)
		if err := s.run(w); err != nil {
			return errors.WithMessagef(err, "demo %q", s.title)
		}
	}
	return nil
}

func demoRowView(w io.Writer) error {
	x, err := tensor.New[int](tensor.Shape{2, 3})
	if err != nil {
		return err
	}
	defer x.Release()
	if err := x.AssignNested([][]int{{1, 2, 3}, {4, 5, 6}}); err != nil {
		return err
	}
	row, err := x.Index(1)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v\nindex(1) = %v\n", x, row)
	return nil
}

func demoAdd(w io.Writer) error {
	a, err := tensor.FromSlice([]int{1, 2, 3, 4}, tensor.Shape{4})
	if err != nil {
		return err
	}
	b, err := tensor.FromSlice([]int{10, 20, 30, 40}, tensor.Shape{4})
	if err != nil {
		return err
	}
	c, err := a.Add(b)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v + %v = %v\n", a, b, c)
	return nil
}

func demoSlice(w io.Writer) error {
	x, err := tensor.Arange(0, 5)
	if err != nil {
		return err
	}
	v, err := x.Slice(1, 4)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v slice(1, 4) = %v shape %v\n", x, v, v.Shape())
	return nil
}

func demoDivByZero(w io.Writer) error {
	_, err := tensor.Scalar(5).Div(tensor.Scalar(0))
	if !errors.Is(err, tensor.ErrDivisionByZero) {
		return errors.Errorf("expected division by zero, got %v", err)
	}
	fmt.Fprintf(w, "5 / 0: %v\n", err)
	return nil
}
