package spectrum

import "fmt"

// Plan2D transforms a row-major plane of rows*cols complex values in place.
// A Plan2D must not be used concurrently.
type Plan2D struct {
	rows, cols int
	rowPlan    *Plan
	colPlan    *Plan
	column     []complex128
}

// NewPlan2D prepares a 2-D transform for a rows x cols plane.
func NewPlan2D(rows, cols int) (*Plan2D, error) {
	rowPlan, err := NewPlan(cols)
	if err != nil {
		return nil, err
	}

	colPlan := rowPlan
	if rows != cols {
		colPlan, err = NewPlan(rows)
		if err != nil {
			return nil, err
		}
	}

	return &Plan2D{
		rows:    rows,
		cols:    cols,
		rowPlan: rowPlan,
		colPlan: colPlan,
		column:  make([]complex128, rows),
	}, nil
}

// Size returns the plane dimensions.
func (p *Plan2D) Size() (rows, cols int) {
	return p.rows, p.cols
}

// Forward replaces data with its 2-D DFT.
func (p *Plan2D) Forward(data []complex128) error {
	return p.transform(data, false)
}

// Inverse replaces data with its normalised inverse 2-D DFT.
func (p *Plan2D) Inverse(data []complex128) error {
	return p.transform(data, true)
}

func (p *Plan2D) transform(data []complex128, inverse bool) error {
	if len(data) < p.rows*p.cols {
		return fmt.Errorf("%w: plane %d, want %dx%d", ErrInvalidLength, len(data), p.rows, p.cols)
	}

	run := func(plan *Plan, buf []complex128) error {
		if inverse {
			return plan.Inverse(buf, buf)
		}
		return plan.Forward(buf, buf)
	}

	for r := range p.rows {
		if err := run(p.rowPlan, data[r*p.cols:(r+1)*p.cols]); err != nil {
			return err
		}
	}

	col := p.column
	for c := range p.cols {
		for r := range p.rows {
			col[r] = data[r*p.cols+c]
		}
		if err := run(p.colPlan, col); err != nil {
			return err
		}
		for r := range p.rows {
			data[r*p.cols+c] = col[r]
		}
	}

	return nil
}
