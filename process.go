package logotrim

import (
	"errors"
	"fmt"
	"image"
)

// Outcome tells how a pipeline run has ended.
type Outcome int

const (
	// Written means the square icon has been saved to the output path.
	Written Outcome = iota
	// MissingInput means neither the input nor the fallback file exists.
	MissingInput
	// EmptyContent means the source image has no visible pixel. Nothing is written.
	EmptyContent
	// Failed means the image could not be decoded, processed or saved.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Written:
		return "written"
	case MissingInput:
		return "missing input"
	case EmptyContent:
		return "empty content"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Config holds the file locations used by Run.
type Config struct {
	Input    string // preferred source image
	Fallback string // tried when Input does not exist
	Output   string // destination PNG
}

// Result is the outcome of a pipeline run.
type Result struct {
	Outcome Outcome
	Input   string // the source path actually used, or the last one tried
	Output  string
	Format  string          // decoded source format
	Bounds  image.Rectangle // content bounds in source coordinates
	Offset  image.Point     // content position inside the square canvas
	Size    int             // side of the output image
	Err     error
}

// Message returns the status line reported to the user.
func (r Result) Message() string {
	switch r.Outcome {
	case Written:
		return fmt.Sprintf("Successfully processed logo to %s", r.Output)
	case MissingInput:
		return fmt.Sprintf("File not found: %s", r.Input)
	case EmptyContent:
		return "Could not find bounding box (empty image?)"
	}
	return fmt.Sprintf("Error processing image: %v", r.Err)
}

// Run loads the logo, trims its transparent border, centers it on a square
// transparent canvas and saves it as PNG. The output file is only touched
// when every previous step has succeeded.
func Run(cfg Config) (res Result) {
	res.Output = cfg.Output

	defer func() {
		if r := recover(); r != nil {
			res.Outcome = Failed
			res.Err = fmt.Errorf("%v", r)
		}
	}()

	path, err := ResolveInput(cfg.Input, cfg.Fallback)
	res.Input = path
	if err != nil {
		return res.fail(err)
	}

	src, format, err := Load(path)
	if err != nil {
		return res.fail(err)
	}
	res.Format = format

	cropped, bounds, err := Trim(Normalize(src))
	res.Bounds = bounds
	if err != nil {
		return res.fail(err)
	}

	icon, offset := Square(cropped)
	res.Offset = offset
	res.Size = icon.Bounds().Dx()

	if err := Save(icon, cfg.Output); err != nil {
		return res.fail(err)
	}
	res.Outcome = Written

	return res
}

func (r Result) fail(err error) Result {
	switch {
	case errors.Is(err, ErrNotFound):
		r.Outcome = MissingInput
	case errors.Is(err, ErrEmptyImage):
		r.Outcome = EmptyContent
	default:
		r.Outcome = Failed
	}
	r.Err = err
	return r
}
