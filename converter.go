package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/Drolfothesgnir/bbcode/bbcode"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ErrInputTooLarge is returned for the inputs above the configured size ceiling.
var ErrInputTooLarge = errors.New("input too large")

// converter runs the parser over a batch of inputs.
type converter struct {
	parser *bbcode.Parser

	// maxInputLen is the largest accepted input in bytes, zero means no limit.
	maxInputLen int

	// outputDir receives one .html file per input. Empty means stdout.
	outputDir string

	workers int
}

// convertStream converts the whole reader into the writer.
func (c *converter) convertStream(name string, r io.Reader, w io.Writer) error {
	html, err := c.convert(name, r)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, html)
	return err
}

// convertFiles converts the files concurrently. Without the output directory the results are
// written to stdout in the order of paths. A failed file doesn't stop the others.
func (c *converter) convertFiles(ctx context.Context, paths []string, stdout io.Writer) error {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}

	results := make([]string, len(paths))
	ok := make([]bool, len(paths))
	var failed atomic.Int32

	g := new(errgroup.Group)
	g.SetLimit(max(c.workers, 1))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			// interrupted, skipping the rest
			if err := ctx.Err(); err != nil {
				return err
			}

			html, err := c.convertFile(path)
			if err != nil {
				log.Error().Err(err).Str("input", path).Msg("cannot convert")
				failed.Add(1)
				return nil
			}

			results[i] = html
			ok[i] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if c.outputDir == "" {
		for i := range paths {
			if !ok[i] {
				continue
			}

			if _, err := io.WriteString(stdout, results[i]+"\n"); err != nil {
				return err
			}
		}
	}

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d inputs failed", n, len(paths))
	}

	return nil
}

// convertFile converts a single file. With the output directory the result is written there and
// an empty string is returned.
func (c *converter) convertFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	html, err := c.convert(path, f)
	if err != nil {
		return "", err
	}

	if c.outputDir == "" {
		return html, nil
	}

	dst := outputPath(c.outputDir, path)
	if err := os.WriteFile(dst, []byte(html), 0o644); err != nil {
		return "", err
	}

	log.Info().Str("input", path).Str("output", dst).Msg("converted")
	return "", nil
}

// convert reads the input, enforcing the size ceiling, parses it and logs the warnings.
func (c *converter) convert(name string, r io.Reader) (string, error) {
	if c.maxInputLen > 0 {
		r = io.LimitReader(r, int64(c.maxInputLen)+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", name, err)
	}

	if c.maxInputLen > 0 && len(data) > c.maxInputLen {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrInputTooLarge, name, c.maxInputLen)
	}

	res := c.parser.Parse(string(data))

	for _, w := range res.Warnings {
		log.Warn().
			Str("input", name).
			Int("pos", w.Pos).
			Stringer("issue", w.Issue).
			Msg(w.Description)
	}

	if res.Dropped > 0 {
		log.Warn().Str("input", name).Int("dropped", res.Dropped).Msg("warnings truncated")
	}

	return res.Output, nil
}

// outputPath is the .html file in dir named after the input.
func outputPath(dir, input string) string {
	base := filepath.Base(input)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".html")
}
