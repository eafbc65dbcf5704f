// Package catalog loads the tag definitions of the bbcode engine from YAML or TOML files.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/Drolfothesgnir/bbcode/bbcode"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a catalog file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for the files whose extension is not a known Format.
var ErrUnknownFormat = errors.New("unknown catalog format")

// FormatOf returns the Format of the file by its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Catalog is a validated Document.
type Catalog struct {
	doc Document
}

// Load reads and validates the catalog file.
func Load(path string) (*Catalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog: %w", err)
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("tags", len(c.doc.Tags)).Msg("catalog loaded")
	return c, nil
}

// Parse decodes and validates the catalog. Unknown keys are an error.
func Parse(data []byte, format Format) (*Catalog, error) {
	var doc Document

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("cannot decode yaml catalog: %w", err)
		}

	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("cannot decode toml catalog: %w", err)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("cannot decode toml catalog: unknown key %q", undecoded[0].String())
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := validateDocument(&doc); err != nil {
		return nil, err
	}

	c := &Catalog{doc: doc}

	// templates and attribute patterns are checked by the engine itself
	if _, err := c.Tags(); err != nil {
		return nil, err
	}

	return c, nil
}

//go:embed default.yaml
var defaultData []byte

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(defaultData, FormatYAML)
})

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return loadDefault()
}

// Records returns a copy of the tag records.
func (c *Catalog) Records() []Record {
	return append([]Record(nil), c.doc.Tags...)
}

// Tags converts the records into bbcode Tags, in the same order.
func (c *Catalog) Tags() ([]bbcode.Tag, error) {
	tags := make([]bbcode.Tag, 0, len(c.doc.Tags))

	for i, rec := range c.doc.Tags {
		tag, err := rec.tag()
		if err != nil {
			return nil, fmt.Errorf("tags[%d] %q: %w", i, rec.Tag, err)
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

// Itemcodes returns the itemcodes of the catalog, or the default ones when the catalog has none.
func (c *Catalog) Itemcodes() map[byte]string {
	if c.doc.Itemcodes == nil {
		return bbcode.DefaultItemcodes()
	}

	out := make(map[byte]string, len(c.doc.Itemcodes))
	for k, style := range c.doc.Itemcodes {
		// keys are validated to be a single byte
		out[k[0]] = style
	}
	return out
}

// Dictionary builds the bbcode Dictionary from the catalog.
func (c *Catalog) Dictionary() (*bbcode.Dictionary, error) {
	tags, err := c.Tags()
	if err != nil {
		return nil, err
	}

	d, err := bbcode.NewDictionary(tags, c.Itemcodes())
	if err != nil {
		return nil, err
	}

	log.Debug().Int("tags", d.Len()).Bool("autolink", d.Autolinks()).Msg("dictionary built")
	return d, nil
}

func (r *Record) tag() (bbcode.Tag, error) {
	kind, err := bbcode.ParseKind(r.Kind)
	if err != nil {
		return bbcode.Tag{}, err
	}

	trim, err := bbcode.ParseTrim(r.Trim)
	if err != nil {
		return bbcode.Tag{}, err
	}

	opts := []bbcode.TagDecorator{
		bbcode.WithTemplates(r.Before, r.After),
		bbcode.WithContent(r.Content),
		bbcode.WithTrim(trim),
	}

	if r.Validator != "" {
		v, ok := LookupValidator(r.Validator)
		if !ok {
			return bbcode.Tag{}, fmt.Errorf("unknown validator %q", r.Validator)
		}
		opts = append(opts, bbcode.WithValidator(v))
	}

	if len(r.Attributes) > 0 {
		attrs := make([]bbcode.Attribute, len(r.Attributes))
		for i, a := range r.Attributes {
			attrs[i] = bbcode.Attribute{
				Name:     a.Name,
				Pattern:  a.Pattern,
				Optional: a.Optional,
			}
		}
		opts = append(opts, bbcode.WithAttributes(attrs...))
	}

	return bbcode.NewTag(r.Tag, kind, opts...)
}
