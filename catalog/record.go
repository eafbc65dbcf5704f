package catalog

// Document is the root of a catalog file.
type Document struct {
	// Tags are the tag records in the priority order.
	Tags []Record `yaml:"tags" toml:"tags" validate:"required,min=1,dive"`

	// Itemcodes maps a single symbol to a bullet style. When the key is absent, the default
	// itemcodes are used; an empty map disables them.
	Itemcodes map[string]string `yaml:"itemcodes" toml:"itemcodes" validate:"omitempty,dive,keys,len=1,endkeys,max=32"`
}

// Record is a single tag definition as it is written in a catalog file.
type Record struct {
	Tag        string            `yaml:"tag" toml:"tag" validate:"required,max=32"`
	Kind       string            `yaml:"kind" toml:"kind" validate:"omitempty,oneof=simple unparsed_content unparsed_equals unparsed_equals_content parsed_equals closed"`
	Before     string            `yaml:"before" toml:"before"`
	After      string            `yaml:"after" toml:"after"`
	Content    string            `yaml:"content" toml:"content"`
	Validator  string            `yaml:"validator" toml:"validator" validate:"omitempty,known_validator"`
	Trim       string            `yaml:"trim" toml:"trim" validate:"omitempty,oneof=none inside outside both"`
	Attributes []AttributeRecord `yaml:"attributes" toml:"attributes" validate:"max=4,dive"`
}

// AttributeRecord is a single entry of the named-attribute schema of a Record.
type AttributeRecord struct {
	Name     string `yaml:"name" toml:"name" validate:"required"`
	Pattern  string `yaml:"pattern" toml:"pattern"`
	Optional bool   `yaml:"optional" toml:"optional"`
}
