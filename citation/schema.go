package citation

// Field describes one labeled input of a citation form.
type Field struct {
	// Key is the token replaced in the template.
	Key string
	// Label is shown next to the input.
	Label string
	// Placeholder is substituted when the value is empty.
	Placeholder string
}

// Schema is the ordered field list and template of a citation type.
type Schema struct {
	Type     Type
	Fields   []Field
	Template string
	// Retrieved reports whether the citation carries a "retrieved on" date
	// phrase in front of the URL.
	Retrieved bool
}

// URLKey is the key of the URL field shared by all schemas.
const URLKey = "URL"

var (
	authorsField = Field{Key: "authors", Label: "Authors", Placeholder: "Author's Last Name, Initial(s)"}
	dateField    = Field{Key: "date", Label: "Date", Placeholder: "n.d."}
	titleField   = Field{Key: "title", Label: "Title", Placeholder: "Title of work"}
	urlField     = Field{Key: URLKey, Label: "URL"}
)

var schemas = map[Type]Schema{
	TypeWebsite: {
		Type: TypeWebsite,
		Fields: []Field{
			authorsField,
			dateField,
			titleField,
			{Key: "website", Label: "Website", Placeholder: "Website"},
			urlField,
		},
		Template:  "authors. (date). <i>title</i>. website. URL",
		Retrieved: true,
	},
	TypeNewspaper: {
		Type: TypeNewspaper,
		Fields: []Field{
			authorsField,
			dateField,
			titleField,
			{Key: "newspaper", Label: "Newspaper", Placeholder: "Newspaper"},
			urlField,
		},
		Template:  "authors. (date). <i>title</i>. newspaper. URL",
		Retrieved: true,
	},
	TypeDictionary: {
		Type: TypeDictionary,
		Fields: []Field{
			authorsField,
			dateField,
			{Key: "word", Label: "Word", Placeholder: "Word"},
			{Key: "editors", Label: "Editors", Placeholder: "Initial(s). Last Name"},
			{Key: "dictionary", Label: "Dictionary", Placeholder: "Dictionary"},
			{Key: "publisher", Label: "Publisher", Placeholder: "Publisher"},
			urlField,
		},
		Template: "authors. (date). word. In editors (Ed.). <i>dictionary</i>. publisher. URL",
	},
}

// SchemaFor returns the schema of t. TypeNone and unknown types yield a schema
// without fields. The returned field slice is a copy.
func SchemaFor(t Type) Schema {
	s, ok := schemas[t]
	if !ok {
		return Schema{Type: TypeNone}
	}
	s.Fields = append([]Field(nil), s.Fields...)
	return s
}

// Index returns the position of key in s, or -1.
func (s Schema) Index(key string) int {
	for i, f := range s.Fields {
		if f.Key == key {
			return i
		}
	}
	return -1
}
