package format

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/docforge/convertd/errors"
)

// Category is the coarse document kind derived from a file extension.
type Category int

const (
	Text Category = iota
	Spreadsheet
	Presentation
)

func (c Category) String() string {
	switch c {
	case Text:
		return "text"
	case Spreadsheet:
		return "spreadsheet"
	case Presentation:
		return "presentation"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Defaults returned by SaveTarget for extensions outside the table.
const (
	GenericMIME        = "application/octet-stream"
	GenericDescription = "File"
)

//go:embed formats.yaml
var rawTable []byte

type entry struct {
	Ext         string `yaml:"ext"`
	Category    string `yaml:"category"`
	Code        int    `yaml:"code"`
	MIME        string `yaml:"mime"`
	Description string `yaml:"description"`
}

var (
	loadOnce sync.Once
	byExt    map[string]entry
	byCode   map[int]string
)

func load() {
	loadOnce.Do(func() {
		var doc struct {
			Formats []entry `yaml:"formats"`
		}
		if err := yaml.Unmarshal(rawTable, &doc); err != nil {
			panic(fmt.Sprintf("format: embedded table is invalid: %v", err))
		}
		byExt = make(map[string]entry, len(doc.Formats))
		byCode = make(map[int]string, len(doc.Formats))
		for _, e := range doc.Formats {
			byExt[e.Ext] = e
			if e.Code != 0 {
				byCode[e.Code] = e.Ext
			}
		}
	})
}

// Normalize lowercases an extension and drops a leading dot.
func Normalize(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Classify maps a file extension to its document category. The lookup is
// case-insensitive and strict: extensions outside the table, including
// output-only targets such as pdf, fail with an unsupported-format error
// naming the extension.
func Classify(ext string) (Category, error) {
	load()
	key := Normalize(ext)
	e, ok := byExt[key]
	if !ok || e.Category == "" {
		return Text, errors.UnsupportedFormat(key)
	}
	switch e.Category {
	case "text":
		return Text, nil
	case "spreadsheet":
		return Spreadsheet, nil
	case "presentation":
		return Presentation, nil
	default:
		panic(fmt.Sprintf("format: embedded table has unknown category %q for %q", e.Category, e.Ext))
	}
}

// SaveTarget returns the MIME type and human-readable description for a save
// dialog. Unknown extensions degrade to a generic binary type rather than
// failing; only conversion eligibility is strict.
func SaveTarget(ext string) (mime, description string) {
	load()
	if e, ok := byExt[Normalize(ext)]; ok {
		return e.MIME, e.Description
	}
	return GenericMIME, GenericDescription
}

// OutputCode returns the output-format integer code the editor and the
// engine agree on for ext.
func OutputCode(ext string) (int, bool) {
	load()
	e, ok := byExt[Normalize(ext)]
	if !ok || e.Code == 0 {
		return 0, false
	}
	return e.Code, true
}

// ExtensionForCode resolves an output-format code back to its extension.
func ExtensionForCode(code int) (string, bool) {
	load()
	ext, ok := byCode[code]
	return ext, ok
}

// Extensions returns every extension in the table, classifiable inputs first.
func Extensions() []string {
	load()
	inputs := make([]string, 0, len(byExt))
	outputs := make([]string, 0, 4)
	for ext, e := range byExt {
		if e.Category != "" {
			inputs = append(inputs, ext)
		} else {
			outputs = append(outputs, ext)
		}
	}
	sort.Strings(inputs)
	sort.Strings(outputs)
	return append(inputs, outputs...)
}
