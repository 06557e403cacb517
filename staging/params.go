package staging

import (
	"strconv"
	"strings"
)

// Request describes one conversion job for the engine. It is immutable once
// built: one request corresponds to exactly one parameter document and one
// entrypoint invocation. FontDir is set only for PDF targets.
type Request struct {
	FileFrom string
	FileTo   string
	ThemeDir string
	FontDir  string
	NoBase64 bool
}

const (
	paramsHeader = `<?xml version="1.0" encoding="utf-8"?>`
	paramsOpen   = `<TaskQueueDataConvert xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema">`
	paramsClose  = `</TaskQueueDataConvert>`
)

// BuildParams renders the parameter document the engine parses. Element names
// and order are a wire contract; do not reorder. Paths are inserted verbatim
// and must already be free of XML-breaking characters; Sanitize guarantees
// this for staging names, and the builder does not re-validate them.
func BuildParams(req Request) []byte {
	var b strings.Builder
	b.WriteString(paramsHeader)
	b.WriteString(paramsOpen)
	writeElem(&b, "m_sFileFrom", req.FileFrom)
	writeElem(&b, "m_sThemeDir", req.ThemeDir)
	writeElem(&b, "m_sFileTo", req.FileTo)
	writeElem(&b, "m_bIsNoBase64", strconv.FormatBool(req.NoBase64))
	if req.FontDir != "" {
		writeElem(&b, "m_sFontDir", req.FontDir)
	}
	b.WriteString(paramsClose)
	return []byte(b.String())
}

func writeElem(b *strings.Builder, name, value string) {
	b.WriteByte('<')
	b.WriteString(name)
	b.WriteByte('>')
	b.WriteString(value)
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
}
