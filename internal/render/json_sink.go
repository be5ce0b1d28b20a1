package render

import "github.com/Adda-Baaj/restful/pkg/jsonvalue"

const indent = "    "

type jsonSink struct{}

func (jsonSink) Type() string { return "json" }

// Write stores doc indented by four spaces, followed by a newline.
func (jsonSink) Write(path string, doc jsonvalue.Value) error {
	data := append(doc.Indent(indent), '\n')
	return writeFile(path, data)
}
