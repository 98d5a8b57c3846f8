package generator

import (
	"bytes"
	"strings"
)

const generatedHeader = "// Code generated by tsbridge. DO NOT EDIT.\n"

// emit renders a client file tree into TypeScript source. Layout is fixed:
// two-space indentation, one blank line between methods and classes, a
// trailing newline at end of file.
func emit(file clientFile) []byte {
	var buf bytes.Buffer

	buf.WriteString(generatedHeader)
	buf.WriteString("\n")
	buf.WriteString("import { dispatchRequest, type RequestOptions } from \"")
	buf.WriteString(file.runtimeImport)
	buf.WriteString("\";\n")
	if len(file.typeImports) > 0 {
		buf.WriteString("import type { ")
		buf.WriteString(strings.Join(file.typeImports, ", "))
		buf.WriteString(" } from \"")
		buf.WriteString(file.typesImport)
		buf.WriteString("\";\n")
	}

	for _, cls := range file.classes {
		buf.WriteString("\n")
		emitClass(&buf, cls)
	}
	return buf.Bytes()
}

func emitClass(buf *bytes.Buffer, cls clientClass) {
	buf.WriteString("export class ")
	buf.WriteString(cls.name)
	buf.WriteString(" {\n")
	for i, m := range cls.methods {
		if i > 0 {
			buf.WriteString("\n")
		}
		emitMethod(buf, m)
	}
	buf.WriteString("}\n")
}

func emitMethod(buf *bytes.Buffer, m clientMethod) {
	buf.WriteString("  ")
	buf.WriteString(m.name)
	buf.WriteString("(")
	for i, param := range m.params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(param.name)
		buf.WriteString(": ")
		buf.WriteString(param.tsType)
	}
	buf.WriteString("): Promise<")
	buf.WriteString(m.responseType)
	buf.WriteString("> {\n")

	buf.WriteString("    const url = `")
	buf.WriteString(m.url)
	buf.WriteString("`;\n")

	buf.WriteString("    return dispatchRequest<")
	buf.WriteString(m.responseType)
	buf.WriteString(">({ ...options, url, method: \"")
	buf.WriteString(m.verb)
	buf.WriteString("\"")
	if m.bodyRef != "" {
		buf.WriteString(", body: ")
		buf.WriteString(m.bodyRef)
	}
	if m.queryRef != "" {
		buf.WriteString(", query: ")
		buf.WriteString(m.queryRef)
	}
	buf.WriteString(" });\n")
	buf.WriteString("  }\n")
}
