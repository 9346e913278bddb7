package writeback

import "regexp"

// arrayAnchor locates a named array in a metadata document: group 1 spans
// from the key through the last element, group 2 is the newline that carries
// the closing "],". New entries splice in at the end of group 1.
func arrayAnchor(field string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)("` + field + `":\[.*?)(\n\s*\],)`)
}

var (
	resourcesAnchor     = arrayAnchor("resources")
	creationOrderAnchor = arrayAnchor("instanceCreationOrder")
)

// appendToArray inserts entry on its own line before the closing bracket of
// the anchored array. Reports false, with content unchanged, when the
// document has no such anchor.
func appendToArray(content string, anchor *regexp.Regexp, entry string) (string, bool) {
	m := anchor.FindStringSubmatchIndex(content)
	if m == nil {
		return content, false
	}
	at := m[3] // end of group 1
	return content[:at] + "\n" + entry + content[at:], true
}

// layerAnchor matches the end of the named instance layer: the instances
// array's closing bracket followed by the empty sub-layer list and the
// layer's name field. The match starts at the newline preceding the bracket,
// which is where new instance records splice in.
func layerAnchor(name string) *regexp.Regexp {
	return regexp.MustCompile(`(\n\s*)\],"layers":\[\],"name":"` + regexp.QuoteMeta(name) + `"`)
}
