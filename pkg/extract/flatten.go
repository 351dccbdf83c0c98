package extract

import "github.com/tidwall/gjson"

// FlatEntry is one leaf of a flattened document: the dot-joined path of
// its ancestor keys and the leaf value.
type FlatEntry struct {
	Path  string
	Value gjson.Result
}

// Flatten collapses a nested JSON object into flat entries keyed by
// dotted ancestor paths, in document order. Scalars and arrays are
// leaves; nested objects recurse. An empty object contributes no entry
// for its path.
func Flatten(node gjson.Result) []FlatEntry {
	var entries []FlatEntry
	flattenInto(node, "", &entries)
	return entries
}

func flattenInto(node gjson.Result, parent string, out *[]FlatEntry) {
	node.ForEach(func(key, value gjson.Result) bool {
		path := key.String()
		if parent != "" {
			path = parent + "." + path
		}
		if value.IsObject() {
			flattenInto(value, path, out)
		} else {
			*out = append(*out, FlatEntry{Path: path, Value: value})
		}
		return true
	})
}
