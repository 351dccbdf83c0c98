// Package extract reshapes a USGS design maps response into categorized
// flat row sets: the echoed client input, single-valued outputs,
// spectrum series, and response metadata.
//
// The response is handled as an order-preserving JSON tree (tidwall/gjson)
// so rows come out in the same order the service emitted the fields.
package extract

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// MissingFieldError reports a response document that lacks an expected
// substructure, such as response.metadata on a reference document that
// returns none.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("response document has no %q section", e.Path)
}

// Extractor classifies the fields of one decoded response document.
// Construct it once per response; the extraction methods are read-only
// and can be called any number of times.
type Extractor struct {
	doc gjson.Result
}

// New validates raw response bytes and wraps them for extraction.
func New(data []byte) (*Extractor, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse response: invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("parse response: top-level value is not an object")
	}
	return &Extractor{doc: doc}, nil
}

// Document exposes the underlying response tree for callers that walk
// it directly, such as the verbose request echo.
func (e *Extractor) Document() gjson.Result {
	return e.doc
}

// section returns the named object substructure or a MissingFieldError.
func (e *Extractor) section(path string) (gjson.Result, error) {
	node := e.doc.Get(path)
	if !node.Exists() || !node.IsObject() {
		return gjson.Result{}, &MissingFieldError{Path: path}
	}
	return node, nil
}

// Input returns the echo of the original query: the request date and
// reference document, then every request parameter in source order.
func (e *Extractor) Input() (RowSet, error) {
	req, err := e.section("request")
	if err != nil {
		return nil, err
	}
	params, err := e.section("request.parameters")
	if err != nil {
		return nil, err
	}
	rows := RowSet{
		Row{"date", req.Get("date")},
		Row{"referenceDocument", req.Get("referenceDocument")},
	}
	params.ForEach(func(key, value gjson.Result) bool {
		rows = append(rows, Row{key.String(), value})
		return true
	})
	return rows, nil
}

// SVS returns the single-valued outputs: every scalar-valued key of
// response.data, followed by scalar members of the nested
// underlyingData tier when one is present.
func (e *Extractor) SVS() (RowSet, error) {
	data, err := e.section("response.data")
	if err != nil {
		return nil, err
	}
	var rows RowSet
	data.ForEach(func(key, value gjson.Result) bool {
		if isScalar(value) {
			rows = append(rows, Row{key.String(), value})
		}
		return true
	})
	if under := data.Get("underlyingData"); under.IsObject() {
		under.ForEach(func(key, value gjson.Result) bool {
			if isScalar(value) {
				rows = append(rows, Row{key.String(), value})
			}
			return true
		})
	}
	return rows, nil
}

// Spectra returns the series-valued outputs, the complement of SVS.
// Some reference documents nest supplemental series one level deeper
// under underlyingData; those entries come first, then the structured
// entries of response.data, excluding the underlyingData container
// itself.
func (e *Extractor) Spectra() (RowSet, error) {
	data, err := e.section("response.data")
	if err != nil {
		return nil, err
	}
	var rows RowSet
	if under := data.Get("underlyingData"); under.IsObject() {
		under.ForEach(func(key, value gjson.Result) bool {
			if !isScalar(value) {
				rows = append(rows, Row{key.String(), Series{value}})
			}
			return true
		})
	}
	data.ForEach(func(key, value gjson.Result) bool {
		if key.String() == "underlyingData" {
			return true
		}
		if !isScalar(value) {
			rows = append(rows, Row{key.String(), Series{value}})
		}
		return true
	})
	return rows, nil
}

// Series wraps a spectrum's nested series value. It renders as the
// compact form of its source JSON, so a series cell occupies a single
// table line however the service formatted it.
type Series struct {
	res gjson.Result
}

// Result exposes the underlying JSON node.
func (s Series) Result() gjson.Result { return s.res }

func (s Series) String() string {
	return string(pretty.Ugly([]byte(s.res.Raw)))
}

// MetadataSVS returns the scalar-valued keys of response.metadata.
func (e *Extractor) MetadataSVS() (RowSet, error) {
	meta, err := e.section("response.metadata")
	if err != nil {
		return nil, err
	}
	var rows RowSet
	meta.ForEach(func(key, value gjson.Result) bool {
		if isScalar(value) {
			rows = append(rows, Row{key.String(), value})
		}
		return true
	})
	return rows, nil
}

// isScalar reports whether v is a plain scalar rather than a nested
// structure or series. Arrays count as structured here, unlike in
// Flatten, where they are leaves.
func isScalar(v gjson.Result) bool {
	return v.Type != gjson.JSON
}
