package main

import "github.com/tidwall/gjson"

// DetectFormat classifies a parsed document as GOOD, mona or unknown.
//
// A document is GOOD when it says so in "format", or when it carries an
// "artifacts" array and no mona "flower" bucket. It is mona when any of the five
// position buckets is present and truthy.
func DetectFormat(doc gjson.Result) Format {
	if !doc.IsObject() {
		return FormatUnknown
	}
	if f := doc.Get("format"); f.Type == gjson.String && f.Str == "GOOD" {
		return FormatGood
	}
	if doc.Get("artifacts").IsArray() && !truthy(doc.Get("flower")) {
		return FormatGood
	}
	for _, p := range positions {
		if truthy(doc.Get(string(p))) {
			return FormatMona
		}
	}
	return FormatUnknown
}

// truthy mirrors JSON-script truthiness: arrays and objects are always true,
// even when empty.
func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.True, gjson.JSON:
		return true
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	}
	return false
}
