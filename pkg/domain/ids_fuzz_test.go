package domain

import (
	"testing"
	"unicode/utf8"
)

// Every ID type is parsed from URL path segments, so parsing must never
// panic and must agree across types.
func FuzzParseCaseID(f *testing.F) {
	for _, seed := range []string{
		"",
		"3f2504e0-4f89-41d3-9a0c-0305e82c3301",
		"00000000-0000-0000-0000-000000000000",
		"{3f2504e0-4f89-41d3-9a0c-0305e82c3301}",
		"urn:uuid:3f2504e0-4f89-41d3-9a0c-0305e82c3301",
		"../../cases",
		"3f2504e0-4f89-41d3-9a0c-0305e82c3301\x00",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		caseID, err := ParseCaseID(input)
		if err != nil {
			return
		}
		if !utf8.ValidString(input) {
			t.Fatalf("accepted non-UTF8 input %q", input)
		}
		again, err := ParseCaseID(caseID.String())
		if err != nil || again != caseID {
			t.Fatalf("%q did not round-trip: %v", input, err)
		}
	})
}

func FuzzParseIDsAgree(f *testing.F) {
	f.Add("3f2504e0-4f89-41d3-9a0c-0305e82c3301")
	f.Add("solver")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		errs := parseAll(input)
		for _, err := range errs[1:] {
			if (err == nil) != (errs[0] == nil) {
				t.Fatalf("ID parsers disagree on %q", input)
			}
		}
	})
}
