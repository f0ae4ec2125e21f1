package search

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const poem = "Rust:\nsafe, fast, production\nForget Guy"

func TestSearch_OneResult(t *testing.T) {
	require.Equal(t, []string{"safe, fast, production"}, Search("duct", poem, true))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	require.Equal(t, []string{"Rust:"}, Search("rUsT", poem, false))
}

func TestSearch_CaseSensitiveMissesOtherCase(t *testing.T) {
	require.Empty(t, Search("rUsT", poem, true))
}

func TestSearch_EmptyQueryMatchesEveryLine(t *testing.T) {
	contents := "  first  \n\tsecond\n\nthird\r\n"
	want := []string{"first", "second", "", "third"}

	if diff := cmp.Diff(want, Search("", contents, true)); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_TrimsMatchedLines(t *testing.T) {
	contents := "    indented match\nno\n\ttabbed match\t\r\n"
	want := []string{"indented match", "tabbed match"}

	require.Equal(t, want, Search("match", contents, true))
	require.Equal(t, want, Search("MATCH", contents, false))
}

func TestSearch_NoMatches(t *testing.T) {
	got := Search("absent", poem, true)
	require.NotNil(t, got)
	require.Empty(t, got)

	require.Empty(t, Search("anything", "", false))
}

func TestSearch_KeepsDuplicatesInOrder(t *testing.T) {
	contents := "b one\na\nb two\nb one"
	want := []string{"b one", "b two", "b one"}

	require.Equal(t, want, Search("b", contents, true))
}

func TestSearch_Unicode(t *testing.T) {
	contents := "Grüße aus Köln\nHELLO ÜBER\nnothing"

	require.Equal(t, []string{"HELLO ÜBER"}, Search("über", contents, false))
	require.Empty(t, Search("über", contents, true))
}

// Every returned line contains the query, and every line holding the query
// is returned, in order.
func TestCaseSensitive_Property(t *testing.T) {
	f := func(query string, lines []string) bool {
		if strings.ContainsAny(query, "\r\n") {
			return true
		}
		for i, l := range lines {
			lines[i] = strings.ReplaceAll(strings.ReplaceAll(l, "\n", " "), "\r", " ")
		}
		var b strings.Builder
		for _, l := range lines {
			b.WriteString(l)
			b.WriteString("\n")
		}
		contents := b.String()

		var want []string
		for _, l := range lines {
			if strings.Contains(l, query) {
				want = append(want, strings.TrimSpace(l))
			}
		}
		got := CaseSensitive(query, contents)
		if len(want) == 0 {
			return len(got) == 0
		}
		return cmp.Equal(want, got)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestCaseInsensitive_IsSupersetOfCaseSensitive(t *testing.T) {
	f := func(query, contents string) bool {
		sensitive := CaseSensitive(query, contents)
		insensitive := CaseInsensitive(query, contents)

		// Both are ordered subsequences of the same lines, so walk them together
		j := 0
		for _, line := range sensitive {
			for j < len(insensitive) && insensitive[j] != line {
				j++
			}
			if j == len(insensitive) {
				return false
			}
			j++
		}
		return true
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestSearch_Idempotent(t *testing.T) {
	f := func(query, contents string, caseSensitive bool) bool {
		return cmp.Equal(Search(query, contents, caseSensitive), Search(query, contents, caseSensitive))
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestSearch_NoSurroundingWhitespace(t *testing.T) {
	f := func(query, contents string, caseSensitive bool) bool {
		for _, line := range Search(query, contents, caseSensitive) {
			if line != strings.TrimSpace(line) {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestCaseInsensitive_InvalidUTF8Query(t *testing.T) {
	contents := "replacement � char\nraw \xff BYTE\nplain"

	require.Equal(t, []string{"raw \xff BYTE"}, Search("\xff", contents, false))
	require.Equal(t, []string{"raw \xff BYTE"}, Search("\xff", contents, true))
	require.Equal(t, []string{"raw \xff BYTE"}, Search("\xff byte", contents, false))
}

func TestToLower_KeepsInvalidBytes(t *testing.T) {
	require.Equal(t, "abc", toLower("ABC"))
	require.Equal(t, "a\xffé\xc3", toLower("A\xffÉ\xc3"))
}
