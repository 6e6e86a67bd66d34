// Package pattern handles the $(VAR) naming patterns used when files are
// copied into a project tree. The dialog only checks patterns for syntactic
// balancedness and forwards them verbatim; variable semantics belong to the
// import job.
package pattern

import (
	"fmt"
	"strings"
)

// Variables documents the tokens the import job understands. The preview
// expansion below covers the same list.
var Variables = []string{
	"YEAR", "MONTH", "DAY", "HOUR", "MINUTE", "SECOND",
	"EXIF_YEAR", "EXIF_MONTH", "EXIF_DAY", "EXIF_HOUR", "EXIF_MINUTE", "EXIF_SECOND",
	"JOBCODE", "FILE_NAME", "FILE_EXTENSION", "SEQUENCE",
}

// Validate checks that every $( opened in the pattern is closed before the
// next one opens. It says nothing about whether the variable names mean
// anything; unknown variables expand to themselves downstream.
func Validate(p string) error {
	for i := 0; i < len(p); {
		open := strings.Index(p[i:], "$(")
		if open < 0 {
			return nil
		}
		open += i
		closing := strings.IndexByte(p[open+2:], ')')
		nested := strings.Index(p[open+2:], "$(")
		if closing < 0 {
			return fmt.Errorf("unclosed $( at offset %d", open)
		}
		if nested >= 0 && nested < closing {
			return fmt.Errorf("nested $( at offset %d", open+2+nested)
		}
		i = open + 2 + closing + 1
	}
	return nil
}

// Expand substitutes $(NAME) tokens from vars, leaving unknown tokens in
// place. Used for the "result of the pattern" preview line and by the import
// job for real target paths.
func Expand(p string, vars map[string]string) string {
	var b strings.Builder
	for i := 0; i < len(p); {
		open := strings.Index(p[i:], "$(")
		if open < 0 {
			b.WriteString(p[i:])
			break
		}
		open += i
		closing := strings.IndexByte(p[open+2:], ')')
		if closing < 0 {
			b.WriteString(p[i:])
			break
		}
		name := p[open+2 : open+2+closing]
		b.WriteString(p[i:open])
		if val, ok := vars[name]; ok {
			b.WriteString(val)
		} else {
			b.WriteString(p[open : open+2+closing+1])
		}
		i = open + 2 + closing + 1
	}
	return b.String()
}
