package tags

import (
	"bytes"
	"strings"

	"github.com/viant/parsly"
)

// Values represents encoded tag values, a coma separated mix of bare tokens
// and key=value pairs, values may be single quoted or {} scoped to carry comas.
type Values string

// MatchPairs calls onMatch for each element, bare tokens yield an empty value.
func (v Values) MatchPairs(onMatch func(key, value string) error) error {
	cursor := parsly.NewCursor("", []byte(v), 0)
	for cursor.Pos < len(cursor.Input) {
		key, value := matchPair(cursor)
		if key == "" {
			continue
		}
		if err := onMatch(key, value); err != nil {
			return err
		}
	}
	return nil
}

func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	input := cursor.Input[cursor.Pos:]
	eqIndex := bytes.IndexByte(input, '=')
	comaIndex := bytes.IndexByte(input, ',')
	hasKey := eqIndex != -1 && (comaIndex == -1 || eqIndex < comaIndex)
	if hasKey {
		match := cursor.MatchAny(eqTerminatorMatcher)
		if match.Code != eqTerminatorToken {
			cursor.Pos = len(cursor.Input)
			return "", ""
		}
		key = match.Text(cursor)
		key = key[:len(key)-1] //exclude =
		value = matchElement(cursor)
		return strings.TrimSpace(key), value
	}
	match := cursor.MatchAny(comaTerminatorMatcher)
	if match.Code == comaTerminatorToken {
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	} else if cursor.Pos < len(cursor.Input) {
		value = string(cursor.Input[cursor.Pos:])
		cursor.Pos = len(cursor.Input)
	}
	return strings.TrimSpace(value), ""
}

func matchElement(cursor *parsly.Cursor) string {
	value := ""
	match := cursor.MatchAny(scopeBlockMatcher, quotedMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken, quotedToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1] //exclude scope or quotes
		cursor.MatchAny(comaTerminatorMatcher)
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	return value
}
