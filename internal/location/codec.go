package location

import (
	"net/url"
	"strings"
)

// Separator delimits positional arguments inside a fragment.
const Separator = "/"

// Slots is the number of positional arguments a fragment can carry.
const Slots = 4

// Tuple holds the positional fragment arguments. Missing arguments are "".
type Tuple [Slots]string

// Codec converts between argument tuples and fragment strings.
//
// By default an empty interior argument is written as an empty segment
// ("index.html#/movie//1") so that later arguments keep their position.
// Collapse restores the older behaviour where empty arguments are skipped
// entirely, which shifts every following argument one slot to the left on
// decode. It exists for links produced by earlier builds.
type Codec struct {
	Collapse bool
}

// Encode builds basePage + "#" followed by "/" + escaped value for each
// argument. Arguments beyond Slots are ignored and trailing empty arguments
// are never written.
func (c Codec) Encode(basePage string, values ...string) string {
	if len(values) > Slots {
		values = values[:Slots]
	}
	n := len(values)
	for n > 0 && values[n-1] == "" {
		n--
	}
	values = values[:n]

	var b strings.Builder
	b.WriteString(basePage)
	b.WriteString("#")
	for _, v := range values {
		if v == "" && c.Collapse {
			continue
		}
		b.WriteString(Separator)
		b.WriteString(url.PathEscape(v))
	}
	return b.String()
}

// Decode extracts the positional arguments from fragment. The input may be a
// full location ("credits.html#/movie/550"), a fragment with its leading "#"
// or the fragment body alone. The segment before the first separator is
// discarded. Segments that fail to unescape are returned as-is.
func (Codec) Decode(fragment string) Tuple {
	var out Tuple
	if i := strings.IndexByte(fragment, '#'); i >= 0 {
		fragment = fragment[i+1:]
	}
	if fragment == "" {
		return out
	}
	parts := strings.Split(fragment, Separator)[1:]
	for i := 0; i < Slots && i < len(parts); i++ {
		out[i] = unescape(parts[i])
	}
	return out
}

func unescape(segment string) string {
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return decoded
}

// Encode is Codec{}.Encode.
func Encode(basePage string, values ...string) string {
	return Codec{}.Encode(basePage, values...)
}

// Decode is Codec{}.Decode.
func Decode(fragment string) Tuple {
	return Codec{}.Decode(fragment)
}
