// Package location encodes navigation state as "<page>#/<arg1>/<arg2>/..."
// locations and publishes them to a navigation history.
//
// # Format
//
// A location is a page file name, a "#" and a fragment of up to Slots
// positional arguments, each preceded by Separator and path-escaped:
//
//	index.html#/<kind>/<keyword>/<page>
//	credits.html#/<kind>/<id>/<keyword>/<title>
//
//	index.html#/tv/batman/2
//	credits.html#/movie/550/fight%20club/Fight%20Club
//
// Missing arguments decode as "". Segments past the last slot are ignored,
// and a segment that fails to unescape is kept verbatim.
//
// # Codec Modes
//
// The zero Codec writes an empty interior argument as an empty segment, so
// every later argument keeps its slot:
//
//	Codec{}.Encode("index.html", "movie", "", "3")
//	→ "index.html#/movie//3"
//
// Codec{Collapse: true} skips empty arguments the way links from earlier
// builds did. Decoding such a link shifts the later arguments left:
//
//	Codec{Collapse: true}.Encode("index.html", "movie", "", "3")
//	→ "index.html#/movie/3"
//	Decode → {"movie", "3", "", ""}
//
// Decode is the same in both modes. Trailing empty arguments are never
// written in either mode.
//
// # Parsing
//
// Parse accepts every form a user or an old link might supply and resolves
// it to one Location:
//
//	"index.html#/tv/x/1"    → {index.html, /tv/x/1}
//	"./index.html#/tv/x/1"  → {index.html, /tv/x/1}
//	"#/tv/x/1"              → {index.html, /tv/x/1}
//	""                      → {index.html, ""}
//
// A location with no arguments is Empty. Pages treat it as "show the welcome
// view".
//
// # History
//
// History is the boundary locations are published to. Publish pushes a new
// entry, or replaces the current one when the caller is restoring a state it
// was handed rather than creating one:
//
//	location.Publish(h, loc, false) // user action, new entry
//	location.Publish(h, loc, true)  // normalisation, same entry
//
// A nil History is accepted and ignored.
//
// # Usage Example
//
//	codec := location.Codec{Collapse: cfg.CollapseEmptySlots}
//
//	loc := location.Build(codec, location.MainPage, "tv", "batman", "1")
//	fmt.Println(loc) // index.html#/tv/batman/1
//
//	args := location.Parse("credits.html#/movie/550//Fight%20Club").Args(codec)
//	fmt.Println(args[1], args[3]) // 550 Fight Club
package location
