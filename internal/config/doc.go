// Package config loads cinefind's TOML configuration.
//
// # Resolution
//
// Load reads the file at the given path, or ~/.config/cinefind/config.toml
// when the path is empty. A missing file is not an error: every field has a
// default. Fields present in the file replace the defaults after trimming;
// empty strings and non-positive numbers keep the default. TMDB_API_KEY and
// TMDB_ACCESS_TOKEN override the credentials from the file.
//
// # Format
//
//	api_key = "..."              # v3 key, sent as ?api_key=
//	access_token = "..."         # v4 read token, sent as a bearer header
//	api_base_url = "https://api.themoviedb.org"
//	image_base_url = "https://image.tmdb.org/t/p"
//	language = "en-US"
//	window_size = 5              # numbered pagination links
//	request_timeout = "10s"
//	requests_per_second = 20     # 0 disables throttling
//	burst = 5
//	retry_attempts = 1           # 429 and 5xx only
//	log_file = "~/.local/share/cinefind/cinefind.log"
//	log_level = "info"
//	collapse_empty_slots = false # emit locations the way old links did
//
// Paths starting with "~" are expanded to the home directory.
//
// Credentials are checked separately by Validate so that commands that never
// reach the network can run without them.
package config
