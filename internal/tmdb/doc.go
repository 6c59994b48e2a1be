// Package tmdb is a small client for the TMDB v3 API.
//
// Only the two endpoints the app needs are covered: keyword search over
// movies or tv shows and the credits of a single title. Requests carry the
// API key as a query parameter or an access token as a bearer header,
// whichever is configured.
//
// Requests can be throttled with a token bucket and retried on 429 and 5xx
// responses. Both are off unless configured. Non-success responses surface
// as *TransportError.
package tmdb
