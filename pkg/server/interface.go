/*
Package server implements msgpack IPC for species-name search.

The server provides a minimal interface for tiered species lookup using
msgpack serialization over stdin/stdout. Messages are processed
synchronously, one request per response, with timing info included.

# IPC

Clients send structured messages via stdin and read responses from
stdout. Each message carries an ID field the response echoes back.

Search requests use this structure:

	{"id": "req_001", "q": "nothern", "l": 10}

The server responds with suggestions ranked by tier, prefix over
substring over fuzzy:

	{"id": "req_001", "s": [{"t": "Northern Cardinal", "k": "fuzzy"}], "c": 1, "d": 145}

Management requests adjust matcher limits or report vocabulary stats at
runtime:

	{"id": "mgmt_001", "action": "get_info"}
	{"id": "mgmt_002", "action": "set_limits", "max_results": 8, "fuzzy_cap": 3}

An empty suggestion list is a normal response, not an error; the picker
on the client side shows "no matches" and keeps accepting free text.
Error payloads are reserved for malformed or out-of-bounds requests.
*/
package server

// SearchRequest - minimal search request
type SearchRequest struct {
	ID    string `msgpack:"id"`
	Query string `msgpack:"q"`
	Limit int    `msgpack:"l,omitempty"`
}

// SearchSuggestion - one ranked suggestion
type SearchSuggestion struct {
	Term string `msgpack:"t"`
	Tier string `msgpack:"k"`
}

// SearchResponse - search response
type SearchResponse struct {
	ID          string             `msgpack:"id"`
	Suggestions []SearchSuggestion `msgpack:"s"`
	Count       int                `msgpack:"c"`
	TimeTaken   int64              `msgpack:"d"`
}

// MANAGEMENT MESSAGES - runtime limit updates and vocabulary stats

// ManageRequest - management request
type ManageRequest struct {
	ID         string `msgpack:"id"`
	Action     string `msgpack:"action"`                 // "get_info", "set_limits"
	MaxResults *int   `msgpack:"max_results,omitempty"`  // for "set_limits"
	FuzzyCap   *int   `msgpack:"fuzzy_cap,omitempty"`    // for "set_limits"
}

// ManageResponse - management operation response
type ManageResponse struct {
	ID         string `msgpack:"id"`
	Status     string `msgpack:"status"`
	Error      string `msgpack:"error,omitempty"`
	TermCount  int    `msgpack:"term_count,omitempty"`
	MaxResults int    `msgpack:"max_results,omitempty"`
	FuzzyCap   int    `msgpack:"fuzzy_cap,omitempty"`
	CacheHits  int64  `msgpack:"cache_hits,omitempty"`
	CacheMiss  int64  `msgpack:"cache_misses,omitempty"`
}

// SearchError holds basic error information for failed requests
type SearchError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
