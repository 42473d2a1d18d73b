/*
Package server implements msgpack IPC for segmentation services.

The server reads a stream of msgpack-encoded requests from stdin and writes one msgpack
response per request to stdout. The engine is built once at startup over the configured
corpus; every request is answered from that engine, so responses are deterministic.

# IPC

Each request carries an ID and an action. Segmentation is the default action:

	{"id": "req_001", "w": ["competitive", "countless"]}

The server responds with split positions per word, in request order:

	{"id": "req_001", "r": [{"w": "competitive", "s": [4, 6, 7]}, {"w": "countless", "s": [3, 5]}], "c": 2, "t": 41}

Setting "f" adds the distribution, matched suffix and pieces of each word.

Diagnostics:

	{"id": "d_001", "action": "dump", "p": "compet"}
	{"id": "s_001", "action": "stats"}
	{"id": "h_001", "action": "health"}

Failures are reported as {"id": ..., "e": message, "c": code} and never end the session.
*/
package server

import "github.com/bastiangx/wordsplit/pkg/trie"

const (
	ActionSegment = "segment"
	ActionDump    = "dump"
	ActionStats   = "stats"
	ActionHealth  = "health"
)

// Request is a single client message
type Request struct {
	ID     string   `msgpack:"id"`
	Action string   `msgpack:"action,omitempty"`
	Words  []string `msgpack:"w,omitempty"`
	Prefix string   `msgpack:"p,omitempty"`
	Full   bool     `msgpack:"f,omitempty"`
}

// WordResult holds the segmentation of one requested word
type WordResult struct {
	Word         string   `msgpack:"w"`
	Splits       []int    `msgpack:"s"`
	Distribution []int    `msgpack:"d,omitempty"`
	Suffix       string   `msgpack:"sx,omitempty"`
	Pieces       []string `msgpack:"p,omitempty"`
}

// SegmentResponse - segmentation response
type SegmentResponse struct {
	ID        string       `msgpack:"id"`
	Results   []WordResult `msgpack:"r"`
	Count     int          `msgpack:"c"`
	TimeTaken int64        `msgpack:"t"`
}

// DumpResponse - subtrie snapshot below a prefix
type DumpResponse struct {
	ID     string    `msgpack:"id"`
	Prefix string    `msgpack:"p"`
	Trie   trie.Dump `msgpack:"trie"`
}

// StatsResponse - engine statistics
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// StatusResponse - readiness and health replies
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
