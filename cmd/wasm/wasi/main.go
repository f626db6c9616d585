//go:build wasip1

// Command gocalc-wasm-wasi is the WASI (wasip1) entrypoint for use from
// any language that supports the WebAssembly System Interface.
//
// Protocol: single JSON object on stdin → single JSON object on stdout.
//
//	stdin:  { "expression": "1 + 2 * 3" }
//	stdout: { "result": 7 }            on success
//	        { "error":  "<message>" }  on failure (exit code 1)
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -o gocalc.wasm ./cmd/wasm/wasi/
//
// Usage with wasmtime CLI:
//
//	echo '{"expression":"1 + 2 * 3"}' | wasmtime gocalc.wasm
package main

import (
	"encoding/json"
	"os"

	"github.com/sandrolain/gocalc"
)

type request struct {
	Expression string `json:"expression"`
}

type response struct {
	Result *float64 `json:"result,omitempty"`
	Error  string   `json:"error,omitempty"`
}

func writeResponse(r response, exitCode int) {
	_ = json.NewEncoder(os.Stdout).Encode(r)
	os.Exit(exitCode)
}

func main() {
	var req request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeResponse(response{Error: "invalid request JSON: " + err.Error()}, 1)
	}

	result, err := gocalc.Eval(req.Expression)
	if err != nil {
		writeResponse(response{Error: err.Error()}, 1)
	}
	writeResponse(response{Result: &result}, 0)
}
