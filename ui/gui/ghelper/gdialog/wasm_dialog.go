//go:build js || wasm
// +build js wasm

package gdialog

import "errors"

type Result struct {
	Path string
	Name string
	Data []byte
}

func OpenFile(title string) (Result, error) {
	return Result{}, errors.New("file dialog not available in browser build")
}
