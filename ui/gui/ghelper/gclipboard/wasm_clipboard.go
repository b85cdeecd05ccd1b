//go:build js && wasm
// +build js,wasm

package gclipboard

import (
	"errors"
	"syscall/js"
)

func clipboardObj() (js.Value, error) {
	nav := js.Global().Get("navigator")
	if !nav.Truthy() {
		return js.Value{}, ErrUnsupported
	}
	cb := nav.Get("clipboard")
	if !cb.Truthy() {
		return js.Value{}, ErrUnsupported
	}
	return cb, nil
}

// await waits for a promise; it must not run on the main event loop goroutine
func await(p js.Value) (js.Value, error) {
	type result struct {
		v   js.Value
		err error
	}
	ch := make(chan result, 1)
	ok := js.FuncOf(func(this js.Value, args []js.Value) any {
		var v js.Value
		if len(args) > 0 {
			v = args[0]
		}
		ch <- result{v: v}
		return nil
	})
	fail := js.FuncOf(func(this js.Value, args []js.Value) any {
		ch <- result{err: errors.New("clipboard request rejected")}
		return nil
	})
	defer ok.Release()
	defer fail.Release()
	p.Call("then", ok, fail)
	r := <-ch
	return r.v, r.err
}

func ReadAll() (string, error) {
	cb, err := clipboardObj()
	if err != nil {
		return "", err
	}
	v, err := await(cb.Call("readText"))
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func WriteAll(text string) error {
	cb, err := clipboardObj()
	if err != nil {
		return err
	}
	_, err = await(cb.Call("writeText", text))
	return err
}
