//go:build js && wasm
// +build js,wasm

package gos

import (
	"bytes"
	"errors"
	"io"
	"os"
	"syscall/js"
	"time"
)

type fetchResult struct {
	data []byte
	err  error
}

// fetchBytes runs fetch(path).then(r => r.arrayBuffer())
func fetchBytes(path string) ([]byte, error) {
	global := js.Global()
	fetch := global.Get("fetch")
	if !fetch.Truthy() {
		return nil, errors.New("fetch() not supported")
	}

	promise := fetch.Invoke(path)
	ch := make(chan fetchResult, 1)

	var onBuffer, onBufferErr js.Func
	thenFn := js.FuncOf(func(this js.Value, args []js.Value) any {
		resp := args[0]
		if !resp.Get("ok").Bool() {
			ch <- fetchResult{nil, ErrNotExist}
			return nil
		}
		onBuffer = js.FuncOf(func(this js.Value, args []js.Value) any {
			arr := js.Global().Get("Uint8Array").New(args[0])
			data := make([]byte, arr.Get("length").Int())
			js.CopyBytesToGo(data, arr)
			ch <- fetchResult{data, nil}
			return nil
		})
		onBufferErr = js.FuncOf(func(this js.Value, args []js.Value) any {
			ch <- fetchResult{nil, errors.New("failed to read arrayBuffer")}
			return nil
		})
		resp.Call("arrayBuffer").Call("then", onBuffer, onBufferErr)
		return nil
	})

	catchFn := js.FuncOf(func(this js.Value, args []js.Value) any {
		ch <- fetchResult{nil, errors.New("fetch() failed")}
		return nil
	})

	promise.Call("then", thenFn).Call("catch", catchFn)
	result := <-ch
	thenFn.Release()
	catchFn.Release()
	if onBuffer.Truthy() {
		onBuffer.Release()
		onBufferErr.Release()
	}

	return result.data, result.err
}

// writes go to localStorage, so settings survive a reload
func storage() js.Value {
	return js.Global().Get("localStorage")
}

func fromStorage(name string) ([]byte, bool) {
	ls := storage()
	if !ls.Truthy() {
		return nil, false
	}
	v := ls.Call("getItem", name)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return []byte(v.String()), true
}

func Stat(name string) (FileInfo, error) {
	data, err := ReadFile(name)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{
		Name:    name,
		Size:    int64(len(data)),
		ModTime: time.Time{},
		IsDir:   false,
	}, nil
}

type wasmFile struct {
	r *bytes.Reader
}

func (f *wasmFile) Read(p []byte) (int, error) { return f.r.Read(p) }
func (f *wasmFile) Close() error               { return nil }

func Open(name string) (io.ReadCloser, error) {
	data, err := ReadFile(name)
	if err != nil {
		return nil, err
	}
	return &wasmFile{r: bytes.NewReader(data)}, nil
}

func ReadFile(name string) ([]byte, error) {
	if data, ok := fromStorage(name); ok {
		return data, nil
	}
	return fetchBytes(name)
}

func WriteFile(name string, data []byte, _ os.FileMode) error {
	ls := storage()
	if !ls.Truthy() {
		return errors.New("localStorage not available")
	}
	ls.Call("setItem", name, string(data))
	return nil
}

func Remove(name string) error {
	ls := storage()
	if !ls.Truthy() {
		return errors.New("localStorage not available")
	}
	ls.Call("removeItem", name)
	return nil
}

func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}
