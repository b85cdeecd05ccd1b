//go:build js && wasm
// +build js,wasm

package gdialog

import (
	"syscall/js"
)

func Confirm(title, message string) bool {
	w := js.Global().Get("window")
	if !w.Truthy() {
		return true
	}
	return w.Call("confirm", title+"\n\n"+message).Bool()
}

func Info(title, message string) {
	w := js.Global().Get("window")
	if !w.Truthy() {
		return
	}
	w.Call("alert", title+"\n\n"+message)
}
