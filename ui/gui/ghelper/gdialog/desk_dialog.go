//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"github.com/sqweek/dialog"
)

// Confirm blocks until the user answers; call it off the game loop
func Confirm(title, message string) bool {
	return dialog.Message("%s", message).Title(title).YesNo()
}

func Info(title, message string) {
	dialog.Message("%s", message).Title(title).Info()
}
