//go:build windows

package console

import "golang.org/x/sys/windows"

const codePageUTF8 = 65001

var procSetConsoleOutputCP = windows.NewLazySystemDLL("kernel32.dll").NewProc("SetConsoleOutputCP")

func initOutput() {
	// Fails harmlessly when stdout is not a console.
	procSetConsoleOutputCP.Call(codePageUTF8)

	out := windows.Handle(windows.Stdout)
	var mode uint32
	if err := windows.GetConsoleMode(out, &mode); err == nil {
		windows.SetConsoleMode(out, mode|windows.ENABLE_PROCESSED_OUTPUT)
	}
}
