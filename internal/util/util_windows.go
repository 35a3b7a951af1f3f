//go:build windows

// Package util holds platform specific console helpers.
package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
)

var cliParents = []string{
	"cmd.exe",
	"powershell.exe",
	"pwsh.exe",
	"wt.exe",
	"conhost.exe",
	"windowsterminal.exe",
}

// IsRunFromGUI reports whether padclick was launched from Explorer, in which
// case its console window disappears as soon as it exits.
func IsRunFromGUI() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return true
	}
	parent := strings.ToLower(parentProcessName())
	slog.Debug("parent process", "name", parent)
	if slices.Contains(cliParents, parent) {
		return false
	}
	return parent == "explorer.exe"
}

// PauseBeforeExit keeps an Explorer-launched console open until a key is pressed.
func PauseBeforeExit(w io.Writer, r io.Reader) {
	if !IsRunFromGUI() {
		return
	}
	fmt.Fprintln(w, "Press Enter to exit...")
	b := make([]byte, 1)
	_, _ = r.Read(b)
}

func parentProcessName() string {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(snapshot)

	procs := map[uint32]windows.ProcessEntry32{}
	var pe windows.ProcessEntry32
	pe.Size = uint32(unsafe.Sizeof(pe))
	for err := windows.Process32First(snapshot, &pe); err == nil; err = windows.Process32Next(snapshot, &pe) {
		procs[pe.ProcessID] = pe
	}

	self, ok := procs[uint32(os.Getpid())]
	if !ok {
		return ""
	}
	parent, ok := procs[self.ParentProcessID]
	if !ok {
		return ""
	}
	return windows.UTF16ToString(parent.ExeFile[:])
}
