package tui

import (
	"runtime"
	"strings"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	return osFromGOOS(runtime.GOOS)
}

func osFromGOOS(goos string) OSType {
	switch goos {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	return s.For(GetOS())
}

// For returns the shortcut used on os
func (s ShortcutKey) For(os OSType) string {
	switch os {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Matches reports whether a key message string triggers this shortcut
func (s ShortcutKey) Matches(key string) bool {
	return key == s.Get()
}

// GetWithWarning returns the shortcut and a warning if there are known issues
func (s ShortcutKey) GetWithWarning() (shortcut string, warning string) {
	shortcut = s.Get()

	switch GetOS() {
	case OSLinux:
		switch shortcut {
		case "ctrl+s":
			warning = "(may need: stty -ixon)"
		case "ctrl+z":
			warning = "(caution: suspends process)"
		}
	case OSWindows:
		if shortcut == "shift+tab" {
			warning = "(terminal dependent)"
		}
	}

	return shortcut, warning
}

// Shortcuts contains every editor shortcut with OS-specific variations.
// Linux and Windows use alt where the ctrl chord collides with terminal
// control characters.
var Shortcuts = struct {
	// Formatting
	Bold      ShortcutKey
	Italic    ShortcutKey
	Underline ShortcutKey
	Heading1  ShortcutKey
	Heading2  ShortcutKey
	Heading3  ShortcutKey
	Bullets   ShortcutKey
	Numbered  ShortcutKey
	Link      ShortcutKey

	// Selection
	Mark      ShortcutKey
	SelectAll ShortcutKey

	// Edit operations
	Undo     ShortcutKey
	Redo     ShortcutKey
	Clear    ShortcutKey
	Paste    ShortcutKey
	Copy     ShortcutKey
	CopyHTML ShortcutKey

	// Document
	Save   ShortcutKey
	Revert ShortcutKey
	View   ShortcutKey
	Help   ShortcutKey

	// System
	Quit   ShortcutKey
	Cancel ShortcutKey
}{
	Bold: ShortcutKey{
		Mac:     "ctrl+b",
		Default: "alt+b",
	},
	Italic: ShortcutKey{
		Default: "alt+i", // ctrl+i is tab
	},
	Underline: ShortcutKey{
		Default: "alt+u",
	},
	Heading1: ShortcutKey{
		Default: "alt+1",
	},
	Heading2: ShortcutKey{
		Default: "alt+2",
	},
	Heading3: ShortcutKey{
		Default: "alt+3",
	},
	Bullets: ShortcutKey{
		Default: "alt+l",
	},
	Numbered: ShortcutKey{
		Default: "alt+o",
	},
	Link: ShortcutKey{
		Default: "alt+h",
	},

	Mark: ShortcutKey{
		Default: "alt+m",
	},
	SelectAll: ShortcutKey{
		Default: "alt+a",
	},

	Undo: ShortcutKey{
		Mac:     "ctrl+z",
		Linux:   "alt+z", // Avoid SIGTSTP
		Windows: "alt+z",
		Default: "ctrl+z",
	},
	Redo: ShortcutKey{
		Mac:     "ctrl+y",
		Linux:   "alt+y",
		Windows: "alt+y",
		Default: "ctrl+y",
	},
	Clear: ShortcutKey{
		Mac:     "ctrl+k",
		Linux:   "alt+k", // Avoid readline kill-line
		Windows: "alt+k",
		Default: "ctrl+k",
	},
	Paste: ShortcutKey{
		Mac:     "ctrl+v",
		Linux:   "alt+v",
		Windows: "alt+v",
		Default: "ctrl+v",
	},
	Copy: ShortcutKey{
		Default: "alt+c",
	},
	CopyHTML: ShortcutKey{
		Default: "alt+e",
	},

	Save: ShortcutKey{
		Mac:     "ctrl+s",
		Linux:   "alt+s", // Avoid XOFF
		Windows: "alt+s",
		Default: "ctrl+s",
	},
	Revert: ShortcutKey{
		Default: "alt+r",
	},
	View: ShortcutKey{
		Default: "alt+p",
	},
	Help: ShortcutKey{
		Default: "f1",
	},

	Quit: ShortcutKey{
		Default: "ctrl+c",
	},
	Cancel: ShortcutKey{
		Default: "esc",
	},
}

// SyntaxHelp lists the authoring syntax shown in the help bar
var SyntaxHelp = []struct {
	Name   string
	Syntax string
}{
	{"bold", "**text**"},
	{"italic", "*text*"},
	{"underline", "_text_"},
	{"heading", "# ## ###"},
	{"list", "- item"},
	{"numbered", "1. item"},
	{"link", "[label](url)"},
}

// GetShortcutHelp returns formatted help text for a shortcut
func GetShortcutHelp(name string, key ShortcutKey) string {
	_, warning := key.GetWithWarning()
	if warning != "" {
		return FormatShortcutForHelp(key) + " " + name + " " + warning
	}
	return FormatShortcutForHelp(key) + " " + name
}

// FormatShortcutForHelp formats a shortcut key for display in help text
func FormatShortcutForHelp(key ShortcutKey) string {
	return formatShortcut(key.Get(), GetOS())
}

func formatShortcut(shortcut string, os OSType) string {
	// M- prefix for Alt on Linux/Windows is the common terminal convention
	if os == OSLinux || os == OSWindows {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")

	if strings.HasPrefix(shortcut, "f") && len(shortcut) <= 3 {
		return strings.ToUpper(shortcut)
	}

	return shortcut
}

// GetTerminalSetupMessage returns OS-specific terminal setup instructions
func GetTerminalSetupMessage() string {
	switch GetOS() {
	case OSLinux:
		return "TIP: Run 'stty -ixon' to enable Ctrl+S and other shortcuts in your terminal"
	case OSWindows:
		return "TIP: For best experience, use Windows Terminal or PowerShell"
	default:
		return ""
	}
}
