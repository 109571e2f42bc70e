package platform

import "strings"

// HomeWindow is the window whose properties skins read search terms from.
const HomeWindow = "Home"

// Builtin formats a Kodi builtin call, quoting arguments that would
// otherwise be split or truncated by the builtin parser.
func Builtin(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = QuoteArg(a)
	}
	return name + "(" + strings.Join(quoted, ",") + ")"
}

// QuoteArg wraps a builtin argument in double quotes when it contains
// characters the builtin parser treats specially.
func QuoteArg(s string) string {
	if !strings.ContainsAny(s, `,"()\`) && strings.TrimSpace(s) == s {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

// SetProperty sets a window property.
func SetProperty(name, value, window string) string {
	return Builtin("SetProperty", name, value, window)
}

// ActivateWindow opens a window by id or name.
func ActivateWindow(window string) string {
	return Builtin("ActivateWindow", window)
}

// SetFocus moves focus to a control in the active window.
func SetFocus(control string) string {
	return Builtin("SetFocus", control)
}

// RunScript launches a script addon with parameters.
func RunScript(addonID string, params ...string) string {
	return Builtin("RunScript", append([]string{addonID}, params...)...)
}

// WindowVisible is the info expression for a visible window.
func WindowVisible(window string) string {
	return "Window.IsVisible(" + window + ")"
}

// ControlHasFocus is the info expression for a focused control.
func ControlHasFocus(control string) string {
	return "Control.HasFocus(" + control + ")"
}
