package charcode

// controlNames holds the ASCII mnemonic and name of codes 0-31.
var controlNames = [32][2]string{
	{"NUL", "Null"},
	{"SOH", "Start of Heading"},
	{"STX", "Start of Text"},
	{"ETX", "End of Text"},
	{"EOT", "End of Transmission"},
	{"ENQ", "Enquiry"},
	{"ACK", "Acknowledge"},
	{"BEL", "Bell"},
	{"BS", "Backspace"},
	{"HT", "Horizontal Tab"},
	{"LF", "Line Feed"},
	{"VT", "Vertical Tab"},
	{"FF", "Form Feed"},
	{"CR", "Carriage Return"},
	{"SO", "Shift Out"},
	{"SI", "Shift In"},
	{"DLE", "Data Link Escape"},
	{"DC1", "Device Control 1"},
	{"DC2", "Device Control 2"},
	{"DC3", "Device Control 3"},
	{"DC4", "Device Control 4"},
	{"NAK", "Negative Acknowledge"},
	{"SYN", "Synchronous Idle"},
	{"ETB", "End of Transmission Block"},
	{"CAN", "Cancel"},
	{"EM", "End of Medium"},
	{"SUB", "Substitute"},
	{"ESC", "Escape"},
	{"FS", "File Separator"},
	{"GS", "Group Separator"},
	{"RS", "Record Separator"},
	{"US", "Unit Separator"},
}

// ControlName returns the mnemonic and name of an ASCII control code.
// ok is false when code is not a control code.
func ControlName(code int) (abbr, name string, ok bool) {
	switch {
	case code == DEL:
		return "DEL", "Delete", true
	case code >= 0 && code < len(controlNames):
		return controlNames[code][0], controlNames[code][1], true
	default:
		return "", "", false
	}
}

// ControlDescription returns "ABBR (Name)", the form used in control
// character tables, or an empty string for non-control codes.
func ControlDescription(code int) string {
	abbr, name, ok := ControlName(code)
	if !ok {
		return ""
	}
	return abbr + " (" + name + ")"
}
