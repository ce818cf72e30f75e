package dtlserrors

import "fmt"

// we do no allocation on error returning path,
// so all errors are completely static

type Error struct {
	fatal bool
	code  int
	text  string
}

func (e *Error) Error() string {
	if e.fatal {
		return fmt.Sprintf("reassembly (fatal): %d %s", e.code, e.text)
	}
	return fmt.Sprintf("reassembly (warning): %d %s", e.code, e.text)
}

func NewFatal(code int, text string) error {
	return &Error{
		fatal: true,
		code:  code,
		text:  text,
	}
}

func NewWarning(code int, text string) error {
	return &Error{
		fatal: false,
		code:  code,
		text:  text,
	}
}

var WarnMessageTooLong = NewWarning(-601, "handshake message declares length over the reassembly limit")
var WarnFragmentHeaderMismatch = NewWarning(-602, "handshake message fragment has different type or length than received before")
var WarnFragmentBeyondMessage = NewWarning(-603, "handshake message fragment extends beyond declared message length")
