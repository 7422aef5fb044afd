package editor

import (
	"bufio"
	"io"
	"net"
	"time"
)

// Key codes the proof editor dispatches on: plain ASCII control
// characters for Enter/Backspace/Tab/Esc, a literal Ctrl-C for the
// interrupt that exits from any state, Ctrl-L to force a redraw, and a
// block of internal (>0xFF, unreachable from a single input byte)
// codes for the arrow/navigation keys a CSI or SS3 sequence decodes to.
const (
	KeyEsc       = 0x1B // Escape
	KeyEnter     = 0x0D // Carriage Return
	KeyBackspace = 0x08 // Backspace
	KeyTab       = 0x09 // Tab
	KeyDelete    = 0x7F // Delete (DEL character)

	KeyCtrlC = 0x03 // Interrupt: exits from any state
	KeyCtrlL = 0x0C // Redraw

	// Internal codes for keys a CSI/SS3 escape sequence decodes to.
	KeyArrowUp    = 0x100
	KeyArrowDown  = 0x101
	KeyArrowLeft  = 0x102
	KeyArrowRight = 0x103
	KeyPageUp     = 0x104
	KeyPageDown   = 0x105
	KeyHome       = 0x106
	KeyEnd        = 0x107
	KeyInsert     = 0x108
	KeyDeleteKey  = 0x109
)

// InputHandler handles keyboard input and escape sequence parsing
type InputHandler struct {
	reader         *bufio.Reader
	readDeadlineIO interface{ SetReadDeadline(time.Time) error }
	debug          bool
}

// NewInputHandler creates a new input handler
func NewInputHandler(input io.Reader) *InputHandler {
	var deadlineIO interface{ SetReadDeadline(time.Time) error }
	if conn, ok := input.(interface{ SetReadDeadline(time.Time) error }); ok {
		deadlineIO = conn
	}

	return &InputHandler{
		reader:         bufio.NewReader(input),
		readDeadlineIO: deadlineIO,
		debug:          false,
	}
}

// readByteWithTimeout reads a single byte with an optional timeout.
//
// NOTE: Known limitation - timeout may not work when data is buffered.
// If data exists in bufio.Reader, ReadByte() returns immediately regardless
// of deadline. Deadline only affects underlying Read() when buffer is empty.
// This is an acceptable trade-off for buffered I/O performance.
func (ih *InputHandler) readByteWithTimeout(timeout time.Duration) (byte, error) {
	if ih.readDeadlineIO != nil {
		if err := ih.readDeadlineIO.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return 0, err
		}
		defer ih.readDeadlineIO.SetReadDeadline(time.Time{})
	}

	return ih.reader.ReadByte()
}

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if netErr, ok := err.(net.Error); ok {
		return netErr.Timeout()
	}
	return false
}

// ReadKey reads a single key, handling escape sequences. Returns an
// integer code (may be > 0xFF for an arrow/navigation key).
func (ih *InputHandler) ReadKey() (int, error) {
	// Read first byte
	b, err := ih.reader.ReadByte()
	if err != nil {
		return 0, err
	}

	// Check for escape sequence
	if b == KeyEsc {
		// Peek ahead to see if this is an escape sequence
		peek, err := ih.reader.Peek(1)
		if err != nil || len(peek) == 0 {
			// Timeout or no data - treat as plain ESC
			return int(KeyEsc), nil
		}

		// Check for escape sequence start
		if peek[0] == '[' {
			// CSI sequence (ESC[)
			return ih.parseCSISequence()
		} else if peek[0] == 'O' {
			// SS3 sequence (ESC O) - used by some terminals for function keys
			return ih.parseSS3Sequence()
		}

		// Plain ESC
		return int(KeyEsc), nil
	}

	// Check for DEL character (0x7F) - map to backspace
	if b == 0x7F {
		return int(KeyBackspace), nil // Treat DEL as backspace
	}

	// Normal character
	return int(b), nil
}

// parseCSISequence parses ANSI CSI escape sequences (ESC[...)
func (ih *InputHandler) parseCSISequence() (int, error) {
	// Read the '[' character
	_, err := ih.reader.ReadByte()
	if err != nil {
		return int(KeyEsc), err
	}

	// Read sequence bytes. CSI sequences arrive in a burst from the terminal,
	// so use a short inter-byte timeout where possible.
	sequence := make([]byte, 0, 10)

	for {
		b, err := ih.readByteWithTimeout(100 * time.Millisecond)
		if err != nil {
			if isTimeoutError(err) {
				break
			}
			break
		}

		sequence = append(sequence, b)

		// Check if this is the final byte (a letter)
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			break
		}
	}

	// Parse the sequence
	if len(sequence) == 0 {
		return int(KeyEsc), nil
	}

	// Get the final character
	final := sequence[len(sequence)-1]

	// Handle common sequences
	switch final {
	case 'A': // Up arrow
		return KeyArrowUp, nil
	case 'B': // Down arrow
		return KeyArrowDown, nil
	case 'C': // Right arrow
		return KeyArrowRight, nil
	case 'D': // Left arrow
		return KeyArrowLeft, nil
	case 'H': // Home
		return KeyHome, nil
	case 'F': // End
		return KeyEnd, nil
	case '~':
		// Sequences ending with ~ (like 5~ for Page Up)
		if len(sequence) >= 2 {
			switch sequence[0] {
			case '1':
				return KeyHome, nil
			case '2':
				return KeyInsert, nil
			case '3':
				return KeyDeleteKey, nil
			case '4':
				return KeyEnd, nil
			case '5':
				return KeyPageUp, nil
			case '6':
				return KeyPageDown, nil
			}
		}
	}

	// Unknown sequence - return ESC
	return int(KeyEsc), nil
}

// parseSS3Sequence parses ANSI SS3 escape sequences (ESC O...)
func (ih *InputHandler) parseSS3Sequence() (int, error) {
	// Read the 'O' character
	_, err := ih.reader.ReadByte()
	if err != nil {
		return int(KeyEsc), err
	}

	// Read the next byte
	b, err := ih.reader.ReadByte()
	if err != nil {
		return int(KeyEsc), err
	}

	// Map SS3 sequences (used by some terminals for arrow keys)
	switch b {
	case 'A': // Up arrow
		return KeyArrowUp, nil
	case 'B': // Down arrow
		return KeyArrowDown, nil
	case 'C': // Right arrow
		return KeyArrowRight, nil
	case 'D': // Left arrow
		return KeyArrowLeft, nil
	case 'H': // Home
		return KeyHome, nil
	case 'F': // End
		return KeyEnd, nil
	}

	// Unknown sequence
	return int(KeyEsc), nil
}

// IsPrintable returns true if the key is a printable character
func IsPrintable(key int) bool {
	return key >= 32 && key < 127 && key != KeyEsc
}
