package format

// Writer accumulates formatted output and tracks line state.
type Writer struct {
	buf         []byte
	atLineStart bool
}

func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint), atLineStart: true}
}

func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) Empty() bool { return len(w.buf) == 0 }

func (w *Writer) AtLineStart() bool { return w.atLineStart }

func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.buf = append(w.buf, s...)
	w.atLineStart = s[len(s)-1] == '\n'
}

// Space writes a single space unless the output already ends in whitespace.
func (w *Writer) Space() {
	if len(w.buf) == 0 {
		return
	}
	last := w.buf[len(w.buf)-1]
	if last == ' ' || last == '\n' {
		return
	}
	w.buf = append(w.buf, ' ')
}

// Newline ends the current line unless output is empty or already there.
func (w *Writer) Newline() {
	if len(w.buf) > 0 && w.buf[len(w.buf)-1] != '\n' {
		w.buf = append(w.buf, '\n')
	}
	w.atLineStart = true
}

// BlankLines ends the current line and adds n empty lines.
func (w *Writer) BlankLines(n int) {
	if len(w.buf) == 0 {
		return
	}
	w.Newline()
	for range n {
		w.buf = append(w.buf, '\n')
	}
}
