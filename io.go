package main

import (
	"bufio"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

const maxWidth = 79

// wrapWriteLn prints text broken at spaces so no line exceeds maxWidth runes.
func wrapWriteLn(s *Session, text string) {
	for utf8.RuneCountInString(text) > maxWidth {
		runes := []rune(text)
		spacePos := maxWidth
		for spacePos > 0 && runes[spacePos] != ' ' {
			spacePos--
		}
		if spacePos == 0 {
			spacePos = maxWidth
		}
		outPrintln(s, string(runes[:spacePos]))
		text = strings.TrimLeft(string(runes[spacePos:]), " ")
	}
	outPrintln(s, text)
}

// runLoop reads and plays lines until the player leaves.
func runLoop(s *Session) {
	wrapWriteLn(s, s.Look())
	for s.IsPlaying {
		line := customReadLn(s, "> ")
		wrapWriteLn(s, s.Execute(line))
	}
}

func (s *Session) bufferedReader() *bufio.Reader {
	if s.reader == nil {
		s.reader = bufio.NewReader(s.In)
	}
	return s.reader
}

// readBuffered reads one line without a terminal. A failed read with nothing
// buffered, end of input included, reads as exit.
func readBuffered(s *Session) string {
	line, err := s.bufferedReader().ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		outPrintln(s)
		return "exit"
	}
	return line
}

// customReadLn reads one line. On a terminal it runs a small raw-mode editor
// with history; otherwise it reads buffered input. End of input or a dead
// terminal reads as exit.
func customReadLn(s *Session, prompt string) string {
	outPrint(s, prompt)

	f, isFile := s.In.(*os.File)
	if s.IsHeadless || !isFile || !term.IsTerminal(int(f.Fd())) {
		return readBuffered(s)
	}

	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return readBuffered(s)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	var lineRunes []rune
	histIdx := s.HistoryCount

	for {
		buf := make([]byte, 4)
		n, err := f.Read(buf)
		if err != nil || n == 0 {
			if len(lineRunes) == 0 {
				outPrint(s, "exit\r\n")
				return "exit"
			}
			outPrint(s, "\r\n")
			return string(lineRunes)
		}
		b := buf[0]

		switch {
		case b == '\r' || b == '\n':
			outPrint(s, "\r\n")
			line := string(lineRunes)
			s.remember(line)
			return line

		case b == '\x04': // Ctrl-D
			outPrint(s, "exit\r\n")
			return "exit"

		case b == '\x7f' || b == '\x08': // Backspace / DEL
			if len(lineRunes) > 0 {
				lineRunes = lineRunes[:len(lineRunes)-1]
				outPrint(s, "\b \b")
			}

		case b == '\x1b': // arrow keys arrive as ESC [ A/B
			buf2 := make([]byte, 2)
			n2, _ := f.Read(buf2)
			if n2 != 2 || buf2[0] != '[' {
				continue
			}
			switch buf2[1] {
			case 'A':
				if histIdx > 0 {
					erase(s, lineRunes)
					histIdx--
					lineRunes = []rune(s.History[histIdx%MaxHistory])
					outPrint(s, string(lineRunes))
				}
			case 'B':
				if histIdx < s.HistoryCount {
					erase(s, lineRunes)
					histIdx++
					lineRunes = nil
					if histIdx < s.HistoryCount {
						lineRunes = []rune(s.History[histIdx%MaxHistory])
					}
					outPrint(s, string(lineRunes))
				}
			}

		default:
			if b >= ' ' {
				r, _ := utf8.DecodeRune(buf[:n])
				if r != utf8.RuneError {
					lineRunes = append(lineRunes, r)
					outPrint(s, string(r))
				}
			}
		}
	}
}

func erase(s *Session, line []rune) {
	for range line {
		outPrint(s, "\b \b")
	}
}

// remember appends line to the history ring, skipping blanks and repeats.
func (s *Session) remember(line string) {
	if line == "" {
		return
	}
	if s.HistoryCount > 0 && s.History[(s.HistoryCount-1)%MaxHistory] == line {
		return
	}
	s.History[s.HistoryCount%MaxHistory] = line
	s.HistoryCount++
}
