package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// readLine reads one line, trimmed. If EOF occurs after some input was read,
// the partial line is returned.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetMultiline reads lines until an empty one and joins them with '\n'.
// An empty first line keeps current.
func GetMultiline(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	hint := "(press Enter on an empty line to finish)"
	if current != "" {
		hint = "(press Enter on an empty line to finish, or right away to keep the current text)"
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", prompt, hint); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if err != nil && len(lines) == 0 && current == "" {
				return "", err
			}
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}
	if len(lines) == 0 {
		return current, nil
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// promptText asks for a value showing current as the default.
func promptText(reader *bufio.Reader, w io.Writer, label, current string) (string, error) {
	if current != "" {
		fmt.Fprintf(w, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(w, "%s: ", label)
	}
	s, err := readLine(reader)
	if err != nil {
		return "", err
	}
	if s == "" {
		return current, nil
	}
	return s, nil
}

func promptInt(reader *bufio.Reader, w io.Writer, label string, current int) (int, error) {
	for {
		s, err := promptText(reader, w, label, strconv.Itoa(current))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(w, "Please enter a whole number.")
	}
}

func promptFloat(reader *bufio.Reader, w io.Writer, label string, current float64) (float64, error) {
	for {
		s, err := promptText(reader, w, label, strconv.FormatFloat(current, 'f', -1, 64))
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return f, nil
		}
		fmt.Fprintln(w, "Please enter a number.")
	}
}

func promptBool(reader *bufio.Reader, w io.Writer, label string, current bool) (bool, error) {
	def := "n"
	if current {
		def = "y"
	}
	for {
		s, err := promptText(reader, w, label+" (y/n)", def)
		if err != nil {
			return false, err
		}
		if v, ok := parseYesNo(s); ok {
			return v, nil
		}
		fmt.Fprintln(w, "Please answer y or n.")
	}
}

// promptChoice lists options and accepts either a number or a label that
// parse recognises.
func promptChoice[T ~string](reader *bufio.Reader, w io.Writer, label string, options []T, current T, parse func(string) (T, bool)) (T, error) {
	parts := make([]string, len(options))
	for i, o := range options {
		parts[i] = fmt.Sprintf("%d) %s", i+1, o)
	}
	fmt.Fprintln(w, "  "+strings.Join(parts, "  "))
	for {
		s, err := promptText(reader, w, label, string(current))
		if err != nil {
			return "", err
		}
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		if v, ok := parse(s); ok {
			return v, nil
		}
		fmt.Fprintln(w, "Please pick one of the listed options.")
	}
}

// Confirm asks a yes/no question defaulting to no.
func Confirm(reader *bufio.Reader, w io.Writer, question string) (bool, error) {
	fmt.Fprintf(w, "%s [y/N]: ", question)
	s, err := readLine(reader)
	if err != nil {
		return false, err
	}
	v, ok := parseYesNo(s)
	return ok && v, nil
}

func parseYesNo(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "s", "si", "sí":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
