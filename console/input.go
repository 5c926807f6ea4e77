/*
input.go - Validated console input helpers

PURPOSE:
  Every value the menu needs is read through one of these helpers. Each
  helper prompts, reads one trimmed line, and on invalid input prints a
  failure-specific message and prompts again. Malformed input is fully
  absorbed by the retry loop; it never surfaces as an error.

  The only error a helper returns is io.EOF when the input source is
  exhausted, so a closed stdin (or a finished test script) unwinds the
  menu cleanly instead of spinning.

LEXICAL RULES:
  IsInteger: non-empty, ASCII digits only.
  IsFloat:   non-empty, digits plus at most one '.', and not just ".".
             No signs, no exponents, '.' is the only decimal separator.

SEE ALSO:
  - menu.go: The only caller
*/
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// LEXICAL VALIDATORS
// =============================================================================

// IsInteger reports whether s is a non-empty string of ASCII digits.
func IsInteger(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsFloat reports whether s is a non-empty string of ASCII digits with
// at most one decimal point, and not the decimal point alone.
func IsFloat(s string) bool {
	if s == "" || s == "." {
		return false
	}
	seenPoint := false
	for _, c := range []byte(s) {
		if c >= '0' && c <= '9' {
			continue
		}
		if c == '.' && !seenPoint {
			seenPoint = true
			continue
		}
		return false
	}
	return true
}

// =============================================================================
// READER
// =============================================================================

// Reader reads validated values line by line. Prompts and error
// messages go to out; input comes from the wrapped scanner.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// line reads one line, trimmed of surrounding whitespace.
// Returns io.EOF when the input source is exhausted.
func (r *Reader) line() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}

// NonEmptyString prompts until a non-empty trimmed line is entered.
func (r *Reader) NonEmptyString(prompt string) (string, error) {
	for {
		fmt.Fprint(r.out, prompt)
		s, err := r.line()
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		fmt.Fprintln(r.out, "Ошибка: строка не может быть пустой. Попробуйте снова.")
	}
}

// PositiveDecimal prompts until the input parses to a number strictly
// in (0, 1000000].
func (r *Reader) PositiveDecimal(prompt string) (decimal.Decimal, error) {
	for {
		fmt.Fprint(r.out, prompt)
		s, err := r.line()
		if err != nil {
			return decimal.Zero, err
		}
		if !IsFloat(s) {
			fmt.Fprint(r.out, "Ошибка! Введите положительное число до 1000000 (разделитель - точка): ")
			continue
		}
		num, err := decimal.NewFromString(s)
		if err != nil {
			fmt.Fprint(r.out, "Ошибка! Введите положительное число до 1000000 (разделитель - точка): ")
			continue
		}
		switch {
		case !num.IsPositive():
			fmt.Fprint(r.out, "Ошибка! Введите положительное число больше 0: ")
		case num.GreaterThan(decimal.NewFromInt(1_000_000)):
			fmt.Fprint(r.out, "Ошибка! Введите число не больше 1000000: ")
		default:
			return num, nil
		}
	}
}

// NonNegativeDecimal prompts until the input parses to a number in
// [0, 100].
func (r *Reader) NonNegativeDecimal(prompt string) (decimal.Decimal, error) {
	for {
		fmt.Fprint(r.out, prompt)
		s, err := r.line()
		if err != nil {
			return decimal.Zero, err
		}
		if !IsFloat(s) {
			fmt.Fprint(r.out, "Ошибка! Введите неотрицательное число до 100 (разделитель - точка): ")
			continue
		}
		num, err := decimal.NewFromString(s)
		if err != nil {
			fmt.Fprint(r.out, "Ошибка! Введите неотрицательное число до 100 (разделитель - точка): ")
			continue
		}
		switch {
		case num.IsNegative():
			fmt.Fprint(r.out, "Ошибка! Введите неотрицательное число: ")
		case num.GreaterThan(decimal.NewFromInt(100)):
			fmt.Fprint(r.out, "Ошибка! Введите число не больше 100: ")
		default:
			return num, nil
		}
	}
}

// MenuChoice prompts until the input is an all-digit integer inside
// [low, high].
func (r *Reader) MenuChoice(prompt string, low, high int) (int, error) {
	for {
		fmt.Fprint(r.out, prompt)
		s, err := r.line()
		if err != nil {
			return 0, err
		}
		if s == "" {
			fmt.Fprintf(r.out, "Ошибка: введите число от %d до %d.\n", low, high)
			continue
		}
		if !IsInteger(s) {
			fmt.Fprintln(r.out, "Ошибка: введите целое число без букв и других символов.")
			continue
		}
		val, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(r.out, "Ошибка: введите корректное целое число.")
			continue
		}
		if val < low || val > high {
			fmt.Fprintf(r.out, "Ошибка: число должно быть в диапазоне от %d до %d.\n", low, high)
			continue
		}
		return val, nil
	}
}
