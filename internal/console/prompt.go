package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"diningres/internal/metrics"
)

var (
	ErrEmptyInput   = errors.New("empty input")
	ErrNotANumber   = errors.New("not a number")
	ErrBelowMinimum = errors.New("below minimum")
)

// ValidateText trims the input and rejects it when nothing is left.
func ValidateText(input string) (string, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return "", ErrEmptyInput
	}
	return text, nil
}

// ValidateInt parses the trimmed input as a base-10 32-bit integer no smaller
// than minimum. Values outside the 32-bit range count as not a number.
func ValidateInt(input string, minimum int) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 32)
	if err != nil {
		return 0, ErrNotANumber
	}
	if int(n) < minimum {
		return 0, fmt.Errorf("%w: %d", ErrBelowMinimum, minimum)
	}
	return int(n), nil
}

func (c *Console) readLine() (string, error) {
	if c.in.Scan() {
		return c.in.Text(), nil
	}
	if err := c.in.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", io.EOF
}

// promptText re-prompts until a non-blank line is entered.
func (c *Console) promptText(prompt string) (string, error) {
	for {
		c.print(prompt)
		line, err := c.readLine()
		if err != nil {
			return "", err
		}

		text, err := ValidateText(line)
		if err == nil {
			return text, nil
		}
		c.metrics.IncInvalidInput(metrics.InputEmptyText)
		c.println("Please enter a valid input.\n")
	}
}

// promptInt re-prompts until an integer of at least minimum is entered.
func (c *Console) promptInt(prompt string, minimum int) (int, error) {
	for {
		c.print(prompt)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		n, err := ValidateInt(line, minimum)
		switch {
		case err == nil:
			return n, nil
		case errors.Is(err, ErrBelowMinimum):
			c.metrics.IncInvalidInput(metrics.InputBelowMinimum)
			c.printf("Must be at least %d.\n\n", minimum)
		default:
			c.metrics.IncInvalidInput(metrics.InputNotANumber)
			c.println("Invalid input. Please enter a number.\n")
		}
	}
}
