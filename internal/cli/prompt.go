package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// readLine prints a prompt and returns the next trimmed input line.
// io.EOF is returned when input runs out.
func (a *App) readLine(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(a.in.Text()), nil
}

// readFloat re-prompts until a number within [min, max] is entered.
func (a *App) readFloat(prompt string, min, max float64) (float64, error) {
	for {
		line, err := a.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(a.out, "Invalid input. Please enter a number.")
			continue
		}
		if v < min || v > max {
			fmt.Fprintf(a.out, "Please enter a number between %g and %g.\n", min, max)
			continue
		}
		return v, nil
	}
}

// readInt re-prompts until a whole number within [min, max] is entered.
func (a *App) readInt(prompt string, min, max int) (int, error) {
	for {
		line, err := a.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(a.out, "Invalid input. Please enter a whole number.")
			continue
		}
		if v < min || v > max {
			fmt.Fprintf(a.out, "Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return v, nil
	}
}

// readOption lists numbered options and re-prompts until one is selected.
func (a *App) readOption(label string, options []string) (string, error) {
	fmt.Fprintf(a.out, "\n%s:\n", label)
	for i, opt := range options {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, opt)
	}
	for {
		line, err := a.readLine(fmt.Sprintf("Select (1-%d): ", len(options)))
		if err != nil {
			return "", err
		}
		idx, err := strconv.Atoi(line)
		if err != nil || idx < 1 || idx > len(options) {
			fmt.Fprintln(a.out, "Invalid choice.")
			continue
		}
		return options[idx-1], nil
	}
}

// readDate re-prompts until a YYYY-MM-DD date (or empty for today) is
// entered.
func (a *App) readDate(prompt string) (time.Time, error) {
	for {
		line, err := a.readLine(prompt)
		if err != nil {
			return time.Time{}, err
		}
		d, err := sessionDate(line)
		if err != nil {
			fmt.Fprintln(a.out, "Invalid date format. Please use YYYY-MM-DD.")
			continue
		}
		return d, nil
	}
}
