package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dusk-indust/seatperm/internal/config"
	"github.com/dusk-indust/seatperm/internal/seating"
)

// noBound disables the upper bound check in askInt.
const noBound = -1

// prompter reads integers from a human, re-asking until the answer parses.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// askInt prints msg and reads lines until one is a non-negative integer no
// larger than bound.
func (p *prompter) askInt(msg string, bound int) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", msg)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, fmt.Errorf("read input: %w", err)
			}
			return 0, fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
		}

		if v, ok := parseBounded(p.in.Text(), bound); ok {
			return v, nil
		}
		if bound == noBound {
			fmt.Fprintln(p.out, "Invalid input. Please enter a positive integer.")
		} else {
			fmt.Fprintf(p.out, "Invalid input. Please enter a positive integer less than or equal to %d\n", bound)
		}
	}
}

// parseBounded reports whether raw is an integer in [0, bound]. A bound of
// noBound only requires a non-negative integer.
func parseBounded(raw string, bound int) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0, false
	}
	if bound != noBound && v > bound {
		return 0, false
	}
	return v, true
}

// promptConfig asks for the search parameters in the order seats, starting
// matches, threshold, display limit and writes them into cfg.
func promptConfig(p *prompter, cfg *config.Config) error {
	seatBound := noBound
	if cfg.MaxSeats > 0 {
		seatBound = cfg.MaxSeats
	}

	seats, err := p.askInt("Enter the number of seats", seatBound)
	if err != nil {
		return err
	}
	starting, err := p.askInt("Enter the number of starting matches", seats)
	if err != nil {
		return err
	}

	thresholdMsg := "Enter the minimum number of matches required to get funded"
	if policy, err := seating.ParsePolicy(cfg.Policy); err == nil && policy == seating.AtMost {
		thresholdMsg = "Enter the maximum number of allowed matches"
	}
	threshold, err := p.askInt(thresholdMsg, seats)
	if err != nil {
		return err
	}
	limit, err := p.askInt("Enter the maximum number of results to display", noBound)
	if err != nil {
		return err
	}

	cfg.Seats = seats
	cfg.StartingMatches = starting
	cfg.Threshold = threshold
	cfg.Limit = limit
	return nil
}
