// Package export renders seating search results as text or JSON.
package export

import (
	"fmt"
	"io"

	"github.com/dusk-indust/seatperm/internal/seating"
)

// NoResultsMessage is printed when no arrangement survives every rotation.
const NoResultsMessage = "No permutations exist for those conditions (always funded)!"

// WriteText prints the identity placement and the first r.Shown arrangements,
// or NoResultsMessage when the search found nothing.
func WriteText(w io.Writer, r *Report) error {
	if r.Total == 0 {
		_, err := fmt.Fprintf(w, "\n%s\n", NoResultsMessage)
		return err
	}

	if _, err := fmt.Fprintf(w, "\nSeats\n%s\n\n", seating.Arrangement(r.Identity)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"First (or all available, if more were requested) %d of %d permutations with %s for all rotations (you don't get funded)\n",
		r.Shown, r.Total, r.Policy.Describe(r.Threshold)); err != nil {
		return err
	}
	for _, a := range r.Arrangements {
		if _, err := fmt.Fprintln(w, seating.Arrangement(a)); err != nil {
			return err
		}
	}
	return nil
}
