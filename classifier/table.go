package classifier

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-reviewpulse/types"
)

// ParseReviews reads a CSV table into reviews. The table must have a
// "review" column; an "id" column is optional and any other columns are
// ignored. Rows with no id get their 1-based position. Header matching is
// case-insensitive.
func ParseReviews(r io.Reader) ([]types.Review, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, types.ErrMissingReview
	}
	if err != nil {
		return nil, fmt.Errorf("reading table header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	reviewCol, idCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "review":
			if reviewCol == -1 {
				reviewCol = i
			}
		case "id":
			if idCol == -1 {
				idCol = i
			}
		}
	}
	if reviewCol == -1 {
		return nil, types.ErrMissingReview
	}

	var reviews []types.Review
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading table row %d: %w", row+1, err)
		}
		row++

		review := types.Review{ID: strconv.Itoa(row)}
		if idCol >= 0 && idCol < len(record) && strings.TrimSpace(record[idCol]) != "" {
			review.ID = strings.TrimSpace(record[idCol])
		}
		if reviewCol < len(record) {
			review.Text = strings.TrimSpace(record[reviewCol])
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}
