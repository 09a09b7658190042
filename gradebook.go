package stoolwalk

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// GradeBook merges walk results into a JSON grade file, one entry per
// student. Recording under an existing name overwrites that entry; everyone
// else's grades survive the merge.
//
// The book is an explicit, scoped resource rather than a file-system side
// effect:
//
//	book, err := stoolwalk.OpenGradeBook("grades.json")
//	if err != nil {
//		return err
//	}
//	book.Record("ada", assessment.Value())
//	return book.Save()
type GradeBook struct {
	path    string
	entries map[string]any
}

// OpenGradeBook loads the grade file at path, or starts an empty book when
// the file does not exist yet.
func OpenGradeBook(path string) (*GradeBook, error) {
	book := &GradeBook{path: path, entries: make(map[string]any)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return book, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open grade book: %w", err)
	}
	if err := json.Unmarshal(data, &book.entries); err != nil {
		return nil, fmt.Errorf("failed to parse grade book: %w", err)
	}
	return book, nil
}

// Record stores one student's result, replacing any earlier entry under the
// same name.
func (b *GradeBook) Record(student string, result any) {
	b.entries[student] = result
}

// Lookup returns the recorded result for a student. Results read back from
// disk carry JSON's types: numbers come back as float64.
func (b *GradeBook) Lookup(student string) (any, bool) {
	result, ok := b.entries[student]
	return result, ok
}

// Len returns the number of students in the book.
func (b *GradeBook) Len() int {
	return len(b.entries)
}

// Save writes the merged book back to its file.
func (b *GradeBook) Save() error {
	data, err := json.MarshalIndent(b.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode grade book: %w", err)
	}
	if err := os.WriteFile(b.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write grade book: %w", err)
	}
	return nil
}
