// Package sequence derives new word sequences from existing ones.
// The input slice is never modified, every operation returns a fresh slice.
package sequence

import (
	"github.com/pkg/errors"
)

// ErrOutOfBounds is returned when a sequence is shorter than an operation requires.
var ErrOutOfBounds = errors.New("sequence out of bounds")

func requireLen(op string, seq []string, minLen int) error {
	if len(seq) < minLen {
		return errors.Wrapf(ErrOutOfBounds, "%s requires at least %d elements, got %d", op, minLen, len(seq))
	}
	return nil
}

// FirstTwo returns the first two elements of seq in their original order.
func FirstTwo(seq []string) ([]string, error) {
	if err := requireLen("first two", seq, 2); err != nil {
		return nil, err
	}
	return []string{seq[0], seq[1]}, nil
}

// LastTwo returns the last two elements of seq in their original order.
func LastTwo(seq []string) ([]string, error) {
	if err := requireLen("last two", seq, 2); err != nil {
		return nil, err
	}
	n := len(seq)
	return []string{seq[n-2], seq[n-1]}, nil
}

// RotateFirstTwoToEnd returns seq with its first two elements moved to the end.
func RotateFirstTwoToEnd(seq []string) ([]string, error) {
	if err := requireLen("rotate first two", seq, 2); err != nil {
		return nil, err
	}
	items := make([]string, 0, len(seq))
	items = append(items, seq[2:]...)
	items = append(items, seq[:2]...)
	return items, nil
}

// InsertBeforeLast returns seq with element placed right before its last element.
func InsertBeforeLast(seq []string, element string) ([]string, error) {
	if err := requireLen("insert before last", seq, 1); err != nil {
		return nil, err
	}
	n := len(seq)
	items := make([]string, 0, n+1)
	items = append(items, seq[:n-1]...)
	items = append(items, element, seq[n-1])
	return items, nil
}
