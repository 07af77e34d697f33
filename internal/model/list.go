package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrOutOfRange = errors.New("index out of range")
	ErrBadIndex   = errors.New("not a valid index")
	ErrBadMove    = errors.New("move must be written as src;dst")
)

// List holds the ordered todo items. Order is display and storage order.
type List struct {
	Items []string
}

// NewList creates a List with the given items.
func NewList(items ...string) *List {
	l := &List{Items: make([]string, 0, len(items))}
	l.Items = append(l.Items, items...)
	return l
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.Items)
}

// Append adds an item at the end of the list.
func (l *List) Append(text string) {
	l.Items = append(l.Items, text)
}

// Insert places an item at the 0-based position at.
// Positions past the end append.
func (l *List) Insert(at int, text string) {
	if at < 0 {
		at = 0
	}
	if at >= len(l.Items) {
		l.Append(text)
		return
	}
	l.Items = append(l.Items, "")
	copy(l.Items[at+1:], l.Items[at:])
	l.Items[at] = text
}

// Remove deletes the item at the 1-based position index.
func (l *List) Remove(index int) error {
	if index < 1 || index > len(l.Items) {
		return fmt.Errorf("remove %d: %w", index, ErrOutOfRange)
	}
	l.Items = append(l.Items[:index-1], l.Items[index:]...)
	return nil
}

// Move takes the item at 1-based src out of the list and inserts it at
// 1-based dst. Indices after src shift before the insert, so moving 2 to 4
// in [A B C D] gives [A C D B].
func (l *List) Move(src, dst int) error {
	n := len(l.Items)
	if src < 1 || src > n || dst < 1 || dst > n {
		return fmt.Errorf("move %d;%d: %w", src, dst, ErrOutOfRange)
	}
	item := l.Items[src-1]
	l.Items = append(l.Items[:src-1], l.Items[src:]...)
	l.Insert(dst-1, item)
	return nil
}

// ParseIndex parses a 1-based item index typed by the user.
func ParseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%q: %w", s, ErrBadIndex)
	}
	return n, nil
}

// ParseMove parses a "src;dst" move specification.
func ParseMove(s string) (src, dst int, err error) {
	parts := strings.Split(s, ";")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrBadMove)
	}
	if src, err = ParseIndex(parts[0]); err != nil {
		return 0, 0, err
	}
	if dst, err = ParseIndex(parts[1]); err != nil {
		return 0, 0, err
	}
	return src, dst, nil
}
