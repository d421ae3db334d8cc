package server

import (
	"cmp"
	"fmt"
	"slices"
)

// Order is how a list of found words is presented.
type Order string

const (
	OrderNone   Order = "none"
	OrderAlpha  Order = "alpha"
	OrderLength Order = "length"
)

func ParseOrder(s string) (Order, error) {
	switch o := Order(s); o {
	case OrderNone, OrderAlpha, OrderLength:
		return o, nil
	}
	return "", fmt.Errorf("unknown sort order %q; want none, alpha or length", s)
}

// SortWords orders words in place. OrderLength puts the longest words first
// and breaks ties alphabetically.
func SortWords(words []string, o Order) {
	switch o {
	case OrderAlpha:
		slices.Sort(words)
	case OrderLength:
		slices.SortFunc(words, func(a, b string) int {
			if c := cmp.Compare(len(b), len(a)); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})
	}
}
