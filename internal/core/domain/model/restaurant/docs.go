// Package restaurant holds the read-only catalog data the ordering core consumes:
// restaurants, the products they offer and the canonical product prices that every
// order line is checked against. The catalog is owned elsewhere; nothing in this
// service mutates it.
package restaurant
