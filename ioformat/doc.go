// Package ioformat is the external collaborator that sits outside the
// sample-space engine: parsing whitespace-separated facet lists and integer
// sequences, and writing samples back out in the same shape. Nothing here
// decides what a simplicial complex is — that's package ensemble — it only
// moves bytes in and out.
package ioformat
