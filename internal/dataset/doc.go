// Package dataset lists paired sample directories and checks that the input
// and target sides describe the same samples.
//
// Listings are sorted by full filename so index i addresses the same logical
// sample on both sides; pairing compares basename keys, never extensions.
package dataset
