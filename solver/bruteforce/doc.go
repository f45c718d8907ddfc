// Package bruteforce provides an exhaustive minimum set cover solver. It
// tries every combination of entries in order of increasing size and
// returns the first that covers all uncovered elements. It is exponential in
// the number of entries and serves as a reference for small instances.
package bruteforce
