// Package world defines the driver side of a ziptie: anything that emits a
// fixed-length activity vector per time step and accepts an action back.
//
// Grid1D is a small reference world used by the command-line demo.
package world
