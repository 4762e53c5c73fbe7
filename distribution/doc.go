// Package distribution evaluates the Gaussian densities used to score a
// row against the statistics of a class.
package distribution
