package catalog

import "math"

// NextAverage folds one new rating into a running mean, returning the new
// average rounded to two decimal places and the new sample count. The
// stored average must always be recomputable this way; it is never reset
// independently of the count.
func NextAverage(average float64, usersRated int, rating float64) (float64, int) {
	n := usersRated + 1
	avg := (average*float64(usersRated) + rating) / float64(n)
	return math.Round(avg*100) / 100, n
}
