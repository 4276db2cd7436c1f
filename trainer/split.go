package trainer

import (
	"fmt"
	"math"
	"math/rand"
)

// Split shuffles n row indices with a seeded source and cuts off the test share.
// The same n, fraction and seed always give the same partitions.
func Split(n int, testFraction float64, seed int64) (train []int, test []int, err error) {
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, fmt.Errorf("test fraction must be between 0 and 1, got %v", testFraction)
	}
	nTest := int(math.Ceil(float64(n) * testFraction))
	if nTest >= n {
		return nil, nil, fmt.Errorf("%d rows leave nothing to train on with test fraction %v", n, testFraction)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	return perm[nTest:], perm[:nTest], nil
}
