package delivery_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvdelivery/city"
	"github.com/katalvlaran/lvdelivery/delivery"
)

// BenchmarkDistribute measures a full run on a 30×30 city with the maximum
// number of pizzerias and small capacities.
func BenchmarkDistribute(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	sites := randomSites(r, city.MaxBound, city.MaxBound, city.MaxPizzerias, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		c, err := city.NewCity(city.MaxBound, city.MaxBound, sites)
		if err != nil {
			b.Fatalf("setup NewCity failed: %v", err)
		}
		b.StartTimer()
		_, _ = delivery.Distribute(c)
	}
}
