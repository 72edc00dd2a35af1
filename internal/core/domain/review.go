package domain

import "time"

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 5
)

type Review struct {
	ReviewID  string
	ProductID string
	UserName  string
	Rating    int
	Comment   string
	Date      string
	CreatedAt time.Time
	// Demo marks seed content that is not backed by stored rows.
	Demo bool
}

func ClampRating(r int) int {
	return max(MinRating, min(MaxRating, r))
}

// DemoReviews is the seed content shown for products without stored reviews.
func DemoReviews(productID string) []Review {
	var out []Review
	for _, r := range demoReviews {
		if r.ProductID == productID {
			r.Demo = true
			out = append(out, r)
		}
	}
	return out
}

var demoReviews = []Review{
	{
		ReviewID: "r3", ProductID: "6", UserName: "Carlos B.", Rating: 5,
		Comment: "Qualidade absurda e ainda ajuda o planeta. Vou comprar de outras cores.",
		Date:    "15/02/2024", CreatedAt: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		ReviewID: "r2", ProductID: "1", UserName: "Joana D.", Rating: 4,
		Comment: "Linda, mas achei a modelagem um pouco pequena. Recomendo pegar um tamanho maior.",
		Date:    "12/02/2024", CreatedAt: time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
	},
	{
		ReviewID: "r1", ProductID: "1", UserName: "Maria Silva", Rating: 5,
		Comment: "A melhor camiseta que já comprei! O algodão é incrivelmente macio.",
		Date:    "10/02/2024", CreatedAt: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	},
}
