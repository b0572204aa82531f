package domain

// Line is one product entry in the cart. Title is the identity key: two
// lines with equal title are the same product.
type Line struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}

// Cart is an ordered sequence of lines, insertion order = first-added order.
// Title is unique across the sequence; AddOrIncrement enforces that.
type Cart []Line

// AddOrIncrement merges one unit of the given product into the cart. An
// existing line with the same title gains exactly one unit and keeps its
// original price and image. Otherwise a new line with quantity 1 is
// appended. A missing or negative stored quantity counts as zero before the
// increment, so a damaged record never produces a damaged total.
func (c Cart) AddOrIncrement(title string, price float64, image string) Cart {
	for i := range c {
		if c[i].Title == title {
			q := c[i].Quantity
			if q < 0 {
				q = 0
			}
			c[i].Quantity = q + 1
			return c
		}
	}
	return append(c, Line{
		Title:    title,
		Price:    price,
		Image:    image,
		Quantity: 1,
	})
}

// Total is the number of units across all lines. Lines with a missing or
// negative quantity count as zero.
func (c Cart) Total() int {
	total := 0
	for _, l := range c {
		if l.Quantity > 0 {
			total += l.Quantity
		}
	}
	return total
}
