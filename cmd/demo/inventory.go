package main

import (
	"math"

	"github.com/roach88/expect"
)

// Grade is a shelf quality level.
type Grade int

const (
	Standard Grade = iota
	Select
	Premium
)

var _ = expect.Enum(map[Grade]string{
	Standard: "Standard",
	Select:   "Select",
	Premium:  "Premium",
})

// Item is one stocked product.
type Item struct {
	SKU   string
	Grade Grade
	Price float64
}

// Restock returns the quantity per SKU after adding delivered to stock.
func Restock(stock map[string]int, delivered []string) map[string]int {
	out := make(map[string]int, len(stock))
	for sku, qty := range stock {
		out[sku] = qty
	}
	for _, sku := range delivered {
		out[sku]++
	}
	return out
}

// Grades returns the distinct grades present in items.
func Grades(items []Item) expect.Set[Grade] {
	var s expect.Set[Grade]
	for _, it := range items {
		s.Insert(it.Grade)
	}
	return s
}

// Upgrade moves an item one grade up, capped at Premium, and adds 20% to
// its price.
func Upgrade(it Item) Item {
	if it.Grade < Premium {
		it.Grade++
	}
	it.Price = math.Round(it.Price*1.2*100) / 100
	return it
}

var _ = expect.Examples(func() {
	expect.Equal(
		Restock(map[string]int{"apple": 2}, []string{"pear", "apple", "pear"}),
		map[string]int{"apple": 3, "pear": 2},
	)
	expect.Equal(Restock(nil, nil), map[string]int{})

	items := []Item{{"apple", Select, 1.5}, {"pear", Standard, 2}, {"fig", Select, 4}}
	expect.Equal(Grades(items), expect.NewSet(Standard, Select))

	up := Upgrade(Item{"fig", Select, 4})
	expect.Equal(up, Item{"fig", Premium, 4.8})
	expect.Within(up.Price, 4.8, 0.001)
	expect.Equal(Upgrade(Item{"fig", Premium, 10}).Grade, Premium)
})
