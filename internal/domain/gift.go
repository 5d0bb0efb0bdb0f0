package domain

// Gift is a priced item given by one person to another.
// Giver and Recipient are references; the gift owns neither.
type Gift struct {
	Giver     *Person
	Recipient *Person
	Name      string
	Price     float64
}

// GiftLine is the display form of a received gift.
type GiftLine struct {
	Name  string  `json:"name"`
	Giver string  `json:"giver"`
	Price float64 `json:"price"`
}

// Line returns the display form of the gift.
func (g *Gift) Line() GiftLine {
	giver := ""
	if g.Giver != nil {
		giver = g.Giver.Name
	}
	return GiftLine{
		Name:  g.Name,
		Giver: giver,
		Price: g.Price,
	}
}
