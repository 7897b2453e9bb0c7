package domain

// CartLine is one cart entry. Identity is the (ProductID, Size, Color) tuple:
// adding the same tuple again increments Quantity, a different size or color
// makes a new line. Price is the unit price snapshot taken at add time.
type CartLine struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
	Quantity  int
	Size      string
	Color     string
}

func (l CartLine) Subtotal() float64 { return l.Price * float64(l.Quantity) }
