package divitrek

import "fmt"

// Percent represents a ratio as a percentage value (0.05 prints as "5.00%").
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p)*100)
}

func (p Percent) SignedString() string {
	return fmt.Sprintf("%+.2f%%", float64(p)*100)
}
