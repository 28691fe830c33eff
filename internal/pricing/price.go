package pricing

import "github.com/wellywell/plaquexpress/internal/types"

// Prices are whole Mauritian rupees.
const (
	Price3D       = 1200
	PriceVinyl    = 800
	TapeSurcharge = 50
)

type Quote struct {
	BasePrice int `json:"basePrice"`
	Surcharge int `json:"surcharge"`
	Total     int `json:"total"`
}

func BasePrice(plateType types.PlateType) int {
	if plateType == types.Plate3D {
		return Price3D
	}
	return PriceVinyl
}

func Surcharge(mounting types.Mounting) int {
	if mounting == types.MountingTape {
		return TapeSurcharge
	}
	return 0
}

func TotalPrice(plateType types.PlateType, mounting types.Mounting) int {
	return BasePrice(plateType) + Surcharge(mounting)
}

func NewQuote(plateType types.PlateType, mounting types.Mounting) Quote {
	base, extra := BasePrice(plateType), Surcharge(mounting)
	return Quote{BasePrice: base, Surcharge: extra, Total: base + extra}
}
