package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wellywell/plaquexpress/internal/types"
)

func TestTotalPrice(t *testing.T) {

	testCases := []struct {
		plateType types.PlateType
		mounting  types.Mounting
		result    int
	}{
		{types.Plate3D, types.MountingTape, 1250},
		{types.Plate3D, types.MountingHoles, 1200},
		{types.PlateVinyl, types.MountingTape, 850},
		{types.PlateVinyl, types.MountingHoles, 800},
	}

	for _, tc := range testCases {
		t.Run(string(tc.plateType)+"/"+string(tc.mounting), func(t *testing.T) {
			result := TotalPrice(tc.plateType, tc.mounting)
			assert.Equal(t, tc.result, result)
			assert.Equal(t, BasePrice(tc.plateType)+Surcharge(tc.mounting), result)
			assert.Equal(t, result, TotalPrice(tc.plateType, tc.mounting))

			q := NewQuote(tc.plateType, tc.mounting)
			assert.Equal(t, result, q.Total)
			assert.Equal(t, q.BasePrice+q.Surcharge, q.Total)
		})
	}
}
