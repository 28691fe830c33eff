package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/plaquexpress/internal/types"
)

func validDraft() types.OrderDraft {
	return types.OrderDraft{
		PlateType:      types.Plate3D,
		VehicleType:    types.VehicleCar,
		PlateShape:     types.ShapeStandard,
		Dimensions:     types.Dimensions{Width: 52, Height: 11},
		PlateNumber:    "1234 ZU05",
		MountingOption: types.MountingTape,
		FullName:       "Jean Dupont",
		Phone:          "+230 5712 3456",
		Address:        "Royal Road, Curepipe",
		TotalPrice:     1250,
	}
}

func TestDraft(t *testing.T) {

	testCases := []struct {
		name   string
		modify func(d *types.OrderDraft)
		field  string
	}{
		{"valid", func(d *types.OrderDraft) {}, ""},
		{"valid vinyl holes", func(d *types.OrderDraft) {
			d.PlateType = types.PlateVinyl
			d.MountingOption = types.MountingHoles
			d.TotalPrice = 800
		}, ""},
		{"unknown plate type", func(d *types.OrderDraft) { d.PlateType = "gold" }, "plateType"},
		{"unknown vehicle", func(d *types.OrderDraft) { d.VehicleType = "truck" }, "vehicleType"},
		{"unknown shape", func(d *types.OrderDraft) { d.PlateShape = "round" }, "plateShape"},
		{"zero width", func(d *types.OrderDraft) { d.Dimensions.Width = 0 }, "dimensions"},
		{"negative height", func(d *types.OrderDraft) { d.Dimensions.Height = -1 }, "dimensions"},
		{"blank plate", func(d *types.OrderDraft) { d.PlateNumber = "  " }, "plateNumber"},
		{"only symbols", func(d *types.OrderDraft) { d.PlateNumber = "!!--" }, "plateNumber"},
		{"plate too long", func(d *types.OrderDraft) { d.PlateNumber = "ABCDEFGHIJ" }, "plateNumber"},
		{"plate long before stripping", func(d *types.OrderDraft) { d.PlateNumber = "ab--12--34!!" }, ""},
		{"plate padded with spaces", func(d *types.OrderDraft) { d.PlateNumber = "  AB1234567  " }, ""},
		{"plate too long after trim", func(d *types.OrderDraft) { d.PlateNumber = " AB12345678" }, "plateNumber"},
		{"unknown mounting", func(d *types.OrderDraft) { d.MountingOption = "glue" }, "mountingOption"},
		{"blank name", func(d *types.OrderDraft) { d.FullName = " " }, "fullName"},
		{"blank phone", func(d *types.OrderDraft) { d.Phone = "" }, "phone"},
		{"phone letters", func(d *types.OrderDraft) { d.Phone = "5712abcd" }, "phone"},
		{"phone too short", func(d *types.OrderDraft) { d.Phone = "57 12" }, "phone"},
		{"phone too long", func(d *types.OrderDraft) { d.Phone = "+230 5712 3456 7890 12" }, "phone"},
		{"blank address", func(d *types.OrderDraft) { d.Address = "" }, "address"},
		{"wrong total", func(d *types.OrderDraft) { d.TotalPrice = 1200 }, "totalPrice"},
		{"total ignores surcharge", func(d *types.OrderDraft) {
			d.MountingOption = types.MountingHoles
		}, "totalPrice"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.modify(&d)

			err := Draft(&d)
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tc.field, fieldErr.Field)
		})
	}
}

func TestSettingsUpdate(t *testing.T) {

	str := func(s string) *string { return &s }

	testCases := []struct {
		name   string
		update types.SettingsUpdate
		field  string
	}{
		{"empty update", types.SettingsUpdate{}, ""},
		{"valid email", types.SettingsUpdate{EmailAddress: str("orders@plaquexpress.mu")}, ""},
		{"clear email", types.SettingsUpdate{EmailAddress: str("")}, ""},
		{"bad email", types.SettingsUpdate{EmailAddress: str("not-an-email")}, "email_address"},
		{"named email", types.SettingsUpdate{EmailAddress: str("Shop <orders@plaquexpress.mu>")}, "email_address"},
		{"valid number", types.SettingsUpdate{WhatsAppNumber: str("+23057123456")}, ""},
		{"number without plus", types.SettingsUpdate{WhatsAppNumber: str("23057123456")}, ""},
		{"clear number", types.SettingsUpdate{WhatsAppNumber: str("")}, ""},
		{"number with spaces", types.SettingsUpdate{WhatsAppNumber: str("+230 5712 3456")}, "whatsapp_number"},
		{"number too short", types.SettingsUpdate{WhatsAppNumber: str("+12345")}, "whatsapp_number"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := SettingsUpdate(&tc.update)
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tc.field, fieldErr.Field)
		})
	}
}
