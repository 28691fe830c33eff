package notify

import (
	"fmt"

	"github.com/wellywell/plaquexpress/internal/sender"
	"github.com/wellywell/plaquexpress/internal/types"
)

func EmailMessage(s types.OrderSummary) sender.Message {
	return sender.Message{
		Subject: fmt.Sprintf("New Order: %s", s.OrderNumber),
		Body: fmt.Sprintf(`New PlaqueXpress Order Received!

Order Number: %s
Customer: %s
Phone: %s
Plate Number: %s
Vehicle Type: %s
Plate Type: %s
Total: Rs %d

Login to view full details.`,
			s.OrderNumber, s.CustomerName, s.CustomerPhone, s.PlateNumber,
			s.VehicleType, s.PlateType, s.TotalPrice),
	}
}

func WhatsAppMessage(s types.OrderSummary) sender.Message {
	return sender.Message{
		Body: fmt.Sprintf(`🔔 *New PlaqueXpress Order*

📋 Order: %s
👤 Customer: %s
📞 Phone: %s
🚗 Plate: %s
🚙 Vehicle: %s
🎨 Type: %s
💰 Total: Rs %d`,
			s.OrderNumber, s.CustomerName, s.CustomerPhone, s.PlateNumber,
			s.VehicleType, s.PlateType, s.TotalPrice),
	}
}
