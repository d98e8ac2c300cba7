package check_delivery_date

// DeliveryDateStatusResponse HTTP response model
type DeliveryDateStatusResponse struct {
	ProductID   string `json:"productId"`
	Date        string `json:"date"`        // YYYY-MM-DD
	DisplayDate string `json:"displayDate"` // DD.MM.YYYY
	Booked      bool   `json:"booked"`
}
