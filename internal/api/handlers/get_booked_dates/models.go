package get_booked_dates

// BookedDatesResponse HTTP response model
type BookedDatesResponse struct {
	ProductID   string   `json:"productId"`
	BookedDates []string `json:"bookedDates"` // YYYY-MM-DD
}
