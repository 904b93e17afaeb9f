package weather

// Point is one 3-hourly forecast sample from the provider.
type Point struct {
	Date        string
	Condition   string
	Description string
	Icon        string
	TempC       float64
	Humidity    float64
	WindSpeed   float64
}

// DayForecast is the one-observation-per-day reduction served to clients,
// including the laundry suitability score derived from the same reading.
type DayForecast struct {
	Date         string
	Condition    string
	Description  string
	TempC        int
	Humidity     float64
	WindSpeed    float64
	Icon         string
	LaundryScore int
}
