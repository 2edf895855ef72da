package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// MonthBounds retorna o primeiro instante e o último instante do mês
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	return start, end
}

// spanishMonths são as abreviações usadas nos rótulos da série histórica
var spanishMonths = [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// MonthLabel formata um mês como rótulo curto em espanhol, ex: "ene 25"
func MonthLabel(year int, month time.Month) string {
	return spanishMonths[month-1] + " " + time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("06")
}
