package assemble

// OrdinalSuffix returns the English ordinal suffix for a day of the month:
// 1st, 2nd, 3rd, 4th … 11th, 12th, 13th … 21st, 22nd, 23rd … 31st.
func OrdinalSuffix(day int) string {
	if d := day % 100; d >= 11 && d <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
