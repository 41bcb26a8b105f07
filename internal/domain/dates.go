package domain

import "time"

// DateLayout - единый формат дат во всём приложении
const DateLayout = "2006-01-02"

// ParseDate разбирает дату формата YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ValidDate проверяет строку на соответствие формату YYYY-MM-DD
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today возвращает текущую дату в формате YYYY-MM-DD
func Today() string {
	return time.Now().Format(DateLayout)
}

// MonthPrefix возвращает префикс YYYY-MM- для дат указанного месяца
func MonthPrefix(t time.Time) string {
	return t.Format("2006-01-")
}

// weekday возвращает день недели, где понедельник = 0, воскресенье = 6
func weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// LastWeekRange возвращает границы прошлой недели с воскресенья по субботу
// включительно относительно переданной даты
func LastWeekRange(today time.Time) (start, end string) {
	lastSaturday := today.AddDate(0, 0, -(weekday(today) + 2))
	lastSunday := lastSaturday.AddDate(0, 0, -6)
	return lastSunday.Format(DateLayout), lastSaturday.Format(DateLayout)
}

// nextMonday возвращает ближайший понедельник, не раньше сегодняшнего дня
func nextMonday(today time.Time) time.Time {
	offset := ((1-int(today.Weekday()))%7 + 7) % 7
	return today.AddDate(0, 0, offset)
}

// NextWeekRange возвращает границы следующей недели с понедельника по
// воскресенье включительно
func NextWeekRange(today time.Time) (start, end string) {
	m := nextMonday(today)
	return m.Format(DateLayout), m.AddDate(0, 0, 6).Format(DateLayout)
}

// ReferralWeekRange возвращает окно недели рефералов: семь дней,
// предшествующих ближайшему понедельнику
func ReferralWeekRange(today time.Time) (start, end string) {
	m := nextMonday(today)
	return m.AddDate(0, 0, -7).Format(DateLayout), m.AddDate(0, 0, -1).Format(DateLayout)
}
