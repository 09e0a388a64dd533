package models

// Haftanın günleri. Değerler tabloya olduğu gibi yazılır ve
// public sayfada aynı token ile gösterilir.
const (
	DayMonday    = "MONDAY"
	DayTuesday   = "TUESDAY"
	DayWednesday = "WEDNESDAY"
	DayThursday  = "THURSDAY"
	DayFriday    = "FRIDAY"
	DaySaturday  = "SATURDAY"
	DaySunday    = "SUNDAY"
)

// Weekdays gün tokenlarının doğrulama için sabit listesi.
var Weekdays = []string{
	DayMonday, DayTuesday, DayWednesday, DayThursday,
	DayFriday, DaySaturday, DaySunday,
}

// BusinessHour bir kartvizitin tek bir gün için çalışma saati satırıdır.
// Aynı gün için birden fazla satıra izin verilir; satırlar yalnızca
// kartvizitin bir revizyonu olarak yaşar, bağımsız güncellenmez.
type BusinessHour struct {
	BaseModel
	VCardID   uint   `gorm:"index;not null" json:"vcardId"`
	Day       string `gorm:"type:varchar(10);not null" json:"day"`
	OpenTime  string `gorm:"type:varchar(5)" json:"openTime"`  // "09:00" biçiminde, boş olabilir
	CloseTime string `gorm:"type:varchar(5)" json:"closeTime"` // "17:00" biçiminde, boş olabilir
	IsClosed  bool   `gorm:"default:false" json:"isClosed"`
}

// IsValidWeekday verilen tokenın yedi günden biri olup olmadığını kontrol eder.
func IsValidWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
