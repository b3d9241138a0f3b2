package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("no_sql_injection", validateNoSQLInjection)
	_ = Validate.RegisterValidation("time_slot", validateTimeSlot)
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
	}

	lowerValue := strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowerValue, pattern) {
			return false
		}
	}
	return true
}

// validateNoSQLInjection kiểm tra các pattern injection phổ biến
func validateNoSQLInjection(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"$where",
		"$regex",
		"$gt:",
		"$lt:",
		"$ne:",
		"';",
		"--",
		"union select",
		"drop table",
	}

	lowerValue := strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowerValue, pattern) {
			return false
		}
	}
	return true
}

// validateTimeSlot kiểm tra time slot dạng "HH:MM" (giờ 0-23, phút 0-59).
// Chuỗi rỗng hợp lệ — slot sẽ được default "00:00" ở tầng aggregation.
func validateTimeSlot(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return false
	}
	hour, minute := parts[0], parts[1]
	if len(hour) < 1 || len(hour) > 2 || len(minute) != 2 {
		return false
	}
	h, ok := atoiDigits(hour)
	if !ok || h > 23 {
		return false
	}
	m, ok := atoiDigits(minute)
	if !ok || m > 59 {
		return false
	}
	return true
}

// atoiDigits parse chuỗi chỉ gồm chữ số, trả về (giá trị, hợp lệ)
func atoiDigits(s string) (int, bool) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
