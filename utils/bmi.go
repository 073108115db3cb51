package utils

import "time"

// CalculateBMI expects height in centimeters and weight in kilograms.
// A missing/zero height yields 0, meaning "no BMI constraint" downstream
// rather than an error.
func CalculateBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	h := heightCm / 100.0 // to meters
	return weightKg / (h * h)
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// CalculateAge returns whole years between birthday and now, counting the
// current year only once the birthday has passed.
func CalculateAge(birthday time.Time) int {
	return AgeAt(birthday, time.Now())
}

func AgeAt(birthday, at time.Time) int {
	age := at.Year() - birthday.Year()
	if at.Month() < birthday.Month() ||
		(at.Month() == birthday.Month() && at.Day() < birthday.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
