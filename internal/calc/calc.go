// Package calc provides the pure health arithmetic: BMI, BMR, TDEE and
// daily calorie targets. Functions here never touch storage.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidMeasurement = errors.New("invalid measurement")

// BMI category names, ordered by increasing BMI.
const (
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"
)

// activityMultipliers maps activity levels to TDEE multipliers.
var activityMultipliers = map[string]float64{
	"Sedentary":   1.2,
	"Light":       1.375,
	"Moderate":    1.55,
	"Active":      1.725,
	"Very Active": 1.9,
}

// goalAdjustments maps weight goals to daily calorie deltas: roughly
// -0.5kg/week for lose, +0.3kg/week for gain.
var goalAdjustments = map[string]int{
	"lose":     -500,
	"maintain": 0,
	"gain":     300,
}

// BMI computes weight(kg) / height(m)^2, rounded to two decimals.
func BMI(weightKg, heightM float64) (float64, error) {
	if heightM <= 0 {
		return 0, fmt.Errorf("%w: height must be positive", ErrInvalidMeasurement)
	}
	if weightKg <= 0 {
		return 0, fmt.Errorf("%w: weight must be positive", ErrInvalidMeasurement)
	}
	return round2(weightKg / (heightM * heightM)), nil
}

// BMIFromCm is BMI with the height given in centimeters, as stored on the
// user profile.
func BMIFromCm(weightKg, heightCm float64) (float64, error) {
	return BMI(weightKg, heightCm/100)
}

// ClassifyBMI maps a BMI value to its category. Thresholds follow the WHO
// ranges: <18.5, [18.5,25), [25,30), >=30.
func ClassifyBMI(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// BMR computes the Basal Metabolic Rate using the Mifflin-St Jeor equation.
// Gender is matched case-insensitively; anything other than "male" uses the
// female constant.
func BMR(weightKg, heightCm float64, age int, gender string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.EqualFold(gender, "male") {
		bmr += 5
	} else {
		bmr -= 161
	}
	return round2(bmr)
}

// TDEE is the Total Daily Energy Expenditure for a given activity level.
// Unknown levels fall back to the sedentary multiplier.
func TDEE(bmr float64, activityLevel string) float64 {
	m, ok := activityMultipliers[activityLevel]
	if !ok {
		m = activityMultipliers["Sedentary"]
	}
	return bmr * m
}

// DailyCalorieGoal adjusts a TDEE for a weight goal (lose/maintain/gain).
func DailyCalorieGoal(tdee float64, goalType string) int {
	return int(tdee) + goalAdjustments[goalType]
}

// Recommendation returns a health hint for a BMI category.
func Recommendation(category string) string {
	switch category {
	case CategoryUnderweight:
		return "Consider consulting a nutritionist to develop a healthy weight gain plan."
	case CategoryNormal:
		return "Great job! Maintain your current lifestyle and healthy eating habits."
	case CategoryOverweight:
		return "Consider increasing physical activity and reviewing your diet with a professional."
	case CategoryObese:
		return "We recommend consulting a healthcare provider for a personalized weight management plan."
	default:
		return "Consult a healthcare professional for personalized advice."
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
