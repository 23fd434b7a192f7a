package calc_test

import (
	"testing"

	"github.com/caltrack/caltrack/internal/calc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	v, err := calc.BMI(70, 1.75)
	require.NoError(t, err)
	assert.InDelta(t, 22.86, v, 0.01)
	assert.Equal(t, calc.CategoryNormal, calc.ClassifyBMI(v))
}

func TestBMIInvalidHeight(t *testing.T) {
	_, err := calc.BMI(70, 0)
	assert.ErrorIs(t, err, calc.ErrInvalidMeasurement)

	_, err = calc.BMI(70, -1.6)
	assert.ErrorIs(t, err, calc.ErrInvalidMeasurement)
}

func TestBMIInvalidWeight(t *testing.T) {
	_, err := calc.BMI(0, 1.75)
	assert.ErrorIs(t, err, calc.ErrInvalidMeasurement)
}

func TestBMIFromCm(t *testing.T) {
	v, err := calc.BMIFromCm(70, 175)
	require.NoError(t, err)
	assert.InDelta(t, 22.86, v, 0.01)
}

func TestClassifyBMICoversAllRanges(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{0, calc.CategoryUnderweight},
		{10, calc.CategoryUnderweight},
		{18.49, calc.CategoryUnderweight},
		{18.5, calc.CategoryNormal},
		{22, calc.CategoryNormal},
		{24.99, calc.CategoryNormal},
		{25, calc.CategoryOverweight},
		{29.99, calc.CategoryOverweight},
		{30, calc.CategoryObese},
		{55, calc.CategoryObese},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, calc.ClassifyBMI(tc.bmi), "bmi=%v", tc.bmi)
	}
}

func TestClassifyBMIMonotonic(t *testing.T) {
	order := map[string]int{
		calc.CategoryUnderweight: 0,
		calc.CategoryNormal:      1,
		calc.CategoryOverweight:  2,
		calc.CategoryObese:       3,
	}
	prev := -1
	for bmi := 0.0; bmi < 60; bmi += 0.25 {
		cur := order[calc.ClassifyBMI(bmi)]
		assert.GreaterOrEqualf(t, cur, prev, "bmi=%v", bmi)
		prev = cur
	}
}

func TestBMR(t *testing.T) {
	// Mifflin-St Jeor: 10*70 + 6.25*175 - 5*30 + 5 = 1648.75 for men,
	// 10*60 + 6.25*165 - 5*25 - 161 = 1345.25 for women.
	assert.InDelta(t, 1648.75, calc.BMR(70, 175, 30, "Male"), 0.01)
	assert.InDelta(t, 1345.25, calc.BMR(60, 165, 25, "Female"), 0.01)
	// non-male genders use the female constant
	assert.Equal(t, calc.BMR(60, 165, 25, "Other"), calc.BMR(60, 165, 25, "Female"))
}

func TestTDEE(t *testing.T) {
	assert.InDelta(t, 1200, calc.TDEE(1000, "Sedentary"), 0.01)
	assert.InDelta(t, 1900, calc.TDEE(1000, "Very Active"), 0.01)
	// unknown level falls back to sedentary
	assert.InDelta(t, 1200, calc.TDEE(1000, "couch"), 0.01)
}

func TestDailyCalorieGoal(t *testing.T) {
	assert.Equal(t, 1500, calc.DailyCalorieGoal(2000, "lose"))
	assert.Equal(t, 2000, calc.DailyCalorieGoal(2000, "maintain"))
	assert.Equal(t, 2300, calc.DailyCalorieGoal(2000, "gain"))
}

func TestRecommendationCoversCategories(t *testing.T) {
	for _, c := range []string{
		calc.CategoryUnderweight,
		calc.CategoryNormal,
		calc.CategoryOverweight,
		calc.CategoryObese,
	} {
		assert.NotEmpty(t, calc.Recommendation(c))
	}
	assert.NotEmpty(t, calc.Recommendation("bogus"))
}
