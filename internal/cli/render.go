package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/caltrack/caltrack/internal/calc"
	"github.com/caltrack/caltrack/internal/models"
	"github.com/caltrack/caltrack/internal/service"
)

func (a *App) renderProfile(user *models.User) {
	a.header("USER PROFILE")

	fmt.Fprintf(a.out, "Username: %s\n", user.Username)
	fmt.Fprintf(a.out, "Email:    %s\n", user.Email)
	fmt.Fprintf(a.out, "Age:      %d\n", user.Age)
	fmt.Fprintf(a.out, "Gender:   %s\n", user.Gender)
	fmt.Fprintf(a.out, "Height:   %.1f cm\n", user.HeightCm)
	fmt.Fprintf(a.out, "Weight:   %.1f kg\n", user.WeightKg)
	fmt.Fprintf(a.out, "Activity: %s\n", user.ActivityLevel)

	if bmi, err := calc.BMIFromCm(user.WeightKg, user.HeightCm); err == nil {
		category := calc.ClassifyBMI(bmi)
		fmt.Fprintf(a.out, "BMI:      %.1f (%s)\n", bmi, category)
		fmt.Fprintf(a.out, "Advice:   %s\n", calc.Recommendation(category))
	}

	bmr := calc.BMR(user.WeightKg, user.HeightCm, user.Age, user.Gender)
	fmt.Fprintf(a.out, "BMR:      %.0f cal/day\n", bmr)
	fmt.Fprintf(a.out, "Daily Calorie Target: %d cal/day\n", user.DailyCalorieGoal)

	if user.GoalType != models.GoalMaintain && user.GoalWeightKg > 0 {
		fmt.Fprintf(a.out, "Goal:     %s weight, target %.1f kg", user.GoalType, user.GoalWeightKg)
		diff := user.WeightKg - user.GoalWeightKg
		if diff < 0 {
			diff = -diff
		}
		fmt.Fprintf(a.out, " (%.1f kg to go)\n", diff)
	}
	fmt.Fprintf(a.out, "Member Since: %s\n", user.CreatedAt.Format("2006-01-02"))
}

func (a *App) renderWeightHistory(entries []models.WeightEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(a.out, "\nRecent weight entries:")
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tWEIGHT\tBMI")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%.1f kg\t%.1f\n", e.RecordedDate.Format("2006-01-02"), e.WeightKg, e.BMI)
	}
	w.Flush()
}

func (a *App) renderFoods(foods []models.FoodItem) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tKCAL\tPROTEIN\tCARBS\tFAT\tUNIT")
	for _, f := range foods {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%s\n",
			f.Name, f.Category, f.CaloriesPerUnit, f.ProteinG, f.CarbsG, f.FatG, f.Unit)
	}
	w.Flush()
}

func (a *App) renderReport(report *service.DailyReport) {
	fmt.Fprintf(a.out, "\n--- Report for %s ---\n", report.Date.Format("2006-01-02"))

	if len(report.Entries) == 0 {
		fmt.Fprintln(a.out, "No food intake recorded.")
		fmt.Fprintf(a.out, "Daily Calorie Goal: %d cal\n", report.DailyGoal)
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MEAL\tFOOD\tQTY\tKCAL")
	for _, e := range report.Entries {
		name := "?"
		if e.Food != nil {
			name = e.Food.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.0f\n", e.MealType, name, e.Quantity, e.Calories())
	}
	w.Flush()

	fmt.Fprintln(a.out, "\nCALORIE TRACKING:")
	fmt.Fprintf(a.out, "  Consumed:  %.0f cal\n", report.TotalCalories)
	fmt.Fprintf(a.out, "  Goal:      %d cal\n", report.DailyGoal)
	remaining := report.Remaining
	if remaining < 0 {
		remaining = 0
	}
	fmt.Fprintf(a.out, "  Remaining: %.0f cal\n", remaining)
	fmt.Fprintf(a.out, "  Progress   %s\n", progressBar(report.TotalCalories, float64(report.DailyGoal), 30))

	fmt.Fprintln(a.out, "\nMACRONUTRIENT BREAKDOWN:")
	fmt.Fprintf(a.out, "  Protein: %.1f g\n", report.TotalProtein)
	fmt.Fprintf(a.out, "  Carbs:   %.1f g\n", report.TotalCarbs)
	fmt.Fprintf(a.out, "  Fat:     %.1f g\n", report.TotalFat)

	fmt.Fprintf(a.out, "\nBMI: %.1f (%s)\n", report.BMI, report.BMICategory)

	if report.Remaining < 0 {
		fmt.Fprintf(a.out, "Warning: you exceeded your daily calorie goal by %.0f calories.\n", -report.Remaining)
	}
}

// progressBar renders current against target as a fixed-width bar.
func progressBar(current, target float64, width int) string {
	pct := 0.0
	if target > 0 {
		pct = current / target * 100
		if pct > 100 {
			pct = 100
		}
	}
	filled := int(float64(width) * pct / 100)
	return fmt.Sprintf("[%s%s] %.1f%%",
		strings.Repeat("#", filled), strings.Repeat("-", width-filled), pct)
}
