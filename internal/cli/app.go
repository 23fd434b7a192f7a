// Package cli implements the interactive menu that drives the tracker:
// prompts on stdin, reports on stdout, recoverable errors re-prompt and
// storage errors abort the session.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/caltrack/caltrack/internal/calc"
	"github.com/caltrack/caltrack/internal/models"
	"github.com/caltrack/caltrack/internal/service"
	"github.com/caltrack/caltrack/internal/types"
	"github.com/caltrack/caltrack/pkg/logger"
)

// Deps bundles the services the menu dispatches to.
type Deps struct {
	Auth    service.IAuthService
	Catalog service.ICatalogService
	Intake  service.IIntakeService
	Weight  service.IWeightService
	Reports service.IReportService
}

// App is one interactive session. Not safe for concurrent use; the tool
// serves one user at a time.
type App struct {
	deps Deps
	in   *bufio.Scanner
	out  io.Writer

	current *types.TokenClaims
	token   string
}

// New creates a session reading prompts from in and writing to out.
func New(deps Deps, in io.Reader, out io.Writer) *App {
	return &App{
		deps: deps,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run drives the menu loop until the user exits or input ends. The
// returned error is non-nil only for storage failures, which terminate
// the session.
func (a *App) Run(ctx context.Context) error {
	for {
		var err error
		if a.current == nil {
			err = a.loggedOutMenu(ctx)
		} else {
			err = a.loggedInMenu(ctx)
		}
		switch {
		case err == errExit:
			fmt.Fprintln(a.out, "Goodbye!")
			return nil
		case err == io.EOF:
			return nil
		case err == nil:
			continue
		case service.IsStorageErr(err):
			log := logger.Get()
			log.Error().Err(err).Msg("storage failure, terminating session")
			return err
		default:
			// validation/auth/not-found: report and return to the menu
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
	}
}

// errExit signals a clean exit request from a menu.
var errExit = fmt.Errorf("exit requested")

func (a *App) loggedOutMenu(ctx context.Context) error {
	a.header("CALTRACK MENU")
	fmt.Fprintln(a.out, "1. Register")
	fmt.Fprintln(a.out, "2. Login")
	fmt.Fprintln(a.out, "3. Exit")

	choice, err := a.readLine("Enter choice: ")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		return a.handleRegister(ctx)
	case "2":
		return a.handleLogin(ctx)
	case "3":
		return errExit
	default:
		fmt.Fprintln(a.out, "Invalid choice.")
		return nil
	}
}

func (a *App) loggedInMenu(ctx context.Context) error {
	a.header("CALTRACK MENU")
	fmt.Fprintf(a.out, "Logged in as: %s\n", a.current.Username)
	fmt.Fprintln(a.out, "1. View Profile")
	fmt.Fprintln(a.out, "2. Log Food Intake")
	fmt.Fprintln(a.out, "3. View Daily Report")
	fmt.Fprintln(a.out, "4. Record Weight")
	fmt.Fprintln(a.out, "5. Search Foods")
	fmt.Fprintln(a.out, "6. Add Food")
	fmt.Fprintln(a.out, "7. Logout")
	fmt.Fprintln(a.out, "8. Exit")

	choice, err := a.readLine("Enter choice: ")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		return a.handleProfile(ctx)
	case "2":
		return a.handleLogFood(ctx)
	case "3":
		return a.handleReport(ctx)
	case "4":
		return a.handleRecordWeight(ctx)
	case "5":
		return a.handleSearch(ctx)
	case "6":
		return a.handleAddFood(ctx)
	case "7":
		fmt.Fprintf(a.out, "Goodbye, %s!\n", a.current.Username)
		a.current = nil
		a.token = ""
		return nil
	case "8":
		return errExit
	default:
		fmt.Fprintln(a.out, "Invalid choice.")
		return nil
	}
}

func (a *App) handleRegister(ctx context.Context) error {
	a.header("USER REGISTRATION")

	input := service.RegisterInput{}
	var err error
	if input.Username, err = a.readLine("Username: "); err != nil {
		return err
	}
	if input.Password, err = a.readLine("Password: "); err != nil {
		return err
	}
	confirm, err := a.readLine("Confirm password: ")
	if err != nil {
		return err
	}
	if confirm != input.Password {
		return fmt.Errorf("%w: passwords do not match", service.ErrInvalidInput)
	}
	if input.Email, err = a.readLine("Email: "); err != nil {
		return err
	}
	if input.Age, err = a.readInt("Age: ", 1, 150); err != nil {
		return err
	}
	if input.Gender, err = a.readOption("Gender", []string{models.GenderMale, models.GenderFemale, models.GenderOther}); err != nil {
		return err
	}
	if input.HeightCm, err = a.readFloat("Height in cm: ", 30, 300); err != nil {
		return err
	}
	if input.WeightKg, err = a.readFloat("Current weight in kg: ", 2, 500); err != nil {
		return err
	}
	if input.ActivityLevel, err = a.readOption("Activity level", models.ActivityLevels); err != nil {
		return err
	}
	if input.GoalType, err = a.readOption("Goal", []string{models.GoalLose, models.GoalMaintain, models.GoalGain}); err != nil {
		return err
	}
	if input.GoalType != models.GoalMaintain {
		if input.GoalWeightKg, err = a.readFloat("Target weight in kg: ", 2, 500); err != nil {
			return err
		}
	}

	user, token, err := a.deps.Auth.Register(ctx, input)
	if err != nil {
		return err
	}
	a.current = &types.TokenClaims{UserID: user.ID, Username: user.Username}
	a.token = token

	fmt.Fprintln(a.out, "Registered successfully!")
	fmt.Fprintf(a.out, "Your daily calorie target: %d calories\n", user.DailyCalorieGoal)
	log := logger.Get()
	log.Info().Str("username", user.Username).Msg("new user registered")
	return nil
}

func (a *App) handleLogin(ctx context.Context) error {
	a.header("USER LOGIN")

	username, err := a.readLine("Username: ")
	if err != nil {
		return err
	}
	password, err := a.readLine("Password: ")
	if err != nil {
		return err
	}

	user, token, err := a.deps.Auth.Login(ctx, username, password)
	if err != nil {
		if service.IsAuthErr(err) {
			log := logger.Get()
			log.Warn().Str("username", username).Msg("failed login attempt")
		}
		return err
	}
	a.current = &types.TokenClaims{UserID: user.ID, Username: user.Username}
	a.token = token

	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Username)
	return nil
}

func (a *App) handleProfile(ctx context.Context) error {
	user, err := a.deps.Auth.GetUserByID(ctx, a.current.UserID)
	if err != nil {
		return err
	}
	a.renderProfile(user)

	history, err := a.deps.Weight.History(ctx, user.ID, 5)
	if err != nil {
		return err
	}
	a.renderWeightHistory(history)
	return nil
}

func (a *App) handleLogFood(ctx context.Context) error {
	a.header("LOG FOOD INTAKE")

	name, err := a.readLine("Food name: ")
	if err != nil {
		return err
	}
	food, err := a.deps.Catalog.GetFoodByName(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logging: %s (%.0f kcal per %s)\n", food.Name, food.CaloriesPerUnit, food.Unit)

	quantity, err := a.readFloat(fmt.Sprintf("Quantity in units of %s: ", food.Unit), 0.01, 10000)
	if err != nil {
		return err
	}
	mealType, err := a.readOption("Meal type", models.MealTypes)
	if err != nil {
		return err
	}
	date, err := a.readDate("Date (YYYY-MM-DD, empty for today): ")
	if err != nil {
		return err
	}

	entry, err := a.deps.Intake.AddEntry(ctx, a.current.UserID, food.Name, quantity, mealType, date)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged %.1f x %s (%.0f kcal) for %s on %s.\n",
		entry.Quantity, food.Name, entry.Calories(), entry.MealType, entry.Date.Format("2006-01-02"))
	return nil
}

func (a *App) handleReport(ctx context.Context) error {
	a.header("DAILY NUTRITION REPORT")

	date, err := a.readDate("Report date (YYYY-MM-DD, empty for today): ")
	if err != nil {
		return err
	}
	report, err := a.deps.Reports.DailyReport(ctx, a.current.UserID, date)
	if err != nil {
		return err
	}
	a.renderReport(report)
	return nil
}

func (a *App) handleRecordWeight(ctx context.Context) error {
	a.header("RECORD NEW WEIGHT")

	weight, err := a.readFloat("Current weight in kg: ", 2, 500)
	if err != nil {
		return err
	}
	date, err := a.readDate("Date (YYYY-MM-DD, empty for today): ")
	if err != nil {
		return err
	}

	entry, err := a.deps.Weight.RecordWeight(ctx, a.current.UserID, weight, date)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Weight of %.1f kg recorded for %s (BMI %.1f, %s).\n",
		entry.WeightKg, entry.RecordedDate.Format("2006-01-02"),
		entry.BMI, calc.ClassifyBMI(entry.BMI))
	return nil
}

func (a *App) handleSearch(ctx context.Context) error {
	a.header("FOOD CATALOG SEARCH")

	term, err := a.readLine("Search by name or category (empty lists the top 10): ")
	if err != nil {
		return err
	}
	foods, err := a.deps.Catalog.SearchFoods(ctx, term, 10)
	if err != nil {
		return err
	}
	if len(foods) == 0 {
		fmt.Fprintf(a.out, "No food items found matching %q.\n", term)
		return nil
	}
	a.renderFoods(foods)
	return nil
}

func (a *App) handleAddFood(ctx context.Context) error {
	a.header("ADD FOOD TO CATALOG")

	food := models.FoodItem{Unit: "100g"}
	var err error
	if food.Name, err = a.readLine("Food name: "); err != nil {
		return err
	}
	if food.CaloriesPerUnit, err = a.readFloat("Calories per 100g: ", 0, 1000); err != nil {
		return err
	}
	if food.ProteinG, err = a.readFloat("Protein g per 100g: ", 0, 100); err != nil {
		return err
	}
	if food.CarbsG, err = a.readFloat("Carbs g per 100g: ", 0, 100); err != nil {
		return err
	}
	if food.FatG, err = a.readFloat("Fat g per 100g: ", 0, 100); err != nil {
		return err
	}
	if food.Category, err = a.readLine("Category: "); err != nil {
		return err
	}

	added, err := a.deps.Catalog.AddFood(ctx, &food)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s (%.0f kcal per %s) to the catalog.\n", added.Name, added.CaloriesPerUnit, added.Unit)
	return nil
}

func (a *App) header(title string) {
	line := strings.Repeat("=", 60)
	fmt.Fprintf(a.out, "\n%s\n%s\n%s\n", line, centered(title, 60), line)
}

func centered(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

// sessionDate parses the date the user typed, defaulting to today.
func sessionDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Now(), nil
	}
	d, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", service.ErrInvalidInput)
	}
	return d, nil
}
