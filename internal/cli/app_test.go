package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/caltrack/caltrack/internal/cli"
	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/service"
	"github.com/caltrack/caltrack/internal/testhelpers"
)

func setupApp(t *testing.T, script []string) (*cli.App, *bytes.Buffer, *gorm.DB) {
	t.Helper()
	db := testhelpers.SetupTestDatabase(t)
	require.NoError(t, database.SeedFoods(db))

	catalog := service.NewCatalogService(db, nil)
	intake := service.NewIntakeService(db, catalog)
	deps := cli.Deps{
		Auth:    service.NewAuthService(db, "test-secret"),
		Catalog: catalog,
		Intake:  intake,
		Weight:  service.NewWeightService(db),
		Reports: service.NewReportService(db, intake),
	}

	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	out := &bytes.Buffer{}
	return cli.New(deps, in, out), out, db
}

func TestRegisterLogAndReportSession(t *testing.T) {
	script := []string{
		"1",              // register
		"tester",         // username
		"password123",    // password
		"password123",    // confirm
		"t@example.com",  // email
		"30",             // age
		"1",              // gender: Male
		"175",            // height cm
		"70",             // weight kg
		"3",              // activity: Moderate
		"2",              // goal: maintain
		"2",              // log food
		"Apple",          // food name
		"2",              // quantity
		"4",              // meal: Snack
		"",               // date: today
		"3",              // view daily report
		"",               // date: today
		"8",              // exit
	}
	app, out, _ := setupApp(t, script)

	require.NoError(t, app.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Registered successfully!")
	assert.Contains(t, output, "Logged 2.0 x Apple (104 kcal)")
	assert.Contains(t, output, "Consumed:  104 cal")
	assert.Contains(t, output, "BMI: 22.9 (Normal)")
	assert.Contains(t, output, "Goodbye!")
}

func TestLoginFailureReprompts(t *testing.T) {
	script := []string{
		"2",        // login
		"nobody",   // username
		"letmein1", // password
		"3",        // exit
	}
	app, out, _ := setupApp(t, script)

	require.NoError(t, app.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Error: invalid username or password")
	// back at the menu after the failure
	assert.Contains(t, output, "Goodbye!")
}

func TestUnknownFoodReportedAndSessionContinues(t *testing.T) {
	script := []string{
		"1", "tester", "password123", "password123", "t@example.com",
		"30", "1", "175", "70", "3", "2",
		"2",           // log food
		"Unobtainium", // not in the catalog
		"8",           // exit
	}
	app, out, _ := setupApp(t, script)

	require.NoError(t, app.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "unknown food")
	assert.Contains(t, output, "Goodbye!")
}

func TestRecordWeightSession(t *testing.T) {
	script := []string{
		"1", "tester", "password123", "password123", "t@example.com",
		"30", "1", "175", "70", "3", "2",
		"4",    // record weight
		"72.5", // weight
		"",     // today
		"7",    // logout
		"3",    // exit (logged-out menu)
	}
	app, out, _ := setupApp(t, script)

	require.NoError(t, app.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Weight of 72.5 kg recorded")
	assert.Contains(t, output, "Goodbye, tester!")
}

func TestSearchFoodsSession(t *testing.T) {
	script := []string{
		"1", "tester", "password123", "password123", "t@example.com",
		"30", "1", "175", "70", "3", "2",
		"5",     // search
		"Fruit", // category term
		"8",     // exit
	}
	app, out, _ := setupApp(t, script)

	require.NoError(t, app.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Apple")
	assert.Contains(t, output, "Banana")
}

func TestEOFEndsSessionCleanly(t *testing.T) {
	app, _, _ := setupApp(t, []string{"2", "tester"}) // input ends mid-login

	assert.NoError(t, app.Run(context.Background()))
}
