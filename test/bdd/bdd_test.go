package bdd

import (
	"os"
	"testing"

	"github.com/cucumber/godog"

	"github.com/twilightsim/imperium-go/test/bdd/steps"
	"github.com/twilightsim/imperium-go/test/helpers"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/domain", "features/application"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	// Domain layer scenarios
	steps.InitializeSpendingPlanScenario(sc)
	steps.InitializeProductionCostScenario(sc)

	// Application layer scenarios (backed by the shared test database)
	steps.InitializeExecuteSpendingScenario(sc)
}

func TestMain(m *testing.M) {
	// One shared database for all integration scenarios; each scenario
	// truncates instead of re-migrating.
	if err := helpers.InitializeSharedTestDB(); err != nil {
		panic("Failed to initialize shared test database: " + err.Error())
	}
	defer helpers.CloseSharedTestDB()

	os.Exit(m.Run())
}
