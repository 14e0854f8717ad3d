package steps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"

	economyCommands "github.com/twilightsim/imperium-go/internal/application/economy/commands"
	"github.com/twilightsim/imperium-go/internal/adapters/persistence"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/ledger"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
	"github.com/twilightsim/imperium-go/test/helpers"
)

type executeSpendingContext struct {
	stateRepo  *persistence.GormStateRepository
	recordRepo *persistence.GormSpendRecordRepository
	handler    *economyCommands.ExecuteSpendingHandler

	response *economyCommands.ExecuteSpendingResponse
	err      error
}

func (c *executeSpendingContext) reset() error {
	if err := helpers.TruncateAllTables(); err != nil {
		return err
	}

	db := helpers.SharedTestDB
	c.stateRepo = persistence.NewGormStateRepository(db)
	c.recordRepo = persistence.NewGormSpendRecordRepository(db)

	clock := shared.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	c.handler = economyCommands.NewExecuteSpendingHandler(c.stateRepo, c.recordRepo, clock)

	c.response = nil
	c.err = nil
	return nil
}

// Given steps

func (c *executeSpendingContext) aSavedGalaxyWithPlayerHoldingTradeGoodsAndPlanets(playerID, tradeGoods int, table *godog.Table) error {
	id, err := shared.NewPlayerID(playerID)
	if err != nil {
		return err
	}

	state := galaxy.NewState()
	player := galaxy.ReconstructPlayer(id, fmt.Sprintf("Player %d", playerID), "FEDERATION_OF_SOL", tradeGoods, 0, nil)
	if err := state.AddPlayer(player); err != nil {
		return err
	}

	planets, err := planetsFromTable(table)
	if err != nil {
		return err
	}
	for _, planet := range planets {
		if err := state.AddPlanet(id, planet); err != nil {
			return err
		}
	}

	return c.stateRepo.SaveState(context.Background(), state)
}

// When steps

func (c *executeSpendingContext) iExecuteASpendOfFor(resources, influence int, purpose string) error {
	cmd := &economyCommands.ExecuteSpendingCommand{
		PlayerID:    1,
		Resources:   resources,
		Influence:   influence,
		Purpose:     purpose,
		Description: "bdd scenario spend",
	}

	response, err := c.handler.Handle(context.Background(), cmd)
	c.err = err
	if err == nil {
		c.response = response.(*economyCommands.ExecuteSpendingResponse)
	}
	return nil
}

// Then steps

func (c *executeSpendingContext) theSpendShouldSucceed() error {
	if c.err != nil {
		return fmt.Errorf("expected success but command errored: %v", c.err)
	}
	if c.response == nil || !c.response.Success {
		return fmt.Errorf("expected success but got: %+v", c.response)
	}
	return nil
}

func (c *executeSpendingContext) theSpendShouldFail() error {
	if c.err != nil {
		return fmt.Errorf("expected a failed response but command errored: %v", c.err)
	}
	if c.response == nil {
		return fmt.Errorf("no response received")
	}
	if c.response.Success {
		return fmt.Errorf("expected failure but spend succeeded")
	}
	return nil
}

func (c *executeSpendingContext) theSpendCommandShouldErrorWith(fragment string) error {
	if c.err == nil {
		return fmt.Errorf("expected command error containing %q but it succeeded", fragment)
	}
	if !strings.Contains(c.err.Error(), fragment) {
		return fmt.Errorf("expected error containing %q but got %q", fragment, c.err.Error())
	}
	return nil
}

func (c *executeSpendingContext) theSpendShouldReportPlanetsExhausted(expected string) error {
	if c.response == nil {
		return fmt.Errorf("no response received")
	}
	return comparePlanetList(c.response.PlanetsExhausted, expected)
}

func (c *executeSpendingContext) persistedPlanetOfPlayerShouldBe(name string, playerID int, status string) error {
	id, err := shared.NewPlayerID(playerID)
	if err != nil {
		return err
	}
	state, err := c.stateRepo.LoadState(context.Background())
	if err != nil {
		return err
	}
	planet, found := state.FindPlanet(id, name)
	if !found {
		return fmt.Errorf("planet %s not found for player %d", name, playerID)
	}

	wantExhausted := status == "exhausted"
	if planet.IsExhausted() != wantExhausted {
		return fmt.Errorf("expected planet %s to be %s but exhausted=%v", name, status, planet.IsExhausted())
	}
	return nil
}

func (c *executeSpendingContext) playerShouldHaveSpendRecords(playerID, count int) error {
	id, err := shared.NewPlayerID(playerID)
	if err != nil {
		return err
	}
	got, err := c.recordRepo.CountByPlayer(context.Background(), id, ledger.DefaultQueryOptions())
	if err != nil {
		return err
	}
	if got != count {
		return fmt.Errorf("expected %d spend records but found %d", count, got)
	}
	return nil
}

func (c *executeSpendingContext) theLatestSpendRecordShouldHavePurpose(purpose string) error {
	if c.response == nil || c.response.RecordID == "" {
		return fmt.Errorf("no recorded spend to inspect")
	}
	id, err := shared.NewPlayerID(1)
	if err != nil {
		return err
	}
	recordID, err := ledger.NewRecordIDFromString(c.response.RecordID)
	if err != nil {
		return err
	}
	record, err := c.recordRepo.FindByID(context.Background(), recordID, id)
	if err != nil {
		return err
	}
	if string(record.Purpose()) != purpose {
		return fmt.Errorf("expected purpose %s but got %s", purpose, record.Purpose())
	}
	return nil
}

// Register steps

func InitializeExecuteSpendingScenario(sc *godog.ScenarioContext) {
	c := &executeSpendingContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		return ctx, c.reset()
	})

	sc.Step(`^a saved galaxy with player (\d+) holding (\d+) trade goods and planets:$`, c.aSavedGalaxyWithPlayerHoldingTradeGoodsAndPlanets)

	sc.Step(`^I execute a spend of (\d+) resources and (\d+) influence for "([^"]*)"$`, c.iExecuteASpendOfFor)

	sc.Step(`^the spend should succeed$`, c.theSpendShouldSucceed)
	sc.Step(`^the spend should fail$`, c.theSpendShouldFail)
	sc.Step(`^the spend command should error with "([^"]*)"$`, c.theSpendCommandShouldErrorWith)
	sc.Step(`^the spend should report planets "([^"]*)" exhausted$`, c.theSpendShouldReportPlanetsExhausted)
	sc.Step(`^the persisted galaxy should show planet "([^"]*)" of player (\d+) (exhausted|ready)$`, c.persistedPlanetOfPlayerShouldBe)
	sc.Step(`^player (\d+) should have (\d+) spend records?$`, c.playerShouldHaveSpendRecords)
	sc.Step(`^the latest spend record should have purpose "([^"]*)"$`, c.theLatestSpendRecordShouldHavePurpose)
}
