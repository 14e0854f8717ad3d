package steps

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/cucumber/messages/go/v21"

	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/production"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

type productionCostContext struct {
	state     *galaxy.State
	playerID  shared.PlayerID
	validator *production.CostValidator
	batch     *production.BatchCostValidator

	cost         *production.ProductionCost
	validation   *production.CostValidationResult
	batchResults []*production.CostValidationResult
	err          error
}

func (c *productionCostContext) reset() {
	c.state = nil
	c.playerID = shared.PlayerID{}
	c.validator = nil
	c.batch = nil
	c.cost = nil
	c.validation = nil
	c.batchResults = nil
	c.err = nil
}

func (c *productionCostContext) player() (*galaxy.Player, error) {
	player, ok := c.state.Player(c.playerID)
	if !ok {
		return nil, fmt.Errorf("player not found in state")
	}
	return player, nil
}

// Given steps

func (c *productionCostContext) aProducingPlayerWithTradeGoodsAndPlanets(tradeGoods int, table *messages.PickleTable) error {
	playerID, err := shared.NewPlayerID(1)
	if err != nil {
		return err
	}
	c.playerID = playerID

	c.state = galaxy.NewState()
	player := galaxy.ReconstructPlayer(playerID, "Producer", "FEDERATION_OF_SOL", tradeGoods, 0, nil)
	if err := c.state.AddPlayer(player); err != nil {
		return err
	}

	planets, err := planetsFromTable(table)
	if err != nil {
		return err
	}
	for _, planet := range planets {
		if err := c.state.AddPlanet(playerID, planet); err != nil {
			return err
		}
	}

	clock := shared.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	manager := economy.NewResourceManager(c.state, clock)
	c.validator = production.NewCostValidator(production.DefaultStatsRegistry(), manager)
	c.batch = production.NewBatchCostValidator(c.validator)
	return nil
}

func (c *productionCostContext) theProducingPlayerHasTechnology(name string) error {
	player, err := c.player()
	if err != nil {
		return err
	}
	player.GainTechnology(name)
	return nil
}

// When steps

func (c *productionCostContext) iComputeTheProductionCostFor(quantity int, unitName string) error {
	unitType, err := production.ParseUnitType(unitName)
	if err != nil {
		return err
	}
	player, err := c.player()
	if err != nil {
		return err
	}
	c.cost, c.err = c.validator.ProductionCost(unitType, quantity, player.Faction(), player.Technologies())
	return c.err
}

func (c *productionCostContext) iValidateTheProductionCostFor(quantity int, unitName string) error {
	if err := c.iComputeTheProductionCostFor(quantity, unitName); err != nil {
		return err
	}
	c.validation, c.err = c.validator.ValidateProductionCost(c.playerID, c.cost)
	return c.err
}

func (c *productionCostContext) iValidateAProductionBatch(table *messages.PickleTable) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("batch table needs a header and at least one row")
	}
	player, err := c.player()
	if err != nil {
		return err
	}

	var requests []production.ProductionRequest
	for _, row := range table.Rows[1:] {
		if len(row.Cells) < 2 {
			return fmt.Errorf("batch row needs unit and quantity")
		}
		unitType, err := production.ParseUnitType(row.Cells[0].Value)
		if err != nil {
			return err
		}
		quantity, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return fmt.Errorf("bad quantity for %s: %w", unitType, err)
		}
		requests = append(requests, production.ProductionRequest{
			UnitType:     unitType,
			Quantity:     quantity,
			Faction:      player.Faction(),
			Technologies: player.Technologies(),
		})
	}

	c.batchResults, c.err = c.batch.ValidateBatchProductionCosts(c.playerID, requests)
	return c.err
}

// Then steps

func (c *productionCostContext) theTotalCostShouldBe(expected string) error {
	want, err := strconv.ParseFloat(expected, 64)
	if err != nil {
		return err
	}
	if c.cost == nil {
		return fmt.Errorf("no production cost computed")
	}
	if math.Abs(c.cost.TotalCost-want) > 1e-9 {
		return fmt.Errorf("expected total cost %.2f but got %.2f", want, c.cost.TotalCost)
	}
	return nil
}

func (c *productionCostContext) unitsShouldBeProduced(count int) error {
	if c.cost.UnitsProduced != count {
		return fmt.Errorf("expected %d units produced but got %d", count, c.cost.UnitsProduced)
	}
	return nil
}

func (c *productionCostContext) itShouldBeDualProduction() error {
	if !c.cost.IsDualProduction {
		return fmt.Errorf("expected dual production")
	}
	return nil
}

func (c *productionCostContext) itShouldNotBeDualProduction() error {
	if c.cost.IsDualProduction {
		return fmt.Errorf("expected standard production but got dual")
	}
	return nil
}

func (c *productionCostContext) theValidationShouldPass() error {
	if c.validation == nil {
		return fmt.Errorf("no validation result")
	}
	if !c.validation.Valid {
		return fmt.Errorf("expected valid but got: %s", c.validation.ErrorMessage)
	}
	return nil
}

func (c *productionCostContext) theValidationShouldFail() error {
	if c.validation == nil {
		return fmt.Errorf("no validation result")
	}
	if c.validation.Valid {
		return fmt.Errorf("expected invalid but validation passed")
	}
	return nil
}

func (c *productionCostContext) theRequiredResourcesShouldBe(amount int) error {
	if c.validation.RequiredResources != amount {
		return fmt.Errorf("expected %d required resources but got %d", amount, c.validation.RequiredResources)
	}
	return nil
}

func (c *productionCostContext) theResourceShortfallShouldBe(amount int) error {
	if c.validation.Shortfall != amount {
		return fmt.Errorf("expected shortfall %d but got %d", amount, c.validation.Shortfall)
	}
	return nil
}

func (c *productionCostContext) theValidationShouldCarryASuggestedPlan() error {
	if c.validation.SuggestedPlan == nil {
		return fmt.Errorf("expected a suggested spending plan")
	}
	if !c.validation.SuggestedPlan.IsValid() {
		return fmt.Errorf("suggested plan is invalid: %s", c.validation.SuggestedPlan.ErrorMessage())
	}
	return nil
}

func (c *productionCostContext) theValidationErrorShouldMention(fragment string) error {
	if !strings.Contains(c.validation.ErrorMessage, fragment) {
		return fmt.Errorf("expected validation error containing %q but got %q", fragment, c.validation.ErrorMessage)
	}
	return nil
}

func (c *productionCostContext) batchItemShouldBeValid(index int) error {
	if index < 1 || index > len(c.batchResults) {
		return fmt.Errorf("no batch item %d", index)
	}
	result := c.batchResults[index-1]
	if !result.Valid {
		return fmt.Errorf("expected batch item %d valid but got: %s", index, result.ErrorMessage)
	}
	return nil
}

func (c *productionCostContext) batchItemShouldBeInvalidWithShortfall(index, shortfall int) error {
	if index < 1 || index > len(c.batchResults) {
		return fmt.Errorf("no batch item %d", index)
	}
	result := c.batchResults[index-1]
	if result.Valid {
		return fmt.Errorf("expected batch item %d invalid but it passed", index)
	}
	if result.Shortfall != shortfall {
		return fmt.Errorf("expected batch item %d shortfall %d but got %d", index, shortfall, result.Shortfall)
	}
	return nil
}

// Register steps

func InitializeProductionCostScenario(sc *godog.ScenarioContext) {
	c := &productionCostContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		c.reset()
		return ctx, nil
	})

	sc.Step(`^a producing player with (\d+) trade goods and the following planets:$`, c.aProducingPlayerWithTradeGoodsAndPlanets)
	sc.Step(`^the producing player has technology "([^"]*)"$`, c.theProducingPlayerHasTechnology)

	sc.Step(`^I compute the production cost for (\d+) "([^"]*)"$`, c.iComputeTheProductionCostFor)
	sc.Step(`^I validate the production cost for (\d+) "([^"]*)"$`, c.iValidateTheProductionCostFor)
	sc.Step(`^I validate a production batch:$`, c.iValidateAProductionBatch)

	sc.Step(`^the total cost should be (\d+\.?\d*)$`, c.theTotalCostShouldBe)
	sc.Step(`^(\d+) units should be produced$`, c.unitsShouldBeProduced)
	sc.Step(`^it should be dual production$`, c.itShouldBeDualProduction)
	sc.Step(`^it should not be dual production$`, c.itShouldNotBeDualProduction)

	sc.Step(`^the validation should pass$`, c.theValidationShouldPass)
	sc.Step(`^the validation should fail$`, c.theValidationShouldFail)
	sc.Step(`^the required resources should be (\d+)$`, c.theRequiredResourcesShouldBe)
	sc.Step(`^the resource shortfall should be (\d+)$`, c.theResourceShortfallShouldBe)
	sc.Step(`^the validation should carry a suggested plan$`, c.theValidationShouldCarryASuggestedPlan)
	sc.Step(`^the validation error should mention "([^"]*)"$`, c.theValidationErrorShouldMention)

	sc.Step(`^batch item (\d+) should be valid$`, c.batchItemShouldBeValid)
	sc.Step(`^batch item (\d+) should be invalid with shortfall (\d+)$`, c.batchItemShouldBeInvalidWithShortfall)
}
