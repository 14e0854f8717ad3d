package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

type spendingPlanContext struct {
	state    *galaxy.State
	playerID shared.PlayerID
	manager  *economy.ResourceManager
	plan     *economy.SpendingPlan
	result   *economy.SpendingResult
	err      error
}

func (c *spendingPlanContext) reset() {
	c.state = nil
	c.playerID = shared.PlayerID{}
	c.manager = nil
	c.plan = nil
	c.result = nil
	c.err = nil
}

// Given steps

func (c *spendingPlanContext) aPlayerWithTradeGoodsAndPlanets(tradeGoods int, table *godog.Table) error {
	playerID, err := shared.NewPlayerID(1)
	if err != nil {
		return err
	}
	c.playerID = playerID

	c.state = galaxy.NewState()
	player := galaxy.ReconstructPlayer(playerID, "Test Player", "FEDERATION_OF_SOL", tradeGoods, 0, nil)
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
	c.manager = economy.NewResourceManager(c.state, clock)
	return nil
}

func (c *spendingPlanContext) thePlayerHasTechnology(name string) error {
	player, ok := c.state.Player(c.playerID)
	if !ok {
		return fmt.Errorf("player not found in state")
	}
	player.GainTechnology(name)
	return nil
}

// When steps

func (c *spendingPlanContext) iCreateASpendingPlanFor(resources, influence int) error {
	c.plan, c.err = c.manager.CreateSpendingPlan(c.playerID, resources, influence, false)
	return c.err
}

func (c *spendingPlanContext) iCreateAVotingSpendingPlanFor(resources, influence int) error {
	c.plan, c.err = c.manager.CreateSpendingPlan(c.playerID, resources, influence, true)
	return c.err
}

func (c *spendingPlanContext) iExecuteTheSpendingPlan() error {
	if c.plan == nil {
		return fmt.Errorf("no spending plan created")
	}
	c.result = c.manager.ExecuteSpendingPlan(c.plan)
	return nil
}

func (c *spendingPlanContext) planetBecomesExhausted(name string) error {
	planet, found := c.state.FindPlanet(c.playerID, name)
	if !found {
		return fmt.Errorf("planet %s not found", name)
	}
	return planet.Exhaust()
}

// Then steps

func (c *spendingPlanContext) thePlanShouldBeValid() error {
	if c.plan == nil {
		return fmt.Errorf("no plan was created")
	}
	if !c.plan.IsValid() {
		return fmt.Errorf("expected valid plan but got invalid: %s", c.plan.ErrorMessage())
	}
	return nil
}

func (c *spendingPlanContext) thePlanShouldBeInvalid() error {
	if c.plan == nil {
		return fmt.Errorf("no plan was created")
	}
	if c.plan.IsValid() {
		return fmt.Errorf("expected invalid plan but it is valid")
	}
	return nil
}

func (c *spendingPlanContext) thePlanErrorShouldMention(fragment string) error {
	if c.plan == nil {
		return fmt.Errorf("no plan was created")
	}
	if !strings.Contains(c.plan.ErrorMessage(), fragment) {
		return fmt.Errorf("expected plan error containing %q but got %q", fragment, c.plan.ErrorMessage())
	}
	return nil
}

func (c *spendingPlanContext) theResourceSpendingShouldUsePlanets(expected string) error {
	return comparePlanetList(c.plan.ResourceSpending().PlanetNames(), expected)
}

func (c *spendingPlanContext) theInfluenceSpendingShouldUsePlanets(expected string) error {
	return comparePlanetList(c.plan.InfluenceSpending().PlanetNames(), expected)
}

func (c *spendingPlanContext) theResourceSpendingShouldUseTradeGoods(amount int) error {
	if got := c.plan.ResourceSpending().TradeGoods(); got != amount {
		return fmt.Errorf("expected %d resource trade goods but got %d", amount, got)
	}
	return nil
}

func (c *spendingPlanContext) theInfluenceSpendingShouldUseTradeGoods(amount int) error {
	if got := c.plan.InfluenceSpending().TradeGoods(); got != amount {
		return fmt.Errorf("expected %d influence trade goods but got %d", amount, got)
	}
	return nil
}

func (c *spendingPlanContext) thePlanShouldUseTotalTradeGoods(amount int) error {
	if got := c.plan.TotalTradeGoods(); got != amount {
		return fmt.Errorf("expected %d total trade goods but got %d", amount, got)
	}
	return nil
}

func (c *spendingPlanContext) thePlanetsToExhaustShouldBe(expected string) error {
	return comparePlanetList(c.plan.PlanetsToExhaust(), expected)
}

func (c *spendingPlanContext) theExecutionShouldSucceed() error {
	if c.result == nil {
		return fmt.Errorf("no execution result")
	}
	if !c.result.Success {
		return fmt.Errorf("expected execution success but got failure: %s", c.result.ErrorMessage)
	}
	return nil
}

func (c *spendingPlanContext) theExecutionShouldFail() error {
	if c.result == nil {
		return fmt.Errorf("no execution result")
	}
	if c.result.Success {
		return fmt.Errorf("expected execution failure but it succeeded")
	}
	return nil
}

func (c *spendingPlanContext) theExecutionErrorShouldMention(fragment string) error {
	if c.result == nil {
		return fmt.Errorf("no execution result")
	}
	if !strings.Contains(c.result.ErrorMessage, fragment) {
		return fmt.Errorf("expected execution error containing %q but got %q", fragment, c.result.ErrorMessage)
	}
	return nil
}

func (c *spendingPlanContext) theExecutionShouldHaveSpentTradeGoods(amount int) error {
	if c.result == nil {
		return fmt.Errorf("no execution result")
	}
	if c.result.TradeGoodsSpent != amount {
		return fmt.Errorf("expected %d trade goods spent but got %d", amount, c.result.TradeGoodsSpent)
	}
	return nil
}

func (c *spendingPlanContext) planetShouldBeExhausted(name string) error {
	planet, found := c.state.FindPlanet(c.playerID, name)
	if !found {
		return fmt.Errorf("planet %s not found", name)
	}
	if !planet.IsExhausted() {
		return fmt.Errorf("expected planet %s to be exhausted", name)
	}
	return nil
}

func (c *spendingPlanContext) planetShouldNotBeExhausted(name string) error {
	planet, found := c.state.FindPlanet(c.playerID, name)
	if !found {
		return fmt.Errorf("planet %s not found", name)
	}
	if planet.IsExhausted() {
		return fmt.Errorf("expected planet %s to be ready but it is exhausted", name)
	}
	return nil
}

func (c *spendingPlanContext) thePlayerShouldHaveTradeGoods(amount int) error {
	player, ok := c.state.Player(c.playerID)
	if !ok {
		return fmt.Errorf("player not found in state")
	}
	if player.TradeGoods() != amount {
		return fmt.Errorf("expected %d trade goods but player has %d", amount, player.TradeGoods())
	}
	return nil
}

// Table helpers shared across step files

func planetsFromTable(table *godog.Table) ([]*galaxy.Planet, error) {
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("planet table needs a header and at least one row")
	}
	var planets []*galaxy.Planet
	for _, row := range table.Rows[1:] {
		if len(row.Cells) < 3 {
			return nil, fmt.Errorf("planet row needs name, resources and influence")
		}
		name := row.Cells[0].Value
		resources, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return nil, fmt.Errorf("bad resources for %s: %w", name, err)
		}
		influence, err := strconv.Atoi(row.Cells[2].Value)
		if err != nil {
			return nil, fmt.Errorf("bad influence for %s: %w", name, err)
		}
		planet, err := galaxy.NewPlanet(name, resources, influence)
		if err != nil {
			return nil, err
		}
		planets = append(planets, planet)
	}
	return planets, nil
}

func comparePlanetList(got []string, expected string) error {
	var want []string
	if trimmed := strings.TrimSpace(expected); trimmed != "" {
		for _, part := range strings.Split(trimmed, ",") {
			want = append(want, strings.TrimSpace(part))
		}
	}
	if len(got) != len(want) {
		return fmt.Errorf("expected planets %v but got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("expected planets %v but got %v", want, got)
		}
	}
	return nil
}

// Register steps

func InitializeSpendingPlanScenario(sc *godog.ScenarioContext) {
	c := &spendingPlanContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		c.reset()
		return ctx, nil
	})

	sc.Step(`^a player with (\d+) trade goods and the following planets:$`, c.aPlayerWithTradeGoodsAndPlanets)
	sc.Step(`^the player has technology "([^"]*)"$`, c.thePlayerHasTechnology)

	sc.Step(`^I create a spending plan for (\d+) resources and (\d+) influence$`, c.iCreateASpendingPlanFor)
	sc.Step(`^I create a voting spending plan for (\d+) resources and (\d+) influence$`, c.iCreateAVotingSpendingPlanFor)
	sc.Step(`^I execute the spending plan$`, c.iExecuteTheSpendingPlan)
	sc.Step(`^planet "([^"]*)" becomes exhausted$`, c.planetBecomesExhausted)

	sc.Step(`^the plan should be valid$`, c.thePlanShouldBeValid)
	sc.Step(`^the plan should be invalid$`, c.thePlanShouldBeInvalid)
	sc.Step(`^the plan error should mention "([^"]*)"$`, c.thePlanErrorShouldMention)
	sc.Step(`^the resource spending should use planets "([^"]*)"$`, c.theResourceSpendingShouldUsePlanets)
	sc.Step(`^the influence spending should use planets "([^"]*)"$`, c.theInfluenceSpendingShouldUsePlanets)
	sc.Step(`^the resource spending should use (\d+) trade goods$`, c.theResourceSpendingShouldUseTradeGoods)
	sc.Step(`^the influence spending should use (\d+) trade goods$`, c.theInfluenceSpendingShouldUseTradeGoods)
	sc.Step(`^the plan should use (\d+) total trade goods$`, c.thePlanShouldUseTotalTradeGoods)
	sc.Step(`^the planets to exhaust should be "([^"]*)"$`, c.thePlanetsToExhaustShouldBe)

	sc.Step(`^the execution should succeed$`, c.theExecutionShouldSucceed)
	sc.Step(`^the execution should fail$`, c.theExecutionShouldFail)
	sc.Step(`^the execution error should mention "([^"]*)"$`, c.theExecutionErrorShouldMention)
	sc.Step(`^the execution should have spent (\d+) trade goods$`, c.theExecutionShouldHaveSpentTradeGoods)
	sc.Step(`^planet "([^"]*)" should be exhausted$`, c.planetShouldBeExhausted)
	sc.Step(`^planet "([^"]*)" should not be exhausted$`, c.planetShouldNotBeExhausted)
	sc.Step(`^the player should have (\d+) trade goods$`, c.thePlayerShouldHaveTradeGoods)
}
