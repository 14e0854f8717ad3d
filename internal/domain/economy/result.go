package economy

// SpendingResult describes the outcome of executing a spending plan. On
// failure PlanetsExhausted and TradeGoodsSpent are empty because execution
// rolls back every exhaustion it performed.
type SpendingResult struct {
	Success          bool
	PlanetsExhausted []string
	TradeGoodsSpent  int
	ErrorMessage     string
}

// NewSuccessResult creates a result recording what execution consumed
func NewSuccessResult(planetsExhausted []string, tradeGoodsSpent int) *SpendingResult {
	return &SpendingResult{
		Success:          true,
		PlanetsExhausted: planetsExhausted,
		TradeGoodsSpent:  tradeGoodsSpent,
	}
}

// NewFailedResult creates a result for an execution that changed nothing
func NewFailedResult(message string) *SpendingResult {
	return &SpendingResult{
		Success:      false,
		ErrorMessage: message,
	}
}
