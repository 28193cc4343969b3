package tsp

import "github.com/katalvlaran/lvsolve/objective"

// IndicatorName labels the single objective level.
const IndicatorName = "TotalDistance"

// NewObjective minimizes the total tour distance, a single Float level.
func NewObjective() *objective.Objective[Tour] {
	return objective.NewSingleIndicator(objective.IndicatorFunc(IndicatorName,
		func(t Tour) objective.BaseValue { return objective.Float(t.Length()) }))
}

// NewObjectiveWithInfo is NewObjective for tours labelled with their last move.
func NewObjectiveWithInfo() *objective.Objective[TourWithInfo] {
	return objective.NewSingleIndicator(objective.IndicatorFunc(IndicatorName,
		func(t TourWithInfo) objective.BaseValue { return objective.Float(t.Length()) }))
}
