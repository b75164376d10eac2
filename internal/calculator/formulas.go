package calculator

import (
	"math"
)

const (
	fertilizerBaseRate     = 150.0 // kg per acre
	fertilizerPerYieldTon  = 20.0  // kg per acre for each target ton/acre
	fertilizerPricePerKg   = 0.8
	irrigationBaseWater    = 0.5 // inches per acre
	irrigationDryThreshold = 50.0
	baseYieldPerAcre       = 2.5 // tons
	cropPricePerTon        = 200.0
)

// Compute applies the definition's formula to values. It never fails:
// numeric fields go through Number, and results without a finite value are
// rendered as NotAvailable. Equal inputs always produce equal results.
func (d Definition) Compute(values FieldValues) ResultValues {
	switch d.Kind {
	case Fertilizer:
		return computeFertilizer(values)
	case Irrigation:
		return computeIrrigation(values)
	case Yield:
		return computeYield(values)
	case Profit:
		return computeProfit(values)
	}
	return ResultValues{}
}

func computeFertilizer(v FieldValues) ResultValues {
	area := v.Number("fieldArea")
	target := v.Number("targetYield")

	total := (fertilizerBaseRate + target*fertilizerPerYieldTon) * area

	return ResultValues{
		result("totalFertilizer", fixed(total, 2)),
		result("cost", fixed(total*fertilizerPricePerKg, 2)),
		result("applicationRate", fixed(total/area, 2)),
	}
}

func computeIrrigation(v FieldValues) ResultValues {
	area := v.Number("fieldArea")
	moisture := v.Number("soilMoisture")

	moistureFactor := math.Max(0, (irrigationDryThreshold-moisture)/irrigationDryThreshold)
	total := irrigationBaseWater * (1 + moistureFactor) * area

	return ResultValues{
		result("totalWater", fixed(total, 2)),
		result("frequency", irrigationFrequency(moisture)),
		result("duration", irrigationDuration(total)),
	}
}

func irrigationFrequency(moisture float64) string {
	switch {
	case moisture < 30:
		return "Daily"
	case moisture < 50:
		return "Every 2 days"
	default:
		return "Every 3 days"
	}
}

// irrigationDuration assumes half an inch of water per hour.
func irrigationDuration(totalWater float64) string {
	hours := math.Ceil(totalWater * 2)
	if math.IsInf(hours, 0) || math.IsNaN(hours) {
		return NotAvailable
	}
	return fixed(hours, 0) + " hours"
}

func computeYield(v FieldValues) ResultValues {
	area := v.Number("fieldArea")
	fertilizer := v.Number("fertilizerApplied")
	irrigationDays := v.Number("irrigationDays")

	fertilizerBonus := (fertilizer / area) * 0.1
	irrigationBonus := (irrigationDays / 30) * 0.2
	total := (baseYieldPerAcre + fertilizerBonus + irrigationBonus) * area

	return ResultValues{
		result("totalYield", fixed(total, 2)),
		result("yieldPerAcre", fixed(total/area, 2)),
		result("estimatedRevenue", fixed(total*cropPricePerTon, 2)),
	}
}

func computeProfit(v FieldValues) ResultValues {
	revenue := v.Number("expectedYield") * v.Number("marketPrice")
	costs := v.Number("seedCost") + v.Number("fertilizerCost") + v.Number("laborCost") + v.Number("equipmentCost")
	profit := revenue - costs

	return ResultValues{
		result("revenue", fixed(revenue, 2)),
		result("totalCosts", fixed(costs, 2)),
		result("profit", fixed(profit, 2)),
		result("profitMargin", fixed(profit/revenue*100, 1)),
	}
}
