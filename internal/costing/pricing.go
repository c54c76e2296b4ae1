package costing

import "backoffice/internal/utils"

// Pricing carries the derived sell-price figures. Only the fields that
// the save flow writes back onto the trip survive persistence; the rest
// feed the review labels.
type Pricing struct {
	CostPerPerson              float64 `json:"costPerPerson"`
	ProfitAmount               float64 `json:"profitAmount"`
	FinalSellingPricePerPerson float64 `json:"finalSellingPricePerPerson"`
	ExpectedRevenue            float64 `json:"expectedRevenue"` // at full capacity
	ExpectedProfit             float64 `json:"expectedProfit"`
	ActualProfitMarginPercent  float64 `json:"actualProfitMarginPercent"`
}

// PriceTrip derives per-person cost and the final sell price. Zero
// capacity yields zeroes, never a division error.
func PriceTrip(grandTotalCost float64, totalCapacity int, profitMarginPercent float64) Pricing {
	var p Pricing
	if totalCapacity <= 0 {
		return p
	}

	costPerPerson := grandTotalCost / float64(totalCapacity)
	profit := costPerPerson * profitMarginPercent / 100
	selling := costPerPerson + profit

	expectedRevenue := selling * float64(totalCapacity)
	expectedProfit := expectedRevenue - grandTotalCost

	p.CostPerPerson = utils.Round2(costPerPerson)
	p.ProfitAmount = utils.Round2(profit)
	p.FinalSellingPricePerPerson = utils.Round2(selling)
	p.ExpectedRevenue = utils.Round2(expectedRevenue)
	p.ExpectedProfit = utils.Round2(expectedProfit)
	if grandTotalCost > 0 {
		p.ActualProfitMarginPercent = utils.Round2(expectedProfit / grandTotalCost * 100)
	}
	return p
}
