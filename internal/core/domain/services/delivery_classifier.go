package services

import (
	"fmt"

	"laundryops/internal/core/domain/model/order"
)

// Default classification ceilings. An order exceeding any ceiling is Bulk.
const (
	// DefaultValueCeiling is the monetary ceiling in KES.
	DefaultValueCeiling int64 = 5000
	// DefaultWeightCeilingKg is the estimated-weight ceiling in kilograms.
	DefaultWeightCeilingKg float64 = 10
	// DefaultGarmentCeiling is the garment-count ceiling.
	DefaultGarmentCeiling int = 5
)

// defaultGarmentWeightKg is the fallback estimate for unknown garment types.
const defaultGarmentWeightKg = 0.5

// garmentWeightsKg is the fixed average-weight lookup table per garment type.
func garmentWeightsKg() map[order.GarmentType]float64 {
	return map[order.GarmentType]float64{
		"Shirt":    0.2,
		"Blouse":   0.2,
		"Trousers": 0.4,
		"Dress":    0.5,
		"Jacket":   0.8,
		"Suit":     1.0,
		"Coat":     1.2,
		"Curtain":  2.0,
		"Duvet":    2.5,
		"Bedding":  2.5,
		"Carpet":   4.0,
	}
}

// ClassifierConfig holds the configurable ceilings for delivery classification.
type ClassifierConfig struct {
	ValueCeiling    int64
	WeightCeilingKg float64
	GarmentCeiling  int
}

// DefaultClassifierConfig returns the standard ceilings.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		ValueCeiling:    DefaultValueCeiling,
		WeightCeilingKg: DefaultWeightCeilingKg,
		GarmentCeiling:  DefaultGarmentCeiling,
	}
}

// ClassificationResult carries the decided size class, the rule that decided
// it, and the three raw measurements. The justification string is required
// for audit and for the manager override surface.
type ClassificationResult struct {
	Class             order.SizeClass
	Basis             order.ClassificationBasis
	Value             int64
	EstimatedWeightKg float64
	GarmentCount      int
	Justification     string
}

// DeliveryClassifier is a pure, stateless domain service classifying an order
// as Small (motorcycle-appropriate) or Bulk (van-required). Rules evaluate in
// strict priority order and the first match wins:
//
//  1. value over the value ceiling            -> Bulk, basis "value"
//  2. estimated weight over the weight ceiling -> Bulk, basis "weight"
//  3. garment count over the count ceiling     -> Bulk, basis "garment_count"
//  4. otherwise                                -> Small, basis "garment_count"
//
// Classification is a total, deterministic function of (value, weight, count):
// identical measurement triples always produce identical results.
type DeliveryClassifier struct {
	config ClassifierConfig
}

// NewDeliveryClassifier creates a classifier with the given ceilings.
func NewDeliveryClassifier(config ClassifierConfig) DeliveryClassifier {
	return DeliveryClassifier{config: config}
}

// EstimateWeight sums per-type average weights over the garments, falling
// back to the default weight for unknown types.
func (c DeliveryClassifier) EstimateWeight(garments []order.Garment) float64 {
	weights := garmentWeightsKg()
	var total float64
	for i := range garments {
		w, ok := weights[garments[i].Category()]
		if !ok {
			w = defaultGarmentWeightKg
		}
		total += w
	}
	return total
}

// Classify evaluates the priority rules over the order's value and garments.
func (c DeliveryClassifier) Classify(totalValue int64, garments []order.Garment) ClassificationResult {
	weight := c.EstimateWeight(garments)
	count := len(garments)

	result := ClassificationResult{
		Value:             totalValue,
		EstimatedWeightKg: weight,
		GarmentCount:      count,
	}

	switch {
	case totalValue > c.config.ValueCeiling:
		result.Class = order.SizeBulk
		result.Basis = order.BasisValue
		result.Justification = fmt.Sprintf(
			"order value KES %d exceeds the KES %d ceiling; van required",
			totalValue, c.config.ValueCeiling)
	case weight > c.config.WeightCeilingKg:
		result.Class = order.SizeBulk
		result.Basis = order.BasisWeight
		result.Justification = fmt.Sprintf(
			"estimated weight %.1fkg exceeds the %.1fkg ceiling; van required",
			weight, c.config.WeightCeilingKg)
	case count > c.config.GarmentCeiling:
		result.Class = order.SizeBulk
		result.Basis = order.BasisGarmentCount
		result.Justification = fmt.Sprintf(
			"%d garments exceed the %d-garment ceiling; van required",
			count, c.config.GarmentCeiling)
	default:
		result.Class = order.SizeSmall
		result.Basis = order.BasisGarmentCount
		result.Justification = fmt.Sprintf(
			"within small-delivery limits (KES %d, %.1fkg, %d garments); motorcycle suitable",
			totalValue, weight, count)
	}

	return result
}
