// Package metrics computes calorie and macro targets from body metrics
// (Mifflin-St Jeor equation).
package metrics

// activityFactors maps self-reported activity levels to calorie multipliers.
var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// BasalFactor returns the basal metabolic rate for the given body metrics.
// Any gender other than "male" uses the female formula.
func BasalFactor(weightKg, heightCm float64, ageYears int, gender string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == "male" {
		return base + 5
	}
	return base - 161
}

// MaintenanceCalories scales a basal factor by the activity multiplier.
// Unknown activity levels fall back to sedentary.
func MaintenanceCalories(factor float64, activityLevel string) float64 {
	mult, ok := activityFactors[activityLevel]
	if !ok {
		mult = 1.2
	}
	return factor * mult
}

// DietPlan is a daily macro breakdown in whole grams.
type DietPlan struct {
	ProteinGrams int
	FatGrams     int
	CarbsGrams   int
}

// PlanFor splits maintenance calories 30/30/40 across protein, fat and
// carbs. Gram values truncate toward zero.
func PlanFor(maintenanceCalories float64) DietPlan {
	return DietPlan{
		ProteinGrams: int(maintenanceCalories * 0.3 / 4),
		FatGrams:     int(maintenanceCalories * 0.3 / 9),
		CarbsGrams:   int(maintenanceCalories * 0.4 / 4),
	}
}
