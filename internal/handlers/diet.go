package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"fittracker/internal/metrics"

	"github.com/gin-gonic/gin"
)

func ShowDiet(c *gin.Context) {
	render(c, http.StatusOK, "diet.html", nil)
}

// Diet handles POST /diet: computes maintenance calories and a macro plan
// from the submitted body metrics.
func Diet(c *gin.Context) {
	weight, err := strconv.ParseFloat(c.PostForm("weight"), 64)
	if err != nil {
		render(c, http.StatusBadRequest, "diet.html", gin.H{"error": "Invalid weight."})
		return
	}
	height, err := strconv.ParseFloat(c.PostForm("height"), 64)
	if err != nil {
		render(c, http.StatusBadRequest, "diet.html", gin.H{"error": "Invalid height."})
		return
	}
	age, err := strconv.Atoi(c.PostForm("age"))
	if err != nil {
		render(c, http.StatusBadRequest, "diet.html", gin.H{"error": "Invalid age."})
		return
	}
	gender := c.PostForm("gender")
	activityLevel := c.PostForm("activity_level")

	factor := metrics.BasalFactor(weight, height, age, gender)
	calories := metrics.MaintenanceCalories(factor, activityLevel)
	plan := metrics.PlanFor(calories)

	render(c, http.StatusOK, "diet.html", gin.H{
		"maintenance_calories": fmt.Sprintf("%.1f", calories),
		"diet_plan": gin.H{
			"protein": fmt.Sprintf("%d grams", plan.ProteinGrams),
			"fat":     fmt.Sprintf("%d grams", plan.FatGrams),
			"carbs":   fmt.Sprintf("%d grams", plan.CarbsGrams),
		},
	})
}
