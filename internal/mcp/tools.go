package mcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/yada/internal/catalog"
	"github.com/gorewood/yada/internal/config"
	"github.com/gorewood/yada/internal/convert"
	"github.com/gorewood/yada/internal/foodlog"
	"github.com/gorewood/yada/internal/output"
)

// FoodSummary is one catalog food in tool output.
type FoodSummary struct {
	Identifier string   `json:"identifier" jsonschema:"unique food name"`
	Keywords   []string `json:"keywords,omitempty" jsonschema:"search keywords"`
	Calories   float64  `json:"calories_per_serving" jsonschema:"calories in one serving"`
}

// SearchInput is the input for the search_foods tool.
type SearchInput struct {
	Keywords []string `json:"keywords,omitempty" jsonschema:"keywords to match"`
	MatchAll bool     `json:"match_all,omitempty" jsonschema:"require all keywords instead of any"`
}

// SearchOutput is the output for the search_foods tool.
type SearchOutput struct {
	Foods []FoodSummary `json:"foods" jsonschema:"matching foods"`
}

func handleSearch(cfg *config.Config) mcp.ToolHandlerFor[SearchInput, SearchOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		db, err := openCatalog(cfg)
		if err != nil {
			return nil, SearchOutput{}, err
		}

		foods := db.Search(input.Keywords, input.MatchAll)
		summaries := make([]FoodSummary, 0, len(foods))
		for _, food := range foods {
			summaries = append(summaries, FoodSummary{
				Identifier: food.Identifier(),
				Keywords:   food.Keywords(),
				Calories:   food.CaloriesPerServing(),
			})
		}
		return nil, SearchOutput{Foods: summaries}, nil
	}
}

// AddBasicInput is the input for the add_basic_food tool.
type AddBasicInput struct {
	Name     string   `json:"name" jsonschema:"food name (required)"`
	Keywords []string `json:"keywords,omitempty" jsonschema:"search keywords"`
	Calories float64  `json:"calories_per_serving" jsonschema:"calories in one serving"`
}

// AddBasicOutput is the output for the add_basic_food tool.
type AddBasicOutput struct {
	Food FoodSummary `json:"food" jsonschema:"the added food"`
}

func handleAddBasic(cfg *config.Config) mcp.ToolHandlerFor[AddBasicInput, AddBasicOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AddBasicInput) (*mcp.CallToolResult, AddBasicOutput, error) {
		if input.Name == "" {
			return nil, AddBasicOutput{}, errors.New("name is required")
		}

		db, err := openCatalog(cfg)
		if err != nil {
			return nil, AddBasicOutput{}, err
		}

		food := catalog.NewBasicFood(input.Name, input.Keywords, input.Calories)
		if err := db.AddBasic(food); err != nil {
			return nil, AddBasicOutput{}, err
		}
		if err := db.Save(); err != nil {
			return nil, AddBasicOutput{}, err
		}

		return nil, AddBasicOutput{Food: FoodSummary{
			Identifier: food.Identifier(),
			Keywords:   food.Keywords(),
			Calories:   food.CaloriesPerServing(),
		}}, nil
	}
}

// ComponentInput names one component of a composite food.
type ComponentInput struct {
	Name     string  `json:"name" jsonschema:"component food identifier"`
	Servings float64 `json:"servings" jsonschema:"number of servings"`
}

// AddCompositeInput is the input for the add_composite_food tool.
type AddCompositeInput struct {
	Name       string           `json:"name" jsonschema:"composite food name (required)"`
	Components []ComponentInput `json:"components" jsonschema:"component servings (required, non-empty)"`
}

// AddCompositeOutput is the output for the add_composite_food tool.
type AddCompositeOutput struct {
	Added bool `json:"added" jsonschema:"whether the food was appended"`
}

func handleAddComposite(cfg *config.Config) mcp.ToolHandlerFor[AddCompositeInput, AddCompositeOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AddCompositeInput) (*mcp.CallToolResult, AddCompositeOutput, error) {
		components := make([]convert.ComponentRef, 0, len(input.Components))
		for _, component := range input.Components {
			components = append(components, convert.ComponentRef{
				Name:     component.Name,
				Servings: component.Servings,
			})
		}
		record := convert.CompositeRecord{Name: input.Name, Components: components}

		// The converter reports through its printer; surface that report
		// as the tool error when the add fails.
		var report bytes.Buffer
		converter := convert.NewCompositeConverter(output.NewPrinter(&report, false, false))
		if !converter.AddSingle(record, cfg.CompositeFoodsPath()) {
			return nil, AddCompositeOutput{}, errors.New(report.String())
		}
		return nil, AddCompositeOutput{Added: true}, nil
	}
}

// LogFoodInput is the input for the log_food tool.
type LogFoodInput struct {
	Date     string  `json:"date" jsonschema:"date in YYYY-MM-DD format (required)"`
	Food     string  `json:"food" jsonschema:"food identifier (required)"`
	Servings float64 `json:"servings" jsonschema:"number of servings (required, non-zero)"`
}

// LogFoodOutput is the output for the log_food tool.
type LogFoodOutput struct {
	TotalCalories float64 `json:"total_calories" jsonschema:"total calories logged for the date"`
}

func handleLogFood(cfg *config.Config) mcp.ToolHandlerFor[LogFoodInput, LogFoodOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input LogFoodInput) (*mcp.CallToolResult, LogFoodOutput, error) {
		if input.Food == "" {
			return nil, LogFoodOutput{}, errors.New("food is required")
		}
		if input.Servings == 0 {
			return nil, LogFoodOutput{}, errors.New("servings must be non-zero")
		}
		date, err := foodlog.ParseDate(input.Date)
		if err != nil {
			return nil, LogFoodOutput{}, err
		}

		db, err := openCatalog(cfg)
		if err != nil {
			return nil, LogFoodOutput{}, err
		}
		if _, ok := db.CaloriesFor(input.Food); !ok {
			return nil, LogFoodOutput{}, fmt.Errorf("unknown food: %s", input.Food)
		}

		log, err := foodlog.Load(cfg.FoodLogPath())
		if err != nil {
			return nil, LogFoodOutput{}, err
		}
		log.Add(date, foodlog.Entry{FoodID: input.Food, Servings: input.Servings})
		if err := log.Save(cfg.FoodLogPath()); err != nil {
			return nil, LogFoodOutput{}, err
		}

		return nil, LogFoodOutput{TotalCalories: log.TotalCalories(date, db)}, nil
	}
}

// DailyTotalInput is the input for the daily_total tool.
type DailyTotalInput struct {
	Date string `json:"date" jsonschema:"date in YYYY-MM-DD format (required)"`
}

// DailyTotalOutput is the output for the daily_total tool.
type DailyTotalOutput struct {
	Date          string  `json:"date" jsonschema:"the queried date"`
	TotalCalories float64 `json:"total_calories" jsonschema:"total calories consumed"`
	Entries       int     `json:"entries" jsonschema:"number of logged entries"`
}

func handleDailyTotal(cfg *config.Config) mcp.ToolHandlerFor[DailyTotalInput, DailyTotalOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input DailyTotalInput) (*mcp.CallToolResult, DailyTotalOutput, error) {
		date, err := foodlog.ParseDate(input.Date)
		if err != nil {
			return nil, DailyTotalOutput{}, err
		}

		db, err := openCatalog(cfg)
		if err != nil {
			return nil, DailyTotalOutput{}, err
		}
		log, err := foodlog.Load(cfg.FoodLogPath())
		if err != nil {
			return nil, DailyTotalOutput{}, err
		}

		return nil, DailyTotalOutput{
			Date:          date,
			TotalCalories: log.TotalCalories(date, db),
			Entries:       len(log.Entries(date)),
		}, nil
	}
}

// CalorieTargetInput is the input for the calorie_target tool.
type CalorieTargetInput struct{}

// CalorieTargetOutput is the output for the calorie_target tool.
type CalorieTargetOutput struct {
	Strategy string  `json:"strategy" jsonschema:"name of the calculation strategy"`
	Target   float64 `json:"target" jsonschema:"recommended daily calorie intake"`
}

func handleCalorieTarget(cfg *config.Config) mcp.ToolHandlerFor[CalorieTargetInput, CalorieTargetOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ CalorieTargetInput) (*mcp.CallToolResult, CalorieTargetOutput, error) {
		profile, err := cfg.DietProfile()
		if err != nil {
			return nil, CalorieTargetOutput{}, err
		}
		strategy, err := cfg.TargetStrategy()
		if err != nil {
			return nil, CalorieTargetOutput{}, err
		}
		return nil, CalorieTargetOutput{
			Strategy: strategy.Name(),
			Target:   strategy.DailyTarget(profile),
		}, nil
	}
}

// openCatalog opens the catalog database from the configured paths.
func openCatalog(cfg *config.Config) (*catalog.Database, error) {
	return catalog.Open(cfg.BasicFoodsPath(), cfg.CompositeFoodsPath())
}
